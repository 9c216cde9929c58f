package passcode

import (
	"context"
	"time"

	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/passcode/inbound"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/passcode/outbound/db"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/passcode/usecase"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/clock"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/config"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/goroutine"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/hash"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/instrument"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/mail"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/router"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/secret"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Gate       router.KeyAuthorizer       `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Secret     secret.Generator           `validate:"required"`
	Hasher     hash.Hash                  `validate:"required"`
	Mailer     mail.Mail                  `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(ctx context.Context, dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbPasscode := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbPasscode,
		Validator:  dep.Validator,
		Config:     dep.Config,
		Secret:     dep.Secret,
		Hasher:     dep.Hasher,
		Mailer:     dep.Mailer,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, dep.Gate)

	// Optional background reaper. Zero interval disables it; verification
	// still evaluates expiry lazily either way.
	if interval := dep.Config.GetMinute("modules.passcode.sweep_interval_minutes"); interval > 0 {
		dep.Goroutine.Go(ctx, func(ctx context.Context) error {
			runSweeper(ctx, uc, interval)
			return nil
		})
	}

	return nil
}

func runSweeper(ctx context.Context, uc *usecase.Usecase, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			//nolint:errcheck // already logged inside, next tick retries
			_ = uc.SweepExpired(ctx)
		}
	}
}
