package credential

import (
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/credential/inbound"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/credential/outbound/db"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/credential/usecase"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/config"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/idempotency"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/instrument"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/mail"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/router"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/secret"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/uid"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Dependency struct {
	DBConn      *pgxpool.Pool              `validate:"required"`
	Router      *router.Router             `validate:"required"`
	Idempotency idempotency.Idempotency    `validate:"required"`
	Config      config.Config              `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	Secret      secret.Generator           `validate:"required"`
	Mailer      mail.Mail                  `validate:"required"`
	UID         uid.NumberID               `validate:"required"`
	Validator   validator.Validator        `validate:"required"`
}

// New wires the credential module and returns its usecase so other modules
// can use it as an authorization gate.
func New(dep Dependency) (*usecase.Usecase, error) {
	if err := dep.Validator.Validate(dep); err != nil {
		return nil, err
	}

	dbCredential := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:      dbCredential,
		Idempotency: dep.Idempotency,
		Validator:   dep.Validator,
		Config:      dep.Config,
		Secret:      dep.Secret,
		Mailer:      dep.Mailer,
		UID:         dep.UID,
		Instrument:  dep.Instrument,
	})

	// The usecase is always built because it doubles as the authorization
	// gate for other modules; the flag only controls the issuance endpoint.
	if dep.Config.GetBool("modules.credential.enabled") {
		inbound.RegisterHTTPEndpoint(dep.Router, uc)
	}

	return uc, nil
}
