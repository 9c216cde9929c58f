package usecase

import (
	"context"
	"time"

	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/passcode/entity"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/clock"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/config"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/hash"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/instrument"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/mail"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/secret"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

// defaultTTL applies when the passcode validity window is not configured.
const defaultTTL = 5 * time.Minute

type repoDB interface {
	GetActiveOTP(ctx context.Context, email string) (*entity.ActiveOTP, error)
	UpsertActiveOTP(ctx context.Context, in entity.ActiveOTP) error
	DeleteActiveOTP(ctx context.Context, email string) error
	DeleteExpiredOTPs(ctx context.Context, before time.Time) (int64, error)
}

type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	cfg       config.Config
	secret    secret.Generator
	hasher    hash.Hash
	mailer    mail.Mail
	clock     clock.Clocker
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	Config     config.Config
	Secret     secret.Generator
	Hasher     hash.Hash
	Mailer     mail.Mail
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		cfg:       dep.Config,
		secret:    dep.Secret,
		hasher:    dep.Hasher,
		mailer:    dep.Mailer,
		clock:     dep.Clock,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) ttl() time.Duration {
	if d := s.cfg.GetMinute("modules.passcode.ttl_minutes"); d > 0 {
		return d
	}
	return defaultTTL
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("passcode.usecase").Start(ctx, name)
}
