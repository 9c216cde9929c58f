package usecase

import (
	"context"

	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/credential/entity"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/config"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/idempotency"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/instrument"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/mail"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/secret"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/uid"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	GetAPIKeyByEmail(ctx context.Context, email string) (*entity.APIKey, error)
	GetAPIKeyByKey(ctx context.Context, key string) (*entity.APIKey, error)
	CreateAPIKey(ctx context.Context, in entity.APIKey) error
}

type Usecase struct {
	repoDB    repoDB
	idemp     idempotency.Idempotency
	validator validator.Validator
	cfg       config.Config
	secret    secret.Generator
	mailer    mail.Mail
	uid       uid.NumberID
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB      repoDB
	Idempotency idempotency.Idempotency
	Validator   validator.Validator
	Config      config.Config
	Secret      secret.Generator
	Mailer      mail.Mail
	UID         uid.NumberID
	Instrument  instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		idemp:     dep.Idempotency,
		validator: dep.Validator,
		cfg:       dep.Config,
		secret:    dep.Secret,
		mailer:    dep.Mailer,
		uid:       dep.UID,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("credential.usecase").Start(ctx, name)
}
