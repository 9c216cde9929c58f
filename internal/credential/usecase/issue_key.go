package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/credential/entity"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/goerror"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/idempotency"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/mail"
	"github.com/sethvargo/go-retry"
)

// maxGenerationAttempts bounds the regenerate-on-collision loop. The key
// space makes even a single collision vanishingly unlikely; exhausting this
// many attempts means something else is wrong and must surface as a failure.
const maxGenerationAttempts = 16

// defaultCreator is recorded when the caller does not identify itself.
const defaultCreator = "user_request"

type IssueKeyInput struct {
	Email       string `validate:"required,email"`
	Creator     string `validate:"omitempty,max=100"`
	CompanyName string `validate:"omitempty,max=200"`
}

type IssueKeyOutput struct {
	Email     string
	Key       string
	Delivered bool
}

// IssueKey creates a fresh credential for an email that does not yet have
// one, then attempts to deliver it by email. A failed delivery does not void
// the stored key; the key is instead disclosed to the caller directly.
func (s *Usecase) IssueKey(ctx context.Context, in IssueKeyInput) (*IssueKeyOutput, error) {
	ctx, span := s.startSpan(ctx, "IssueKey")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.Creator = strings.TrimSpace(in.Creator)
	if in.Creator == "" {
		in.Creator = defaultCreator
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	idemKey := "credential:issue:" + in.Email
	state, err := s.idemp.Acquire(ctx, idemKey, s.cfg.GetSecond("modules.credential.issue_lock_seconds"))
	switch {
	case err != nil:
		slog.WarnContext(ctx, "idempotency guard unavailable, proceeding without it", "error", err)
	case state == idempotency.StateInProgress:
		return nil, goerror.NewBusiness("A key request for this email is already being processed.", goerror.CodeConflict)
	default:
		defer func() {
			if err := s.idemp.Release(context.WithoutCancel(ctx), idemKey); err != nil {
				slog.WarnContext(ctx, "failed to release idempotency guard", "error", err)
			}
		}()
	}

	if _, err := s.repoDB.GetAPIKeyByEmail(ctx, in.Email); err == nil {
		return nil, goerror.NewBusiness("An API key for this email already exists.", goerror.CodeConflict)
	} else if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get api key by email", "email", in.Email, "error", err)
		if errors.Is(err, goerror.ErrUnavailable) {
			return nil, goerror.NewUnavailable(err)
		}
		return nil, goerror.NewServer(err)
	}

	key, err := s.storeFreshKey(ctx, in)
	if err != nil {
		return nil, err
	}

	delivered := s.deliverKey(ctx, in.Email, key)

	return &IssueKeyOutput{Email: in.Email, Key: key, Delivered: delivered}, nil
}

// storeFreshKey generates keys until the database accepts one. The unique
// constraint on the key column is the final arbiter of uniqueness; a
// collision on insert means regenerate, not fail.
func (s *Usecase) storeFreshKey(ctx context.Context, in IssueKeyInput) (string, error) {
	var key string

	b := retry.WithMaxRetries(maxGenerationAttempts-1, retry.NewConstant(time.Millisecond))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		generated, err := s.secret.Generate(entity.KeyLength)
		if err != nil {
			return err
		}

		err = s.repoDB.CreateAPIKey(ctx, entity.APIKey{
			ID:          s.uid.Generate(),
			Email:       in.Email,
			Key:         generated,
			CreatedBy:   in.Creator,
			CompanyName: in.CompanyName,
		})
		if errors.Is(err, entity.ErrKeyCollision) {
			slog.WarnContext(ctx, "generated key collided, regenerating")
			return retry.RetryableError(err)
		}
		if err != nil {
			return err
		}

		key = generated
		return nil
	})
	if err == nil {
		return key, nil
	}

	slog.ErrorContext(ctx, "failed to store fresh api key", "email", in.Email, "error", err)

	switch {
	case errors.Is(err, goerror.ErrConflict):
		return "", goerror.NewBusiness("An API key for this email already exists.", goerror.CodeConflict)
	case errors.Is(err, goerror.ErrUnavailable):
		return "", goerror.NewUnavailable(err)
	default:
		return "", goerror.NewServer(err)
	}
}

// deliverKey sends the plaintext key to its owner. It reports delivery
// success only; a failure here is logged and absorbed because the credential
// is already committed.
func (s *Usecase) deliverKey(ctx context.Context, email, key string) bool {
	msg := mail.Message{
		From:    s.cfg.GetString("mail.sender"),
		To:      []string{email},
		Subject: "Your New API Key",
		TextBody: fmt.Sprintf(
			"Hello,\n\nYour API key has been generated:\n\n%s\n\nKeep it secret. Anyone holding this key can act on your behalf.\n",
			key,
		),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "failed to send api key email", "email", email, "error", err)
		slog.WarnContext(ctx, "api key disclosed in response body after delivery failure", "email", email)
		return false
	}

	return true
}
