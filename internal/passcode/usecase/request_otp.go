package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/passcode/entity"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/goerror"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/mail"
)

type RequestOtpInput struct {
	Email string `validate:"required,email"`
}

type RequestOtpOutput struct {
	Email string
}

// RequestOtp generates a fresh passcode for an end-user identity, stores its
// hash with an expiry, and emails the plaintext to the user. A repeat request
// replaces any outstanding passcode for the same identity; at most one is
// ever valid.
func (s *Usecase) RequestOtp(ctx context.Context, in RequestOtpInput) (*RequestOtpOutput, error) {
	ctx, span := s.startSpan(ctx, "RequestOtp")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	otp, err := s.secret.Generate(entity.OTPLength)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate passcode", "error", err)
		return nil, goerror.NewServerMsg(err, "Failed to process OTP request.")
	}

	otpHash, err := s.hasher.Hash(otp)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash passcode", "error", err)
		return nil, goerror.NewServerMsg(err, "Failed to process OTP request.")
	}

	record := entity.ActiveOTP{
		UserEmail: in.Email,
		OTPHash:   string(otpHash),
		ExpiresAt: s.clock.Now().Add(s.ttl()),
	}
	if err := s.repoDB.UpsertActiveOTP(ctx, record); err != nil {
		slog.ErrorContext(ctx, "failed to repo upsert active otp", "email", in.Email, "error", err)
		if errors.Is(err, goerror.ErrUnavailable) {
			return nil, goerror.NewUnavailable(err)
		}
		return nil, goerror.NewServerMsg(err, "Failed to process OTP request.")
	}

	// The hash is durable; only the plaintext leaves through the mailer.
	msg := mail.Message{
		From:    s.cfg.GetString("mail.sender"),
		To:      []string{in.Email},
		Subject: "Your One-Time Passcode",
		TextBody: fmt.Sprintf(
			"Hello,\n\nYour one-time passcode is:\n\n%s\n\nIt expires in %s. If you did not request it, ignore this email.\n",
			otp, s.ttl(),
		),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "failed to send otp email", "email", in.Email, "error", err)
		return nil, goerror.NewServerMsg(err, "Failed to send OTP email.")
	}

	return &RequestOtpOutput{Email: in.Email}, nil
}
