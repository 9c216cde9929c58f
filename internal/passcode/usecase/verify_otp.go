package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/goerror"
)

type VerifyOtpInput struct {
	Email string `validate:"required,email"`
	Otp   string `validate:"required"`
}

type VerifyOtpOutput struct {
	Email string
}

// VerifyOtp checks a submitted passcode against the outstanding record for
// the identity. A successful match consumes the record; so does the first
// attempt after expiry. A mismatch leaves the record in place so the correct
// passcode can still be submitted until it expires.
func (s *Usecase) VerifyOtp(ctx context.Context, in VerifyOtpInput) (*VerifyOtpOutput, error) {
	ctx, span := s.startSpan(ctx, "VerifyOtp")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	record, err := s.repoDB.GetActiveOTP(ctx, in.Email)
	if err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("No OTP found for this email. Please request one first.", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo get active otp", "email", in.Email, "error", err)
		if errors.Is(err, goerror.ErrUnavailable) {
			return nil, goerror.NewUnavailable(err)
		}
		return nil, goerror.NewServerMsg(err, "Failed to process OTP verification.")
	}

	if record.Expired(s.clock.Now()) {
		if err := s.consume(ctx, in.Email); err != nil {
			return nil, err
		}
		return nil, goerror.NewBusiness("OTP has expired.", goerror.CodeInvalidInput)
	}

	if !s.hasher.Verify(record.OTPHash, in.Otp) {
		return nil, goerror.NewBusiness("Invalid OTP.", goerror.CodeInvalidInput)
	}

	if err := s.consume(ctx, in.Email); err != nil {
		return nil, err
	}

	return &VerifyOtpOutput{Email: in.Email}, nil
}

func (s *Usecase) consume(ctx context.Context, email string) error {
	if err := s.repoDB.DeleteActiveOTP(ctx, email); err != nil {
		slog.ErrorContext(ctx, "failed to repo delete active otp", "email", email, "error", err)
		if errors.Is(err, goerror.ErrUnavailable) {
			return goerror.NewUnavailable(err)
		}
		return goerror.NewServerMsg(err, "Failed to process OTP verification.")
	}
	return nil
}
