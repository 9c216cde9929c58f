package usecase

import (
	"context"
	"log/slog"
)

// SweepExpired reaps passcodes that are past their expiry. Expiry is still
// enforced lazily at verification time; this only keeps the table from
// accumulating rows for identities that never attempt verification.
func (s *Usecase) SweepExpired(ctx context.Context) error {
	ctx, span := s.startSpan(ctx, "SweepExpired")
	defer span.End()

	removed, err := s.repoDB.DeleteExpiredOTPs(ctx, s.clock.Now())
	if err != nil {
		slog.ErrorContext(ctx, "failed to reap expired otps", "error", err)
		return err
	}

	if removed > 0 {
		slog.InfoContext(ctx, "reaped expired otps", "count", removed)
	}

	return nil
}
