package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/goerror"
)

// Authorize reports whether key matches a stored credential exactly.
//
// It is fail-closed: a store that cannot be reached, or any other lookup
// failure, denies access the same way an unknown key does. Callers cannot
// distinguish the two outcomes.
func (s *Usecase) Authorize(ctx context.Context, key string) bool {
	ctx, span := s.startSpan(ctx, "Authorize")
	defer span.End()

	if key == "" {
		return false
	}

	if _, err := s.repoDB.GetAPIKeyByKey(ctx, key); err != nil {
		if !errors.Is(err, goerror.ErrNotFound) {
			slog.ErrorContext(ctx, "key lookup failed, denying access", "error", err)
		}
		return false
	}

	return true
}
