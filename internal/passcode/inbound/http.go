package inbound

import (
	"context"

	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/passcode/usecase"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/router"
)

type uc interface {
	RequestOtp(ctx context.Context, in usecase.RequestOtpInput) (*usecase.RequestOtpOutput, error)
	VerifyOtp(ctx context.Context, in usecase.VerifyOtpInput) (*usecase.VerifyOtpOutput, error)
}

// RegisterHTTPEndpoint mounts the passcode endpoints. Both sit behind the
// credential gate; callers must present a valid API key.
func RegisterHTTPEndpoint(r *router.Router, uc uc, gate router.KeyAuthorizer) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/request-otp", end.RequestOtp, router.MiddlewareAPIKey(gate))
	r.POST("/api/v1/verify-otp", end.VerifyOtp, router.MiddlewareAPIKey(gate))
}
