package inbound

import (
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/passcode/usecase"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the passcode lifecycle.
type HTTPEndpoint struct {
	uc uc
}

// RequestOtp generates and emails a fresh passcode for the given end-user,
// replacing any outstanding one.
func (h *HTTPEndpoint) RequestOtp(r *router.Request) (any, error) {
	var req RequestOtpRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.RequestOtp(r.Context(), usecase.RequestOtpInput{Email: req.Email})
	if err != nil {
		return nil, err
	}

	return RequestOtpResponse{email: resp.Email}, nil
}

// VerifyOtp validates a submitted passcode for the given end-user.
func (h *HTTPEndpoint) VerifyOtp(r *router.Request) (any, error) {
	var req VerifyOtpRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	_, err := h.uc.VerifyOtp(r.Context(), usecase.VerifyOtpInput{
		Email: req.Email,
		Otp:   req.Otp,
	})
	if err != nil {
		return nil, err
	}

	return VerifyOtpResponse{Success: true}, nil
}
