package inbound

import (
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/credential/usecase"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for credential issuance.
type HTTPEndpoint struct {
	uc uc
}

// IssueKey generates a new API key bound to the requested email, stores it,
// and mails it to the owner. The key is also returned in the response.
func (h *HTTPEndpoint) IssueKey(r *router.Request) (any, error) {
	var req IssueKeyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.IssueKey(r.Context(), usecase.IssueKeyInput{
		Email:       req.Email,
		Creator:     req.Creator,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		return nil, err
	}

	return IssueKeyResponse{
		APIKey:    resp.Key,
		email:     resp.Email,
		delivered: resp.Delivered,
	}, nil
}
