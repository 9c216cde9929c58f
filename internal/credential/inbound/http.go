package inbound

import (
	"context"

	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/credential/usecase"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/router"
)

type uc interface {
	IssueKey(ctx context.Context, in usecase.IssueKeyInput) (*usecase.IssueKeyOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/generate-key", end.IssueKey)
}
