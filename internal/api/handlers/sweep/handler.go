package sweep

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/rental-notifier/internal/api/respond"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/sweep/mock.go -package=mocks
type sweepService interface {
	Sweep(ctx context.Context) (int, error)
}

type Handler struct {
	service sweepService
}

func NewHandler(s sweepService) *Handler {
	return &Handler{service: s}
}

type result struct {
	Activated int `json:"activated"`
}

// Run performs one activation sweep immediately.
func (h *Handler) Run(c *ginext.Context) {
	n, err := h.service.Sweep(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("manual sweep failed")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, result{Activated: n})
}
