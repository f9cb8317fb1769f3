package inbox

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/rental-notifier/internal/api/respond"
	"github.com/aliskhannn/rental-notifier/internal/model"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/inbox/mock.go -package=mocks
type inboxRepository interface {
	ListByUser(ctx context.Context, userID string, limit int) ([]model.Notification, error)
}

type Handler struct {
	inbox inboxRepository
}

func NewHandler(r inboxRepository) *Handler {
	return &Handler{inbox: r}
}

// List returns a user's inbox, newest first.
func (h *Handler) List(c *ginext.Context) {
	userID := c.Param("id")
	if userID == "" {
		zlog.Logger.Warn().Msg("missing user id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing user id"))
		return
	}

	limit := defaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxLimit {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("limit must be between 1 and %d", maxLimit))
			return
		}
		limit = n
	}

	notifications, err := h.inbox.ListByUser(c.Request.Context(), userID, limit)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID).Msg("failed to list notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, notifications)
}
