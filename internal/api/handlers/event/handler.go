package event

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/rental-notifier/internal/api/dto"
	"github.com/aliskhannn/rental-notifier/internal/api/respond"
	"github.com/aliskhannn/rental-notifier/internal/model"
)

// eventPublisher puts change events on the bus.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/event/mock.go -package=mocks
type eventPublisher interface {
	Publish(ev model.ChangeEvent, strategy retry.Strategy) error
}

// Handler accepts document change events over HTTP.
type Handler struct {
	publisher eventPublisher
	validator *validator.Validate
	strategy  retry.Strategy
}

func NewHandler(p eventPublisher, v *validator.Validate, strategy retry.Strategy) *Handler {
	return &Handler{publisher: p, validator: v, strategy: strategy}
}

// Publish validates a change event and publishes it to the exchange.
func (h *Handler) Publish(c *ginext.Context) {
	var req dto.EventRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	if req.Kind == model.KindUpdated && len(req.Before) == 0 {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: update events need a before snapshot"))
		return
	}

	ev := model.ChangeEvent{
		ID:         uuid.New(),
		Collection: req.Collection,
		Kind:       req.Kind,
		DocumentID: req.DocumentID,
		ParentID:   req.ParentID,
		Before:     req.Before,
		After:      req.After,
		OccurredAt: time.Now().UTC(),
	}

	if err := h.publisher.Publish(ev, h.strategy); err != nil {
		zlog.Logger.Error().Err(err).Str("topic", ev.Topic()).Msg("failed to publish event")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Accepted(c.Writer, ev.ID)
}
