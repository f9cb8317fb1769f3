package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/aliskhannn/rental-notifier/internal/model"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/event/mock.go -package=mocks

type bookingHandler interface {
	HandleBookingUpdate(ctx context.Context, before, after model.Booking)
}

type reviewHandler interface {
	HandleReviewCreated(ctx context.Context, r model.Review) error
}

type tokenHandler interface {
	HandleUserUpdate(ctx context.Context, before, after model.User) error
}

type messageHandler interface {
	HandleMessageCreated(ctx context.Context, conversationID string, msg model.Message)
}

type deduplicator interface {
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

var errEmptySnapshot = errors.New("empty snapshot")

var tracer = otel.Tracer("github.com/aliskhannn/rental-notifier/events")

// Handler routes change events to the matching domain handler.
type Handler struct {
	bookings bookingHandler
	reviews  reviewHandler
	tokens   tokenHandler
	messages messageHandler
	dedup    deduplicator
	dedupTTL time.Duration
}

// NewHandler creates an event router. dedup may be nil to disable deduplication.
func NewHandler(
	bookings bookingHandler,
	reviews reviewHandler,
	tokens tokenHandler,
	messages messageHandler,
	dedup deduplicator,
	dedupTTL time.Duration,
) *Handler {
	return &Handler{
		bookings: bookings,
		reviews:  reviews,
		tokens:   tokens,
		messages: messages,
		dedup:    dedup,
		dedupTTL: dedupTTL,
	}
}

// HandleEvent processes one change event to completion.
//
// Errors and panics are logged and never propagated, so a failing event is not redelivered.
func (h *Handler) HandleEvent(ctx context.Context, ev model.ChangeEvent) {
	ctx, span := tracer.Start(ctx, "event "+ev.Topic())
	span.SetAttributes(
		attribute.String("event.id", ev.ID.String()),
		attribute.String("event.document_id", ev.DocumentID),
	)
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			span.SetStatus(codes.Error, "panic")
			zlog.Logger.Error().Interface("panic", r).Str("topic", ev.Topic()).Str("event_id", ev.ID.String()).
				Msg("event handler panicked")
		}
	}()

	if !h.claim(ctx, ev) {
		zlog.Logger.Info().Str("event_id", ev.ID.String()).Msg("event already handled, skipping")
		return
	}

	if err := h.route(ctx, ev); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		zlog.Logger.Error().Err(err).Str("topic", ev.Topic()).Str("document_id", ev.DocumentID).
			Msg("failed to handle event")
	}
}

func (h *Handler) claim(ctx context.Context, ev model.ChangeEvent) bool {
	if h.dedup == nil || ev.ID == uuid.Nil {
		return true
	}

	ok, err := h.dedup.Claim(ctx, "event:"+ev.ID.String(), h.dedupTTL)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("event_id", ev.ID.String()).Msg("dedup unavailable, handling event anyway")
		return true
	}

	return ok
}

func (h *Handler) route(ctx context.Context, ev model.ChangeEvent) error {
	switch ev.Topic() {
	case model.CollectionBookings + "." + model.KindUpdated:
		var before, after model.Booking
		if err := decodeChange(ev, &before, &after); err != nil {
			return err
		}
		after.ID = ev.DocumentID
		h.bookings.HandleBookingUpdate(ctx, before, after)
		return nil

	case model.CollectionReviews + "." + model.KindCreated:
		var r model.Review
		if err := decode(ev.After, &r); err != nil {
			return err
		}
		r.ID = ev.DocumentID
		return h.reviews.HandleReviewCreated(ctx, r)

	case model.CollectionUsers + "." + model.KindUpdated:
		var before, after model.User
		if err := decodeChange(ev, &before, &after); err != nil {
			return err
		}
		after.ID = ev.DocumentID
		return h.tokens.HandleUserUpdate(ctx, before, after)

	case model.CollectionMessages + "." + model.KindCreated:
		var m model.Message
		if err := decode(ev.After, &m); err != nil {
			return err
		}
		m.ID = ev.DocumentID
		h.messages.HandleMessageCreated(ctx, ev.ParentID, m)
		return nil

	default:
		zlog.Logger.Debug().Str("topic", ev.Topic()).Msg("no handler for topic")
		return nil
	}
}

func decodeChange(ev model.ChangeEvent, before, after any) error {
	if err := decode(ev.Before, before); err != nil {
		return fmt.Errorf("before: %w", err)
	}

	if err := decode(ev.After, after); err != nil {
		return fmt.Errorf("after: %w", err)
	}

	return nil
}

func decode(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return errEmptySnapshot
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}

	return nil
}
