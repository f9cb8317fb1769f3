package worker

import (
	"context"
	"strconv"
	"time"

	"github.com/wb-go/wbf/zlog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=sweeper.go -destination=../mocks/worker/sweeper_mock.go -package=mocks

type sweepService interface {
	Sweep(ctx context.Context) (int, error)
}

type locker interface {
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

var tracer = otel.Tracer("github.com/aliskhannn/rental-notifier/sweeper")

// Sweeper runs the activation sweep on a fixed interval.
//
// With several replicas only the one that claims the tick's lock sweeps.
type Sweeper struct {
	service  sweepService
	lock     locker
	interval time.Duration
}

func NewSweeper(s sweepService, l locker, interval time.Duration) *Sweeper {
	return &Sweeper{
		service:  s,
		lock:     l,
		interval: interval,
	}
}

// Run ticks until ctx is done.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	zlog.Logger.Info().Dur("interval", s.interval).Msg("sweeper started")

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Print("sweeper stopped")
			return
		case at := <-ticker.C:
			s.Tick(ctx, at)
		}
	}
}

// Tick runs one sweep for the slot containing at, unless another replica already did.
func (s *Sweeper) Tick(ctx context.Context, at time.Time) {
	slot := at.Truncate(s.interval).Unix()

	if s.lock != nil {
		ok, err := s.lock.Claim(ctx, "sweep:"+strconv.FormatInt(slot, 10), s.interval)
		if err != nil {
			zlog.Logger.Warn().Err(err).Msg("sweep lock unavailable, sweeping anyway")
		} else if !ok {
			zlog.Logger.Debug().Int64("slot", slot).Msg("sweep already claimed by another replica")
			return
		}
	}

	ctx, span := tracer.Start(ctx, "activation sweep")
	defer span.End()

	n, err := s.service.Sweep(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		zlog.Logger.Error().Err(err).Msg("activation sweep failed")
		return
	}

	span.SetAttributes(attribute.Int("bookings.activated", n))
}
