package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	eventapi "github.com/aliskhannn/rental-notifier/internal/api/handlers/event"
	"github.com/aliskhannn/rental-notifier/internal/api/handlers/inbox"
	"github.com/aliskhannn/rental-notifier/internal/api/handlers/sweep"
	"github.com/aliskhannn/rental-notifier/internal/api/router"
	"github.com/aliskhannn/rental-notifier/internal/api/server"
	"github.com/aliskhannn/rental-notifier/internal/config"
	"github.com/aliskhannn/rental-notifier/internal/idempotency"
	eventmsg "github.com/aliskhannn/rental-notifier/internal/rabbitmq/handlers/event"
	"github.com/aliskhannn/rental-notifier/internal/rabbitmq/queue"
	bookingrepo "github.com/aliskhannn/rental-notifier/internal/repository/booking"
	"github.com/aliskhannn/rental-notifier/internal/repository/conversation"
	notifrepo "github.com/aliskhannn/rental-notifier/internal/repository/notification"
	userrepo "github.com/aliskhannn/rental-notifier/internal/repository/user"
	"github.com/aliskhannn/rental-notifier/internal/service/activation"
	bookingsvc "github.com/aliskhannn/rental-notifier/internal/service/booking"
	"github.com/aliskhannn/rental-notifier/internal/service/dispatch"
	"github.com/aliskhannn/rental-notifier/internal/service/message"
	"github.com/aliskhannn/rental-notifier/internal/service/review"
	"github.com/aliskhannn/rental-notifier/internal/service/token"
	"github.com/aliskhannn/rental-notifier/internal/worker"
	"github.com/aliskhannn/rental-notifier/pkg/fcm"
	"github.com/aliskhannn/rental-notifier/pkg/obs"
)

const version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	loc, err := cfg.Sweeper.Location()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to load sweeper timezone")
	}

	if cfg.Tracing.Enabled {
		shutdownTracer, err := obs.InitTracer(ctx, cfg.Tracing.Endpoint, cfg.Tracing.ServiceName, version)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to init tracing")
		}

		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := shutdownTracer(shutdownCtx); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to flush traces")
			}
		}()
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewEventQueue(ch, cfg.RabbitMQ)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create event queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	users := userrepo.NewRepository(db)
	bookings := bookingrepo.NewRepository(db)
	conversations := conversation.NewRepository(db)
	notifications := notifrepo.NewRepository(db)

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	eventGuard := idempotency.NewGuard(rdb, "rental-notifier:")
	sweepLock := idempotency.NewGuard(rdb, "rental-notifier:lock:")

	tokens, err := fcm.TokenSource(ctx, cfg.Push.CredentialsFile)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to load firebase credentials")
	}

	push := fcm.NewClient(cfg.Push.Endpoint, cfg.Push.ProjectID, tokens, cfg.Push.Timeout)

	dispatcher := dispatch.NewService(users, notifications, push, cfg.Push.ClickAction, cfg.Retry)
	activator := activation.NewService(bookings, dispatcher, loc)

	eventRouter := eventmsg.NewHandler(
		bookingsvc.NewService(dispatcher),
		review.NewService(users, bookings, dispatcher),
		token.NewService(push, users),
		message.NewService(conversations, dispatcher),
		eventGuard,
		cfg.Dedup.TTL,
	)

	events := worker.NewEventWorker(q, eventRouter)
	go events.Run(ctx, cfg.Retry, cfg.Workers.Count)

	sweeper := worker.NewSweeper(activator, sweepLock, cfg.Sweeper.Interval)
	go sweeper.Run(ctx)

	r := router.New(
		eventapi.NewHandler(q, val, cfg.Retry),
		inbox.NewHandler(notifications),
		sweep.NewHandler(activator),
	)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	zlog.Logger.Info().Str("port", cfg.Server.HTTPPort).Msg("rental notifier started")

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := rdb.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close redis client")
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
