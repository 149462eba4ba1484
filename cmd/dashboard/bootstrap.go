package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sohamroy2003/Frontend-Rocketrybox/config"
	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/api/dashboardapi"
	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/broker/kafka"
	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/cache/rediscache"
	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/integrations/tracking"
	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/integrations/tracking/mock"
	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/integrations/tracking/upstreamhttp"
	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/services/actions"
	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/services/ndr"
	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/session"
	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/storage/pgndr"
	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/upstream"
)

type dashboardApp struct {
	ctx      context.Context
	cancel   context.CancelFunc
	opts     dashboardOpts
	api      *dashboardapi.API
	ndrSvc   *ndr.Service
	consumer *kafka.Consumer
	closeDB  func()
}

func mustBootstrapDashboard() *dashboardApp {
	cfgPath := os.Getenv("configPath")
	if cfgPath == "" {
		panic("configPath env var is required")
	}
	swaggerPath := os.Getenv("swaggerPath")
	if swaggerPath == "" {
		panic("swaggerPath env var is required")
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		panic(fmt.Sprintf("config load failed: %v", err))
	}

	httpAddr := cfg.Dashboard.HTTPAddr
	if httpAddr == "" {
		httpAddr = ":8080"
	}
	consumerGroup := cfg.Kafka.DashboardConsumerGroup
	if consumerGroup == "" {
		consumerGroup = "seller-dashboard"
	}
	actionTopic := cfg.Kafka.NDRActionTopicName
	if actionTopic == "" {
		actionTopic = "ndr.action.submitted"
	}
	updatedTopic := cfg.Kafka.NDRUpdatedTopicName
	if updatedTopic == "" {
		updatedTopic = "ndr.updated"
	}

	cacheTTL := time.Duration(cfg.Dashboard.NDRCacheTTLSeconds) * time.Second
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}
	sessionTTL := time.Duration(cfg.Dashboard.SessionTTLSeconds) * time.Second
	upstreamTimeout := time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second

	sslMode := cfg.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	connString := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Database.Username, cfg.Database.Password, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName, sslMode)
	st := mustOpenPostgresWithRetry(connString, 60*time.Second)

	redisAddr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	rc := rediscache.New(redisAddr)
	tokens := session.NewRedisStore(redisAddr, sessionTTL)

	// The composition root is the only place that reacts to a rejected
	// credential; the HTTP layer just reports it.
	api := upstream.New(cfg.Upstream.BaseURL, tokens, upstreamTimeout).
		WithUnauthenticatedHook(func() {
			slog.Warn("seller credential rejected, session cleared")
		})

	ndrSvc := ndr.New(api, rc, cacheTTL)

	brokers := []string{fmt.Sprintf("%s:%d", cfg.Kafka.Host, cfg.Kafka.Port)}
	producer := kafka.NewProducer(brokers)
	consumer := kafka.NewConsumer(brokers, updatedTopic, consumerGroup)

	actionsSvc := actions.New(st, producer, actionTopic)

	var tracker tracking.Client
	switch cfg.Dashboard.TrackingMode {
	case "mock":
		m := mock.New(nil, nil)
		if cfg.Dashboard.MockLatencyMillis > 0 {
			m = m.WithLatency(time.Duration(cfg.Dashboard.MockLatencyMillis) * time.Millisecond)
		}
		tracker = m
	default:
		tracker = upstreamhttp.New(api)
	}

	dashAPI := dashboardapi.New(ndrSvc, actionsSvc, tracker, dashboardapi.Settings{
		MapProviderKey: cfg.Dashboard.MapProviderKey,
		TrackingMode:   cfg.Dashboard.TrackingMode,
	})
	if cfg.Dashboard.TrackingRateLimitPerMinute > 0 {
		dashAPI = dashAPI.WithRateLimiter(
			rediscache.NewRateLimiter(redisAddr),
			int64(cfg.Dashboard.TrackingRateLimitPerMinute),
		)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	return &dashboardApp{
		ctx:    ctx,
		cancel: cancel,
		opts: dashboardOpts{
			httpAddr:      httpAddr,
			swaggerPath:   swaggerPath,
			updatedTopic:  updatedTopic,
			consumerGroup: consumerGroup,
		},
		api:      dashAPI,
		ndrSvc:   ndrSvc,
		consumer: consumer,
		closeDB:  st.Close,
	}
}

func mustOpenPostgresWithRetry(connString string, wait time.Duration) *pgndr.Storage {
	deadline := time.Now().Add(wait)
	var lastErr error
	for time.Now().Before(deadline) {
		st, err := pgndr.New(connString)
		if err == nil {
			return st
		}
		lastErr = err
		time.Sleep(1 * time.Second)
	}
	panic(fmt.Sprintf("postgres is not ready after %s: %v", wait, lastErr))
}

func (a *dashboardApp) Close() {
	if a.cancel != nil {
		a.cancel()
	}
	if a.consumer != nil {
		_ = a.consumer.Close()
	}
	if a.closeDB != nil {
		a.closeDB()
	}
}

func (a *dashboardApp) Run() error {
	return runDashboard(a.ctx, a.opts, a.api, a.ndrSvc, a.consumer)
}
