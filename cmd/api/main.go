package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"calendar-assistant/config"
	_ "calendar-assistant/docs" // Swagger docs
	"calendar-assistant/internal/assistant/usecase"
	"calendar-assistant/internal/extractor"
	"calendar-assistant/internal/httpserver"
	"calendar-assistant/internal/middleware"
	"calendar-assistant/internal/router"
	"calendar-assistant/pkg/datemath"
	"calendar-assistant/pkg/gcalendar"
	"calendar-assistant/pkg/log"
	"calendar-assistant/pkg/metrics"
)

// @title       Calendar Assistant API
// @description Chat-driven scheduling on top of Google Calendar: schedule lookup, availability and booking.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey ApiKeyAuth
// @in          header
// @name        x-api-key
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Calendar Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s, business hours %d-%d", cfg.Assistant.Timezone, cfg.Assistant.BusinessOpenHour, cfg.Assistant.BusinessCloseHour)
	if cfg.Security.APIKey == "" {
		logger.Warn(ctx, "API_KEY is not set: every assistant request will be refused")
	}

	// 3. Google Calendar session (lazy: credentials are read on first use)
	session := gcalendar.NewSession(cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
	if _, err := session.Client(ctx); err != nil {
		logger.Warnf(ctx, "Google Calendar not available yet: %v", err)
		logger.Warn(ctx, "→ Run `calctl auth` to generate the token file")
	} else {
		logger.Info(ctx, "Google Calendar initialized")
	}

	// 4. Extractor & router
	ext, err := extractor.New(extractor.Config{
		Timezone: cfg.Assistant.Timezone,
		BusinessHours: datemath.Hours{
			Open:  cfg.Assistant.BusinessOpenHour,
			Close: cfg.Assistant.BusinessCloseHour,
		},
		DefaultDuration: cfg.Assistant.DefaultDuration,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize extractor: ", err)
		return
	}
	rt := router.New(logger)

	// 5. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	observer, err := metrics.NewPrometheusObserver("", registry)
	if err != nil {
		logger.Error(ctx, "Failed to register metrics: ", err)
		return
	}

	// 6. Assistant UseCase
	assistantUC := usecase.New(logger, ext, rt, session, observer, usecase.Config{
		CalendarID:     cfg.GoogleCalendar.CalendarID,
		SlotDuration:   cfg.Assistant.SlotDuration,
		AutoConfirm:    cfg.Booking.AutoConfirm,
		RejectPast:     cfg.Booking.RejectPast,
		FetchPadding:   cfg.Booking.FetchPadding,
		ConflictBuffer: cfg.Booking.ConflictBuffer,
	})

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, cfg.Security, cfg.HTTPServer.RateLimitPerMin),
		Metrics:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		AssistantUC: assistantUC,
		Location:    ext.Location(),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
