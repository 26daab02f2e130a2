package main

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"

	"babygpt/config"
	_ "babygpt/docs" // Swagger docs
	"babygpt/internal/agent"
	"babygpt/internal/agent/gateway"
	"babygpt/internal/agent/tools"
	"babygpt/internal/checklist"
	convHTTP "babygpt/internal/conversation/delivery/http"
	convWS "babygpt/internal/conversation/delivery/ws"
	"babygpt/internal/conversation/usecase"
	"babygpt/internal/httpserver"
	"babygpt/internal/middleware"
	planfs "babygpt/internal/plan/repository/fs"
	"babygpt/pkg/gcalendar"
	"babygpt/pkg/llmprovider"
	"babygpt/pkg/log"
)

// @title       BabyGPT API
// @description Pregnancy support assistant with per-user conversations, an agentic pregnancy plan, and Google Calendar appointments.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration (.env is optional, config.yaml + env vars are the source of truth)
	_ = godotenv.Load()

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

	ctx := context.Background()

	logger.Info(ctx, "Starting BabyGPT...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Plans directory: %s", cfg.Plans.Dir)

	// 3. Plan store
	planRepo, err := planfs.New(logger, cfg.Plans.Dir)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize plan store: %v", err)
		return
	}

	// 4. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (model=%s)", p.Name(), p.Model())
	}

	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)

	// 5. Google Calendar client (optional; appointments degrade to plan-only)
	var calendarClient tools.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		gcalClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendarClient = gcalClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Agent tools + gateway
	checklistSvc := checklist.New()

	registry := agent.NewToolRegistry()
	registry.Register(tools.NewReadPlanTool(planRepo, logger))
	registry.Register(tools.NewWritePlanTool(planRepo, logger))
	registry.Register(tools.NewUpdatePlanSectionTool(planRepo, logger))
	registry.Register(tools.NewGetPlanMetadataTool(planRepo, logger))
	registry.Register(tools.NewUpdateChecklistItemTool(planRepo, checklistSvc, logger))
	registry.Register(tools.NewGetChecklistProgressTool(planRepo, checklistSvc, logger))
	registry.Register(tools.NewScheduleAppointmentTool(calendarClient, cfg.GoogleCalendar.CalendarID, planRepo, logger))
	registry.Register(tools.NewListAppointmentsTool(calendarClient, cfg.GoogleCalendar.CalendarID, logger))

	agentGateway := gateway.New(llmManager, registry, logger)

	// 7. Conversation UseCase
	conversationUC := usecase.New(
		logger,
		agentGateway,
		planRepo,
		cfg.Conversation.MaxSessions,
		parseDuration(cfg.Conversation.SessionTTL, usecase.DefaultSessionTTL),
	)

	// 8. Delivery
	conversationHandler := convHTTP.New(logger, conversationUC)
	wsHandler := convWS.New(logger, conversationUC)

	mw := middleware.New(logger, cfg.RateLimit)

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:              logger,
		Port:                cfg.HTTPServer.Port,
		Mode:                cfg.HTTPServer.Mode,
		Environment:         cfg.Environment.Name,
		Middleware:          mw,
		ConversationHandler: conversationHandler,
		WSHandler:           wsHandler,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
