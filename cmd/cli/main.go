package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"babygpt/config"
	"babygpt/internal/agent"
	"babygpt/internal/agent/gateway"
	"babygpt/internal/agent/tools"
	"babygpt/internal/checklist"
	"babygpt/internal/conversation"
	"babygpt/internal/conversation/usecase"
	"babygpt/internal/model"
	planfs "babygpt/internal/plan/repository/fs"
	"babygpt/pkg/gcalendar"
	"babygpt/pkg/llmprovider"
	"babygpt/pkg/log"
)

// Interactive terminal client. Shares the full agent stack with the API
// server but reads turns from stdin instead of HTTP.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        "warn", // keep the terminal clean for the chat itself
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	planRepo, err := planfs.New(logger, cfg.Plans.Dir)
	if err != nil {
		fmt.Println("Failed to initialize plan store: ", err)
		return
	}

	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		fmt.Println("Failed to initialize LLM providers: ", err)
		return
	}

	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)

	var calendarClient tools.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		if gcalClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath); calErr == nil {
			calendarClient = gcalClient
		}
	}

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

	uc := usecase.New(
		logger,
		gateway.New(llmManager, registry, logger),
		planRepo,
		cfg.Conversation.MaxSessions,
		parseDuration(cfg.Conversation.SessionTTL, usecase.DefaultSessionTTL),
	)

	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Welcome to BabyGPT CLI mode!")
	fmt.Print("Please enter your username: ")
	if !scanner.Scan() {
		return
	}
	username := strings.TrimSpace(scanner.Text())
	sc := model.Scope{Username: username}

	fmt.Println("\nInitializing conversation...")
	ch, err := uc.Start(ctx, sc)
	if err != nil {
		fmt.Println("Failed to start conversation: ", err)
		return
	}
	printReply(ch)
	fmt.Println()

	fmt.Println("\nType 'exit' to quit")
	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(input, "exit") {
			break
		}
		if input == "" {
			continue
		}

		fmt.Print("\nAssistant: ")
		ch, err := uc.Process(ctx, sc, conversation.ProcessInput{Content: input})
		if err != nil {
			fmt.Println("Error: ", err)
			continue
		}
		printReply(ch)
		fmt.Println()
	}
}

func printReply(ch <-chan conversation.Chunk) {
	for chunk := range ch {
		fmt.Print(chunk.Content)
	}
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
