package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"plant-care-assistant/config"
	botTelegram "plant-care-assistant/internal/bot/telegram"
	chatHTTP "plant-care-assistant/internal/chat/delivery/http"
	chatUsecase "plant-care-assistant/internal/chat/usecase"
	diagnosisHTTP "plant-care-assistant/internal/diagnosis/delivery/http"
	diagnosisKV "plant-care-assistant/internal/diagnosis/repository/kv"
	diagnosisUsecase "plant-care-assistant/internal/diagnosis/usecase"
	"plant-care-assistant/internal/httpserver"
	libraryHTTP "plant-care-assistant/internal/library/delivery/http"
	"plant-care-assistant/internal/middleware"
	reminderHTTP "plant-care-assistant/internal/reminder/delivery/http"
	reminderKV "plant-care-assistant/internal/reminder/repository/kv"
	reminderUsecase "plant-care-assistant/internal/reminder/usecase"
	"plant-care-assistant/pkg/anthropic"
	"plant-care-assistant/pkg/gcalendar"
	"plant-care-assistant/pkg/kvstore"
	"plant-care-assistant/pkg/log"
	"plant-care-assistant/pkg/telegram"
)

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

	logger.Info(ctx, "Starting Plant Care Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Key-value store: Redis when configured, in-memory otherwise.
	var store kvstore.Store
	if cfg.Redis.Addr != "" {
		redisStore := kvstore.NewRedis(kvstore.RedisConfig{
			Addr:      cfg.Redis.Addr,
			Password:  cfg.Redis.Password,
			KeyPrefix: cfg.Redis.KeyPrefix,
		})
		if err := redisStore.Ping(ctx); err != nil {
			logger.Warnf(ctx, "Redis not reachable, falling back to in-memory store: %v", err)
			store = kvstore.NewMemory()
		} else {
			defer redisStore.Close()
			store = redisStore
			logger.Infof(ctx, "Redis store initialized at %s", cfg.Redis.Addr)
		}
	} else {
		logger.Warn(ctx, "No Redis configured, history and reminders will not survive restarts")
		store = kvstore.NewMemory()
	}

	// 4. Anthropic client
	llm := anthropic.NewClient(cfg.Anthropic.APIKey)
	if cfg.Anthropic.Model != "" {
		llm.SetModel(cfg.Anthropic.Model)
	}
	logger.Infof(ctx, "Anthropic client initialized, model=%s", llm.Model())

	// 5. Google Calendar client (optional)
	var calendarClient reminderUsecase.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		gcal, gcalErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if gcalErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcalErr)
		} else {
			calendarClient = gcal
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Use cases
	diagnosisUC := diagnosisUsecase.New(
		logger,
		llm,
		diagnosisKV.New(logger, store),
		cfg.Anthropic.MaxTokens,
		cfg.Anthropic.Timeout,
	)
	if err := diagnosisUC.LoadHistory(ctx); err != nil {
		logger.Warnf(ctx, "Failed to load diagnosis history: %v", err)
	}

	// Chat answers are short; the usecase default token budget applies.
	chatUC := chatUsecase.New(logger, llm, 0, cfg.Anthropic.Timeout)

	reminderUC := reminderUsecase.New(
		logger,
		reminderKV.New(logger, store),
		calendarClient,
		reminderUsecase.CalendarConfig{
			CalendarID: cfg.GoogleCalendar.CalendarID,
			Timezone:   cfg.GoogleCalendar.Timezone,
		},
	)
	if err := reminderUC.Load(ctx); err != nil {
		logger.Warnf(ctx, "Failed to load reminders: %v", err)
	}

	// 7. Telegram bot (optional)
	var telegramHandler botTelegram.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = botTelegram.New(logger, bot, diagnosisUC, chatUC, reminderUC)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := bot.SetWebhook(cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Info(ctx, "Telegram bot not configured, skipping")
	}

	// 8. HTTP server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       middleware.New(logger, cfg.HTTPServer.RateLimitPerMin),
		DiagnosisHandler: diagnosisHTTP.New(logger, diagnosisUC),
		ChatHandler:      chatHTTP.New(logger, chatUC),
		ReminderHandler:  reminderHTTP.New(logger, reminderUC),
		LibraryHandler:   libraryHTTP.New(logger),
		TelegramHandler:  telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
