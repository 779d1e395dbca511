package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/phrogbot/phrogbot/internal/config"
	"github.com/phrogbot/phrogbot/internal/delivery/telegram"
	"github.com/phrogbot/phrogbot/internal/factapi"
	"github.com/phrogbot/phrogbot/internal/infra/postgres"
	"github.com/phrogbot/phrogbot/internal/logger"
	"github.com/phrogbot/phrogbot/internal/repository"
	"github.com/phrogbot/phrogbot/internal/service"
	"github.com/phrogbot/phrogbot/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zl.Fatal("failed to create bot API", zap.Error(err))
	}
	bot.Debug = cfg.Env != "production"
	zl.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{Command: "frog", Description: "Get a random frog"},
		{Command: "fact", Description: "Get a frog fact"},
		{Command: "frogquiz", Description: "Guess the frog species"},
		{Command: "leaderboard", Description: "Best quiz scores in this chat"},
		{Command: "help", Description: "Help"},
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zl.Warn("failed to set bot commands", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog, err := repository.NewCatalogRepository(cfg.CorpusDir, cfg.MetadataPath)
	if err != nil {
		zl.Fatal("failed to load species catalog", zap.Error(err))
	}
	zl.Info("species catalog loaded", zap.Int("species", catalog.Len()))

	dsn, err := cfg.DB.DSN()
	if err != nil {
		zl.Fatal("database is not configured", zap.Error(err))
	}
	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	resultRepo := repository.NewResultRepository(pool)

	var factClient service.FactClient
	if cfg.FactAPIBaseURL != "" {
		factClient = factapi.NewClient(cfg.FactAPIBaseURL)
	}

	sessions := storage.NewSessionStore()
	history := storage.NewRecentHistory(cfg.Frog.HistorySize)
	cooldowns := storage.NewCooldownTracker()

	presenter := telegram.NewPresenter(bot, zl, cfg.Quiz.Rounds, cfg.Quiz.QuestionTimeout)

	quizService := service.NewQuizService(
		catalog,
		sessions,
		service.NewQuestionGenerator(),
		presenter,
		resultRepo,
		zl,
		cfg.Quiz.Rounds,
		cfg.Quiz.QuestionTimeout,
	)
	frogService := service.NewFrogService(catalog, history, cooldowns, cfg.Frog.Cooldown)
	factService := service.NewFactService(catalog, factClient, zl)

	handler := telegram.NewHandler(bot, zl, quizService, frogService, factService, resultRepo)
	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		zl.Fatal("handler stopped", zap.Error(err))
	}

	zl.Info("shutdown signal received")
}
