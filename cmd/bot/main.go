package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/mcq-exam-bot/internal/config"
	"github.com/aliskhannn/mcq-exam-bot/internal/delivery/rest"
	"github.com/aliskhannn/mcq-exam-bot/internal/delivery/telegram"
	"github.com/aliskhannn/mcq-exam-bot/internal/logger"
	"github.com/aliskhannn/mcq-exam-bot/internal/repository"
	"github.com/aliskhannn/mcq-exam-bot/internal/service"
	"github.com/aliskhannn/mcq-exam-bot/internal/storage"
)

var errNothingToRun = errors.New("both telegram and http are disabled")

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, lg); err != nil {
		lg.Fatal("application stopped with error", zap.Error(err))
	}

	lg.Info("shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, lg *zap.Logger) error {
	if !cfg.Telegram.Enabled && cfg.HTTP.Addr == "" {
		return errNothingToRun
	}

	store, closeStore, err := openStore(ctx, cfg, lg)
	if err != nil {
		return err
	}
	defer closeStore()

	// Initialize repository and services.
	repo := repository.NewQuestionRepository(store, lg.Named("repository"))
	repo.Load(ctx)

	questionService := service.NewQuestionService(repo, lg.Named("questions"))

	g, ctx := errgroup.WithContext(ctx)

	if cfg.Telegram.Enabled {
		bot, err := tgbotapi.NewBotAPI(cfg.Telegram.APIToken)
		if err != nil {
			return fmt.Errorf("failed to create telegram bot: %w", err)
		}
		bot.Debug = cfg.Telegram.Debug

		if _, err := bot.Request(tgbotapi.NewSetMyCommands(telegram.Commands()...)); err != nil {
			lg.Warn("failed to set bot commands", zap.Error(err))
		}
		lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

		handler := telegram.NewHandler(
			bot,
			lg.Named("telegram"),
			questionService,
			service.NewQuizService[int64](repo, storage.NewSessionStorage[int64](), lg.Named("quiz")),
			storage.NewChatStorage(),
		)
		g.Go(func() error {
			if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	if cfg.HTTP.Addr != "" {
		srv := rest.NewServer(
			cfg.HTTP.Addr,
			cfg.HTTP.ShutdownTimeout,
			lg.Named("http"),
			questionService,
			service.NewQuizService[string](repo, storage.NewSessionStorage[string](), lg.Named("quiz")),
		)
		g.Go(func() error {
			return srv.Run(ctx)
		})
	}

	err = g.Wait()
	lg.Info("shutdown signal received")
	return err
}
