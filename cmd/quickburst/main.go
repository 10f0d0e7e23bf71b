package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/quickburst/internal/common/clock"
	"github.com/KirkDiggler/quickburst/internal/common/config"
	"github.com/KirkDiggler/quickburst/internal/common/logger"
	"github.com/KirkDiggler/quickburst/internal/common/metrics"
	"github.com/KirkDiggler/quickburst/internal/common/uuid"
	"github.com/KirkDiggler/quickburst/internal/fixtures"
	"github.com/KirkDiggler/quickburst/internal/handlers/console"
	"github.com/KirkDiggler/quickburst/internal/models"
	"github.com/KirkDiggler/quickburst/internal/repositories/session"
	gameService "github.com/KirkDiggler/quickburst/internal/services/game"
	"github.com/KirkDiggler/quickburst/internal/services/messaging"
	"github.com/KirkDiggler/quickburst/internal/shuffle"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(&logger.Config{
		ServiceName: "quickburst",
		Level:       cfg.LogLevel,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := metrics.NewRegistry()
	m := metrics.New(reg)
	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr, reg, log); err != nil {
				log.WithError(err).Error("metrics server stopped")
			}
		}()
	}

	uuidGenerator := uuid.New()

	// Load questions
	loader := fixtures.NewLoader(uuidGenerator)
	var questions []*models.Question
	if cfg.QuestionsFile != "" {
		questions, err = loader.LoadFile(cfg.QuestionsFile)
	} else {
		questions, err = loader.Default()
	}
	if err != nil {
		log.WithError(err).Fatal("Failed to load questions")
	}
	log.WithField("questions", len(questions)).Info("questions loaded")

	// Initialize services
	gameSvc, err := gameService.New(&gameService.Config{
		Questions:     questions,
		MinPlayers:    cfg.MinPlayers,
		SessionRepo:   session.NewMemory(),
		Shuffler:      shuffle.New(&shuffle.Config{Seed: cfg.ShuffleSeed}),
		Clock:         clock.New(),
		UUIDGenerator: uuidGenerator,
		Logger:        log,
		Metrics:       m,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create game service")
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		log.WithError(err).Fatal("Failed to create messaging service")
	}

	created, err := gameSvc.CreateSession(ctx, &gameService.CreateSessionInput{})
	if err != nil {
		log.WithError(err).Fatal("Failed to create session")
	}

	// Trace every state change at debug level
	updates, err := gameSvc.Subscribe(ctx, &gameService.SubscribeInput{
		SessionID: created.SessionID,
		Buffer:    16,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to subscribe to session")
	}
	go func() {
		for state := range updates.Updates {
			log.WithFields(logrus.Fields{
				"session_id": state.SessionID,
				"phase":      state.Phase,
				"players":    len(state.Players),
				"question":   state.CurrentQuestionIndex,
				"revealed":   state.ShowCorrectAnswer,
			}).Debug("session changed")
		}
	}()

	triviaCmd, err := console.NewTriviaCommand(&console.TriviaCommandConfig{
		SessionID:        created.SessionID,
		GameService:      gameSvc,
		MessagingService: messagingSvc,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create trivia command")
	}

	c, err := console.New(&console.Config{
		In:     os.Stdin,
		Out:    os.Stdout,
		Logger: log,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create console")
	}
	if err := c.RegisterCommand(triviaCmd); err != nil {
		log.WithError(err).Fatal("Failed to register trivia command")
	}

	console.RespondWithMessage(os.Stdout, "QuickBurst trivia. Type help to see the commands.")
	if err := c.Execute(ctx, "trivia show"); err != nil {
		log.WithError(err).Fatal("Failed to render lobby")
	}

	if err := c.Run(ctx); err != nil && ctx.Err() == nil {
		log.WithError(err).Error("console stopped")
	}

	if _, err := gameSvc.EndSession(context.Background(), &gameService.EndSessionInput{
		SessionID: created.SessionID,
	}); err != nil {
		log.WithError(err).Warn("Failed to end session")
	}

	log.Info("QuickBurst has been shut down")
}
