package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/quickburst/internal/common/clock"
	"github.com/KirkDiggler/quickburst/internal/common/config"
	"github.com/KirkDiggler/quickburst/internal/common/logger"
	"github.com/KirkDiggler/quickburst/internal/common/metrics"
	"github.com/KirkDiggler/quickburst/internal/common/uuid"
	"github.com/KirkDiggler/quickburst/internal/handlers/console"
	"github.com/KirkDiggler/quickburst/internal/repositories/reminder"
	"github.com/KirkDiggler/quickburst/internal/services/messaging"
	reminderService "github.com/KirkDiggler/quickburst/internal/services/reminder"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(&logger.Config{
		ServiceName: "prioritv",
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

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.WithError(err).WithField("addr", cfg.RedisAddr).Fatal("Failed to connect to Redis")
	}

	reminderRepo, err := reminder.NewRedis(&reminder.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create reminder repository")
	}

	sysClock := clock.New()

	reminderSvc, err := reminderService.New(&reminderService.Config{
		ReminderRepo:  reminderRepo,
		Clock:         sysClock,
		UUIDGenerator: uuid.New(),
		Logger:        log,
		Metrics:       m,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create reminder service")
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		log.WithError(err).Fatal("Failed to create messaging service")
	}

	remindCmd, err := console.NewRemindCommand(&console.RemindCommandConfig{
		ReminderService:  reminderSvc,
		MessagingService: messagingSvc,
		Clock:            sysClock,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create remind command")
	}

	c, err := console.New(&console.Config{
		In:     os.Stdin,
		Out:    os.Stdout,
		Logger: log,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create console")
	}
	if err := c.RegisterCommand(remindCmd); err != nil {
		log.WithError(err).Fatal("Failed to register remind command")
	}

	console.RespondWithMessage(os.Stdout, "Prioritv reminders. Type help to see the commands.")
	if err := c.Execute(ctx, "remind list today"); err != nil {
		log.WithError(err).Fatal("Failed to list reminders")
	}

	if err := c.Run(ctx); err != nil && ctx.Err() == nil {
		log.WithError(err).Error("console stopped")
	}

	log.Info("Prioritv has been shut down")
}
