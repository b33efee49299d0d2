package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wishlist/internal/config"
	"wishlist/internal/database"
	"wishlist/internal/handler"
	"wishlist/internal/middleware"
	"wishlist/internal/repository/postgres"
	"wishlist/internal/router"
	"wishlist/internal/server"
	"wishlist/internal/service"
	"wishlist/internal/telegram"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Wishlist Bot", zap.Int("port", cfg.Port))

	// Connect to database with retries
	db, err := database.Connect(cfg.DSN(), cfg.Database.MaxConnections, database.DefaultRetryPolicy, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	logger.Info("Database connection established")

	if err := database.Migrate(db, "migrations", logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	wishRepo := postgres.NewWishRepo(db)
	chatRepo := postgres.NewChatRepo(db)
	broadcastRepo := postgres.NewBroadcastRepo(db)
	logRepo := postgres.NewCommandLogRepo(db)

	// Initialize Telegram bot. Updates arrive through our own HTTP server,
	// the poller registers the webhook and accepts them while the bot runs.
	webhook := telegram.NewWebhook(&tele.Webhook{
		SecretToken:    cfg.Webhook.SecretToken,
		DropUpdates:    true,
		AllowedUpdates: []string{"message", "callback_query", "my_chat_member"},
		Endpoint:       &tele.WebhookEndpoint{PublicURL: cfg.WebhookEndpoint()},
	}, logger)
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: webhook,
		OnError: func(err error, c tele.Context) {
			logger.Error("Bot error", zap.Error(err))
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized", zap.String("username", bot.Me.Username))

	messenger := telegram.NewMessenger(bot, logger)

	// Initialize services
	userService := service.NewUserService(userRepo, messenger, logger)
	gateService := service.NewGateService(userRepo, logRepo, messenger, logger)
	wishService := service.NewWishService(wishRepo, userRepo, messenger, logger)
	broadcastService := service.NewBroadcastService(userRepo, chatRepo, broadcastRepo, wishService, messenger, logger, cfg.BroadcastDelay)
	membershipService := service.NewMembershipService(userRepo, chatRepo, messenger, logger)

	if err := userService.PreRegisterAdmins(cfg.AdminHandles); err != nil {
		logger.Fatal("Failed to pre-register admins", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize handler
	r := router.New(logRepo, wishService, messenger, logger)
	h := handler.NewHandler(ctx, bot, r, userService, wishService, broadcastService, membershipService, messenger, logger)
	h.RegisterHandlers()

	bot.Use(
		middleware.RecoverMiddleware(messenger, logger),
		middleware.GateMiddleware(gateService, messenger, logger),
	)

	logger.Info("Handlers registered", zap.Strings("commands", r.Commands()))

	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Updates posted before the poller runs are refused with 503 and retried
	srv := server.New(fmt.Sprintf(":%d", cfg.Port), cfg.WebhookPath(), webhook, logger)
	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("HTTP server stopped", zap.Error(err))
			cancel()
		}
	}()

	// Wait for interrupt signal or a server failure
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigChan:
		logger.Info("Shutdown signal received, stopping bot...")
	case <-ctx.Done():
		logger.Warn("Stopping after server failure")
	}

	if err := shutdown(cancel, bot, srv, db.Close); err != nil {
		logger.Error("Shutdown finished with errors", zap.Error(err))
		return
	}

	logger.Info("Bot stopped gracefully")
}

// newLogger builds the production logger at the configured level
func newLogger(level string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if err := zcfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return zcfg.Build()
}

// shutdown stops every component and collects all failures. The HTTP server
// goes first so no update is accepted once the bot stops reading them.
func shutdown(cancel context.CancelFunc, bot *tele.Bot, srv *server.Server, closeDB func() error) error {
	var result *multierror.Error

	ctx, done := context.WithTimeout(context.Background(), shutdownTimeout)
	defer done()
	if err := srv.Shutdown(ctx); err != nil {
		result = multierror.Append(result, fmt.Errorf("http server: %w", err))
	}

	// Interrupts running broadcasts
	cancel()
	bot.Stop()

	if err := bot.RemoveWebhook(); err != nil {
		result = multierror.Append(result, fmt.Errorf("remove webhook: %w", err))
	}

	if err := closeDB(); err != nil {
		result = multierror.Append(result, fmt.Errorf("database: %w", err))
	}
	return result.ErrorOrNil()
}
