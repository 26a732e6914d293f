package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	directoryapp "github.com/muhammadheryan/fashion-directory/application/directory"
	sessionapp "github.com/muhammadheryan/fashion-directory/application/session"
	"github.com/muhammadheryan/fashion-directory/cmd/config"
	"github.com/muhammadheryan/fashion-directory/cmd/database"
	redisclient "github.com/muhammadheryan/fashion-directory/cmd/redis"
	"github.com/muhammadheryan/fashion-directory/constant"
	_ "github.com/muhammadheryan/fashion-directory/docs"
	designerRepo "github.com/muhammadheryan/fashion-directory/repository/designer"
	redisRepo "github.com/muhammadheryan/fashion-directory/repository/redis"
	resetTokenRepo "github.com/muhammadheryan/fashion-directory/repository/resettoken"
	sessionRepo "github.com/muhammadheryan/fashion-directory/repository/session"
	"github.com/muhammadheryan/fashion-directory/repository/storage"
	userRepo "github.com/muhammadheryan/fashion-directory/repository/user"
	"github.com/muhammadheryan/fashion-directory/thirdparty/mail"
	"github.com/muhammadheryan/fashion-directory/thirdparty/rabbitmq"
	"github.com/muhammadheryan/fashion-directory/transport"
	"github.com/muhammadheryan/fashion-directory/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// @title Sunyani Fashion Designers API
// @version 1.0
// @description Directory of fashion designers with account sessions.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey InternalAPIKey
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server",
		zap.String("env", cfg.Environment),
		zap.String("storage", cfg.Storage.Backend))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStorage(ctx, cfg)
	if err != nil {
		logger.Fatal("err open storage", zap.Error(err))
	}
	defer closeStore()

	// Optional messaging. The interfaces stay nil when disabled.
	var (
		designerPublisher rabbitmq.DesignerEventPublisher
		resetPublisher    rabbitmq.ResetExpirationPublisher
		consumer          *rabbitmq.Consumer
	)
	if cfg.RabbitMQ.Enabled {
		publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
		}
		defer func() {
			_ = publisher.Close()
		}()
		designerPublisher = publisher
		resetPublisher = publisher

		consumer, err = rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
			cfg.Internal.APIURL, cfg.Internal.APIKey)
		if err != nil {
			logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
		}
		defer func() {
			_ = consumer.Close()
		}()
	}

	var mailer mail.Sender
	if cfg.Mail.SMTPHost != "" {
		mailer = mail.NewEmailSender(cfg)
	} else {
		logger.Warn("SMTP_HOST not set, password reset mails are disabled")
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(store)
	SessionRepo := sessionRepo.NewSessionRepository(store)
	ResetTokenRepo := resetTokenRepo.NewResetTokenRepository(store)
	DesignerRepo := designerRepo.NewDesignerRepository(store)

	// Initialize application layers
	SessionApp := sessionapp.NewSessionApp(cfg, UserRepo, SessionRepo, ResetTokenRepo, mailer, resetPublisher)
	DirectoryApp := directoryapp.NewDirectoryApp(cfg, DesignerRepo, designerPublisher)

	if err := SessionApp.Initialize(ctx); err != nil {
		logger.Fatal("err initialize session", zap.Error(err))
	}
	if err := DirectoryApp.Initialize(ctx); err != nil {
		logger.Fatal("err initialize directory", zap.Error(err))
	}

	httpTransport := transport.NewTransport(SessionApp, DirectoryApp, cfg.Internal.APIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down HTTP server")
		return server.Shutdown(shutdownCtx)
	})
	if consumer != nil {
		g.Go(func() error {
			logger.Info("reset expiration consumer running")
			return consumer.Run(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return
	}
	logger.Info("server stopped")
}

// openStorage connects the configured key/value backend.
func openStorage(ctx context.Context, cfg *config.Config) (storage.Storage, func(), error) {
	switch cfg.Storage.Backend {
	case constant.StorageBackendRedis:
		client, err := redisclient.New(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return redisRepo.NewRepository(client), func() { _ = redisclient.Close() }, nil
	case constant.StorageBackendSQL:
		db, err := database.Open(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		store, err := storage.NewSQLStorage(db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return store, func() { _ = db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage backend %q", cfg.Storage.Backend)
	}
}
