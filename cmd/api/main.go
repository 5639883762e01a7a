package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"persona-qa/internal/config"
	"persona-qa/internal/dataset"
	"persona-qa/internal/db"
	"persona-qa/internal/email"
	"persona-qa/internal/greeting"
	apihttp "persona-qa/internal/http"
	"persona-qa/internal/llm"
	"persona-qa/internal/repository"
	"persona-qa/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// The service must not answer without its grounding data.
	personal, err := dataset.Load(cfg.PersonalDataPath)
	if err != nil {
		logger.Fatal("load personal data", zap.Error(err))
	}

	var (
		sessionRepo repository.SessionRepository
		askRepo     repository.AskRepository
	)
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		sessionRepo = repository.NewPgSessionRepository(pool)
		askRepo = repository.NewPgAskRepository(pool)
	} else {
		sessionRepo = repository.NewFileSessionRepository(cfg.SessionsPath, logger)
		askRepo = repository.NewFileAskRepository(cfg.AsksPath, logger)
	}

	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, logger)
	matcher := greeting.NewMatcher(greeting.DefaultTables())
	builder := service.NewContextBuilder(service.DefaultSystemPrompts())

	notifier := email.Sender(nil)
	if cfg.SMTPHost != "" && cfg.NotifyEmail != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.NotifyEmail, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			notifier = sender
		}
	}

	var limiter service.AskRateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			limiter = service.NewRedisAskRateLimiter(redisClient, time.Minute, 30)
		}
		cancel()
	}

	chatSvc := service.NewChatService(
		logger,
		matcher,
		sessionRepo,
		askRepo,
		builder,
		personal,
		llmClient,
		cfg.LLMModel,
		time.Duration(cfg.LLMTimeoutSeconds)*time.Second,
		notifier,
		cfg.DefaultLanguage,
	)

	jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}
	adminSvc := service.NewAdminService(cfg.AdminPasswordHash, jwtSvc)

	askHandler := apihttp.NewAskHandler(logger, chatSvc, limiter)
	askLogHandler := apihttp.NewAskLogHandler(logger, askRepo)
	sessionHandler := apihttp.NewSessionHandler(logger, sessionRepo)
	adminHandler := apihttp.NewAdminHandler(logger, adminSvc)
	router := apihttp.NewRouter(logger, askHandler, askLogHandler, sessionHandler, adminHandler, jwtSvc)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
