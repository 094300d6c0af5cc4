package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"blue-star-api/internal/config"
	"blue-star-api/internal/db"
	"blue-star-api/internal/email"
	apihttp "blue-star-api/internal/http"
	"blue-star-api/internal/repository"
	"blue-star-api/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
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

	var logger *zap.Logger
	if cfg.Development() {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()
	if err := db.Ping(ctx, pool); err != nil {
		logger.Fatal("db ping", zap.Error(err))
	}

	userRepo := repository.NewPgUserRepository(pool)
	blacklistRepo := repository.NewPgTokenBlacklistRepository(pool)
	otpRepo := repository.NewPgOTPRepository(pool)
	categoryRepo := repository.NewPgCategoryRepository(pool)
	itemRepo := repository.NewPgItemRepository(pool)

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	otpLimiter := service.NewOTPRateLimiter(10*time.Minute, 3)
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
			otpLimiter = service.NewRedisOTPRateLimiter(redisClient, 10*time.Minute, 3)
		}
		cancel()
	}

	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}
	tokenSvc := service.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)

	authSvc := service.NewAuthService(logger, userRepo, blacklistRepo, tokenSvc, cfg.HashCost)
	otpSvc := service.NewOTPService(logger, userRepo, otpRepo, emailSender, otpLimiter)
	invSvc := service.NewInventoryService(logger, categoryRepo, itemRepo)

	dev := cfg.Development()
	authHandler := apihttp.NewAuthHandler(logger, authSvc, dev)
	otpHandler := apihttp.NewOTPHandler(logger, otpSvc, dev)
	categoryHandler := apihttp.NewCategoryHandler(logger, invSvc, dev)
	inventoryHandler := apihttp.NewInventoryHandler(logger, invSvc, dev)
	router := apihttp.NewRouter(logger, authSvc, authHandler, otpHandler, categoryHandler, inventoryHandler, cfg.CORSOrigin)

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
