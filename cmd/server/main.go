package main // Entry point package

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/vitaltrack/wellness-platform/internal/config"
	"github.com/vitaltrack/wellness-platform/internal/database"
	"github.com/vitaltrack/wellness-platform/internal/handler"
	"github.com/vitaltrack/wellness-platform/internal/logger"
	"github.com/vitaltrack/wellness-platform/internal/metrics"
	"github.com/vitaltrack/wellness-platform/internal/middleware"
	"github.com/vitaltrack/wellness-platform/internal/queue"
	"github.com/vitaltrack/wellness-platform/internal/repository"
	"github.com/vitaltrack/wellness-platform/internal/router"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.L()
	defer func() { _ = log.Sync() }()

	metrics.Init("wellness")

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()

	// Redis is optional: with no client, cache and rate limiting turn into
	// pass-through middleware.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn("redis unavailable, cache and rate limiting disabled")
	}
	cacheCfg := config.LoadCacheConfig()
	rlCfg := config.LoadRateLimitConfig()

	// Background consumer for survey.submitted events; reconnects on its own.
	go func() {
		if err := queue.StartSurveyConsumer(); err != nil {
			log.Error("survey consumer stopped", zap.Error(err))
		}
	}()

	users := repository.NewUserRepo(db)
	companies := repository.NewCompanyRepo(db)
	employees := repository.NewEmployeeRepo(db)
	professionals := repository.NewProfessionalRepo(db)
	surveys := repository.NewSurveyRepo(db)
	contents := repository.NewContentRepo(db)
	plans := repository.NewPlanRepo(db)

	h := router.Handlers{
		Auth:         handler.NewAuthHandler(cfg, users),
		Company:      handler.NewCompanyHandler(companies, employees, surveys),
		Employee:     handler.NewEmployeeHandler(employees, surveys),
		Professional: handler.NewProfessionalHandler(professionals),
		Content:      handler.NewContentHandler(contents),
		Plan:         handler.NewPlanHandler(plans),
		Admin:        handler.NewAdminHandler(users, companies, professionals),
	}

	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(middleware.RequestID)
	e.Use(logger.Middleware(log))
	e.Use(metrics.Middleware())
	e.Use(middleware.NewTokenBucket(rlCfg, rdb))

	router.Register(e, h, cfg.JWTSecret, users.GetByID, cacheCfg, rdb)

	addr := ":" + cfg.Port
	log.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := e.Start(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
