package main

import (
	"time"

	"go.uber.org/zap"

	"focalflow/internal/config"
	"focalflow/internal/event"
	"focalflow/internal/handler"
	"focalflow/internal/httpserver"
	"focalflow/internal/repository"
	"focalflow/internal/service/auth"
	"focalflow/internal/service/dashboard"
	"focalflow/internal/service/finance"
	"focalflow/internal/service/projects"
	"focalflow/pkg/db"
	"focalflow/pkg/logger"
	"focalflow/pkg/mq"
	redisclient "focalflow/pkg/redis"
)

func main() {
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	// Init DB
	dbConn, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	// Init Redis
	rdb := redisclient.NewRedisClient(cfg.Redis)
	defer rdb.Close()

	// Init event publisher. The service keeps running without a bus;
	// change events are then counted but not published.
	var publisher *mq.Publisher
	if cfg.MQ.URL != "" {
		publisher, err = mq.NewPublisher(cfg.MQ.URL)
		if err != nil {
			log.Warn("RabbitMQ unavailable, continuing without event publishing", zap.Error(err))
		} else {
			defer publisher.Close()
		}
	}
	notifier := event.NewNotifier(publisher, log)

	// Init Repositories
	userRepo := repository.NewUserRepository(dbConn)
	projectRepo := repository.NewProjectRepository(dbConn, log)
	clientRepo := repository.NewClientRepository(dbConn)
	expenseRepo := repository.NewExpenseRepository(dbConn)
	goalRepo := repository.NewGoalRepository(dbConn)
	inspirationRepo := repository.NewInspirationRepository(dbConn)
	settingsRepo := repository.NewSettingsRepository(dbConn)

	// Init Services
	authService := auth.NewService(userRepo, cfg.JWT.Secret)
	dashboardService := dashboard.NewService(
		projectRepo,
		expenseRepo,
		rdb,
		time.Duration(cfg.Cache.TTLSeconds)*time.Second,
		log,
	)
	projectService := projects.NewService(projectRepo, notifier, dashboardService, log)
	financeService := finance.NewService(expenseRepo, notifier, dashboardService)

	// Init Handlers
	handlers := httpserver.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Project:     handler.NewProjectHandler(projectService),
		Client:      handler.NewClientHandler(clientRepo, notifier),
		Expense:     handler.NewExpenseHandler(financeService),
		Goal:        handler.NewGoalHandler(goalRepo, notifier),
		Inspiration: handler.NewInspirationHandler(inspirationRepo, notifier),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
		Settings:    handler.NewSettingsHandler(settingsRepo),
	}

	// Router
	router := httpserver.NewRouter(handlers, log, dbConn, publisher, cfg.JWT.Secret)

	if err := router.Run(cfg.Server.Port); err != nil {
		log.Fatal("server start failed", zap.Error(err))
	}
}
