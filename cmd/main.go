package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	getAvailableDatesHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_available_dates"
	getDaySlotsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_day_slots"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/config"
	"github.com/m04kA/SMC-ScheduleService/internal/infra/cache/slotcache"
	appointmentRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/appointment"
	policyRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/policy"
	timeOffRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/timeoff"
	workingHoursRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/workinghours"
	catalogServiceClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/catalogservice"
	getAvailableDatesUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_dates"
	getDaySlotsUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_day_slots"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ScheduleService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент каталога
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (CatalogService=%s timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		workingHoursRepository *workingHoursRepo.Repository
		timeOffRepository      *timeOffRepo.Repository
		appointmentRepository  *appointmentRepo.Repository
		policyRepository       *policyRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		workingHoursRepository = workingHoursRepo.NewRepository(wrappedDB)
		timeOffRepository = timeOffRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		policyRepository = policyRepo.NewRepository(wrappedDB)
	} else {
		workingHoursRepository = workingHoursRepo.NewRepository(db)
		timeOffRepository = timeOffRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		policyRepository = policyRepo.NewRepository(db)
	}

	// Инициализируем кэш слотов (если включен)
	var slotCache getDaySlotsUC.SlotCache
	if cfg.Cache.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}

		var cacheMetrics slotcache.Metrics
		if cfg.Metrics.Enabled {
			cacheMetrics = metricsCollector
		}

		slotCache = slotcache.NewCache(
			redisClient,
			time.Duration(cfg.Cache.TTLSeconds)*time.Second,
			log,
			cacheMetrics,
		)
		defer redisClient.Close()

		log.Info("Slot cache enabled (redis=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTLSeconds)
	}

	// Инициализируем use cases
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(
		workingHoursRepository,
		timeOffRepository,
		appointmentRepository,
		policyRepository,
		catalogClient,
		slotCache,
		log,
	)

	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(
		workingHoursRepository,
		timeOffRepository,
		policyRepository,
		catalogClient,
		log,
	)

	// Инициализируем handlers
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Присваиваем каждому запросу X-Request-ID
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Слоты на конкретный день (конкретный сотрудник или любой)
	api.HandleFunc("/tenants/{tenantId}/available-slots",
		getDaySlots.Handle).Methods(http.MethodGet)

	// Даты месяца, на которые есть хотя бы один доступный слот
	api.HandleFunc("/tenants/{tenantId}/available-dates",
		getAvailableDates.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
