package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"

	"smart-todo/config"
	"smart-todo/internal/middleware"
	"smart-todo/internal/reminder"
	"smart-todo/pkg/datemath"
	"smart-todo/pkg/log"
	"smart-todo/pkg/metrics"
	"smart-todo/pkg/storage"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Infrastructure
	postgresDB *sqlx.DB
	registry   *prometheus.Registry
	metrics    *metrics.Metrics
	middleware middleware.Middleware
	storage    storage.Storage
	dateMath   *datemath.Parser

	// Domain settings
	calendarConfig config.GoogleCalendarConfig
	storageConfig  config.StorageConfig

	// Reminder scheduler, owned by the caller so it can be started and stopped.
	reminderUC reminder.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	PostgresDB *sqlx.DB
	Registry   *prometheus.Registry
	Metrics    *metrics.Metrics
	Middleware middleware.Middleware
	Storage    storage.Storage
	DateMath   *datemath.Parser

	GoogleCalendar config.GoogleCalendarConfig
	StorageConfig  config.StorageConfig

	ReminderUC reminder.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		postgresDB:     cfg.PostgresDB,
		registry:       cfg.Registry,
		metrics:        cfg.Metrics,
		middleware:     cfg.Middleware,
		storage:        cfg.Storage,
		dateMath:       cfg.DateMath,
		calendarConfig: cfg.GoogleCalendar,
		storageConfig:  cfg.StorageConfig,
		reminderUC:     cfg.ReminderUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres db is required")
	}
	if srv.dateMath == nil {
		return errors.New("date parser is required")
	}
	if srv.reminderUC == nil {
		return errors.New("reminder use case is required")
	}
	return nil
}
