package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"smart-todo/config"
	"smart-todo/internal/model"
	"smart-todo/internal/reminder"
	"smart-todo/internal/todo/repository"
	"smart-todo/pkg/datemath"
	"smart-todo/pkg/log"
	"smart-todo/pkg/metrics"
)

const (
	cacheSize = 10000
	cacheTTL  = time.Hour
)

type implUseCase struct {
	l         log.Logger
	repo      repository.Repository
	dateMath  *datemath.Parser
	broker    *reminder.Broker
	notifiers []reminder.Notifier
	metrics   *metrics.Metrics
	clock     reminder.Clock

	dailyHour    int
	scanInterval time.Duration

	// sent is the de-dup cache and the list behind ScheduledNotifications.
	sent *expirable.LRU[string, model.Notification]

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates the reminder scheduler. It does nothing until Start is called.
func New(
	l log.Logger,
	repo repository.Repository,
	dateMath *datemath.Parser,
	broker *reminder.Broker,
	notifiers []reminder.Notifier,
	m *metrics.Metrics,
	cfg config.ReminderConfig,
	clock reminder.Clock,
) *implUseCase {
	if clock == nil {
		clock = reminder.SystemClock
	}
	if broker == nil {
		broker = reminder.NewBroker(0)
	}
	return &implUseCase{
		l:            l,
		repo:         repo,
		dateMath:     dateMath,
		broker:       broker,
		notifiers:    notifiers,
		metrics:      m,
		clock:        clock,
		dailyHour:    cfg.DailyHour,
		scanInterval: cfg.ScanInterval,
		sent:         expirable.NewLRU[string, model.Notification](cacheSize, nil, cacheTTL),
	}
}
