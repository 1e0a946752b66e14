package usecase

import (
	"time"

	"smart-todo/internal/calendar"
	"smart-todo/internal/todo/repository"
	"smart-todo/pkg/gcalendar"
	"smart-todo/pkg/log"
	"smart-todo/pkg/metrics"
)

type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	providers  calendar.ProviderFactory
	metrics    *metrics.Metrics
	calendarID string
	timezone   string
	location   *time.Location
}

// New creates a new calendar UseCase. timezone must be a valid IANA name.
func New(
	l log.Logger,
	repo repository.Repository,
	providers calendar.ProviderFactory,
	m *metrics.Metrics,
	calendarID string,
	timezone string,
) (*implUseCase, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	if calendarID == "" {
		calendarID = gcalendar.DefaultCalendarID
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		providers:  providers,
		metrics:    m,
		calendarID: calendarID,
		timezone:   timezone,
		location:   loc,
	}, nil
}
