package usecase

import (
	"time"

	"smart-todo/config"
	"smart-todo/pkg/log"
	"smart-todo/pkg/metrics"
	"smart-todo/pkg/storage"
)

type implUseCase struct {
	l           log.Logger
	storage     storage.Storage
	metrics     *metrics.Metrics
	imageBucket string
	voiceBucket string
	maxBytes    int64
	now         func() time.Time
}

// New creates a new upload UseCase.
func New(l log.Logger, st storage.Storage, m *metrics.Metrics, cfg config.StorageConfig) *implUseCase {
	return &implUseCase{
		l:           l,
		storage:     st,
		metrics:     m,
		imageBucket: cfg.ImageBucket,
		voiceBucket: cfg.VoiceBucket,
		maxBytes:    cfg.MaxUploadMB << 20,
		now:         time.Now,
	}
}
