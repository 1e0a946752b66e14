package usecase

import (
	"context"
	"time"

	"smart-todo/internal/reminder"
)

const digestPeriod = 24 * time.Hour

// Start launches the daily digest and due-soon loops.
func (uc *implUseCase) Start(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.cancel != nil {
		return reminder.ErrAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	uc.cancel = cancel

	uc.wg.Add(2)
	go uc.dailyLoop(ctx)
	go uc.dueSoonLoop(ctx)

	uc.l.Infof(ctx, "reminder.Start: daily digest at %02d:00 %s, due-soon scan every %s",
		uc.dailyHour, uc.dateMath.Location(), uc.scanInterval)
	return nil
}

// Stop cancels both loops and waits for them to return.
func (uc *implUseCase) Stop() {
	uc.mu.Lock()
	cancel := uc.cancel
	uc.cancel = nil
	uc.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	uc.wg.Wait()
}

func (uc *implUseCase) dailyLoop(ctx context.Context) {
	defer uc.wg.Done()

	now := uc.clock.Now()
	first := uc.dateMath.NextAt(now, uc.dailyHour)
	timer := time.NewTimer(first.Sub(now))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
		uc.runDigestCycle(ctx)
	}

	ticker := time.NewTicker(digestPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			uc.runDigestCycle(ctx)
		}
	}
}

func (uc *implUseCase) dueSoonLoop(ctx context.Context) {
	defer uc.wg.Done()

	ticker := time.NewTicker(uc.scanInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := uc.RunDueSoonCheck(ctx); err != nil {
				uc.l.Errorf(ctx, "reminder.dueSoonLoop: %v", err)
			}
		}
	}
}

func (uc *implUseCase) runDigestCycle(ctx context.Context) {
	if _, err := uc.RunDailyDigest(ctx); err != nil {
		uc.l.Errorf(ctx, "reminder.dailyLoop: %v", err)
	}
}
