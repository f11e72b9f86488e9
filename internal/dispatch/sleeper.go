package dispatch

import (
	"context"
	"time"
)

// Sleeper 지정된 시간 동안 대기합니다. 테스트에서는 실제로 대기하지 않는 구현체로 대체합니다.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// TimerSleeper time.Timer로 대기하는 Sleeper 구현체입니다.
// ctx가 취소되면 대기를 중단하고 ctx.Err()를 반환합니다.
type TimerSleeper struct{}

func (TimerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
