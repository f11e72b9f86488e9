// Package dispatch 오늘의 공모주 이벤트를 하나의 메시지로 묶어, 설정된 발송 시각 이후에 발송합니다.
package dispatch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/darkkaiser/ipo-notify/internal/ipo"
	"github.com/darkkaiser/ipo-notify/internal/kst"
	"github.com/darkkaiser/ipo-notify/internal/notifier"
	apperrors "github.com/darkkaiser/ipo-notify/internal/pkg/errors"
	"github.com/darkkaiser/ipo-notify/internal/pkg/mark"
	applog "github.com/darkkaiser/ipo-notify/pkg/log"
)

// component 로깅용 컴포넌트 이름
const component = "dispatch"

// Gate 발송 시각(SendHour:SendMinute, 현지 시각) 이전에는 대기했다가 메시지를 발송합니다.
type Gate struct {
	Clock    *kst.Clock
	Sleeper  Sleeper
	Notifier notifier.Notifier

	SendHour   int
	SendMinute int
}

// Result 발송 결과
type Result struct {
	Message   string        // 발송한 메시지 (이벤트가 없으면 빈 값)
	Wait      time.Duration // 발송 시각까지 대기한 시간
	Sent      bool          // 발송을 시도했는지 여부
	Delivered bool          // 발송에 성공했는지 여부
}

// Dispatch 이벤트 목록을 하나의 메시지로 만들어 발송합니다.
//
// 이벤트가 없으면 아무것도 발송하지 않습니다.
// now(UTC 시각)가 today 당일의 발송 시각보다 이르면 그 차이만큼 대기한 후 발송하고,
// 그렇지 않으면 즉시 발송합니다. 대기 중 ctx가 취소되면 발송하지 않고 에러를 반환합니다.
func (g *Gate) Dispatch(ctx context.Context, events []ipo.Event, today string, now time.Time) (Result, error) {
	if len(events) == 0 {
		applog.WithComponent(component).Info("오늘은 알림 보낼 일정이 없습니다")
		return Result{}, nil
	}

	result := Result{Message: ComposeMessage(today, events)}

	target, err := g.Clock.SendTime(today, g.SendHour, g.SendMinute)
	if err != nil {
		applog.WithComponent(component).
			WithError(err).
			Warn("발송 시각을 계산할 수 없어 즉시 발송합니다")
	} else if wait := target.Sub(now.UTC()); wait > 0 {
		result.Wait = wait

		applog.WithComponentAndFields(component, applog.Fields{
			"now":          g.Clock.Civil(now).Format("15:04:05"),
			"send_at":      fmt.Sprintf("%02d:%02d", g.SendHour, g.SendMinute),
			"wait_seconds": int64(wait.Round(time.Second) / time.Second),
		}).Infof("발송 시각까지 %.0f초 대기합니다", wait.Seconds())

		if err := g.sleeper().Sleep(ctx, wait); err != nil {
			return result, apperrors.Wrap(err, apperrors.ExecutionFailed, "발송 대기가 중단되었습니다")
		}
	} else {
		applog.WithComponent(component).Info("이미 발송 시각이 지났습니다. 즉시 발송합니다")
	}

	result.Sent = true
	result.Delivered = notifier.BestEffort(ctx, g.Notifier, result.Message)

	return result, nil
}

func (g *Gate) sleeper() Sleeper {
	if g.Sleeper == nil {
		return TimerSleeper{}
	}
	return g.Sleeper
}

// ComposeMessage 머리말("📅 {today} 공모주 알림")과 이벤트 문구들을 빈 줄로 구분하여 하나의 메시지로 만듭니다.
func ComposeMessage(today string, events []ipo.Event) string {
	parts := make([]string, 0, len(events)+1)
	parts = append(parts, fmt.Sprintf("%s%s 공모주 알림", mark.Calendar.WithSpace(), today))
	for _, e := range events {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, "\n\n")
}
