// Package notifier 알림 메시지 발송 채널의 공통 인터페이스를 정의합니다.
package notifier

import (
	"context"

	applog "github.com/darkkaiser/ipo-notify/pkg/log"
)

// component 로깅용 컴포넌트 이름
const component = "notifier"

// Notifier 하나의 텍스트 메시지를 발송하는 알림 채널입니다.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// Func 일반 함수를 Notifier로 사용하기 위한 어댑터입니다.
type Func func(ctx context.Context, message string) error

func (f Func) Notify(ctx context.Context, message string) error {
	return f(ctx, message)
}

// BestEffort 메시지를 한 번 발송하고 결과를 로그로만 남깁니다.
//
// 발송 실패는 호출자에게 전파하지 않으며, 재시도하지 않습니다.
// 반환값은 발송 성공 여부입니다.
func BestEffort(ctx context.Context, n Notifier, message string) bool {
	if err := n.Notify(ctx, message); err != nil {
		applog.WithComponent(component).
			WithError(err).
			Error("메시지 전송 실패")

		return false
	}

	applog.WithComponent(component).Info("메시지 전송 완료")

	return true
}
