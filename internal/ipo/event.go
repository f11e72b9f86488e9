package ipo

import (
	"fmt"

	"github.com/darkkaiser/ipo-notify/internal/pkg/mark"
)

// EventKind 오늘 날짜와 일치하는 일정의 종류
type EventKind int

const (
	SubscriptionOpen  EventKind = iota // 청약 시작일 (1일차)
	SubscriptionClose                  // 청약 마감일
	Listing                            // 상장일
)

var eventKindNames = [...]string{
	SubscriptionOpen:  "SubscriptionOpen",
	SubscriptionClose: "SubscriptionClose",
	Listing:           "Listing",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
	return eventKindNames[k]
}

// Event 알림 메시지에 포함될 하나의 일정입니다.
type Event struct {
	Kind     EventKind
	Name     string // 종목명
	Schedule string // 원본 청약 일정 문자열 (상장 이벤트는 빈 값)
}

// String 알림 메시지에 들어갈 이벤트 문구를 반환합니다.
func (e Event) String() string {
	switch e.Kind {
	case SubscriptionOpen:
		return fmt.Sprintf("%s[청약 1일차] %s\n일정: %s", mark.Bell.WithSpace(), e.Name, e.Schedule)
	case SubscriptionClose:
		return fmt.Sprintf("%s[청약 마감] %s\n일정: %s", mark.Alert.WithSpace(), e.Name, e.Schedule)
	case Listing:
		return fmt.Sprintf("%s[오늘 상장] %s", mark.Celebration.WithSpace(), e.Name)
	default:
		return fmt.Sprintf("[%s] %s", e.Kind, e.Name)
	}
}
