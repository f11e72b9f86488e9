// Package kst 고정 UTC 오프셋(기본 +9시간, 한국 표준시) 기준의 날짜와 시각을 계산합니다.
//
// 시간대 데이터베이스(time.LoadLocation)를 사용하지 않으므로 tzdata가 없는 컨테이너에서도 동일하게 동작합니다.
package kst

import (
	"time"
)

// DateLayout 공모주 일정 페이지와 알림 메시지가 사용하는 날짜 형식입니다.
const DateLayout = "2006.01.02"

// DefaultOffset 한국 표준시(KST)의 UTC 오프셋입니다.
const DefaultOffset = 9 * time.Hour

// Clock 고정 UTC 오프셋 기준의 현재 날짜와 발송 시각을 계산합니다.
type Clock struct {
	// Now 현재 시각을 반환합니다. nil이면 time.Now를 사용합니다.
	Now func() time.Time

	Offset time.Duration
}

// New 지정된 오프셋을 사용하는 Clock을 생성합니다.
func New(offset time.Duration) *Clock {
	return &Clock{Now: time.Now, Offset: offset}
}

// Current 현재 시각(UTC)을 반환합니다.
func (c *Clock) Current() time.Time {
	if c.Now == nil {
		return time.Now().UTC()
	}
	return c.Now().UTC()
}

// Civil UTC 시각 t를 오프셋이 적용된 벽시계 시각으로 변환합니다.
// 반환값의 Location은 UTC이며, 시:분:초 필드가 현지 시각을 나타냅니다.
func (c *Clock) Civil(t time.Time) time.Time {
	return t.UTC().Add(c.Offset)
}

// Today 현재 시각 기준의 오늘 날짜("YYYY.MM.DD")와 현지 벽시계 시각을 반환합니다.
func (c *Clock) Today() (string, time.Time) {
	civil := c.Civil(c.Current())
	return civil.Format(DateLayout), civil
}

// SendTime date("YYYY.MM.DD") 당일 hour:minute(현지 시각)에 해당하는 UTC 시각을 반환합니다.
func (c *Clock) SendTime(date string, hour, minute int) (time.Time, error) {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, err
	}

	civil := day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	return civil.Add(-c.Offset), nil
}

// Zone 오프셋에 해당하는 고정 time.Location을 반환합니다.
func (c *Clock) Zone() *time.Location {
	if c.Offset == DefaultOffset {
		return time.FixedZone("KST", int(c.Offset/time.Second))
	}
	return time.FixedZone("", int(c.Offset/time.Second))
}
