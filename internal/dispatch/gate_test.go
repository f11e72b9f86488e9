package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/darkkaiser/ipo-notify/internal/ipo"
	"github.com/darkkaiser/ipo-notify/internal/kst"
	"github.com/darkkaiser/ipo-notify/internal/notifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSleeper struct {
	calls []time.Duration
	err   error
}

func (s *fakeSleeper) Sleep(_ context.Context, d time.Duration) error {
	s.calls = append(s.calls, d)
	return s.err
}

type recordingNotifier struct {
	messages []string
	err      error
}

func (n *recordingNotifier) Notify(_ context.Context, message string) error {
	n.messages = append(n.messages, message)
	return n.err
}

var sampleEvents = []ipo.Event{
	{Kind: ipo.SubscriptionOpen, Name: "에이치엠씨", Schedule: "2026.10.19~10.20"},
	{Kind: ipo.Listing, Name: "한국투자스팩"},
}

const sampleMessage = "📅 2026.10.19 공모주 알림\n\n" +
	"🔔 [청약 1일차] 에이치엠씨\n일정: 2026.10.19~10.20\n\n" +
	"🎉 [오늘 상장] 한국투자스팩"

func newGate(s Sleeper, n notifier.Notifier) *Gate {
	return &Gate{
		Clock:      &kst.Clock{Offset: kst.DefaultOffset},
		Sleeper:    s,
		Notifier:   n,
		SendHour:   7,
		SendMinute: 0,
	}
}

// kstTime KST 벽시계 시각을 UTC 시각으로 변환합니다.
func kstTime(hour, minute, second int) time.Time {
	return time.Date(2026, 10, 19, hour, minute, second, 0, time.UTC).Add(-kst.DefaultOffset)
}

func TestGate_Dispatch(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		wantWait time.Duration
	}{
		{name: "06:00 실행은 정확히 3600초 대기", now: kstTime(6, 0, 0), wantWait: 3600 * time.Second},
		{name: "06:59:30 실행은 30초 대기", now: kstTime(6, 59, 30), wantWait: 30 * time.Second},
		{name: "00:00 실행은 7시간 대기", now: kstTime(0, 0, 0), wantWait: 7 * time.Hour},
		{name: "07:00 정각 실행은 즉시 발송", now: kstTime(7, 0, 0)},
		{name: "08:00 실행은 즉시 발송", now: kstTime(8, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sleeper := &fakeSleeper{}
			n := &recordingNotifier{}

			result, err := newGate(sleeper, n).Dispatch(context.Background(), sampleEvents, "2026.10.19", tt.now)

			require.NoError(t, err)
			if tt.wantWait > 0 {
				assert.Equal(t, []time.Duration{tt.wantWait}, sleeper.calls)
			} else {
				assert.Empty(t, sleeper.calls, "대기하지 않아야 합니다")
			}
			assert.Equal(t, tt.wantWait, result.Wait)
			assert.Equal(t, []string{sampleMessage}, n.messages)
			assert.True(t, result.Sent)
			assert.True(t, result.Delivered)
		})
	}
}

func TestGate_Dispatch_NoEvents(t *testing.T) {
	sleeper := &fakeSleeper{}
	n := &recordingNotifier{}

	result, err := newGate(sleeper, n).Dispatch(context.Background(), nil, "2026.10.19", kstTime(6, 0, 0))

	require.NoError(t, err)
	assert.Empty(t, n.messages, "이벤트가 없으면 발송하지 않아야 합니다")
	assert.Empty(t, sleeper.calls)
	assert.False(t, result.Sent)
}

func TestGate_Dispatch_CustomSendTime(t *testing.T) {
	sleeper := &fakeSleeper{}
	gate := newGate(sleeper, &recordingNotifier{})
	gate.SendHour, gate.SendMinute = 8, 30

	_, err := gate.Dispatch(context.Background(), sampleEvents, "2026.10.19", kstTime(8, 0, 0))

	require.NoError(t, err)
	assert.Equal(t, []time.Duration{30 * time.Minute}, sleeper.calls)
}

func TestGate_Dispatch_LateRunUsesGivenToday(t *testing.T) {
	// 발송 기준은 호출 시 전달된 today 당일의 07:00이며, 이미 지난 경우 today 날짜로 즉시 발송합니다.
	sleeper := &fakeSleeper{}
	n := &recordingNotifier{}

	_, err := newGate(sleeper, n).Dispatch(context.Background(), sampleEvents, "2026.10.19", kstTime(23, 0, 0))

	require.NoError(t, err)
	assert.Empty(t, sleeper.calls)
	require.Len(t, n.messages, 1)
	assert.Contains(t, n.messages[0], "2026.10.19")
}

func TestGate_Dispatch_SendFailureIsNotPropagated(t *testing.T) {
	n := &recordingNotifier{err: errors.New("bad gateway")}

	result, err := newGate(&fakeSleeper{}, n).Dispatch(context.Background(), sampleEvents, "2026.10.19", kstTime(8, 0, 0))

	require.NoError(t, err)
	assert.True(t, result.Sent)
	assert.False(t, result.Delivered)
	assert.Len(t, n.messages, 1)
}

func TestGate_Dispatch_WaitInterrupted(t *testing.T) {
	n := &recordingNotifier{}

	_, err := newGate(&fakeSleeper{err: context.Canceled}, n).Dispatch(context.Background(), sampleEvents, "2026.10.19", kstTime(6, 0, 0))

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, n.messages)
}

func TestComposeMessage(t *testing.T) {
	assert.Equal(t, sampleMessage, ComposeMessage("2026.10.19", sampleEvents))
	assert.Equal(t, "📅 2026.10.19 공모주 알림", ComposeMessage("2026.10.19", nil))
}

func TestTimerSleeper(t *testing.T) {
	t.Run("지정된 시간만큼 대기", func(t *testing.T) {
		start := time.Now()
		require.NoError(t, TimerSleeper{}.Sleep(context.Background(), 20*time.Millisecond))
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("0 이하는 즉시 반환", func(t *testing.T) {
		assert.NoError(t, TimerSleeper{}.Sleep(context.Background(), -time.Second))
	})

	t.Run("컨텍스트 취소", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := TimerSleeper{}.Sleep(ctx, time.Hour)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
