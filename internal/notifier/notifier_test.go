package notifier

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBestEffort(t *testing.T) {
	t.Run("전송 성공", func(t *testing.T) {
		var got []string
		n := Func(func(_ context.Context, message string) error {
			got = append(got, message)
			return nil
		})

		assert.True(t, BestEffort(context.Background(), n, "안녕하세요"))
		assert.Equal(t, []string{"안녕하세요"}, got)
	})

	t.Run("전송 실패는 전파하지 않음", func(t *testing.T) {
		calls := 0
		n := Func(func(context.Context, string) error {
			calls++
			return errors.New("connection refused")
		})

		assert.NotPanics(t, func() {
			assert.False(t, BestEffort(context.Background(), n, "안녕하세요"))
		})
		assert.Equal(t, 1, calls, "재시도하지 않아야 합니다")
	})
}
