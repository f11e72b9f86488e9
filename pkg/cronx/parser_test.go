package cronx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		spec    string
		wantErr bool
	}{
		{name: "6필드 (매일 06:55:00)", spec: "0 55 6 * * *"},
		{name: "앞뒤 공백", spec: " 0 0 7 * * * "},
		{name: "Descriptor (@daily)", spec: "@daily"},
		{name: "Descriptor (@every)", spec: "@every 1h"},
		{name: "빈 문자열", spec: "", wantErr: true},
		{name: "5필드 미지원", spec: "55 6 * * *", wantErr: true},
		{name: "범위 초과", spec: "0 61 6 * * *", wantErr: true},
		{name: "잘못된 문자열", spec: "매일 아침", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDailyAt(t *testing.T) {
	t.Parallel()

	spec := DailyAt(6, 55)
	assert.Equal(t, "0 55 6 * * *", spec)

	schedule, err := StandardParser().Parse(spec)
	require.NoError(t, err)

	kst := time.FixedZone("KST", 9*60*60)
	next := schedule.Next(time.Date(2026, 10, 19, 7, 0, 0, 0, kst))
	assert.Equal(t, time.Date(2026, 10, 20, 6, 55, 0, 0, kst), next)
}
