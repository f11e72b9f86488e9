package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/ipo-notify/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateEnv 테스트가 호스트 환경(작업 디렉토리의 설정 파일, 셸 환경 변수)에 영향받지 않도록 격리합니다.
func isolateEnv(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)

	for _, key := range []string{FilenameEnv, TelegramTokenEnv, ChatIDEnv} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Default(), *cfg)
	assert.Equal(t, "https://finance.naver.com/sise/ipo.nhn", cfg.Source.URL)
	assert.Equal(t, "Mozilla/5.0", cfg.Source.UserAgent)
	assert.Equal(t, "div.type_list > table.type_5 tr", cfg.Source.RowSelector)
	assert.Equal(t, 9*time.Hour, cfg.Clock.Offset())
	assert.Equal(t, 7, cfg.Dispatch.SendHour)
	assert.Equal(t, 0, cfg.Dispatch.SendMinute)
	assert.True(t, cfg.Notify.StartupPing)
	assert.False(t, cfg.Scheduler.Enabled)
	assert.Equal(t, "0 50 6 * * *", cfg.Scheduler.TimeSpec)
	assert.Equal(t, "ipo-notify", cfg.Log.Name)
	assert.Empty(t, cfg.Telegram.BotToken, "토큰은 검증하지 않으므로 비어 있어도 로드되어야 합니다")
}

func TestLoad_TelegramCredentialsFromEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv(TelegramTokenEnv, "123456789:secret")
	t.Setenv(ChatIDEnv, "-1001234567890")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "123456789:secret", cfg.Telegram.BotToken)
	assert.Equal(t, "-1001234567890", cfg.Telegram.ChatID)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolateEnv(t)
	writeFile(t, dir, DefaultDotEnvFilename, "TELEGRAM_TOKEN=from-dotenv\nCHAT_ID=@ipo_channel\n")
	t.Cleanup(func() {
		os.Unsetenv(TelegramTokenEnv)
		os.Unsetenv(ChatIDEnv)
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "from-dotenv", cfg.Telegram.BotToken)
	assert.Equal(t, "@ipo_channel", cfg.Telegram.ChatID)
}

func TestLoad_Layering(t *testing.T) {
	dir := isolateEnv(t)
	writeFile(t, dir, DefaultFilename, `{
		"debug": true,
		"telegram": {"bot_token": "file-token", "timeout": "5s"},
		"dispatch": {"send_hour": 8, "send_minute": 30},
		"source": {"encoding": "euc-kr"}
	}`)

	t.Setenv("IPO_DISPATCH__SEND_HOUR", "6")
	t.Setenv("IPO_SOURCE__MAX_BYTES", "2048")
	t.Setenv("IPO_LOG__NAME", "IpoNotifyBatch")
	t.Setenv(TelegramTokenEnv, "env-token")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Debug, "설정 파일 값")
	assert.Equal(t, 5*time.Second, cfg.Telegram.Timeout, "설정 파일의 duration 문자열")
	assert.Equal(t, "euc-kr", cfg.Source.Encoding)
	assert.Equal(t, 6, cfg.Dispatch.SendHour, "IPO_ 환경 변수가 설정 파일보다 우선")
	assert.Equal(t, 30, cfg.Dispatch.SendMinute, "설정 파일 값 유지")
	assert.Equal(t, int64(2048), cfg.Source.MaxBytes)
	assert.Equal(t, "IpoNotifyBatch", cfg.Log.Name)
	assert.Equal(t, "env-token", cfg.Telegram.BotToken, "TELEGRAM_TOKEN이 최우선")
}

func TestLoad_ConfigFileFromEnv(t *testing.T) {
	dir := isolateEnv(t)

	t.Run("지정된 파일 사용", func(t *testing.T) {
		path := writeFile(t, dir, "custom.json", `{"notify": {"startup_ping": false}}`)
		t.Setenv(FilenameEnv, path)

		cfg, err := Load()
		require.NoError(t, err)
		assert.False(t, cfg.Notify.StartupPing)
	})

	t.Run("지정된 파일이 없으면 에러", func(t *testing.T) {
		t.Setenv(FilenameEnv, filepath.Join(dir, "missing.json"))

		_, err := Load()
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.System))
	})
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		errContains string
	}{
		{name: "JSON 문법 오류", content: `{"debug": `},
		{name: "정의되지 않은 키", content: `{"unknown_key": 1}`},
		{name: "발송 시각 범위 초과", content: `{"dispatch": {"send_hour": 24}}`, errContains: "dispatch.send_hour"},
		{name: "잘못된 URL", content: `{"source": {"url": "not a url"}}`, errContains: "source.url"},
		{name: "지원하지 않는 문자 인코딩", content: `{"source": {"encoding": "klingon"}}`, errContains: "source.encoding"},
		{name: "0 이하의 타임아웃", content: `{"source": {"timeout": "0s"}}`, errContains: "source.timeout"},
		{name: "스케줄러 표현식 누락", content: `{"scheduler": {"enabled": true, "time_spec": ""}}`, errContains: "scheduler.time_spec"},
		{name: "스케줄러 5필드 표현식", content: `{"scheduler": {"enabled": true, "time_spec": "0 7 * * *"}}`, errContains: "scheduler.time_spec"},
		{name: "로그 파일명 누락", content: `{"log": {"name": ""}}`, errContains: "log.name"},
		{name: "API 엔드포인트 형식 누락", content: `{"telegram": {"api_endpoint": "https://example.com"}}`, errContains: "telegram.api_endpoint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolateEnv(t)
			path := writeFile(t, dir, "config.json", tt.content)

			_, err := LoadWithFile(path)

			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.InvalidInput), "에러 타입: %v", err)
			if tt.errContains != "" {
				assert.Contains(t, err.Error(), tt.errContains)
			}
		})
	}
}

func TestAppConfig_LogFields(t *testing.T) {
	cfg := Default()
	cfg.Telegram.BotToken = "123456789:ABCdefGHIjklMNOpqrsTUVwxyz"
	cfg.Telegram.ChatID = "987654321"

	fields := cfg.LogFields()

	assert.Equal(t, "1234***wxyz", fields["bot_token"])
	assert.Equal(t, "9876***", fields["chat_id"])
	assert.Equal(t, "07:00", fields["send_at"])
}
