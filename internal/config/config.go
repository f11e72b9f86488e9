package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/ipo-notify/internal/pkg/errors"
	"github.com/darkkaiser/ipo-notify/pkg/cronx"
	applog "github.com/darkkaiser/ipo-notify/pkg/log"
	"github.com/darkkaiser/ipo-notify/pkg/strutil"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "ipo-notify"

	// DefaultFilename 선택적으로 참조하는 기본 설정 파일명입니다. 파일이 없으면 기본값과 환경 변수만 사용합니다.
	DefaultFilename = AppName + ".json"

	// DefaultDotEnvFilename 작업 디렉토리에 존재할 경우 가장 먼저 로드되는 .env 파일명입니다.
	DefaultDotEnvFilename = ".env"

	// FilenameEnv 설정 파일 경로를 지정하는 환경 변수입니다.
	FilenameEnv = "IPO_CONFIG_FILE"

	// EnvPrefix 설정 키를 덮어쓰는 환경 변수의 접두사입니다.
	// 이중 언더스코어(__)는 계층 구분자(.)로 변환됩니다. 예: IPO_SOURCE__URL -> source.url
	EnvPrefix = "IPO_"

	// TelegramTokenEnv, ChatIDEnv 배포 환경(GitHub Actions 등)의 Secret으로 주입되는 텔레그램 자격 증명입니다.
	TelegramTokenEnv = "TELEGRAM_TOKEN"
	ChatIDEnv        = "CHAT_ID"
)

const (
	DefaultTelegramAPIEndpoint = "https://api.telegram.org/bot%s/%s"
	DefaultTelegramTimeout     = 10 * time.Second

	DefaultSourceURL      = "https://finance.naver.com/sise/ipo.nhn"
	DefaultUserAgent      = "Mozilla/5.0"
	DefaultRowSelector    = "div.type_list > table.type_5 tr"
	DefaultSourceTimeout  = 30 * time.Second
	DefaultSourceMaxBytes = 10 << 20

	DefaultUTCOffsetHours = 9
	DefaultSendHour       = 7
	DefaultSendMinute     = 0

	// 예약 실행 모드의 기본 실행 시각 (06:50). 발송 시각 전에 수집을 마치고 대기합니다.
	DefaultSchedulerHour   = 6
	DefaultSchedulerMinute = 50

	DefaultLogDir    = "logs"
	DefaultLogMaxAge = 30
)

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 루트 구조체
type AppConfig struct {
	Debug     bool            `json:"debug"`
	Telegram  TelegramConfig  `json:"telegram"`
	Source    SourceConfig    `json:"source"`
	Clock     ClockConfig     `json:"clock"`
	Dispatch  DispatchConfig  `json:"dispatch"`
	Notify    NotifyConfig    `json:"notify"`
	Scheduler SchedulerConfig `json:"scheduler"`
	Log       LogConfig       `json:"log"`
}

// TelegramConfig 알림 메시지를 전송할 텔레그램 봇 설정
//
// BotToken과 ChatID는 검증하지 않습니다. 잘못된 값은 메시지 전송 실패로만 드러납니다.
type TelegramConfig struct {
	BotToken    string        `json:"bot_token"`
	ChatID      string        `json:"chat_id"`
	APIEndpoint string        `json:"api_endpoint" validate:"required,contains=%s"`
	Timeout     time.Duration `json:"timeout" validate:"gt=0"`
}

// SourceConfig 공모주 일정 페이지 수집 설정
type SourceConfig struct {
	URL         string        `json:"url" validate:"required,url"`
	UserAgent   string        `json:"user_agent" validate:"required"`
	RowSelector string        `json:"row_selector" validate:"required"`
	Encoding    string        `json:"encoding" validate:"omitempty,html_encoding"`
	Timeout     time.Duration `json:"timeout" validate:"gt=0"`
	MaxBytes    int64         `json:"max_bytes" validate:"gt=0"`
}

// ClockConfig 오늘 날짜를 판단하는 기준 시간대 (고정 UTC 오프셋)
type ClockConfig struct {
	UTCOffsetHours int `json:"utc_offset_hours" validate:"min=-12,max=14"`
}

// Offset UTC 오프셋을 time.Duration으로 반환합니다.
func (c ClockConfig) Offset() time.Duration {
	return time.Duration(c.UTCOffsetHours) * time.Hour
}

// DispatchConfig 알림 메시지의 최소 발송 시각 (기준 시간대의 시:분)
type DispatchConfig struct {
	SendHour   int `json:"send_hour" validate:"min=0,max=23"`
	SendMinute int `json:"send_minute" validate:"min=0,max=59"`
}

// NotifyConfig 부가 알림 설정
type NotifyConfig struct {
	StartupPing bool `json:"startup_ping"`
}

// SchedulerConfig 프로세스 내 주기 실행 설정 (비활성화 시 한 번 실행하고 종료)
type SchedulerConfig struct {
	Enabled  bool   `json:"enabled"`
	TimeSpec string `json:"time_spec" validate:"required_if=Enabled true,omitempty,cron_spec"`
}

// LogConfig 파일 로그 설정 (콘솔 로그는 항상 출력)
type LogConfig struct {
	// Name 로그 파일명의 기준이 되는 이름이며, kebab-case로 변환되어 사용됩니다. (예: "IpoNotify" -> "ipo-notify.log")
	Name   string `json:"name" validate:"required"`
	File   bool   `json:"file"`
	Dir    string `json:"dir"`
	MaxAge int    `json:"max_age" validate:"min=0"`
}

// Default 모든 설정 키의 기본값을 담은 AppConfig를 반환합니다.
func Default() AppConfig {
	return AppConfig{
		Telegram: TelegramConfig{
			APIEndpoint: DefaultTelegramAPIEndpoint,
			Timeout:     DefaultTelegramTimeout,
		},
		Source: SourceConfig{
			URL:         DefaultSourceURL,
			UserAgent:   DefaultUserAgent,
			RowSelector: DefaultRowSelector,
			Timeout:     DefaultSourceTimeout,
			MaxBytes:    DefaultSourceMaxBytes,
		},
		Clock:     ClockConfig{UTCOffsetHours: DefaultUTCOffsetHours},
		Dispatch:  DispatchConfig{SendHour: DefaultSendHour, SendMinute: DefaultSendMinute},
		Notify:    NotifyConfig{StartupPing: true},
		Scheduler: SchedulerConfig{TimeSpec: cronx.DailyAt(DefaultSchedulerHour, DefaultSchedulerMinute)},
		Log:       LogConfig{Name: AppName, Dir: DefaultLogDir, MaxAge: DefaultLogMaxAge},
	}
}

// LogFields 민감한 값을 마스킹한 주요 설정값을 로그 필드로 반환합니다.
func (c *AppConfig) LogFields() applog.Fields {
	return applog.Fields{
		"bot_token":        strutil.MaskSensitiveData(c.Telegram.BotToken),
		"chat_id":          strutil.MaskSensitiveData(c.Telegram.ChatID),
		"source_url":       c.Source.URL,
		"utc_offset_hours": c.Clock.UTCOffsetHours,
		"send_at":          fmt.Sprintf("%02d:%02d", c.Dispatch.SendHour, c.Dispatch.SendMinute),
		"scheduler":        c.Scheduler.Enabled,
	}
}

// Load 작업 디렉토리의 .env 파일과 설정 파일, 환경 변수를 읽어 애플리케이션 설정을 로드합니다.
//
// 설정 파일 경로는 IPO_CONFIG_FILE 환경 변수로 지정할 수 있으며, 지정된 파일이 없으면 에러를 반환합니다.
// 지정하지 않은 경우 기본 설정 파일(ipo-notify.json)이 존재할 때만 읽습니다.
func Load() (*AppConfig, error) {
	if err := loadDotEnv(DefaultDotEnvFilename); err != nil {
		return nil, err
	}

	if filename := os.Getenv(FilenameEnv); filename != "" {
		return LoadWithFile(filename)
	}

	if _, err := os.Stat(DefaultFilename); err == nil {
		return LoadWithFile(DefaultFilename)
	}

	return load("")
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 AppConfig 객체를 생성합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
	}
	return load(filename)
}

// loadDotEnv .env 파일의 값을 프로세스 환경 변수로 등록합니다. 이미 설정된 환경 변수는 덮어쓰지 않습니다.
func loadDotEnv(filename string) error {
	if err := godotenv.Load(filename); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf(".env 파일 로드 중 오류가 발생했습니다: '%s'", filename))
	}
	return nil
}

func load(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 (가장 낮은 우선순위)
	if err := k.Load(structs.Provider(Default(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일
	if filename != "" {
		if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
			return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
		}
	}

	// 3. IPO_ 접두사 환경 변수
	// 예: IPO_DISPATCH__SEND_HOUR -> dispatch.send_hour
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		if s == FilenameEnv {
			return ""
		}
		s = strings.TrimPrefix(s, EnvPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 텔레그램 자격 증명 환경 변수 (최우선 순위)
	if err := k.Load(env.Provider("", ".", func(s string) string {
		switch s {
		case TelegramTokenEnv:
			return "telegram.bot_token"
		case ChatIDEnv:
			return "telegram.chat_id"
		}
		return ""
	}), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "텔레그램 환경 변수 로드에 실패했습니다")
	}

	// 5. 구조체 언마샬링 (정의되지 않은 키는 에러)
	var appConfig AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			ErrorUnused:      true,
			WeaklyTypedInput: true,
			Result:           &appConfig,
			TagName:          "json",
		},
	}
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 6. 유효성 검사
	if err := checkStruct(validate, &appConfig, "AppConfig"); err != nil {
		return nil, err
	}

	return &appConfig, nil
}
