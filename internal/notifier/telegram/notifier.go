// Package telegram 텔레그램 Bot API(sendMessage)를 통해 알림 메시지를 발송합니다.
package telegram

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/darkkaiser/ipo-notify/internal/notifier"
	apperrors "github.com/darkkaiser/ipo-notify/internal/pkg/errors"
	applog "github.com/darkkaiser/ipo-notify/pkg/log"
	"github.com/darkkaiser/ipo-notify/pkg/strutil"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// component 텔레그램 Notifier 로깅용 컴포넌트 이름
const component = "notifier.telegram"

const (
	// DefaultAPIEndpoint 봇 토큰과 메서드 이름으로 포맷팅되는 텔레그램 Bot API 주소입니다.
	DefaultAPIEndpoint = tgbotapi.APIEndpoint

	defaultTimeout = 10 * time.Second
)

var setLoggerOnce sync.Once

// client 텔레그램 봇 API와의 통신을 추상화한 인터페이스입니다.
type client interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Config 텔레그램 Notifier 설정
type Config struct {
	BotToken string

	// ChatID 숫자이면 채팅 ID로, 숫자가 아니면(예: "@channel") 채널 사용자명으로 사용합니다.
	ChatID string

	APIEndpoint string
	Timeout     time.Duration
}

// Notifier 텔레그램 채팅방 하나로 일반 텍스트 메시지를 발송하는 notifier.Notifier 구현체입니다.
type Notifier struct {
	client client
	chatID string
}

var _ notifier.Notifier = (*Notifier)(nil)

// New 새로운 텔레그램 Notifier를 생성합니다.
//
// 봇 정보 조회(getMe)를 수행하지 않으므로 네트워크 호출 없이 생성되며,
// 토큰이나 채팅 ID가 잘못된 경우 메시지 발송 시점에 에러로 드러납니다.
func New(cfg Config) *Notifier {
	setLoggerOnce.Do(func() {
		_ = tgbotapi.SetLogger(applog.StandardLogger())
	})

	endpoint := cfg.APIEndpoint
	if endpoint == "" {
		endpoint = DefaultAPIEndpoint
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	bot := &tgbotapi.BotAPI{
		Token:  cfg.BotToken,
		Client: &http.Client{Timeout: timeout},
		Buffer: 100,
	}
	bot.SetAPIEndpoint(endpoint)

	return &Notifier{
		client: bot,
		chatID: strings.TrimSpace(cfg.ChatID),
	}
}

// Notify 메시지를 파싱 모드 없이 일반 텍스트로 한 번 발송합니다.
func (n *Notifier) Notify(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return apperrors.Wrap(err, apperrors.Unavailable, "메시지 전송이 취소되었습니다")
	}

	if _, err := n.client.Send(n.newMessage(message)); err != nil {
		return classifyError(err)
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"chat_id": strutil.MaskSensitiveData(n.chatID),
		"length":  len(message),
	}).Debug("텔레그램 메시지 전송 성공")

	return nil
}

func (n *Notifier) newMessage(text string) tgbotapi.MessageConfig {
	if id, err := strconv.ParseInt(n.chatID, 10, 64); err == nil {
		return tgbotapi.NewMessage(id, text)
	}
	return tgbotapi.NewMessageToChannel(n.chatID, text)
}

// classifyError Bot API가 거부한 요청(ok=false)은 ExecutionFailed, 그 외 전송 실패는 Unavailable로 분류합니다.
func classifyError(err error) error {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		return apperrors.Wrapf(err, apperrors.ExecutionFailed, "텔레그램 Bot API가 요청을 거부했습니다 (error_code: %d)", apiErr.Code)
	}
	var apiErrValue tgbotapi.Error
	if errors.As(err, &apiErrValue) {
		return apperrors.Wrapf(err, apperrors.ExecutionFailed, "텔레그램 Bot API가 요청을 거부했습니다 (error_code: %d)", apiErrValue.Code)
	}
	return apperrors.Wrap(err, apperrors.Unavailable, "텔레그램 Bot API 호출에 실패했습니다")
}
