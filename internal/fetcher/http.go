package fetcher

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	apperrors "github.com/darkkaiser/ipo-notify/internal/pkg/errors"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "Mozilla/5.0"
)

// HTTPFetcher 타임아웃과 기본 User-Agent가 적용된 http.Client 기반 Fetcher 구현체입니다.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

var _ Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher 새로운 HTTPFetcher 인스턴스를 생성합니다.
// timeout이 0 이하이면 30초, userAgent가 비어 있으면 "Mozilla/5.0"을 사용합니다.
func NewHTTPFetcher(timeout time.Duration, userAgent string) *HTTPFetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &HTTPFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Do HTTP 요청을 실행합니다. 요청 헤더에 User-Agent가 없으면 기본값을 추가합니다.
// 전송 단계의 에러는 타임아웃(Timeout)과 그 외(Unavailable)로 분류하여 반환합니다.
func (h *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", h.userAgent)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return resp, apperrors.Wrap(err, apperrors.Timeout, "HTTP 요청 시간이 초과되었습니다")
		}
		return resp, apperrors.Wrap(err, apperrors.Unavailable, "HTTP 요청 전송에 실패했습니다")
	}

	return resp, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
