package fetcher

import (
	"io"
	"net/http"
	"slices"
	"strings"

	apperrors "github.com/darkkaiser/ipo-notify/internal/pkg/errors"
)

// maxBodySnippetBytes 상태 코드 에러에 포함할 응답 본문의 최대 크기 (4KB)
const maxBodySnippetBytes = 4 * 1024

// StatusCodeFetcher HTTP 응답 상태 코드를 확인하고, 허용된 코드가 아니면 에러로 처리하는 미들웨어입니다.
type StatusCodeFetcher struct {
	delegate        Fetcher
	allowedStatuses []int
}

var _ Fetcher = (*StatusCodeFetcher)(nil)

// NewStatusCodeFetcher 새로운 StatusCodeFetcher 인스턴스를 생성합니다.
// allowedStatuses를 지정하지 않으면 2xx 상태 코드만 허용합니다.
func NewStatusCodeFetcher(delegate Fetcher, allowedStatuses ...int) *StatusCodeFetcher {
	return &StatusCodeFetcher{
		delegate:        delegate,
		allowedStatuses: allowedStatuses,
	}
}

// Do HTTP 요청을 수행하고 응답 상태 코드를 검사합니다.
// 허용되지 않은 상태 코드이면 Body를 비우고 닫은 뒤 nil 응답과 에러를 반환합니다.
func (f *StatusCodeFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.delegate.Do(req)
	if err != nil {
		return resp, err
	}

	if statusErr := CheckResponseStatus(resp, f.allowedStatuses...); statusErr != nil {
		drainAndCloseBody(resp.Body)
		return nil, statusErr
	}

	return resp, nil
}

// CheckResponseStatus 응답 상태 코드가 허용 목록(기본: 2xx)에 포함되는지 검사합니다.
//
// 허용되지 않은 경우 본문 일부를 포함한 *HTTPStatusError를 apperrors로 감싸서 반환합니다.
// 5xx와 429는 일시적 장애(Unavailable), 그 외는 실행 실패(ExecutionFailed)로 분류합니다.
func CheckResponseStatus(resp *http.Response, allowedStatuses ...int) error {
	if isAllowedStatus(resp.StatusCode, allowedStatuses) {
		return nil
	}

	statusErr := &HTTPStatusError{
		StatusCode: resp.StatusCode,
		Status:     http.StatusText(resp.StatusCode),
	}
	if resp.Request != nil && resp.Request.URL != nil {
		statusErr.URL = resp.Request.URL.Redacted()
	}
	if resp.Body != nil {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodySnippetBytes))
		statusErr.BodySnippet = strings.TrimSpace(string(snippet))
	}

	errType := apperrors.ExecutionFailed
	if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
		errType = apperrors.Unavailable
	}

	return apperrors.Wrapf(statusErr, errType, "허용되지 않은 HTTP 응답 상태 코드입니다: %d", resp.StatusCode)
}

func isAllowedStatus(code int, allowed []int) bool {
	if len(allowed) == 0 {
		return code >= 200 && code < 300
	}
	return slices.Contains(allowed, code)
}
