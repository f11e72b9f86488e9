package fetcher

import (
	"net/http"
	"time"

	applog "github.com/darkkaiser/ipo-notify/pkg/log"
)

// LoggingFetcher 요청 URL, 응답 상태 코드, 소요 시간을 로그로 남깁니다.
// 실패한 요청은 Error, 성공한 요청은 Debug 레벨로 기록합니다.
type LoggingFetcher struct {
	delegate Fetcher
}

func NewLoggingFetcher(delegate Fetcher) *LoggingFetcher {
	return &LoggingFetcher{delegate: delegate}
}

func (f *LoggingFetcher) Do(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := f.delegate.Do(req)

	entry := applog.WithComponentAndFields(component, applog.Fields{
		"method":      req.Method,
		"url":         req.URL.Redacted(),
		"elapsed_ms":  time.Since(start).Milliseconds(),
		"status_code": statusCodeOf(resp),
	}).WithContext(req.Context())

	if err != nil {
		entry.WithError(err).Error("HTTP 요청 실패")
	} else {
		entry.Debug("HTTP 요청 완료")
	}

	return resp, err
}

func statusCodeOf(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
