package fetcher

import (
	"time"
)

// Options Fetcher 체인 구성 옵션
type Options struct {
	Timeout   time.Duration
	UserAgent string

	// MaxBytes 응답 본문 최대 크기 (0: 기본값 10MB, NoLimit: 제한 없음)
	MaxBytes int64
}

// New 로깅, 상태 코드 검사, 응답 크기 제한이 적용된 Fetcher 체인을 생성합니다.
func New(opts Options) Fetcher {
	var f Fetcher = NewHTTPFetcher(opts.Timeout, opts.UserAgent)
	f = NewMaxBytesFetcher(f, opts.MaxBytes)
	f = NewStatusCodeFetcher(f)

	return NewLoggingFetcher(f)
}
