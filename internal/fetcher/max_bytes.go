package fetcher

import (
	"io"
	"net/http"

	apperrors "github.com/darkkaiser/ipo-notify/internal/pkg/errors"
)

const (
	// defaultMaxBytes 응답 본문 크기 제한 기본값 (10MB)
	defaultMaxBytes = 10 << 20

	// NoLimit 응답 본문 크기를 제한하지 않습니다.
	NoLimit = -1
)

// limitedBody limit을 넘는 바이트를 읽으려 하면 에러를 반환하는 응답 본문입니다.
type limitedBody struct {
	io.ReadCloser
	remaining int64
	limit     int64
}

func (b *limitedBody) Read(p []byte) (int, error) {
	if b.remaining < 0 {
		return 0, newErrResponseBodyTooLarge(b.limit)
	}

	// 제한을 넘었는지 알기 위해 한 바이트를 더 읽습니다.
	if int64(len(p)) > b.remaining+1 {
		p = p[:b.remaining+1]
	}

	n, err := b.ReadCloser.Read(p)
	b.remaining -= int64(n)
	if b.remaining < 0 {
		return n + int(b.remaining), newErrResponseBodyTooLarge(b.limit)
	}
	return n, err
}

// MaxBytesFetcher 응답 본문의 크기를 제한합니다.
// Content-Length가 제한을 넘으면 본문을 읽지 않고 실패하며, 그 외의 응답은 읽는 도중에 차단합니다.
type MaxBytesFetcher struct {
	delegate Fetcher
	limit    int64
}

// NewMaxBytesFetcher limit이 NoLimit이면 delegate를 그대로 반환하고, 0 이하이면 기본값(10MB)을 사용합니다.
func NewMaxBytesFetcher(delegate Fetcher, limit int64) Fetcher {
	switch {
	case limit == NoLimit:
		return delegate
	case limit <= 0:
		limit = defaultMaxBytes
	}
	return &MaxBytesFetcher{delegate: delegate, limit: limit}
}

func (f *MaxBytesFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.delegate.Do(req)
	if err != nil {
		return resp, err
	}

	if resp.ContentLength > f.limit {
		drainAndCloseBody(resp.Body)
		return nil, newErrResponseBodyTooLarge(f.limit)
	}

	resp.Body = &limitedBody{ReadCloser: resp.Body, remaining: f.limit, limit: f.limit}
	return resp, nil
}

func newErrResponseBodyTooLarge(limit int64) error {
	return apperrors.Newf(apperrors.InvalidInput, "응답 본문의 크기가 제한(%d bytes)을 초과했습니다", limit)
}
