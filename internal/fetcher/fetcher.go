// Package fetcher 공모주 일정 페이지를 가져오는 HTTP 클라이언트와 미들웨어(데코레이터)를 제공합니다.
//
// 미들웨어 체인: LoggingFetcher -> StatusCodeFetcher -> MaxBytesFetcher -> HTTPFetcher
package fetcher

import (
	"context"
	"net/http"
)

// component Fetcher 로깅용 컴포넌트 이름
const component = "fetcher"

// Fetcher HTTP 요청을 수행하는 핵심 인터페이스입니다.
//
// 반환된 응답 객체의 Body는 호출자가 닫아야 합니다.
// 에러가 발생해도 응답 객체가 nil이 아닐 수 있습니다.
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}

// Get 지정된 URL로 HTTP GET 요청을 전송합니다.
// 요청이 실패하면 커넥션 재사용을 위해 응답 Body를 비우고 닫은 뒤 nil 응답을 반환합니다.
func Get(ctx context.Context, f Fetcher, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		return nil, err
	}

	return resp, nil
}
