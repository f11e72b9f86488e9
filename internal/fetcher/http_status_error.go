package fetcher

import (
	"fmt"
)

// HTTPStatusError 허용되지 않은 HTTP 상태 코드를 응답받았을 때의 에러입니다.
//
//	var statusErr *HTTPStatusError
//	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound { ... }
type HTTPStatusError struct {
	StatusCode int
	Status     string
	URL        string

	// BodySnippet 응답 본문의 앞부분 (최대 maxBodySnippetBytes)
	BodySnippet string
}

func (e *HTTPStatusError) Error() string {
	msg := fmt.Sprintf("HTTP %d (%s)", e.StatusCode, e.Status)
	if e.URL != "" {
		msg += fmt.Sprintf(" URL: %s", e.URL)
	}
	if e.BodySnippet != "" {
		msg += fmt.Sprintf(", Body: %s", e.BodySnippet)
	}
	return msg
}
