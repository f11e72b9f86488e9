package fetcher

import (
	"io"
)

// maxDrainBytes 응답 본문을 비울 때 읽을 최대 바이트 수 (64KB)
const maxDrainBytes = 64 << 10

// drainAndCloseBody Keep-Alive 커넥션을 재사용할 수 있도록 남은 본문을 읽어 버리고 닫습니다.
// maxDrainBytes보다 큰 본문은 끝까지 읽지 않으며, 그 커넥션은 재사용되지 않습니다.
func drainAndCloseBody(body io.ReadCloser) {
	if body == nil {
		return
	}

	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxDrainBytes))
	_ = body.Close()
}
