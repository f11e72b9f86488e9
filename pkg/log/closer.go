package log

import (
	"errors"
	"io"
	"sync/atomic"
)

// closer hook과 로그 파일들을 한 번에 정리합니다.
// hook을 먼저 닫아 닫힌 파일로의 쓰기를 막고, 이후 모든 파일을 닫습니다.
// 여러 번 호출해도 안전합니다.
type closer struct {
	closers []io.Closer
	hook    *hook
	closed  atomic.Bool
}

func (c *closer) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	if c.hook != nil {
		_ = c.hook.Close()
	}

	var errs error
	for _, cl := range c.closers {
		if cl == nil {
			continue
		}
		if s, ok := cl.(interface{ Sync() error }); ok {
			_ = s.Sync()
		}
		if err := cl.Close(); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return errs
}
