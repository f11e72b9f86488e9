package errors

import (
	"path/filepath"
	"runtime"
)

const (
	// callerSkip runtime.Callers, captureStack, newAppError, 공개 생성 함수(New/Wrap 등)를 건너뛰어
	// 에러를 생성한 코드의 위치가 0번째 프레임이 되도록 합니다.
	callerSkip = 4

	// maxFrames 에러 하나에 기록할 최대 스택 프레임 수
	maxFrames = 5
)

// StackFrame 단일 함수 호출 스택의 실행 컨텍스트 정보입니다.
type StackFrame struct {
	File     string // 파일 이름
	Line     int    // 줄 번호
	Function string // 함수 이름
}

// captureStack 현재 실행 위치의 스택 정보를 수집하여 반환합니다.
func captureStack(skip int) []StackFrame {
	pc := make([]uintptr, maxFrames)
	n := runtime.Callers(skip, pc)
	if n == 0 {
		return nil
	}

	callersFrames := runtime.CallersFrames(pc[:n])

	frames := make([]StackFrame, 0, n)
	for {
		frame, more := callersFrames.Next()
		frames = append(frames, StackFrame{
			File:     filepath.Base(frame.File),
			Line:     frame.Line,
			Function: frame.Function,
		})
		if !more {
			break
		}
	}

	return frames
}
