// Package errors 애플리케이션 전용 에러 처리 시스템을 제공합니다.
//
// 표준 errors 패키지를 확장하여 ErrorType 기반의 에러 분류와 에러 체이닝을 지원합니다.
//
// # 기본 사용법
//
// 새 에러 생성:
//
//	err := errors.New(errors.ParsingFailed, "청약 일정 형식이 올바르지 않습니다")
//
// 에러 래핑 (컨텍스트 추가):
//
//	if err != nil {
//	    return errors.Wrap(err, errors.Unavailable, "공모주 페이지 요청 실패")
//	}
//
// 에러 타입 검사:
//
//	if errors.Is(err, errors.Timeout) {
//	    // 시간 초과 처리
//	}
//
// # ErrorType 선택 가이드
//
// Internal:
//   - 애플리케이션 내부 로직 오류 (버그로 간주)
//
// System:
//   - 디스크 I/O, 로그 파일 생성 등 인프라 수준의 장애
//
// InvalidInput:
//   - 설정 파일, 환경 변수 등 입력값 검증 실패
//
// NotFound:
//   - 요청한 리소스를 찾을 수 없음 (예: 설정 파일 없음)
//
// ExecutionFailed:
//   - 외부 API 호출 실패, 예상하지 못한 HTTP 상태 코드 등
//
// ParsingFailed:
//   - HTML 구조 분석 실패, 날짜 형식 변환 실패 등
//
// Timeout:
//   - HTTP 요청 타임아웃
//
// Unavailable:
//   - 네트워크 장애, 5xx 응답 등 일시적인 사용 불가 상태
package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// AppError ErrorType으로 분류된 애플리케이션 에러입니다.
// 원인 에러(cause)를 감싸 체인을 구성하며, 생성 시점의 호출 스택을 함께 기록합니다.
type AppError struct {
	errType ErrorType
	message string
	cause   error
	stack   []StackFrame
}

func newAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		errType: errType,
		message: message,
		cause:   cause,
		stack:   captureStack(callerSkip),
	}
}

// New 새로운 에러를 생성합니다.
func New(errType ErrorType, message string) error {
	return newAppError(errType, message, nil)
}

// Newf 포맷 문자열로 메시지를 만들어 새로운 에러를 생성합니다.
func Newf(errType ErrorType, format string, args ...any) error {
	return newAppError(errType, fmt.Sprintf(format, args...), nil)
}

// Wrap err을 원인으로 하는 새로운 에러를 생성합니다. err이 nil이면 nil을 반환합니다.
func Wrap(err error, errType ErrorType, message string) error {
	if err == nil {
		return nil
	}
	return newAppError(errType, message, err)
}

// Wrapf 포맷 문자열을 사용하는 Wrap입니다.
func Wrapf(err error, errType ErrorType, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return newAppError(errType, fmt.Sprintf(format, args...), err)
}

func (e *AppError) Type() ErrorType { return e.errType }
func (e *AppError) Message() string { return e.message }
func (e *AppError) Stack() []StackFrame { return e.stack }
func (e *AppError) Unwrap() error { return e.cause }

func (e *AppError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("[%s] %s", e.errType, e.message)
	}
	return fmt.Sprintf("[%s] %s: %v", e.errType, e.message, e.cause)
}

// Format %+v로 출력하면 에러 체인 전체와 호출 스택을 여러 줄로 출력합니다.
// 그 외의 동사(%s, %v, %q)는 Error()의 결과를 출력합니다.
func (e *AppError) Format(s fmt.State, verb rune) {
	switch {
	case verb == 'v' && s.Flag('+'):
		e.writeDetail(s)
	case verb == 'q':
		fmt.Fprintf(s, "%q", e.Error())
	default:
		io.WriteString(s, e.Error())
	}
}

func (e *AppError) writeDetail(w io.Writer) {
	fmt.Fprintf(w, "[%s] %s", e.errType, e.message)

	// 호출 스택은 체인에서 가장 안쪽의 AppError에서만 출력합니다.
	var inner *AppError
	if len(e.stack) > 0 && !errors.As(e.cause, &inner) {
		io.WriteString(w, "\nStack trace:")
		for _, f := range e.stack {
			fn := f.Function
			if i := strings.LastIndex(fn, "/"); i >= 0 {
				fn = fn[i+1:]
			}
			fmt.Fprintf(w, "\n\t%s:%d %s", f.File, f.Line, fn)
		}
	}

	if e.cause == nil {
		return
	}

	io.WriteString(w, "\nCaused by:\n")
	if inner != nil && inner == e.cause {
		inner.writeDetail(w)
		return
	}
	fmt.Fprintf(w, "\t%+v", e.cause)
}

// Is 에러 체인에 errType으로 분류된 AppError가 있는지 확인합니다.
func Is(err error, errType ErrorType) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if appErr, ok := err.(*AppError); ok && appErr.errType == errType {
			return true
		}
	}
	return false
}

// As 표준 errors.As와 같습니다.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// UnderlyingType 에러 체인에서 가장 안쪽에 있는 AppError의 ErrorType을 반환합니다.
// 체인에 AppError가 없거나 err이 nil이면 Unknown을 반환합니다.
//
//	err := Wrap(New(ParsingFailed, "bad date"), ExecutionFailed, "row skipped")
//	UnderlyingType(err) // ParsingFailed
func UnderlyingType(err error) ErrorType {
	t := Unknown
	for ; err != nil; err = errors.Unwrap(err) {
		if appErr, ok := err.(*AppError); ok {
			t = appErr.errType
		}
	}
	return t
}
