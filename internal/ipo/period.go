package ipo

import (
	"strings"
)

const periodSeparator = "~"

// Period 청약 기간의 시작일과 종료일입니다. 페이지에 표기된 문자열을 날짜로 검증하지 않고 그대로 담습니다.
type Period struct {
	Start string
	End   string
}

// ParsePeriod "2026.10.19~10.20" 형식의 청약 일정을 시작일과 종료일로 분리합니다.
// 기간 구분자('~')가 없으면 ok=false를 반환합니다.
//
// 구분자로 나눈 첫 번째 조각이 시작일, 두 번째 조각이 종료일입니다. 종료일이 "MM.DD" 형식이면
// 시작일의 연도를, 숫자로만 된 "DD" 형식이면 시작일의 연도와 월을 붙이고, 그 밖의 값은 그대로 사용합니다.
// (예: "2026.12.30~2027.01.02", "2026.10.19~")
func ParsePeriod(raw string) (period Period, ok bool) {
	if !strings.Contains(raw, periodSeparator) {
		return Period{}, false
	}

	parts := strings.Split(raw, periodSeparator)
	start := strings.TrimSpace(parts[0])
	end := strings.TrimSpace(parts[1])

	startParts := strings.Split(start, ".")
	switch {
	case len(strings.Split(end, ".")) == 2:
		end = startParts[0] + "." + end
	case len(startParts) == 3 && isDigits(end):
		end = startParts[0] + "." + startParts[1] + "." + end
	}

	return Period{Start: start, End: end}, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
