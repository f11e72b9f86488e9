// Package cronx robfig/cron 기반의 Cron 표현식 파싱 및 검증 유틸리티를 제공합니다.
package cronx

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// StandardParser 애플리케이션의 표준 Cron 표현식 파서를 반환합니다.
//
// 초 단위를 포함하는 6필드 형식([초] [분] [시] [일] [월] [요일])과
// @daily, @every <duration> 같은 Descriptor를 지원하며, 5필드 형식은 지원하지 않습니다.
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}

// Validate 주어진 Cron 표현식이 StandardParser로 해석 가능한지 검사합니다.
func Validate(spec string) error {
	if strings.TrimSpace(spec) == "" {
		return fmt.Errorf("cron 표현식이 비어 있습니다")
	}
	if _, err := StandardParser().Parse(strings.TrimSpace(spec)); err != nil {
		return fmt.Errorf("cron 표현식 '%s' 해석 실패: %w", spec, err)
	}
	return nil
}

// DailyAt 매일 hour:minute 0초에 실행되는 6필드 Cron 표현식을 반환합니다.
// 예: DailyAt(6, 55) -> "0 55 6 * * *"
func DailyAt(hour, minute int) string {
	return fmt.Sprintf("0 %d %d * * *", minute, hour)
}
