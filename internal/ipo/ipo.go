// Package ipo 공모주 청약 일정 페이지의 표를 행 단위로 추출하고,
// 오늘 날짜와 일치하는 청약 시작/청약 마감/상장 이벤트를 찾습니다.
package ipo

import (
	"fmt"
)

// UndecidedDate 상장일이 정해지지 않은 종목의 상장일 칸에 표시되는 값입니다.
const UndecidedDate = "미정"

// ListingRow 공모주 일정 표의 한 행입니다. 각 필드는 셀의 텍스트 노드를 하나씩 다듬어 이어 붙인 값입니다.
type ListingRow struct {
	Index              int    // 행 선택자가 찾은 전체 행(건너뛴 행 포함)에서의 위치 (0부터 시작)
	Name               string // 종목명
	SubscriptionPeriod string // 공모 청약 일정 (예: "2026.10.19~10.20")
	ListingDate        string // 상장일 (예: "2026.10.29", "미정")
}

// RowError 한 행을 읽는 중 발생한 에러입니다. 해당 행만 건너뛰며 나머지 행의 처리는 계속됩니다.
type RowError struct {
	Index int    // ListingRow.Index와 같은 기준의 행 위치
	Name  string // 종목명 (추출 전에 실패한 경우 빈 값)
	Err   error
}

func (e RowError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%d번째 행: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("%d번째 행(%s): %v", e.Index, e.Name, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}
