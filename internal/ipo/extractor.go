package ipo

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	apperrors "github.com/darkkaiser/ipo-notify/internal/pkg/errors"
)

// DefaultRowSelector 네이버 금융 공모주 일정 페이지의 데이터 행 선택자입니다.
const DefaultRowSelector = "div.type_list > table.type_5 tr"

// minCells 데이터 행으로 인정하는 최소 셀(td) 개수입니다. 헤더나 구분선 행은 이보다 적습니다.
const minCells = 4

// Extraction 행 추출 결과
type Extraction struct {
	Rows     []ListingRow
	Skipped  int // 셀 개수가 부족하여 건너뛴 행 수
	Failures []RowError
}

// ExtractRows 문서에서 selector에 해당하는 행을 순서대로 읽어 ListingRow 목록을 만듭니다.
// selector가 비어 있으면 DefaultRowSelector를 사용합니다.
func ExtractRows(doc *goquery.Document, selector string) Extraction {
	if selector == "" {
		selector = DefaultRowSelector
	}

	var result Extraction
	doc.Find(selector).Each(func(i int, s *goquery.Selection) {
		row, ok, err := extractRow(s)
		switch {
		case err != nil:
			result.Failures = append(result.Failures, RowError{Index: i, Err: err})
		case !ok:
			result.Skipped++
		default:
			row.Index = i
			result.Rows = append(result.Rows, row)
		}
	})

	return result
}

// extractRow 한 행의 0, 1, 2번째 셀을 종목명, 청약 일정, 상장일로 읽습니다.
// 셀이 minCells개 미만이면 ok=false를 반환합니다.
func extractRow(s *goquery.Selection) (row ListingRow, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = apperrors.New(apperrors.ParsingFailed, fmt.Sprintf("행 구조를 읽는 중 오류가 발생했습니다: %v", r))
		}
	}()

	cells := s.Find("td")
	if cells.Length() < minCells {
		return ListingRow{}, false, nil
	}

	return ListingRow{
		Name:               cellText(cells.Eq(0)),
		SubscriptionPeriod: cellText(cells.Eq(1)),
		ListingDate:        cellText(cells.Eq(2)),
	}, true, nil
}

// cellText 셀의 모든 하위 텍스트 노드를 문서 순서대로 각각 앞뒤 공백을 제거한 뒤 구분자 없이 이어 붙입니다.
// (예: "<a>에이치엠씨</a>\n<span>(코스닥)</span>" → "에이치엠씨(코스닥)")
func cellText(s *goquery.Selection) string {
	var sb strings.Builder
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		switch goquery.NodeName(c) {
		case "#text":
			sb.WriteString(strings.TrimSpace(c.Text()))
		case "#comment":
		default:
			sb.WriteString(cellText(c))
		}
	})
	return sb.String()
}
