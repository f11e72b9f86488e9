package ipo

// Report 일정 매칭 결과
type Report struct {
	Events []Event
}

// Match 각 행의 청약 일정과 상장일을 오늘 날짜(today, "YYYY.MM.DD")와 비교하여 이벤트 목록을 만듭니다.
//
// 행 순서대로 처리하며, 한 행에서 최대 두 개의 이벤트(청약 시작 또는 마감 중 하나, 상장)가 생성됩니다.
// 청약 시작일과 마감일이 같은 하루짜리 청약은 청약 시작 이벤트만 생성합니다.
// 날짜는 문자열 그대로 비교하므로 형식이 어긋난 일정은 어느 날짜와도 일치하지 않을 뿐 오류가 되지 않으며,
// 상장일 확인은 청약 일정과 관계없이 항상 수행됩니다.
func Match(rows []ListingRow, today string) Report {
	var report Report

	for _, row := range rows {
		if period, ok := ParsePeriod(row.SubscriptionPeriod); ok {
			if today == period.Start {
				report.Events = append(report.Events, Event{Kind: SubscriptionOpen, Name: row.Name, Schedule: row.SubscriptionPeriod})
			} else if today == period.End {
				report.Events = append(report.Events, Event{Kind: SubscriptionClose, Name: row.Name, Schedule: row.SubscriptionPeriod})
			}
		}

		if row.ListingDate != "" && row.ListingDate != UndecidedDate && row.ListingDate == today {
			report.Events = append(report.Events, Event{Kind: Listing, Name: row.Name})
		}
	}

	return report
}
