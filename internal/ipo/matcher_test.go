package ipo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch_SubscriptionPeriod(t *testing.T) {
	t.Parallel()

	row := ListingRow{Name: "에이치엠씨", SubscriptionPeriod: "2024.01.15~16", ListingDate: "미정"}

	tests := []struct {
		name  string
		today string
		want  []Event
	}{
		{name: "청약 시작일", today: "2024.01.15", want: []Event{{Kind: SubscriptionOpen, Name: "에이치엠씨", Schedule: "2024.01.15~16"}}},
		{name: "청약 마감일", today: "2024.01.16", want: []Event{{Kind: SubscriptionClose, Name: "에이치엠씨", Schedule: "2024.01.15~16"}}},
		{name: "청약 전날", today: "2024.01.14"},
		{name: "청약 다음날", today: "2024.01.17"},
		{name: "다른 해의 같은 날짜", today: "2025.01.15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			report := Match([]ListingRow{row}, tt.today)

			assert.Equal(t, tt.want, report.Events)
		})
	}
}

func TestMatch_YearCrossingPeriod(t *testing.T) {
	t.Parallel()

	row := ListingRow{Name: "연말공모", SubscriptionPeriod: "2024.12.30~2025.01.02"}

	report := Match([]ListingRow{row}, "2025.01.02")
	require.Len(t, report.Events, 1)
	assert.Equal(t, SubscriptionClose, report.Events[0].Kind)

	report = Match([]ListingRow{row}, "2024.01.02")
	assert.Empty(t, report.Events, "종료일에 시작일의 연도를 붙이면 안 됩니다")
}

func TestMatch_SingleDayPeriodReportsOpenOnly(t *testing.T) {
	t.Parallel()

	row := ListingRow{Name: "하루청약", SubscriptionPeriod: "2026.10.19~10.19"}

	report := Match([]ListingRow{row}, "2026.10.19")

	assert.Equal(t, []Event{{Kind: SubscriptionOpen, Name: "하루청약", Schedule: "2026.10.19~10.19"}}, report.Events)
}

func TestMatch_Listing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		listingDate string
		today       string
		want        bool
	}{
		{name: "상장일 일치", listingDate: "2026.10.19", today: "2026.10.19", want: true},
		{name: "상장일 불일치", listingDate: "2026.10.29", today: "2026.10.19"},
		{name: "미정", listingDate: "미정", today: "2026.10.19"},
		{name: "미정 (오늘 값과 무관)", listingDate: "미정", today: "미정"},
		{name: "빈 값", listingDate: "", today: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			report := Match([]ListingRow{{Name: "상장종목", SubscriptionPeriod: "-", ListingDate: tt.listingDate}}, tt.today)

			if tt.want {
				assert.Equal(t, []Event{{Kind: Listing, Name: "상장종목"}}, report.Events)
			} else {
				assert.Empty(t, report.Events)
			}
		})
	}
}

func TestMatch_OpenAndListingOnSameDay(t *testing.T) {
	t.Parallel()

	row := ListingRow{Name: "동시", SubscriptionPeriod: "2026.10.19~10.20", ListingDate: "2026.10.19"}

	report := Match([]ListingRow{row}, "2026.10.19")

	assert.Equal(t, []Event{
		{Kind: SubscriptionOpen, Name: "동시", Schedule: "2026.10.19~10.20"},
		{Kind: Listing, Name: "동시"},
	}, report.Events)
}

func TestMatch_RowOrder(t *testing.T) {
	t.Parallel()

	rows := []ListingRow{
		{Name: "첫번째", SubscriptionPeriod: "2026.10.18~10.19", ListingDate: "미정"},
		{Name: "두번째", SubscriptionPeriod: "2026.13.45~10.19", ListingDate: "2026.10.19"},
		{Name: "세번째", SubscriptionPeriod: "미정", ListingDate: "2026.10.19"},
		{Name: "네번째", SubscriptionPeriod: "2026.10.19~10.20", ListingDate: "2026.10.30"},
	}

	report := Match(rows, "2026.10.19")

	assert.Equal(t, []Event{
		{Kind: SubscriptionClose, Name: "첫번째", Schedule: "2026.10.18~10.19"},
		{Kind: SubscriptionClose, Name: "두번째", Schedule: "2026.13.45~10.19"},
		{Kind: Listing, Name: "두번째"},
		{Kind: Listing, Name: "세번째"},
		{Kind: SubscriptionOpen, Name: "네번째", Schedule: "2026.10.19~10.20"},
	}, report.Events)
}

func TestMatch_IrregularPeriodStillMatches(t *testing.T) {
	t.Parallel()

	rows := []ListingRow{
		{Name: "A", SubscriptionPeriod: "2026.10.19~abc", ListingDate: "2026.10.19"},
		{Name: "B", SubscriptionPeriod: "2026.10.19~", ListingDate: "미정"},
		{Name: "C", SubscriptionPeriod: "2026.10.19~10.20(예정)", ListingDate: "2026.10.19"},
	}

	report := Match(rows, "2026.10.19")

	assert.Equal(t, []Event{
		{Kind: SubscriptionOpen, Name: "A", Schedule: "2026.10.19~abc"},
		{Kind: Listing, Name: "A"},
		{Kind: SubscriptionOpen, Name: "B", Schedule: "2026.10.19~"},
		{Kind: SubscriptionOpen, Name: "C", Schedule: "2026.10.19~10.20(예정)"},
		{Kind: Listing, Name: "C"},
	}, report.Events)
}

func TestMatch_Deterministic(t *testing.T) {
	t.Parallel()

	rows := ExtractRows(newDocument(t, listingTableHTML), "").Rows

	first := Match(rows, "2026.10.19")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Match(rows, "2026.10.19"))
	}
	assert.Len(t, first.Events, 2)
}

func TestEvent_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "🔔 [청약 1일차] 에이치엠씨\n일정: 2026.10.19~10.20", Event{Kind: SubscriptionOpen, Name: "에이치엠씨", Schedule: "2026.10.19~10.20"}.String())
	assert.Equal(t, "🚨 [청약 마감] 에이치엠씨\n일정: 2026.10.19~10.20", Event{Kind: SubscriptionClose, Name: "에이치엠씨", Schedule: "2026.10.19~10.20"}.String())
	assert.Equal(t, "🎉 [오늘 상장] 에이치엠씨", Event{Kind: Listing, Name: "에이치엠씨"}.String())

	assert.Equal(t, "Listing", Listing.String())
	assert.Equal(t, "EventKind(7)", EventKind(7).String())
}
