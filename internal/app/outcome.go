package app

// Outcome 한 번의 실행이 도달한 최종 상태입니다.
type Outcome int

const (
	// OutcomeFetchFailed 공모주 일정 페이지를 가져오지 못해 오류 알림만 발송하고 종료했습니다.
	OutcomeFetchFailed Outcome = iota

	// OutcomeNoEvents 오늘 해당하는 일정이 없어 아무것도 발송하지 않았습니다.
	OutcomeNoEvents

	// OutcomeSent 오늘의 공모주 알림을 발송했습니다. (발송 실패는 로그로만 남습니다)
	OutcomeSent

	// OutcomeCanceled 발송 시각을 기다리는 중 실행이 취소되었습니다.
	OutcomeCanceled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFetchFailed:
		return "FetchFailed"
	case OutcomeNoEvents:
		return "NoEvents"
	case OutcomeSent:
		return "Sent"
	case OutcomeCanceled:
		return "Canceled"
	default:
		return "Unknown"
	}
}
