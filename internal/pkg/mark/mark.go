// Package mark 알림 메시지에 사용하는 이모지 상수를 모아 둔 패키지입니다.
package mark

// Mark 이모지 상수를 위한 타입입니다.
type Mark string

const (
	// 알림 머리말
	Calendar Mark = "📅"

	// 청약 시작
	Bell Mark = "🔔"

	// 청약 마감
	Alert Mark = "🚨"

	// 상장
	Celebration Mark = "🎉"
)

// WithSpace 마크 뒤에 구분용 공백을 붙여 반환합니다. 빈 마크는 빈 문자열을 반환합니다.
func (m Mark) WithSpace() string {
	if m == "" {
		return ""
	}
	return string(m) + " "
}

func (m Mark) String() string {
	return string(m)
}
