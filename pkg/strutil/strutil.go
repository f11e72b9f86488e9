// Package strutil 문자열 처리를 위한 유틸리티 함수들을 제공합니다.
package strutil

// MaskSensitiveData 토큰이나 채팅 ID 같은 민감한 정보를 로그에 남길 수 있도록 마스킹합니다.
//   - 3자 이하: 전체 마스킹
//   - 12자 이하: 앞 4자만 표시
//   - 그 외: 앞 4자와 뒤 4자만 표시
func MaskSensitiveData(data string) string {
	if data == "" {
		return ""
	}

	if len(data) <= 3 {
		return "***"
	}

	if len(data) <= 12 {
		return data[:4] + "***"
	}

	return data[:4] + "***" + data[len(data)-4:]
}
