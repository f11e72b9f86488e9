package log

const callerPathPrefix = "github.com/darkkaiser/ipo-notify"

// NewProductionOptions 운영(Production) 환경에 맞춘 로그 설정을 반환합니다.
//
// 배치 작업의 실행 결과는 스케줄러(cron, GitHub Actions 등)의 콘솔 출력으로 확인하므로
// 콘솔 출력은 항상 활성화하고, 파일 출력은 fileLog가 true일 때만 활성화합니다.
func NewProductionOptions(appName string, fileLog bool) Options {
	return Options{
		Name:  appName,
		Level: InfoLevel,

		MaxAge:     30,
		MaxSizeMB:  100,
		MaxBackups: 20,

		EnableFileLog:     fileLog,
		EnableCriticalLog: fileLog,
		EnableVerboseLog:  false,
		EnableConsoleLog:  true,

		ReportCaller:     false,
		CallerPathPrefix: callerPathPrefix,
	}
}

// NewDevelopmentOptions 개발(Development) 환경에 맞춘 로그 설정을 반환합니다.
func NewDevelopmentOptions(appName string, fileLog bool) Options {
	return Options{
		Name:  appName,
		Level: TraceLevel,

		MaxAge:     1,
		MaxSizeMB:  50,
		MaxBackups: 5,

		EnableFileLog:     fileLog,
		EnableCriticalLog: false,
		EnableVerboseLog:  fileLog,
		EnableConsoleLog:  true,

		ReportCaller:     true,
		CallerPathPrefix: callerPathPrefix,
	}
}
