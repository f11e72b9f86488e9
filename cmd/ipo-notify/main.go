package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/ipo-notify/internal/app"
	"github.com/darkkaiser/ipo-notify/internal/config"
	"github.com/darkkaiser/ipo-notify/internal/pkg/version"
	"github.com/darkkaiser/ipo-notify/internal/scheduler"
	applog "github.com/darkkaiser/ipo-notify/pkg/log"
)

const component = "main"

func main() {
	os.Exit(run())
}

func run() int {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		return 1
	}

	// 2. 로그 시스템 초기화
	logOpts := newLogOptions(appConfig)

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패: %v\n", err)
		return 1
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	applog.WithComponentAndFields(component, applog.Fields{
		"version": version.Get().String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("공모주 알림 시작")
	applog.WithComponentAndFields(component, appConfig.LogFields()).Debug("환경설정 로드 완료")

	a := app.New(appConfig)

	if !appConfig.Scheduler.Enabled {
		result := a.Run(context.Background())

		applog.WithComponentAndFields(component, applog.Fields{
			"outcome": result.Outcome.String(),
			"today":   result.Today,
		}).Info("공모주 알림 종료")

		return 0
	}

	return runScheduled(a, appConfig.Scheduler.TimeSpec)
}

func newLogOptions(appConfig *config.AppConfig) applog.Options {
	var opts applog.Options
	if appConfig.Debug {
		opts = applog.NewDevelopmentOptions(appConfig.Log.Name, appConfig.Log.File)
	} else {
		opts = applog.NewProductionOptions(appConfig.Log.Name, appConfig.Log.File)
	}

	opts.Dir = appConfig.Log.Dir
	opts.MaxAge = appConfig.Log.MaxAge

	return opts
}

// runScheduled SIGINT/SIGTERM을 받을 때까지 timeSpec에 맞춰 공모주 알림을 반복 실행합니다.
func runScheduled(a *app.App, timeSpec string) int {
	stopCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stopWG := &sync.WaitGroup{}
	stopWG.Add(1)

	s := scheduler.New(timeSpec, a.Clock.Zone(), func(ctx context.Context) {
		result := a.Run(ctx)

		applog.WithComponentAndFields(component, applog.Fields{
			"outcome": result.Outcome.String(),
			"today":   result.Today,
		}).Info("예약 실행 완료")
	})

	if err := s.Start(stopCtx, stopWG); err != nil {
		applog.WithComponent(component).WithError(err).Error("스케줄러 시작 실패")
		return 1
	}

	<-stopCtx.Done()

	applog.WithComponent(component).Info("종료 시그널을 수신했습니다")
	stopWG.Wait()

	return 0
}
