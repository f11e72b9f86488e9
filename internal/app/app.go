// Package app 공모주 일정 수집부터 알림 발송까지 한 번의 실행 흐름을 구성합니다.
package app

import (
	"context"
	"fmt"

	"github.com/darkkaiser/ipo-notify/internal/config"
	"github.com/darkkaiser/ipo-notify/internal/dispatch"
	"github.com/darkkaiser/ipo-notify/internal/fetcher"
	"github.com/darkkaiser/ipo-notify/internal/ipo"
	"github.com/darkkaiser/ipo-notify/internal/kst"
	"github.com/darkkaiser/ipo-notify/internal/notifier"
	"github.com/darkkaiser/ipo-notify/internal/notifier/telegram"
	apperrors "github.com/darkkaiser/ipo-notify/internal/pkg/errors"
	applog "github.com/darkkaiser/ipo-notify/pkg/log"
)

// component 로깅용 컴포넌트 이름
const component = "app"

const (
	// StartupPingMessage 실행 시작 시 봇 설정을 확인하기 위해 발송하는 메시지입니다.
	StartupPingMessage = "테스트: 봇 연결 성공! (이 메시지가 보이면 설정 완료입니다)"

	fetchFailedMessageFormat = "오류 발생: 네이버 접속 실패\n%v"
)

// App 한 번의 공모주 알림 실행에 필요한 구성 요소를 묶습니다.
type App struct {
	Notifier notifier.Notifier
	Fetcher  fetcher.Fetcher
	Clock    *kst.Clock
	Gate     *dispatch.Gate

	SourceURL   string
	Encoding    string
	RowSelector string
	StartupPing bool
}

// Result 한 번의 실행 결과
type Result struct {
	Outcome Outcome
	Today   string

	// Err 페이지 수집 실패 또는 발송 대기 중단 원인
	Err error

	Extraction ipo.Extraction
	Report     ipo.Report
	Dispatch   dispatch.Result
}

// New 설정값으로 텔레그램 Notifier, 페이지 Fetcher 체인, 고정 오프셋 Clock을 구성하여 App을 생성합니다.
func New(cfg *config.AppConfig) *App {
	n := telegram.New(telegram.Config{
		BotToken:    cfg.Telegram.BotToken,
		ChatID:      cfg.Telegram.ChatID,
		APIEndpoint: cfg.Telegram.APIEndpoint,
		Timeout:     cfg.Telegram.Timeout,
	})

	clock := kst.New(cfg.Clock.Offset())

	return &App{
		Notifier: n,
		Fetcher: fetcher.New(fetcher.Options{
			Timeout:   cfg.Source.Timeout,
			UserAgent: cfg.Source.UserAgent,
			MaxBytes:  cfg.Source.MaxBytes,
		}),
		Clock: clock,
		Gate: &dispatch.Gate{
			Clock:      clock,
			Sleeper:    dispatch.TimerSleeper{},
			Notifier:   n,
			SendHour:   cfg.Dispatch.SendHour,
			SendMinute: cfg.Dispatch.SendMinute,
		},

		SourceURL:   cfg.Source.URL,
		Encoding:    cfg.Source.Encoding,
		RowSelector: cfg.Source.RowSelector,
		StartupPing: cfg.Notify.StartupPing,
	}
}

// Run 공모주 일정 페이지를 한 번 수집하여 오늘에 해당하는 일정을 발송합니다.
//
// 페이지 수집에 실패하면 오류 내용을 알림으로 발송하고 종료합니다.
// 개별 행의 분석 실패는 로그로만 남기며 나머지 행의 처리에 영향을 주지 않습니다.
// 어떤 경우에도 에러를 반환하지 않으며, 도달한 최종 상태는 Result.Outcome으로 알 수 있습니다.
func (a *App) Run(ctx context.Context) Result {
	if a.StartupPing {
		notifier.BestEffort(ctx, a.Notifier, StartupPingMessage)
	}

	// 오늘 날짜는 한 번만 계산하며, 발송 대기 중에 날짜가 바뀌어도 다시 계산하지 않습니다.
	today, civil := a.Clock.Today()
	result := Result{Today: today}

	applog.WithComponentAndFields(component, applog.Fields{
		"today": today,
	}).Infof("현재 시간(KST): %s", civil.Format("2006-01-02 15:04:05"))

	doc, err := fetcher.FetchHTMLDocument(ctx, a.Fetcher, a.SourceURL, a.Encoding)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"url":        a.SourceURL,
			"error_type": apperrors.UnderlyingType(err).String(),
		}).WithError(err).Error("공모주 일정 페이지 수집 실패")

		notifier.BestEffort(ctx, a.Notifier, fmt.Sprintf(fetchFailedMessageFormat, err))

		result.Outcome = OutcomeFetchFailed
		result.Err = err
		return result
	}

	result.Extraction = ipo.ExtractRows(doc, a.RowSelector)
	result.Report = ipo.Match(result.Extraction.Rows, today)

	logRowFailures(result.Extraction.Failures)

	applog.WithComponentAndFields(component, applog.Fields{
		"rows":    len(result.Extraction.Rows),
		"skipped": result.Extraction.Skipped,
		"failed":  len(result.Extraction.Failures),
		"events":  len(result.Report.Events),
	}).Debug("공모주 일정 분석 완료")

	result.Dispatch, err = a.Gate.Dispatch(ctx, result.Report.Events, today, a.Clock.Current())
	switch {
	case err != nil:
		applog.WithComponent(component).WithError(err).Warn("알림 발송이 취소되었습니다")
		result.Outcome = OutcomeCanceled
		result.Err = err
	case result.Dispatch.Sent:
		result.Outcome = OutcomeSent
	default:
		result.Outcome = OutcomeNoEvents
	}

	return result
}

func logRowFailures(failures []ipo.RowError) {
	for _, f := range failures {
		applog.WithComponentAndFields(component, applog.Fields{
			"row":  f.Index,
			"name": f.Name,
		}).WithError(f.Err).Warn("공모주 일정 행을 건너뜁니다")
	}
}
