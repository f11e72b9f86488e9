// Package scheduler 공모주 알림 작업을 Cron 스케줄에 맞춰 프로세스 안에서 반복 실행합니다.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/darkkaiser/ipo-notify/pkg/cronx"
	applog "github.com/darkkaiser/ipo-notify/pkg/log"
	"github.com/robfig/cron/v3"
)

// component 로깅용 컴포넌트 이름
const component = "scheduler"

// Job 스케줄에 따라 실행되는 작업입니다. ctx는 스케줄러가 종료될 때 취소됩니다.
type Job func(ctx context.Context)

// Scheduler 하나의 작업을 Cron 표현식(초 분 시 일 월 요일)에 맞춰 실행합니다.
type Scheduler struct {
	timeSpec string
	location *time.Location
	job      Job

	cron *cron.Cron

	running   bool
	runningMu sync.Mutex
}

// New 새로운 Scheduler를 생성합니다. location이 nil이면 UTC 기준으로 스케줄을 해석합니다.
func New(timeSpec string, location *time.Location, job Job) *Scheduler {
	if location == nil {
		location = time.UTC
	}

	return &Scheduler{
		timeSpec: timeSpec,
		location: location,
		job:      job,
	}
}

// Start 작업을 Cron 엔진에 등록하고 스케줄러를 시작합니다.
//
// stopCtx가 취소되면 스케줄러를 중지하고, 실행 중인 작업이 끝난 뒤 stopWG.Done()을 호출합니다.
// 에러를 반환하는 경우에도 stopWG.Done()은 호출됩니다.
func (s *Scheduler) Start(stopCtx context.Context, stopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if s.job == nil {
		stopWG.Done()
		return ErrJobNotInitialized
	}

	if s.running {
		stopWG.Done()
		applog.WithComponent(component).Warn("스케줄러가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	logger := cron.VerbosePrintfLogger(applog.StandardLogger())
	c := cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLocation(s.location),
		cron.WithLogger(logger),
		cron.WithChain(
			cron.Recover(logger),
			cron.SkipIfStillRunning(logger),
		),
	)

	job := s.job
	if _, err := c.AddFunc(s.timeSpec, func() { job(stopCtx) }); err != nil {
		stopWG.Done()
		return newErrInvalidCronSpec(s.timeSpec, err)
	}

	s.cron = c
	s.cron.Start()
	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"time_spec": s.timeSpec,
		"location":  s.location.String(),
		"next_run":  s.cron.Entries()[0].Next.Format(time.RFC3339),
	}).Info("스케줄러 시작 완료")

	go func() {
		defer stopWG.Done()

		<-stopCtx.Done()

		s.Stop()
	}()

	return nil
}

// Stop 스케줄러를 중지하고 실행 중인 작업이 끝날 때까지 기다립니다.
func (s *Scheduler) Stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	applog.WithComponent(component).Info("스케줄러 중지 시그널을 수신했습니다")

	<-s.cron.Stop().Done()

	s.cron = nil
	s.running = false

	applog.WithComponent(component).Info("스케줄러 종료 완료")
}
