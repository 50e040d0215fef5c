package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/LJTian/hntop/internal/collector"
	"github.com/LJTian/hntop/internal/processor"
)

// Sink 接收每一轮的抓取结果，例如写到 stdout
type Sink func(res processor.Result) error

type Scheduler struct {
	cron   *cron.Cron
	job    cron.Job
	runner processor.Runner
	params collector.FilterParams
	sink   Sink
	log    *logrus.Logger

	// first 跟踪 Start 立即触发的首轮，它不在 cron 的运行计数里
	first sync.WaitGroup
}

func New(spec string, runner processor.Runner, params collector.FilterParams, sink Sink, log *logrus.Logger) (*Scheduler, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	c := cron.New()

	s := &Scheduler{
		cron:   c,
		runner: runner,
		params: params.Clamp(),
		sink:   sink,
		log:    log,
	}

	// 上一轮还没跑完时跳过本轮，保证同一时间只有一次翻页抓取
	s.job = cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(cron.FuncJob(s.runOnce))
	if _, err := c.AddJob(spec, s.job); err != nil {
		return nil, err
	}

	return s, nil
}

// Start 启动定时任务，并立即执行首轮
func (s *Scheduler) Start() {
	s.cron.Start()
	s.first.Add(1)
	go func() {
		defer s.first.Done()
		s.job.Run()
	}()
}

// Stop 停止调度并等待正在执行的任务结束，或 ctx 超时
func (s *Scheduler) Stop(ctx context.Context) {
	cronDone := s.cron.Stop()
	done := make(chan struct{})
	go func() {
		<-cronDone.Done()
		s.first.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.log.Warn("scheduler: stop timed out, running job abandoned")
	}
}

// RunOnce 对外暴露的单次执行入口，方便手动触发
func (s *Scheduler) RunOnce() {
	s.runOnce()
}

func (s *Scheduler) runOnce() {
	start := time.Now()
	s.log.Info("start collect job...")

	res := s.runner.Fetch(context.Background(), s.params)
	if s.sink != nil {
		if err := s.sink(res); err != nil {
			s.log.WithError(err).Error("scheduler: sink result failed")
			return
		}
	}

	s.log.WithFields(logrus.Fields{
		"stories":  len(res.Stories),
		"duration": time.Since(start).String(),
	}).Info("collect job done")
}
