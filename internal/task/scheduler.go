// Package task 提供后台定时任务
package task

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler 定时任务调度器, 包装 cron 并统一日志
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

// NewScheduler 创建调度器实例, 表达式带秒字段
func NewScheduler(logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		logger: logger,
	}
}

// Register 注册定时任务
func (s *Scheduler) Register(spec, name string, fn func()) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.logger.Info("task started", zap.String("task", name))
		fn()
		s.logger.Info("task finished", zap.String("task", name))
	})
	if err != nil {
		return err
	}
	s.logger.Info("task registered", zap.String("task", name), zap.String("spec", spec))
	return nil
}

// Start 启动调度器
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop 停止调度器, 等待运行中的任务结束
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
