// Package safe_close 提供按注册顺序关闭并等待的优雅关闭原语
package safe_close

import (
	"sync"
)

// SafeClose coordinates shutdown: Attach registers a worker that is told
// to stop via closeSignal and reports completion by calling done.
// SafeClose 协调关闭流程：Attach 注册的任务通过 closeSignal 收到关闭
// 通知，并通过调用 done 上报完成。
type SafeClose struct {
	mu          sync.Mutex
	closeSignal chan struct{}
	closed      bool
	err         error
	wg          sync.WaitGroup
}

func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeSignal: make(chan struct{}),
	}
}

// Attach runs f in its own goroutine. f must call done exactly once when
// its shutdown work is finished, and should watch closeSignal.
// Attach 在独立协程中运行 f。f 在关闭工作完成后必须调用一次 done，
// 并监听 closeSignal。
func (s *SafeClose) Attach(f func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	var once sync.Once
	done := func() {
		once.Do(s.wg.Done)
	}
	go f(done, s.closeSignal)
}

// SendCloseSignal triggers shutdown; the first error wins.
// SendCloseSignal 触发关闭，首个错误保留。
func (s *SafeClose) SendCloseSignal(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.err = err
	close(s.closeSignal)
}

// WaitClosed blocks until all attached tasks have called done.
// WaitClosed 阻塞直到所有已注册任务调用 done。
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// CloseSignal exposes the shutdown channel for select loops.
// CloseSignal 暴露关闭通知通道，便于 select 监听。
func (s *SafeClose) CloseSignal() <-chan struct{} {
	return s.closeSignal
}
