package worker

import (
	"errors"
	"runtime"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/locomotion/oerror"
)

// Pool runs tasks on a fixed set of goroutines. Panics inside tasks are recovered, reported to
// sentry and returned as errors from Do.
type Pool struct {
	queue chan func()
	wg    sync.WaitGroup

	closeOnce sync.Once
}

// New starts a pool with n workers. n <= 0 uses runtime.NumCPU().
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	p := &Pool{queue: make(chan func(), n)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	defer sentry.Recover()

	for f := range p.queue {
		f()
	}
}

// Submit queues f without waiting for it. It blocks while every worker is busy and the queue is full.
func (p *Pool) Submit(f func()) {
	p.queue <- func() {
		_ = run(f)
	}
}

// Do runs every task on the pool and waits for all of them to return. The returned error joins the
// errors of every task that panicked.
func (p *Pool) Do(tasks ...func()) error {
	if len(tasks) == 0 {
		return nil
	}

	errs := make([]error, len(tasks))
	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for i, task := range tasks {
		p.queue <- func() {
			defer wg.Done()
			errs[i] = run(task)
		}
	}
	wg.Wait()
	return errors.Join(errs...)
}

// Close stops the workers once every queued task has run. Submit and Do must not be called after
// Close.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.queue)
	})
	p.wg.Wait()
}

func run(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = oerror.New("worker task panicked: %v", r)
			hub := sentry.CurrentHub().Clone()
			hub.ConfigureScope(func(scope *sentry.Scope) {
				scope.SetTag("component", "worker")
			})
			hub.Recover(err)
			hub.Flush(time.Second * 5)
		}
	}()
	f()
	return nil
}
