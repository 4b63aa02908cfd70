// Package pool implements a bounded task queue with a fixed number of
// workers. The benchmark uses a width of one to measure dispatch overhead
// without introducing parallelism.
package pool

import (
	"context"
	"errors"
	"runtime/debug"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Task is a unit of work executed by a pool worker
type Task func(ctx context.Context) error

// Pool dispatches submitted tasks to a fixed set of workers. With a single
// worker, tasks run strictly in submission order.
type Pool struct {
	queue chan Task
	wg    sync.WaitGroup

	mu   sync.Mutex
	errs []error
}

// New starts width workers consuming from a queue of the same capacity.
// Workers recover panics, logging them with the context's logger, and record
// task errors for Wait.
func New(ctx context.Context, width int) *Pool {
	if width < 1 {
		width = 1
	}

	p := &Pool{
		queue: make(chan Task, width),
	}

	p.wg.Add(width)
	for i := 0; i < width; i++ {
		go p.worker(ctx)
	}

	return p
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()

	for task := range p.queue {
		p.record(p.invoke(ctx, task))
	}
}

func (p *Pool) invoke(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			ctxlog.From(ctx).Error("panic in pool worker",
				"recover", r,
				"stack", string(stack))
			err = goerr.New("panic in pool worker", goerr.V("recover", r))
		}
	}()

	return task(ctx)
}

func (p *Pool) record(err error) {
	if err == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errs = append(p.errs, err)
}

// Submit enqueues a task, blocking while the queue is full. Submit must not
// be called after Wait.
func (p *Pool) Submit(task Task) {
	p.queue <- task
}

// Wait closes the queue, waits for all submitted tasks to finish, and
// returns the accumulated task errors, if any.
func (p *Pool) Wait() error {
	close(p.queue)
	p.wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Join(p.errs...)
}
