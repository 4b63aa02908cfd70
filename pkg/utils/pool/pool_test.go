package pool_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/fetchbench/pkg/utils/pool"
)

func TestPool_SingleWorkerRunsInOrder(t *testing.T) {
	p := pool.New(context.Background(), 1)

	var mu sync.Mutex
	var order []int

	for i := 0; i < 10; i++ {
		i := i
		p.Submit(func(ctx context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, i)
			return nil
		})
	}
	gt.NoError(t, p.Wait())

	// A width-1 pool executes strictly in submission order
	gt.Number(t, len(order)).Equal(10)
	for i, got := range order {
		gt.Number(t, got).Equal(i)
	}
}

func TestPool_CollectsTaskErrors(t *testing.T) {
	p := pool.New(context.Background(), 1)

	p.Submit(func(ctx context.Context) error { return nil })
	p.Submit(func(ctx context.Context) error { return errors.New("first failure") })
	p.Submit(func(ctx context.Context) error { return errors.New("second failure") })

	err := p.Wait()
	gt.Error(t, err)
	gt.True(t, strings.Contains(err.Error(), "first failure"))
	gt.True(t, strings.Contains(err.Error(), "second failure"))
}

func TestPool_ContinuesAfterTaskError(t *testing.T) {
	p := pool.New(context.Background(), 1)

	executed := false
	p.Submit(func(ctx context.Context) error { return errors.New("boom") })
	p.Submit(func(ctx context.Context) error {
		executed = true
		return nil
	})

	gt.Error(t, p.Wait())
	gt.True(t, executed)
}

func TestPool_RecoversPanic(t *testing.T) {
	p := pool.New(context.Background(), 1)

	completed := false
	p.Submit(func(ctx context.Context) error {
		panic("task panic")
	})
	p.Submit(func(ctx context.Context) error {
		completed = true
		return nil
	})

	err := p.Wait()
	gt.Error(t, err)
	gt.True(t, strings.Contains(err.Error(), "panic in pool worker"))
	gt.True(t, completed)
}

func TestPool_WaitWithNoTasks(t *testing.T) {
	p := pool.New(context.Background(), 1)
	gt.NoError(t, p.Wait())
}

func TestPool_MinimumWidth(t *testing.T) {
	p := pool.New(context.Background(), 0)

	done := false
	p.Submit(func(ctx context.Context) error {
		done = true
		return nil
	})

	gt.NoError(t, p.Wait())
	gt.True(t, done)
}
