package worker

import (
	"strings"
	"sync/atomic"
	"testing"
)

func TestDoRunsEveryTask(t *testing.T) {
	p := New(4)
	defer p.Close()

	var n atomic.Int64
	tasks := make([]func(), 100)
	for i := range tasks {
		tasks[i] = func() { n.Add(1) }
	}
	if err := p.Do(tasks...); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if n.Load() != 100 {
		t.Fatalf("expected 100 tasks to run, got %d", n.Load())
	}
}

func TestDoRecoversPanics(t *testing.T) {
	p := New(2)
	defer p.Close()

	var ran atomic.Bool
	err := p.Do(func() { panic("boom") }, func() { ran.Store(true) })
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected panic to be returned as error, got %v", err)
	}
	if !ran.Load() {
		t.Fatalf("other tasks should still run")
	}

	// The pool must still be usable after a panic.
	if err := p.Do(func() {}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestSubmitAndClose(t *testing.T) {
	p := New(1)
	var n atomic.Int64
	for i := 0; i < 10; i++ {
		p.Submit(func() { n.Add(1) })
	}
	p.Submit(func() { panic("ignored") })
	p.Close()
	if n.Load() != 10 {
		t.Fatalf("expected every submitted task to run before Close returns, got %d", n.Load())
	}
}
