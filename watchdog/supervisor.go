package watchdog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"runtime/debug"
)

// ErrRenderExited is reported when the render task returns without being
// asked to stop. The frame loop has no other normal exit.
var ErrRenderExited = errors.New("render task exited unexpectedly")

// FaultError wraps a panic recovered from the render task.
type FaultError struct {
	Value any
	Stack []byte
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("render task panicked: %v", e.Value)
}

// Waker interrupts a blocked event source so the event thread re-checks
// the liveness flag promptly.
type Waker interface {
	Wake()
}

// WakerFunc adapts a function to Waker.
type WakerFunc func()

func (f WakerFunc) Wake() { f() }

// RenderFunc is the body of the render task. It owns the graphics context
// for its whole lifetime and should return only when ctx is cancelled.
type RenderFunc func(ctx context.Context) error

// Supervisor runs the render task on a dedicated OS thread and watches it
// from a second goroutine that does nothing until the task ends.
type Supervisor struct {
	flag  *Flag
	waker Waker

	renderDone chan struct{}
	renderErr  error

	done chan struct{}
	err  error
}

// Start launches the render task and its watchdog. A nil waker is allowed.
func Start(ctx context.Context, flag *Flag, waker Waker, render RenderFunc) *Supervisor {
	s := &Supervisor{
		flag:       flag,
		waker:      waker,
		renderDone: make(chan struct{}),
		done:       make(chan struct{}),
	}
	go s.runRender(ctx, render)
	go s.watch(ctx)
	return s
}

func (s *Supervisor) runRender(ctx context.Context, render RenderFunc) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(s.renderDone)
	defer func() {
		if r := recover(); r != nil {
			s.renderErr = &FaultError{Value: r, Stack: debug.Stack()}
		}
	}()

	s.renderErr = render(ctx)
}

func (s *Supervisor) watch(ctx context.Context) {
	defer close(s.done)
	<-s.renderDone

	err := s.renderErr
	if err == nil && ctx.Err() == nil {
		err = ErrRenderExited
	}
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		slog.Debug("render task stopped")
		return
	}

	s.err = err
	attrs := []any{"err", err}
	var fault *FaultError
	if errors.As(err, &fault) {
		attrs = append(attrs, "stack", string(fault.Stack))
	}
	slog.Error("render thread failed", attrs...)

	if s.flag.MarkDead() && s.waker != nil {
		s.waker.Wake()
	}
}

// Done is closed once the render task has ended and the watchdog has
// processed the outcome.
func (s *Supervisor) Done() <-chan struct{} {
	return s.done
}

// Err returns the render fault, or nil for a clean stop. Valid after Done.
func (s *Supervisor) Err() error {
	<-s.done
	return s.err
}
