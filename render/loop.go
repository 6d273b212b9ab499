// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/gogpu/scope"
)

// Surface is the loop's view of a presentable drawing surface. The
// surface package provides implementations; hosts embedding the loop in
// their own windowing can implement it directly.
type Surface interface {
	// AcquireTarget returns the target for the next frame. A false return
	// is a transient miss (for example a swapchain with no free image);
	// the loop retries immediately.
	AcquireTarget() (RenderTarget, bool)

	// Present publishes a painted target.
	Present(target RenderTarget) error

	// Size returns the surface size in pixels.
	Size() (int, int)
}

// LoopState is the lifecycle state of a paint loop.
type LoopState int32

const (
	// LoopCreated is the initial state, before any surface is attached.
	LoopCreated LoopState = iota

	// LoopRunning means the paint goroutine is active.
	LoopRunning

	// LoopCancelled means painting stopped; a new surface may restart it.
	LoopCancelled

	// LoopDestroyed is terminal, entered via Close.
	LoopDestroyed
)

// String returns the state name.
func (s LoopState) String() string {
	switch s {
	case LoopCreated:
		return "created"
	case LoopRunning:
		return "running"
	case LoopCancelled:
		return "cancelled"
	case LoopDestroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Loop drives continuous repainting of one oscilloscope onto one surface.
//
// The loop owns a single paint goroutine: acquire a target, snapshot the
// frame, paint, present, repeat until cancelled. Lifecycle follows the
// surface: SurfaceReady starts painting, SurfaceDestroyed stops it and
// joins the goroutine, and a later SurfaceReady starts over. Close is
// terminal and also closes the painter.
//
// All lifecycle methods are safe for concurrent use. Painting itself runs
// on the loop goroutine only; the painter is never shared.
type Loop struct {
	osc     *scope.Oscilloscope
	painter Painter

	mu     sync.Mutex
	state  LoopState
	cancel context.CancelFunc
	done   chan struct{}
}

// NewLoop creates a paint loop in the created state. Nothing paints until
// a surface is attached via SurfaceReady.
func NewLoop(osc *scope.Oscilloscope, painter Painter) *Loop {
	return &Loop{osc: osc, painter: painter, state: LoopCreated}
}

// State returns the current lifecycle state.
func (l *Loop) State() LoopState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// SurfaceReady attaches a surface and starts the paint goroutine. The
// oscilloscope is resized to the surface before the first frame. ctx
// bounds the goroutine's lifetime in addition to the loop's own methods.
//
// Returns an error if the loop is destroyed or already running.
func (l *Loop) SurfaceReady(ctx context.Context, s Surface) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch l.state {
	case LoopDestroyed:
		return fmt.Errorf("render: loop is destroyed: %w", scope.ErrConfiguration)
	case LoopRunning:
		return fmt.Errorf("render: loop already running: %w", scope.ErrConfiguration)
	case LoopCreated, LoopCancelled:
	}

	// Release the context of a goroutine that stopped on its own.
	if l.cancel != nil {
		l.cancel()
	}

	w, h := s.Size()
	l.osc.Resize(w, h)

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	l.cancel = cancel
	l.done = done
	l.state = LoopRunning

	go l.run(ctx, s, done)
	return nil
}

// SurfaceResized propagates a new surface size to the oscilloscope. The
// next frame picks it up; no repaint is forced.
func (l *Loop) SurfaceResized(width, height int) {
	l.osc.Resize(width, height)
}

// SurfaceDestroyed stops painting and joins the paint goroutine. After it
// returns no further Paint or Present calls happen on the old surface.
// The loop can be restarted with a new SurfaceReady.
func (l *Loop) SurfaceDestroyed() {
	l.stop(LoopCancelled)
}

// Close stops painting, joins the goroutine, and closes the painter. The
// loop cannot be restarted afterwards.
func (l *Loop) Close() error {
	l.stop(LoopDestroyed)
	return l.painter.Close()
}

// stop cancels the paint goroutine, waits for it to exit, and moves to
// the given state. A destroyed loop stays destroyed.
func (l *Loop) stop(next LoopState) {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.cancel, l.done = nil, nil
	if l.state != LoopDestroyed {
		l.state = next
	}
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

// run is the paint goroutine body.
func (l *Loop) run(ctx context.Context, s Surface, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		target, ok := s.AcquireTarget()
		if !ok {
			// Transient miss, the surface has no target right now.
			runtime.Gosched()
			continue
		}

		frame := l.osc.Frame()
		if err := l.painter.Paint(target, frame); err != nil {
			scope.Logger().Error("scope: paint failed", "error", err)
			l.markCancelled()
			return
		}
		if err := s.Present(target); err != nil {
			scope.Logger().Error("scope: present failed", "error", err)
			l.markCancelled()
			return
		}
	}
}

// markCancelled records that the goroutine stopped on its own after a
// paint or present failure.
func (l *Loop) markCancelled() {
	l.mu.Lock()
	if l.state == LoopRunning {
		l.state = LoopCancelled
	}
	l.mu.Unlock()
}
