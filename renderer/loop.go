package renderer

import (
	"context"
	"log/slog"
	"time"

	"gloom-engine/input"
	"gloom-engine/math"
	"gloom-engine/scene"
)

// InputSource is the render thread's view of the shared input state.
type InputSource interface {
	PressedKeys() []input.Key
	ConsumeMouseDelta() (dx, dy float32)
}

// Surface is the render target: it clears at frame start and draws nodes.
type Surface interface {
	scene.Drawer
	BeginFrame()
}

// Presenter makes the finished frame visible.
type Presenter interface {
	Present()
}

// FrameStats describes one finished frame.
type FrameStats struct {
	Elapsed float32 // seconds since the first frame
	Delta   float32 // seconds since the previous frame
	Draws   int
}

// Loop runs frames on the render thread.
type Loop struct {
	Graph     *scene.Graph
	Camera    *scene.Camera
	Input     InputSource
	Controls  Controls
	Animator  *Animator // optional
	Surface   Surface
	Presenter Presenter
	Clock     Clock

	started  bool
	first    time.Time
	last     time.Time
	fpsStart time.Time
	frames   int
}

// Frame runs one iteration: read input, update camera and animation,
// propagate transforms, draw and present.
func (l *Loop) Frame() FrameStats {
	now := l.Clock.Now()
	if !l.started {
		l.started = true
		l.first, l.last, l.fpsStart = now, now, now
	}
	stats := FrameStats{
		Elapsed: float32(now.Sub(l.first).Seconds()),
		Delta:   float32(now.Sub(l.last).Seconds()),
	}
	l.last = now

	keys := l.Input.PressedKeys()
	dx, dy := l.Input.ConsumeMouseDelta()
	l.Controls.Apply(l.Camera, keys, dx, dy, stats.Delta)

	if l.Animator != nil {
		l.Animator.Update(stats.Elapsed)
	}
	l.Graph.UpdateTransforms(math.Mat4Identity())

	l.Surface.BeginFrame()
	stats.Draws = l.Graph.Draw(l.Camera.ViewProjectionMatrix(), l.Surface)
	l.Presenter.Present()

	l.frames++
	if d := now.Sub(l.fpsStart); d >= time.Second {
		slog.Debug("frame stats", "fps", float64(l.frames)/d.Seconds(), "draws", stats.Draws)
		l.frames = 0
		l.fpsStart = now
	}
	return stats
}

// Run renders frames until ctx is cancelled, checking it once per frame.
func (l *Loop) Run(ctx context.Context) error {
	if l.Clock == nil {
		l.Clock = SystemClock{}
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		l.Frame()
	}
}
