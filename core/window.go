package core

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"gloom-engine/input"
)

// GLFW must be driven from the main thread.
func init() {
	runtime.LockOSThread()
}

type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string

	queue  []input.Event
	cursor cursorTracker
}

type WindowConfig struct {
	Width      int
	Height     int
	Title      string
	GrabCursor bool
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:      800,
		Height:     600,
		Title:      "Gloom",
		GrabCursor: true,
	}
}

// NewWindow opens a window with an OpenGL 4.1 core context. The context is
// left detached so the render thread can claim it with MakeContextCurrent.
func NewWindow(config WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	glfw.DetachCurrentContext()

	window := &Window{
		Handle: handle,
		Width:  config.Width,
		Height: config.Height,
		Title:  config.Title,
	}
	if config.GrabCursor {
		handle.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		if glfw.RawMouseMotionSupported() {
			handle.SetInputMode(glfw.RawMouseMotion, glfw.True)
		}
	}

	handle.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if ev, ok := keyEvent(key, action); ok {
			window.queue = append(window.queue, ev)
		}
	})
	handle.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if ev, ok := window.cursor.move(x, y); ok {
			window.queue = append(window.queue, ev)
		}
	})
	handle.SetCloseCallback(func(*glfw.Window) {
		window.queue = append(window.queue, input.Close())
	})

	return window, nil
}

// WaitEvent blocks in glfw.WaitEvents until the window has input or Wake is
// called. It returns a wake event when woken with nothing queued.
func (w *Window) WaitEvent() input.Event {
	if len(w.queue) == 0 {
		glfw.WaitEvents()
	}
	if len(w.queue) == 0 {
		return input.Event{Kind: input.EventWake}
	}
	ev := w.queue[0]
	w.queue = w.queue[1:]
	return ev
}

// Wake interrupts WaitEvent. Safe to call from any goroutine.
func (w *Window) Wake() {
	glfw.PostEmptyEvent()
}

// MakeContextCurrent binds the GL context to the calling thread.
func (w *Window) MakeContextCurrent() {
	w.Handle.MakeContextCurrent()
}

// DetachContext releases the context from the calling thread.
func (w *Window) DetachContext() {
	glfw.DetachCurrentContext()
}

// SetVSync sets the swap interval of the current context.
func (w *Window) SetVSync(on bool) {
	if on {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
}

func (w *Window) Present() {
	w.Handle.SwapBuffers()
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

// keyEvent translates a GLFW key action. Repeats carry no new state.
func keyEvent(key glfw.Key, action glfw.Action) (input.Event, bool) {
	switch action {
	case glfw.Press:
		return input.KeyDown(input.Key(key)), true
	case glfw.Release:
		return input.KeyUp(input.Key(key)), true
	}
	return input.Event{}, false
}

// cursorTracker turns absolute cursor positions into motion deltas.
type cursorTracker struct {
	seen   bool
	lx, ly float64
}

func (c *cursorTracker) move(x, y float64) (input.Event, bool) {
	if !c.seen {
		c.seen = true
		c.lx, c.ly = x, y
		return input.Event{}, false
	}
	dx, dy := x-c.lx, y-c.ly
	c.lx, c.ly = x, y
	if dx == 0 && dy == 0 {
		return input.Event{}, false
	}
	return input.MouseMotion(dx, dy), true
}
