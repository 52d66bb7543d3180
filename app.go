package wilhelm

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// PreRenderFunc is called once per frame before the shapes are drawn. The
// shapes slice is the App's own storage: position changes are drawn in the
// same frame. Appending to the slice does not change the App's shape set.
type PreRenderFunc func(shapes []ShapeRenderable, r Renderer)

// App owns a window, a renderer and an ordered set of shapes, and drives
// the frame cycle. Shapes are drawn in insertion order, later shapes over
// earlier ones.
type App struct {
	window    Window
	renderer  Renderer
	shapes    []ShapeRenderable
	preRender PreRenderFunc

	state AppState
	frame uint64
	debug bool
}

// NewApp creates an App in the Initialized state.
func NewApp(window Window, renderer Renderer) (*App, error) {
	if window == nil {
		return nil, ErrNilWindow
	}
	if renderer == nil {
		return nil, ErrNilRenderer
	}
	return &App{window: window, renderer: renderer}, nil
}

// Window returns the app's window.
func (a *App) Window() Window { return a.window }

// Renderer returns the app's renderer.
func (a *App) Renderer() Renderer { return a.renderer }

// State returns the lifecycle state.
func (a *App) State() AppState { return a.state }

// Frame returns the number of frames completed so far.
func (a *App) Frame() uint64 { return a.frame }

// SetDebug enables per-frame timing stats, logged at debug level.
func (a *App) SetDebug(enabled bool) { a.debug = enabled }

// AddShape appends a shape to the end of the draw order.
func (a *App) AddShape(s ShapeRenderable) error {
	return a.AddShapes([]ShapeRenderable{s})
}

// AddShapes appends shapes to the end of the draw order. The shape set is
// fixed once Run starts.
func (a *App) AddShapes(shapes []ShapeRenderable) error {
	if a.state != StateInitialized {
		return ErrShapesFrozen
	}
	a.shapes = append(a.shapes, shapes...)
	return nil
}

// Shapes returns the shapes in draw order. The returned slice MUST NOT be
// appended to; element mutation belongs in the pre-render callback.
func (a *App) Shapes() []ShapeRenderable {
	return a.shapes
}

// OnPreRender registers the per-frame callback, replacing any previous one.
func (a *App) OnPreRender(fn PreRenderFunc) {
	a.preRender = fn
}

// Run enters the frame loop and returns once the window requests close.
// The window, renderer and shapes are released on return, in reverse order
// of acquisition; close failures are returned.
func (a *App) Run() error {
	switch a.state {
	case StateRunning:
		return ErrAlreadyRunning
	case StateStopped:
		return ErrStopped
	}
	a.state = StateRunning
	Logger().Info("app running", slog.Int("shapes", len(a.shapes)))

	var err error
	if d, ok := a.window.(FrameDriver); ok {
		err = d.RunFrames(a.drawFrame)
		if err != nil {
			err = fmt.Errorf("wilhelm: frame loop: %w", err)
		}
	} else {
		for !a.window.ShouldClose() {
			a.drawFrame()
			a.window.SwapBuffers()
			a.window.PollEvents()
		}
	}

	a.state = StateStopped
	Logger().Info("app stopped", slog.Uint64("frames", a.frame))
	return errors.Join(err, a.release())
}

// drawFrame clears the frame, runs the pre-render callback and draws every
// shape in order.
func (a *App) drawFrame() {
	var st frameStats
	var t0 time.Time
	if a.debug {
		t0 = time.Now()
	}

	a.window.Clear()

	if a.debug {
		st.clearTime = time.Since(t0)
		t0 = time.Now()
	}

	if a.preRender != nil {
		// Full slice expression: appends in the callback reallocate.
		a.preRender(a.shapes[:len(a.shapes):len(a.shapes)], a.renderer)
	}

	if a.debug {
		st.callbackTime = time.Since(t0)
		t0 = time.Now()
	}

	for i := range a.shapes {
		a.shapes[i].Render(a.renderer)
	}

	if a.debug {
		st.renderTime = time.Since(t0)
		st.shapeCount = len(a.shapes)
		st.drawCalls = countDrawCalls(a.shapes)
	}
	a.frame++
	a.debugLog(st)
}

// release drops the shapes, then closes the renderer and window if they
// implement io.Closer.
func (a *App) release() error {
	a.shapes = nil
	a.preRender = nil
	var errs []error
	for _, v := range []any{a.renderer, a.window} {
		c, ok := v.(io.Closer)
		if !ok {
			continue
		}
		if err := c.Close(); err != nil {
			Logger().Warn("close failed", slog.String("resource", fmt.Sprintf("%T", v)), slog.Any("err", err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
