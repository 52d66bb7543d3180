package wilhelm

import (
	"errors"
	"fmt"
)

// drawCall records one renderer primitive invocation.
type drawCall struct {
	kind  ShapeType
	pos   Vec2
	shape ShapeKind
	style ShapeStyle
}

// recordingRenderer captures draw calls in order.
type recordingRenderer struct {
	calls     []drawCall
	time      float64
	pointSize float64
	w, h      int
	closed    bool
	closeErr  error
	log       *[]string
}

func (r *recordingRenderer) Time() float64                  { return r.time }
func (r *recordingRenderer) SetPointSize(size float64)      { r.pointSize = size }
func (r *recordingRenderer) WindowSize() (width, height int) { return r.w, r.h }

func (r *recordingRenderer) record(k ShapeType, pos Vec2, s ShapeKind, style ShapeStyle) {
	r.calls = append(r.calls, drawCall{kind: k, pos: pos, shape: s, style: style})
	if r.log != nil {
		*r.log = append(*r.log, fmt.Sprintf("draw:%s@%g,%g", k, pos.X, pos.Y))
	}
}

func (r *recordingRenderer) DrawCircle(pos Vec2, c Circle, style ShapeStyle) {
	r.record(ShapeCircle, pos, c, style)
}

func (r *recordingRenderer) DrawRectangle(pos Vec2, rc Rectangle, style ShapeStyle) {
	r.record(ShapeRectangle, pos, rc, style)
}

func (r *recordingRenderer) DrawTriangle(pos Vec2, t Triangle, style ShapeStyle) {
	r.record(ShapeTriangle, pos, t, style)
}

func (r *recordingRenderer) DrawText(pos Vec2, t Text, style ShapeStyle) {
	r.record(ShapeText, pos, t, style)
}

func (r *recordingRenderer) Close() error {
	r.closed = true
	if r.log != nil {
		*r.log = append(*r.log, "renderer.close")
	}
	return r.closeErr
}

// scriptedWindow closes after a fixed number of frames and logs every
// contract call. Events queued in pending fire on the matching PollEvents.
type scriptedWindow struct {
	framesLeft int
	log        *[]string
	onScroll   func(dx, dy float64)
	onCursor   func(x, y float64)
	// pending[i] runs during the i-th PollEvents call.
	pending  map[int]func(w *scriptedWindow)
	polls    int
	closed   bool
	closeErr error
}

func newScriptedWindow(frames int, log *[]string) *scriptedWindow {
	return &scriptedWindow{framesLeft: frames, log: log, pending: map[int]func(*scriptedWindow){}}
}

func (w *scriptedWindow) note(s string) {
	if w.log != nil {
		*w.log = append(*w.log, s)
	}
}

func (w *scriptedWindow) Clear() { w.note("clear") }

func (w *scriptedWindow) ShouldClose() bool {
	w.note("should_close")
	return w.framesLeft <= 0
}

func (w *scriptedWindow) SwapBuffers() {
	w.note("swap")
	w.framesLeft--
}

func (w *scriptedWindow) PollEvents() {
	w.note("poll")
	if fn, ok := w.pending[w.polls]; ok {
		fn(w)
	}
	w.polls++
}

func (w *scriptedWindow) OnScroll(fn func(dx, dy float64))       { w.onScroll = fn }
func (w *scriptedWindow) OnCursorPosition(fn func(x, y float64)) { w.onCursor = fn }
func (w *scriptedWindow) Size() (int, int)                       { return 800, 600 }

func (w *scriptedWindow) Close() error {
	w.closed = true
	w.note("window.close")
	return w.closeErr
}

// drivenWindow implements FrameDriver, emulating a platform that owns the
// loop: it pumps events between frames like Ebitengine's Update/Draw.
type drivenWindow struct {
	scriptedWindow
	frames  int
	runErr  error
	between func(i int)
}

func (d *drivenWindow) RunFrames(frame func()) error {
	for i := 0; i < d.frames; i++ {
		if d.between != nil {
			d.between(i)
		}
		frame()
	}
	return d.runErr
}

var errClose = errors.New("close failed")
