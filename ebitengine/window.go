// Package ebitengine implements the wilhelm Window and Renderer contract on
// top of Ebitengine.
//
// Ebitengine owns the main loop, so Window implements [wilhelm.FrameDriver]:
// App.Run hands it a frame function that Ebitengine's Draw calls once per
// displayed frame, while Update polls input and fires the scroll and cursor
// callbacks between frames.
package ebitengine

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/wilhelmgfx/wilhelm"
)

var (
	_ wilhelm.Window      = (*Window)(nil)
	_ wilhelm.FrameDriver = (*Window)(nil)
)

// Window is an Ebitengine-backed window.
type Window struct {
	cfg   wilhelm.WindowConfig
	clear color.NRGBA

	width, height int

	// screen is the frame target, only non-nil while Draw runs.
	screen *ebiten.Image
	frame  func()

	onScroll func(dx, dy float64)
	onCursor func(x, y float64)

	cursor      wilhelm.Vec2
	cursorKnown bool
	// realCursor is the last device position, tracked apart from injected
	// moves.
	realCursor      wilhelm.Vec2
	realCursorKnown bool

	closeRequested bool

	injectQueue     []injectedEvent
	script          *Script
	screenshotQueue []string
	screenshotSeq   int
}

// NewWindow configures the Ebitengine window. The window itself appears when
// the App starts running.
func NewWindow(cfg wilhelm.WindowConfig) (*Window, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("ebitengine: %w", err)
	}
	w := newWindow(cfg)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	return w, nil
}

// newWindow builds the window state without touching Ebitengine globals.
func newWindow(cfg wilhelm.WindowConfig) *Window {
	return &Window{
		cfg:    cfg,
		clear:  cfg.Clear().NRGBA(),
		width:  cfg.Width,
		height: cfg.Height,
	}
}

// Config returns the configuration the window was created with.
func (w *Window) Config() wilhelm.WindowConfig { return w.cfg }

// Clear fills the current frame with the clear color.
func (w *Window) Clear() {
	if w.screen != nil {
		w.screen.Fill(w.clear)
	}
}

// ShouldClose reports whether close was requested by the user, a script or
// Close.
func (w *Window) ShouldClose() bool { return w.closeRequested }

// SwapBuffers is a no-op: Ebitengine presents the frame when Draw returns.
func (w *Window) SwapBuffers() {}

// PollEvents records a pending close request and fires the input callbacks.
// At most one injected event is consumed per call, ahead of real input. Real
// input is polled every call so the wheel still works while a script runs.
func (w *Window) PollEvents() {
	if ebiten.IsWindowBeingClosed() {
		w.closeRequested = true
	}
	if w.script != nil {
		w.script.step(w)
	}
	w.processInjectedInput()
	x, y := ebiten.CursorPosition()
	dx, dy := ebiten.Wheel()
	w.realInput(float64(x), float64(y), dx, dy)
}

// realInput forwards device input. The cursor callback fires only when the
// device cursor moved inside the window, so an injected cursor position
// holds until the mouse is actually moved. The cursor fires before scroll so
// zoom anchors use the latest position.
func (w *Window) realInput(x, y, dx, dy float64) {
	p := wilhelm.Vec2{X: x, Y: y}
	if (!w.realCursorKnown || p != w.realCursor) && windowRect(w.width, w.height).Contains(p) {
		w.realCursor = p
		w.realCursorKnown = true
		w.moveCursor(x, y)
	}
	if dx != 0 || dy != 0 {
		w.scroll(dx, dy)
	}
}

func (w *Window) moveCursor(x, y float64) {
	p := wilhelm.Vec2{X: x, Y: y}
	if w.cursorKnown && p == w.cursor {
		return
	}
	w.cursor = p
	w.cursorKnown = true
	if w.onCursor != nil {
		w.onCursor(x, y)
	}
}

func (w *Window) scroll(dx, dy float64) {
	if w.onScroll != nil {
		w.onScroll(dx, dy)
	}
}

// OnScroll registers the scroll handler, replacing any previous one.
func (w *Window) OnScroll(fn func(dx, dy float64)) { w.onScroll = fn }

// OnCursorPosition registers the cursor handler, replacing any previous one.
func (w *Window) OnCursorPosition(fn func(x, y float64)) { w.onCursor = fn }

// Size returns the current layout size in pixels.
func (w *Window) Size() (width, height int) { return w.width, w.height }

// Close requests the loop to stop after the current tick.
func (w *Window) Close() error {
	w.closeRequested = true
	return nil
}

// RunFrames runs the Ebitengine game loop until close is requested.
func (w *Window) RunFrames(frame func()) error {
	w.frame = frame
	defer func() { w.frame = nil }()
	err := ebiten.RunGame(&game{w: w})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// game adapts Window to ebiten.Game.
type game struct {
	w *Window
}

func (g *game) Update() error {
	g.w.PollEvents()
	if g.w.ShouldClose() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	w := g.w
	w.screen = screen
	if w.frame != nil {
		w.frame()
	}
	if w.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	w.flushScreenshots(screen)
	w.screen = nil
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w.width, g.w.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
