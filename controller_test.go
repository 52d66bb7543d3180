package wilhelm

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func newTestController(t *testing.T, limits ZoomLimits) *CameraController {
	t.Helper()
	return NewCameraController(mustCamera(t, Vec2{}, 1, Vec2{800, 600}), limits)
}

func TestControllerScrollZoomsAtCursor(t *testing.T) {
	cc := newTestController(t, ZoomLimits{Min: 0.1, Max: 50})
	cc.HandleCursor(650, 120)
	anchor := cc.Camera().ScreenToWorld(Vec2{650, 120})

	cc.HandleScroll(0, 1)
	if !approxEqual(cc.Camera().Scale(), 1.1, epsilon) {
		t.Errorf("scale after scroll up = %v, want 1.1", cc.Camera().Scale())
	}
	if got := cc.Camera().WorldToScreen(anchor); !vecApproxEqual(got, Vec2{650, 120}, 1e-9) {
		t.Errorf("anchor moved to %v", got)
	}

	cc.HandleScroll(0, -1)
	if !approxEqual(cc.Camera().Scale(), 1.0, epsilon) {
		t.Errorf("scale after scroll down = %v, want 1", cc.Camera().Scale())
	}
}

func TestControllerIgnoresHorizontalScroll(t *testing.T) {
	cc := newTestController(t, ZoomLimits{})
	cc.HandleScroll(3, 0)
	if cc.Camera().Scale() != 1 {
		t.Errorf("scale = %v, want 1", cc.Camera().Scale())
	}
}

func TestControllerClampsAfterZoom(t *testing.T) {
	cc := newTestController(t, ZoomLimits{Min: 0.5, Max: 2})
	for range 20 {
		cc.HandleScroll(0, 1)
	}
	if cc.Camera().Scale() != 2 {
		t.Errorf("scale = %v, want clamped to 2", cc.Camera().Scale())
	}
	for range 40 {
		cc.HandleScroll(0, -1)
	}
	if cc.Camera().Scale() != 0.5 {
		t.Errorf("scale = %v, want clamped to 0.5", cc.Camera().Scale())
	}
}

func TestControllerAttach(t *testing.T) {
	w := newScriptedWindow(0, nil)
	cc := newTestController(t, ZoomLimits{})
	changes := 0
	cc.OnChange = func(*Camera2D) { changes++ }
	cc.Attach(w)
	w.onCursor(10, 20)
	w.onScroll(0, 2)
	if cc.Cursor() != (Vec2{10, 20}) {
		t.Errorf("Cursor() = %v, want (10,20)", cc.Cursor())
	}
	if changes != 1 {
		t.Errorf("OnChange calls = %d, want 1", changes)
	}
}

func TestControllerWheelStep(t *testing.T) {
	cc := newTestController(t, ZoomLimits{})
	cc.WheelStep = 2
	cc.HandleCursor(400, 300)
	cc.HandleScroll(0, 1)
	if cc.Camera().Scale() != 2 {
		t.Errorf("scale = %v, want 2", cc.Camera().Scale())
	}
	cc.WheelStep = 0.5 // invalid, falls back to DefaultWheelStep
	cc.HandleScroll(0, 1)
	if !approxEqual(cc.Camera().Scale(), 2*DefaultWheelStep, epsilon) {
		t.Errorf("scale = %v, want %v", cc.Camera().Scale(), 2*DefaultWheelStep)
	}
}

func TestControllerScrollTo(t *testing.T) {
	cc := newTestController(t, ZoomLimits{})
	cc.ScrollTo(Vec2{100, 200}, 1.0, ease.Linear)
	if !cc.Animating() {
		t.Fatal("Animating() = false after ScrollTo")
	}

	cc.Update(0.5)
	c := cc.Camera().Center()
	if !approxEqual(c.X, 50, 1.0) || !approxEqual(c.Y, 100, 1.0) {
		t.Errorf("scroll halfway: center = %v, want ~(50,100)", c)
	}

	cc.Update(0.5)
	c = cc.Camera().Center()
	if !approxEqual(c.X, 100, 1.0) || !approxEqual(c.Y, 200, 1.0) {
		t.Errorf("scroll end: center = %v, want ~(100,200)", c)
	}
	if cc.Animating() {
		t.Error("Animating() = true after the tween finished")
	}
}

func TestControllerZoomTo(t *testing.T) {
	cc := newTestController(t, ZoomLimits{Max: 4})
	cc.ZoomTo(10, 1.0, ease.Linear)
	cc.Update(1.0)
	if !approxEqual(cc.Camera().Scale(), 4, 1e-5) {
		t.Errorf("scale = %v, want clamped target 4", cc.Camera().Scale())
	}
	if cc.Camera().Center() != (Vec2{}) {
		t.Errorf("center moved to %v during ZoomTo", cc.Camera().Center())
	}
	if cc.Animating() {
		t.Error("Animating() = true after zoom finished")
	}
}

func TestControllerZoomToRejectsInvalid(t *testing.T) {
	cc := newTestController(t, ZoomLimits{})
	cc.ZoomTo(-1, 1.0, ease.Linear)
	if cc.Animating() {
		t.Error("ZoomTo(-1) started an animation")
	}
}

func TestControllerManualZoomCancelsZoomAnimation(t *testing.T) {
	cc := newTestController(t, ZoomLimits{})
	cc.ZoomTo(3, 1.0, ease.Linear)
	cc.HandleCursor(400, 300)
	cc.HandleScroll(0, 1)
	cc.Update(1.0)
	if !approxEqual(cc.Camera().Scale(), DefaultWheelStep, epsilon) {
		t.Errorf("scale = %v, want %v (animation cancelled)", cc.Camera().Scale(), DefaultWheelStep)
	}
}

func TestControllerPan(t *testing.T) {
	cc := newTestController(t, ZoomLimits{})
	cc.Pan(Vec2{10, 0})
	if cc.Camera().Center() != (Vec2{-10, 0}) {
		t.Errorf("center = %v, want (-10,0)", cc.Camera().Center())
	}
}

func TestControllerScrollZoomCancelsScrollAnimation(t *testing.T) {
	cc := newTestController(t, ZoomLimits{})
	cc.ScrollTo(Vec2{1000, 0}, 10, ease.Linear)
	cc.Update(0.001)

	cc.HandleCursor(700, 100)
	anchor := cc.Camera().ScreenToWorld(Vec2{700, 100})
	cc.HandleScroll(0, 1)
	if cc.Animating() {
		t.Error("Animating() = true after a wheel zoom")
	}

	cc.Update(0.001)
	if got := cc.Camera().WorldToScreen(anchor); !vecApproxEqual(got, Vec2{700, 100}, 1e-6) {
		t.Errorf("anchor moved to %v after Update, want (700,100)", got)
	}
}

func TestControllerPanCancelsScrollAnimation(t *testing.T) {
	cc := newTestController(t, ZoomLimits{})
	cc.ScrollTo(Vec2{500, 500}, 1, ease.Linear)
	cc.Pan(Vec2{20, 0})
	cc.Update(0.5)
	if c := cc.Camera().Center(); c != (Vec2{-20, 0}) {
		t.Errorf("center = %v, want (-20,0)", c)
	}
}
