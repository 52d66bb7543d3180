package wilhelm

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultWheelStep is the zoom factor applied per scroll-wheel notch.
const DefaultWheelStep = 1.1

// cameraAnim holds active scroll-to and zoom-to tweens.
type cameraAnim struct {
	tweenX, tweenY *gween.Tween
	tweenZoom      *gween.Tween
	doneX, doneY   bool
	doneZoom       bool
}

// CameraController is application-owned camera state shared between input
// callbacks (scroll, cursor) and the pre-render callback. Create one during
// setup, Attach it to the window, and read Camera() each frame.
type CameraController struct {
	camera *Camera2D
	cursor Vec2

	// Limits is applied after every zoom. The zero value disables clamping.
	Limits ZoomLimits
	// WheelStep is the zoom factor per scroll notch (DefaultWheelStep if <= 1).
	WheelStep float64
	// OnChange, if set, is called after the camera moved or zoomed.
	OnChange func(c *Camera2D)

	anim *cameraAnim
}

// NewCameraController wraps camera with the given zoom limits.
func NewCameraController(camera *Camera2D, limits ZoomLimits) *CameraController {
	return &CameraController{camera: camera, Limits: limits, WheelStep: DefaultWheelStep}
}

// Camera returns the controlled camera.
func (cc *CameraController) Camera() *Camera2D { return cc.camera }

// Cursor returns the last reported cursor position in screen space.
func (cc *CameraController) Cursor() Vec2 { return cc.cursor }

// Attach registers the controller's scroll and cursor handlers on w.
func (cc *CameraController) Attach(w Window) {
	w.OnCursorPosition(cc.HandleCursor)
	w.OnScroll(cc.HandleScroll)
}

// HandleCursor records the cursor position used as the zoom anchor.
func (cc *CameraController) HandleCursor(x, y float64) {
	cc.cursor = Vec2{x, y}
}

// HandleScroll zooms toward the cursor, one WheelStep per notch direction,
// then applies Limits. A zero vertical offset is ignored.
func (cc *CameraController) HandleScroll(_, dy float64) {
	if dy == 0 {
		return
	}
	step := cc.WheelStep
	if step <= 1 {
		step = DefaultWheelStep
	}
	factor := step
	if dy < 0 {
		factor = 1 / step
	}
	cc.ZoomAt(factor, cc.cursor)
}

// ZoomAt zooms the camera around a screen point and clamps the result. Any
// running animation is cancelled so the point under the cursor stays put.
func (cc *CameraController) ZoomAt(factor float64, screenPoint Vec2) {
	if err := cc.camera.ZoomAt(factor, screenPoint); err != nil {
		Logger().Warn("zoom rejected", "err", err)
		return
	}
	cc.cancelAnim()
	cc.Limits.Apply(cc.camera)
	cc.changed()
}

// Pan moves the view by a screen-space delta, cancelling any animation.
func (cc *CameraController) Pan(delta Vec2) {
	cc.camera.Pan(delta)
	cc.cancelAnim()
	cc.changed()
}

// cancelAnim drops scroll and zoom tweens. Manual input moves both center
// and scale, so a tween left running would overwrite them on the next Update.
func (cc *CameraController) cancelAnim() {
	cc.anim = nil
}

// ScrollTo animates the camera center to target over duration seconds.
func (cc *CameraController) ScrollTo(target Vec2, duration float32, easeFn ease.TweenFunc) {
	a := cc.ensureAnim()
	c := cc.camera.Center()
	a.tweenX = gween.New(float32(c.X), float32(target.X), duration, easeFn)
	a.tweenY = gween.New(float32(c.Y), float32(target.Y), duration, easeFn)
	a.doneX, a.doneY = false, false
}

// ZoomTo animates the scale to the given value (clamped to Limits) over
// duration seconds, keeping the center fixed.
func (cc *CameraController) ZoomTo(scale float64, duration float32, easeFn ease.TweenFunc) {
	if !validScale(scale) {
		Logger().Warn("zoom target rejected", "scale", scale)
		return
	}
	a := cc.ensureAnim()
	a.tweenZoom = gween.New(float32(cc.camera.Scale()), float32(cc.Limits.Clamp(scale)), duration, easeFn)
	a.doneZoom = false
}

// Animating reports whether a scroll or zoom animation is in progress.
func (cc *CameraController) Animating() bool {
	return cc.anim != nil
}

// Update advances animations by dt seconds. Call it from the pre-render
// callback.
func (cc *CameraController) Update(dt float32) {
	a := cc.anim
	if a == nil {
		return
	}
	center := cc.camera.Center()
	if !a.doneX && a.tweenX != nil {
		v, done := a.tweenX.Update(dt)
		center.X = float64(v)
		a.doneX = done
	}
	if !a.doneY && a.tweenY != nil {
		v, done := a.tweenY.Update(dt)
		center.Y = float64(v)
		a.doneY = done
	}
	cc.camera.SetCenter(center)
	if !a.doneZoom && a.tweenZoom != nil {
		v, done := a.tweenZoom.Update(dt)
		s := math.Max(float64(v), math.SmallestNonzeroFloat32)
		if err := cc.camera.SetScale(s); err != nil {
			done = true
		}
		a.doneZoom = done
	}
	if (a.doneX || a.tweenX == nil) && (a.doneY || a.tweenY == nil) && (a.doneZoom || a.tweenZoom == nil) {
		cc.anim = nil
	}
	cc.changed()
}

func (cc *CameraController) ensureAnim() *cameraAnim {
	if cc.anim == nil {
		cc.anim = &cameraAnim{doneX: true, doneY: true, doneZoom: true}
	}
	return cc.anim
}

func (cc *CameraController) changed() {
	if cc.OnChange != nil {
		cc.OnChange(cc.camera)
	}
}
