package wilhelm

import (
	"fmt"
	"math"
)

// Camera2D maps between world space and screen space. The world point Center
// is drawn at the middle of the viewport and world distances are multiplied
// by Scale (larger scale = zoomed in).
//
// Scale is never clamped by the camera itself; min/max zoom is a policy the
// caller applies after ZoomAt (see ZoomLimits).
type Camera2D struct {
	center   Vec2
	scale    float64
	viewport Vec2
}

// NewCamera2D creates a camera centered on center with the given scale and a
// viewport of viewport.X by viewport.Y pixels.
func NewCamera2D(center Vec2, scale float64, viewport Vec2) (*Camera2D, error) {
	if !validScale(scale) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidScale, scale)
	}
	return &Camera2D{center: center, scale: scale, viewport: viewport}, nil
}

func validScale(s float64) bool {
	return s > 0 && !math.IsInf(s, 0)
}

// Center returns the world-space point at the middle of the viewport.
func (c *Camera2D) Center() Vec2 { return c.center }

// Scale returns the world-to-pixel scale factor.
func (c *Camera2D) Scale() float64 { return c.scale }

// Viewport returns the viewport size in pixels.
func (c *Camera2D) Viewport() Vec2 { return c.viewport }

// SetCenter moves the camera to the given world-space point.
func (c *Camera2D) SetCenter(center Vec2) {
	c.center = center
}

// SetViewport updates the viewport size, e.g. after a window resize.
func (c *Camera2D) SetViewport(viewport Vec2) {
	c.viewport = viewport
}

// SetScale replaces the scale. Non-positive or non-finite values are rejected
// and leave the camera unchanged.
func (c *Camera2D) SetScale(scale float64) error {
	if !validScale(scale) {
		return fmt.Errorf("%w: %g", ErrInvalidScale, scale)
	}
	c.scale = scale
	return nil
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera2D) WorldToScreen(p Vec2) Vec2 {
	return p.Sub(c.center).Scale(c.scale).Add(c.viewport.Scale(0.5))
}

// ScreenToWorld converts screen coordinates to world coordinates. It is the
// exact inverse of WorldToScreen. Panics on a camera whose scale is not
// positive, which can only happen for a zero-value Camera2D.
func (c *Camera2D) ScreenToWorld(p Vec2) Vec2 {
	c.mustBeValid("ScreenToWorld")
	return p.Sub(c.viewport.Scale(0.5)).Div(c.scale).Add(c.center)
}

// ZoomAt multiplies the scale by factor while keeping the world point under
// screenPoint fixed on screen.
//
// A non-positive or non-finite factor returns ErrInvalidZoomFactor, and a
// resulting scale that underflows to zero or overflows returns
// ErrInvalidScale; in both cases the camera is left unchanged.
func (c *Camera2D) ZoomAt(factor float64, screenPoint Vec2) error {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidZoomFactor, factor)
	}
	c.mustBeValid("ZoomAt")
	newScale := c.scale * factor
	if !validScale(newScale) {
		return fmt.Errorf("%w: %g * %g", ErrInvalidScale, c.scale, factor)
	}
	worldBefore := c.ScreenToWorld(screenPoint)
	c.scale = newScale
	// center = worldBefore - (screenPoint - viewport/2) / newScale
	c.center = worldBefore.Sub(screenPoint.Sub(c.viewport.Scale(0.5)).Div(newScale))
	return nil
}

// Pan moves the view by a screen-space delta: content under the cursor
// follows a drag of delta pixels.
func (c *Camera2D) Pan(delta Vec2) {
	c.mustBeValid("Pan")
	c.center = c.center.Sub(delta.Div(c.scale))
}

// VisibleBounds returns the world-space rectangle visible through the
// viewport.
func (c *Camera2D) VisibleBounds() Rect {
	return RectFromPoints(c.ScreenToWorld(Vec2{}), c.ScreenToWorld(c.viewport))
}

// mustBeValid panics when the scale precondition is broken. Valid cameras
// only come from NewCamera2D and SetScale, so this trips on zero values.
func (c *Camera2D) mustBeValid(op string) {
	if !validScale(c.scale) {
		panic(fmt.Sprintf("wilhelm: %s on camera with scale %g (use NewCamera2D)", op, c.scale))
	}
}
