package wilhelm

import "math"

// ZoomLimits is a min/max scale policy. The camera never clamps itself;
// callers apply limits after ZoomAt returns.
type ZoomLimits struct {
	Min, Max float64
}

// RelativeZoomLimits returns limits expressed as multiples of a base scale,
// e.g. RelativeZoomLimits(initial, 0.01, 100).
func RelativeZoomLimits(base, minFactor, maxFactor float64) ZoomLimits {
	return ZoomLimits{Min: base * minFactor, Max: base * maxFactor}
}

// Clamp limits scale to [Min, Max]. A zero bound is treated as unset.
func (l ZoomLimits) Clamp(scale float64) float64 {
	if l.Min > 0 {
		scale = math.Max(scale, l.Min)
	}
	if l.Max > 0 {
		scale = math.Min(scale, l.Max)
	}
	return scale
}

// Apply clamps the camera's scale in place. The center is not adjusted, so a
// clamped zoom-at-cursor may drift by the clamped fraction, as it does in a
// plain "zoom then clamp" sequence.
func (l ZoomLimits) Apply(c *Camera2D) {
	if s := l.Clamp(c.scale); s != c.scale {
		// Clamp of a valid scale with positive bounds stays valid.
		_ = c.SetScale(s)
	}
}
