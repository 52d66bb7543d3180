package wilhelm

// ShapeStyle holds fill and stroke settings. Every field is independently
// optional; nil means unset. A style with neither fill nor stroke color is
// valid and draws nothing.
type ShapeStyle struct {
	Fill        *Color
	StrokeColor *Color
	StrokeWidth *float64
}

// FillStyle returns a style that only fills with c.
func FillStyle(c Color) ShapeStyle {
	return ShapeStyle{Fill: &c}
}

// StrokeStyle returns a style that only strokes with c at the given width.
func StrokeStyle(c Color, width float64) ShapeStyle {
	return ShapeStyle{StrokeColor: &c, StrokeWidth: &width}
}

// WithStroke returns a copy of s with the stroke color and width set.
func (s ShapeStyle) WithStroke(c Color, width float64) ShapeStyle {
	s.StrokeColor = &c
	s.StrokeWidth = &width
	return s
}

// HasFill reports whether a fill color is set.
func (s ShapeStyle) HasFill() bool { return s.Fill != nil }

// HasStroke reports whether a stroke color is set.
func (s ShapeStyle) HasStroke() bool { return s.StrokeColor != nil }

// StrokeWidthOr returns the stroke width, or def when unset.
func (s ShapeStyle) StrokeWidthOr(def float64) float64 {
	if s.StrokeWidth == nil {
		return def
	}
	return *s.StrokeWidth
}
