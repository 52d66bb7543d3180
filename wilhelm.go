package wilhelm

import "math"

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{X: x, Y: y}.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

// Div returns v divided by k. The caller guarantees k != 0.
func (v Vec2) Div(k float64) Vec2 {
	return Vec2{v.X / k, v.Y / k}
}

// Mul returns the component-wise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Lerp interpolates between v (t=0) and o (t=1).
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Rect is an axis-aligned box in screen or world units, Y down.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromPoints returns the smallest Rect holding every point.
func RectFromPoints(pts ...Vec2) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo = Vec2{math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)}
		hi = Vec2{math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)}
	}
	return Rect{X: lo.X, Y: lo.Y, Width: hi.X - lo.X, Height: hi.Y - lo.Y}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 { return Vec2{r.X + r.Width, r.Y + r.Height} }

// Pad grows r by d on every side.
func (r Rect) Pad(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
}

// Contains reports whether p lies in r, edges included.
func (r Rect) Contains(p Vec2) bool {
	m := r.Max()
	return p.X >= r.X && p.Y >= r.Y && p.X <= m.X && p.Y <= m.Y
}

// Intersects reports whether r and o overlap. Touching edges count.
func (r Rect) Intersects(o Rect) bool {
	rm, om := r.Max(), o.Max()
	return r.X <= om.X && o.X <= rm.X && r.Y <= om.Y && o.Y <= rm.Y
}

// ShapeType identifies the variant of a ShapeKind.
type ShapeType uint8

const (
	ShapeCircle    ShapeType = iota // filled/stroked circle around the position
	ShapeRectangle                  // axis-aligned box anchored at its top-left corner
	ShapeTriangle                   // three vertex offsets from the position
	ShapeText                       // a single run of text drawn with a TTF font
)

// String returns the lower-case name of the shape type.
func (t ShapeType) String() string {
	switch t {
	case ShapeCircle:
		return "circle"
	case ShapeRectangle:
		return "rectangle"
	case ShapeTriangle:
		return "triangle"
	case ShapeText:
		return "text"
	default:
		return "unknown"
	}
}

// AppState is the lifecycle state of an App.
type AppState uint8

const (
	StateInitialized AppState = iota // constructed, Run not yet called
	StateRunning                     // inside Run, frames are being produced
	StateStopped                     // the window requested close; terminal
)

// String returns the state name.
func (s AppState) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
