package wilhelm

// ShapeKind is the closed set of drawable shapes: Circle, Rectangle, Triangle
// and Text. The interface is sealed by its unexported method, and each
// variant names its Renderer primitive in draw, so a new kind cannot compile
// without a matching primitive.
type ShapeKind interface {
	Type() ShapeType
	draw(r Renderer, pos Vec2, style ShapeStyle)
}

// Circle is centered on the shape position.
type Circle struct {
	Radius float64
}

// NewCircle returns a Circle with the given radius.
func NewCircle(radius float64) Circle { return Circle{Radius: radius} }

func (Circle) Type() ShapeType { return ShapeCircle }

func (c Circle) draw(r Renderer, pos Vec2, style ShapeStyle) { r.DrawCircle(pos, c, style) }

// Rectangle is anchored at its top-left corner.
type Rectangle struct {
	Width, Height float64
}

// NewRectangle returns a Rectangle of the given size.
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

func (Rectangle) Type() ShapeType { return ShapeRectangle }

func (rc Rectangle) draw(r Renderer, pos Vec2, style ShapeStyle) { r.DrawRectangle(pos, rc, style) }

// Triangle holds three vertex offsets relative to the shape position.
type Triangle struct {
	Vertices [3]Vec2
}

// NewTriangle returns a Triangle from three vertex offsets.
func NewTriangle(a, b, c Vec2) Triangle {
	return Triangle{Vertices: [3]Vec2{a, b, c}}
}

func (Triangle) Type() ShapeType { return ShapeTriangle }

func (t Triangle) draw(r Renderer, pos Vec2, style ShapeStyle) { r.DrawTriangle(pos, t, style) }

// Text is a run of text whose first line's top-left corner sits at the
// shape position. FontPath is passed through to the renderer untouched.
type Text struct {
	Content  string
	FontPath string
	Size     float64
}

// NewText returns a Text shape.
func NewText(content, fontPath string, size float64) Text {
	return Text{Content: content, FontPath: fontPath, Size: size}
}

func (Text) Type() ShapeType { return ShapeText }

func (t Text) draw(r Renderer, pos Vec2, style ShapeStyle) { r.DrawText(pos, t, style) }

// ShapeRenderable is a shape kind with its style and screen-space position.
// Kind and style are fixed at construction; only the position changes.
type ShapeRenderable struct {
	position Vec2
	kind     ShapeKind
	style    ShapeStyle
}

// NewShapeRenderable creates a renderable at (x, y).
func NewShapeRenderable(x, y float64, kind ShapeKind, style ShapeStyle) ShapeRenderable {
	return ShapeRenderable{position: Vec2{x, y}, kind: kind, style: style}
}

// Position returns the current screen-space position.
func (s *ShapeRenderable) Position() Vec2 { return s.position }

// SetPosition moves the shape. The renderer reads the position fresh on every
// draw.
func (s *ShapeRenderable) SetPosition(x, y float64) {
	s.position = Vec2{x, y}
}

// Kind returns the shape kind.
func (s *ShapeRenderable) Kind() ShapeKind { return s.kind }

// Style returns the shape style.
func (s *ShapeRenderable) Style() ShapeStyle { return s.style }

// Render issues the draw call matching the shape kind. A renderable built
// without a kind draws nothing.
func (s *ShapeRenderable) Render(r Renderer) {
	if s.kind == nil {
		return
	}
	s.kind.draw(r, s.position, s.style)
}
