package ebitengine

import (
	"errors"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/wilhelmgfx/wilhelm"
)

var _ wilhelm.Renderer = (*Renderer)(nil)

// Renderer draws wilhelm shapes into the frame of a Window. Draw calls made
// outside a frame are dropped.
type Renderer struct {
	win       *Window
	start     time.Time
	pointSize float64
	fonts     *fontCache
	white     *ebiten.Image
}

// NewRenderer creates a renderer for w.
func NewRenderer(w *Window) (*Renderer, error) {
	if w == nil {
		return nil, errors.New("ebitengine: renderer needs a window")
	}
	return &Renderer{
		win:       w,
		start:     time.Now(),
		pointSize: w.cfg.PointSize,
		fonts:     newFontCache(),
	}, nil
}

// Time returns monotonic seconds since the renderer was created.
func (r *Renderer) Time() float64 {
	return time.Since(r.start).Seconds()
}

// SetPointSize sets the minimum on-screen diameter of circles.
func (r *Renderer) SetPointSize(size float64) {
	r.pointSize = size
}

// PointSize returns the current point size.
func (r *Renderer) PointSize() float64 { return r.pointSize }

// WindowSize returns the window's current size in pixels.
func (r *Renderer) WindowSize() (width, height int) {
	return r.win.Size()
}

// DrawCircle draws a circle centered at pos.
func (r *Renderer) DrawCircle(pos wilhelm.Vec2, c wilhelm.Circle, style wilhelm.ShapeStyle) {
	dst := r.win.screen
	radius := circleRadius(c.Radius, r.pointSize)
	if dst == nil || !r.onScreen(circleBounds(pos, radius, style)) {
		return
	}
	x, y := float32(pos.X), float32(pos.Y)
	if style.Fill != nil {
		vector.FillCircle(dst, x, y, radius, style.Fill.NRGBA(), true)
	}
	if style.StrokeColor != nil {
		vector.StrokeCircle(dst, x, y, radius, float32(style.StrokeWidthOr(1)), style.StrokeColor.NRGBA(), true)
	}
}

// circleRadius applies the point size as a minimum diameter.
func circleRadius(radius, pointSize float64) float32 {
	if floor := pointSize / 2; radius < floor {
		radius = floor
	}
	return float32(radius)
}

// DrawRectangle draws a rectangle with its top-left corner at pos.
func (r *Renderer) DrawRectangle(pos wilhelm.Vec2, rc wilhelm.Rectangle, style wilhelm.ShapeStyle) {
	dst := r.win.screen
	if dst == nil || !r.onScreen(rectangleBounds(pos, rc, style)) {
		return
	}
	x, y := float32(pos.X), float32(pos.Y)
	w, h := float32(rc.Width), float32(rc.Height)
	if style.Fill != nil {
		vector.FillRect(dst, x, y, w, h, style.Fill.NRGBA(), true)
	}
	if style.StrokeColor != nil {
		vector.StrokeRect(dst, x, y, w, h, float32(style.StrokeWidthOr(1)), style.StrokeColor.NRGBA(), true)
	}
}

// DrawTriangle draws a triangle whose vertices are offsets from pos.
func (r *Renderer) DrawTriangle(pos wilhelm.Vec2, t wilhelm.Triangle, style wilhelm.ShapeStyle) {
	dst := r.win.screen
	pts := trianglePoints(pos, t)
	if dst == nil || !r.onScreen(wilhelm.RectFromPoints(pts[:]...).Pad(strokePad(style))) {
		return
	}
	if style.Fill != nil {
		verts := triangleVertices(pts, *style.Fill)
		var op ebiten.DrawTrianglesOptions
		op.AntiAlias = true
		dst.DrawTriangles(verts[:], triangleIndices, r.whiteImage(), &op)
	}
	if style.StrokeColor != nil {
		width := float32(style.StrokeWidthOr(1))
		clr := style.StrokeColor.NRGBA()
		for i := range pts {
			a, b := pts[i], pts[(i+1)%3]
			vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
		}
	}
}

// onScreen reports whether bounds overlap the window. Shapes entirely
// outside are skipped.
func (r *Renderer) onScreen(bounds wilhelm.Rect) bool {
	w, h := r.win.Size()
	return windowRect(w, h).Intersects(bounds)
}

func windowRect(width, height int) wilhelm.Rect {
	return wilhelm.Rect{Width: float64(width), Height: float64(height)}
}

// strokePad is how far a stroke reaches outside the outline.
func strokePad(style wilhelm.ShapeStyle) float64 {
	if style.StrokeColor == nil {
		return 0
	}
	return style.StrokeWidthOr(1) / 2
}

func circleBounds(center wilhelm.Vec2, radius float32, style wilhelm.ShapeStyle) wilhelm.Rect {
	rad := float64(radius)
	return wilhelm.Rect{X: center.X - rad, Y: center.Y - rad, Width: 2 * rad, Height: 2 * rad}.Pad(strokePad(style))
}

// rectangleBounds normalizes negative sizes so culling matches what vector
// draws.
func rectangleBounds(pos wilhelm.Vec2, rc wilhelm.Rectangle, style wilhelm.ShapeStyle) wilhelm.Rect {
	far := pos.Add(wilhelm.Vec2{X: rc.Width, Y: rc.Height})
	return wilhelm.RectFromPoints(pos, far).Pad(strokePad(style))
}

var triangleIndices = []uint16{0, 1, 2}

func trianglePoints(pos wilhelm.Vec2, t wilhelm.Triangle) [3]wilhelm.Vec2 {
	var pts [3]wilhelm.Vec2
	for i, v := range t.Vertices {
		pts[i] = pos.Add(v)
	}
	return pts
}

// triangleVertices builds untextured vertices sampling the center of the
// white image, colored with straight alpha.
func triangleVertices(pts [3]wilhelm.Vec2, c wilhelm.Color) [3]ebiten.Vertex {
	var verts [3]ebiten.Vertex
	for i, p := range pts {
		verts[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(c.R),
			ColorG: float32(c.G),
			ColorB: float32(c.B),
			ColorA: float32(c.A),
		}
	}
	return verts
}

// whiteImage returns a lazily created white image. Sampling its center
// pixel avoids filtering against the transparent border.
func (r *Renderer) whiteImage() *ebiten.Image {
	if r.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return r.white
}

// DrawText draws t with its first line's top-left corner at pos using the
// fill color. Text has no stroke; without a fill nothing is drawn.
func (r *Renderer) DrawText(pos wilhelm.Vec2, t wilhelm.Text, style wilhelm.ShapeStyle) {
	dst := r.win.screen
	if dst == nil || style.Fill == nil || t.Content == "" {
		return
	}
	face := r.fonts.face(t.FontPath, t.Size)
	lh := lineHeight(face)
	w, h := text.Measure(t.Content, face, lh)
	if !r.onScreen(wilhelm.Rect{X: pos.X, Y: pos.Y, Width: w, Height: h}) {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(style.Fill.NRGBA())
	op.LineSpacing = lh
	text.Draw(dst, t.Content, face, op)
}

// MeasureText returns the size t occupies when drawn, for laying out labels
// relative to other shapes.
func (r *Renderer) MeasureText(t wilhelm.Text) (width, height float64) {
	face := r.fonts.face(t.FontPath, t.Size)
	return text.Measure(t.Content, face, lineHeight(face))
}

func lineHeight(face *text.GoTextFace) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}
