package wilhelm

import (
	"math"
	"testing"
)

// --- Vec2 ---

func TestVec2Ops(t *testing.T) {
	a, b := V2(3, 4), V2(1, -2)
	if got := a.Add(b); got != (Vec2{4, 2}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vec2{2, 6}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Vec2{6, 8}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Div(2); got != (Vec2{1.5, 2}) {
		t.Errorf("Div = %v", got)
	}
	if got := a.Mul(b); got != (Vec2{3, -8}) {
		t.Errorf("Mul = %v", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := a.Lerp(b, 0.5); got != (Vec2{2, 1}) {
		t.Errorf("Lerp = %v", got)
	}
}

func TestVec2DivByZero(t *testing.T) {
	got := V2(1, -1).Div(0)
	if !math.IsInf(got.X, 1) || !math.IsInf(got.Y, -1) {
		t.Errorf("Div(0) = %v, want (+Inf,-Inf)", got)
	}
}

// --- Rect ---

func TestRectFromPoints(t *testing.T) {
	got := RectFromPoints(V2(96, 53), V2(104, 53), V2(100, 45))
	if got != (Rect{X: 96, Y: 45, Width: 8, Height: 8}) {
		t.Errorf("RectFromPoints = %+v", got)
	}
	if RectFromPoints() != (Rect{}) {
		t.Error("RectFromPoints() should be the zero Rect")
	}
}

func TestRectPadAndMax(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}.Pad(1.5)
	if r != (Rect{X: 8.5, Y: 18.5, Width: 33, Height: 43}) {
		t.Errorf("Pad = %+v", r)
	}
	if m := r.Max(); m != V2(41.5, 61.5) {
		t.Errorf("Max = %v", m)
	}
}

func TestRectContains(t *testing.T) {
	window := Rect{Width: 800, Height: 600}
	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"center", V2(400, 300), true},
		{"origin", V2(0, 0), true},
		{"bottom-right corner", V2(800, 600), true},
		{"left of window", V2(-1, 300), false},
		{"below window", V2(400, 601), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := window.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	window := Rect{Width: 800, Height: 600}
	tests := []struct {
		name   string
		bounds Rect
		want   bool
	}{
		{"inside", Rect{100, 100, 20, 20}, true},
		{"straddles left edge", Rect{-15, 290, 30, 30}, true},
		{"covers window", Rect{-1e6, -1e6, 2e6, 2e6}, true},
		{"touches right edge", Rect{800, 0, 10, 10}, true},
		{"right of window", Rect{801, 0, 10, 10}, false},
		{"above window", Rect{0, -50, 10, 49}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := window.Intersects(tt.bounds); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.bounds, got, tt.want)
			}
			if got := tt.bounds.Intersects(window); got != tt.want {
				t.Errorf("reverse Intersects(%+v) = %v, want %v", tt.bounds, got, tt.want)
			}
		})
	}
}

func TestAppStateString(t *testing.T) {
	tests := map[AppState]string{
		StateInitialized: "initialized",
		StateRunning:     "running",
		StateStopped:     "stopped",
		AppState(7):      "unknown",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("AppState(%d).String() = %q, want %q", s, s.String(), want)
		}
	}
}

// --- Benchmarks ---

func BenchmarkWorldToScreen(b *testing.B) {
	cam := &Camera2D{center: Vec2{950857, 6003812}, scale: 0.002, viewport: Vec2{800, 600}}
	p := Vec2{949000, 6001000}
	b.ReportAllocs()
	for b.Loop() {
		_ = cam.WorldToScreen(p)
	}
}

func BenchmarkRectIntersects(b *testing.B) {
	window := Rect{Width: 800, Height: 600}
	shape := Rect{X: 790, Y: 10, Width: 20, Height: 20}
	b.ReportAllocs()
	for b.Loop() {
		_ = window.Intersects(shape)
	}
}
