package wilhelm

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// WindowConfig describes the window a backend should open.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// ClearColor is a hex color ("#12212b") used to clear every frame.
	ClearColor string `yaml:"clear_color"`
	// PointSize is the renderer point size (minimum circle diameter).
	PointSize float64 `yaml:"point_size"`
	// ShowFPS draws an FPS/TPS overlay in the top-left corner.
	ShowFPS bool `yaml:"show_fps"`
	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// DefaultWindowConfig returns an 800x600 window with the dark blue clear
// color used by the examples.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Title:         "wilhelm",
		Width:         800,
		Height:        600,
		ClearColor:    "#12212b",
		PointSize:     1,
		ScreenshotDir: "screenshots",
	}
}

// LoadWindowConfig parses YAML over DefaultWindowConfig, so omitted keys keep
// their defaults.
func LoadWindowConfig(data []byte) (WindowConfig, error) {
	cfg := DefaultWindowConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return WindowConfig{}, fmt.Errorf("parse window config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return WindowConfig{}, err
	}
	return cfg, nil
}

// Validate checks the window size and clear color.
func (c WindowConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window config: size must be positive, got %dx%d", c.Width, c.Height)
	}
	if _, err := Hex(c.ClearColor); err != nil {
		return fmt.Errorf("window config: clear_color: %w", err)
	}
	if c.PointSize < 0 {
		return fmt.Errorf("window config: point_size must not be negative, got %g", c.PointSize)
	}
	return nil
}

// Clear returns the parsed clear color, or black if it does not parse.
func (c WindowConfig) Clear() Color {
	col, err := Hex(c.ClearColor)
	if err != nil {
		return ColorBlack
	}
	return col
}

// Waypoint is a named WGS84 location.
type Waypoint struct {
	Name string  `yaml:"name"`
	Lon  float64 `yaml:"lon"`
	Lat  float64 `yaml:"lat"`
}

// LonLat returns the waypoint as a (lon, lat) vector.
func (w Waypoint) LonLat() Vec2 { return Vec2{w.Lon, w.Lat} }

// Mercator projects the waypoint to Web Mercator meters.
func (w Waypoint) Mercator() (Vec2, error) {
	return WGS84ToMercator(w.LonLat())
}

type waypointFile struct {
	Waypoints []Waypoint `yaml:"waypoints"`
}

// LoadWaypoints parses a YAML document with a top-level "waypoints" list.
// Every waypoint must be projectable.
func LoadWaypoints(data []byte) ([]Waypoint, error) {
	var f waypointFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse waypoints: %w", err)
	}
	if len(f.Waypoints) == 0 {
		return nil, fmt.Errorf("parse waypoints: no waypoints")
	}
	for i, w := range f.Waypoints {
		if _, err := w.Mercator(); err != nil {
			return nil, fmt.Errorf("parse waypoints: #%d %q: %w", i, w.Name, err)
		}
	}
	return f.Waypoints, nil
}
