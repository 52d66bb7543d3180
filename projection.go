package wilhelm

import (
	"fmt"
	"math"
)

// Projection maps between world and screen coordinates.
type Projection interface {
	WorldToScreen(p Vec2) Vec2
	ScreenToWorld(p Vec2) Vec2
}

// EarthRadius is the WGS84 semi-major axis in meters, the sphere radius used
// by spherical Web Mercator (EPSG:3857).
const EarthRadius = 6378137.0

// MaxMercatorLatitude is the latitude at which Web Mercator becomes a square
// map, the conventional cut-off for tiled maps.
const MaxMercatorLatitude = 85.05112877980659

// WGS84ToMercator projects lonLat (X = longitude, Y = latitude, in degrees) to
// spherical Web Mercator meters. X is linear in longitude and Y is
// R*ln(tan(pi/4 + lat/2)), so one unit of X and one unit of Y cover the same
// ground distance at the equator.
//
// The latitude must lie strictly inside (-90, 90) and both coordinates must be
// finite; the transform diverges at the poles. Out-of-domain input returns
// ErrLatitudeOutOfRange.
func WGS84ToMercator(lonLat Vec2) (Vec2, error) {
	lon, lat := lonLat.X, lonLat.Y
	if math.IsNaN(lon) || math.IsInf(lon, 0) || math.IsNaN(lat) || !(lat > -90 && lat < 90) {
		return Vec2{}, fmt.Errorf("%w: lon=%g lat=%g", ErrLatitudeOutOfRange, lon, lat)
	}
	// atanh(sin(phi)) == ln(tan(pi/4 + phi/2)), exact at the equator.
	y := EarthRadius * math.Atanh(math.Sin(lat*math.Pi/180))
	if math.IsInf(y, 0) || math.IsNaN(y) {
		// Latitudes within float rounding of a pole.
		return Vec2{}, fmt.Errorf("%w: lon=%g lat=%g", ErrLatitudeOutOfRange, lon, lat)
	}
	return Vec2{X: EarthRadius * lon * math.Pi / 180, Y: y}, nil
}

// MustWGS84ToMercator is like WGS84ToMercator but panics on out-of-domain
// input. Use it for static datasets known to be valid.
func MustWGS84ToMercator(lonLat Vec2) Vec2 {
	m, err := WGS84ToMercator(lonLat)
	if err != nil {
		panic(err)
	}
	return m
}

// MercatorToWGS84 is the exact inverse of WGS84ToMercator.
func MercatorToWGS84(m Vec2) Vec2 {
	lon := m.X / EarthRadius * 180 / math.Pi
	lat := math.Asin(math.Tanh(m.Y/EarthRadius)) * 180 / math.Pi
	return Vec2{X: lon, Y: lat}
}

// ClampLatitude limits lat to [-MaxMercatorLatitude, MaxMercatorLatitude].
func ClampLatitude(lat float64) float64 {
	return math.Max(-MaxMercatorLatitude, math.Min(lat, MaxMercatorLatitude))
}
