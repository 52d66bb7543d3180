package wilhelm

import "errors"

var (
	// ErrInvalidScale is returned when a camera scale is zero, negative or
	// not finite.
	ErrInvalidScale = errors.New("wilhelm: camera scale must be positive and finite")
	// ErrInvalidZoomFactor is returned by ZoomAt for a non-positive or
	// non-finite factor.
	ErrInvalidZoomFactor = errors.New("wilhelm: zoom factor must be positive and finite")
	// ErrLatitudeOutOfRange is returned when a latitude is outside the open
	// interval (-90, 90) or a coordinate is not finite.
	ErrLatitudeOutOfRange = errors.New("wilhelm: latitude outside (-90, 90)")

	ErrNilWindow      = errors.New("wilhelm: nil window")
	ErrNilRenderer    = errors.New("wilhelm: nil renderer")
	ErrAlreadyRunning = errors.New("wilhelm: app is already running")
	ErrStopped        = errors.New("wilhelm: app has stopped")
	// ErrShapesFrozen is returned when shapes are added after Run started.
	ErrShapesFrozen = errors.New("wilhelm: shape set is fixed once the app runs")
)
