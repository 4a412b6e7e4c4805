package kernel

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ErrGeoPointIsNotConstructed is returned when validating a zero-value GeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError("geo point must be created via NewGeoPoint")

// GeoPoint is the last reported position of an agent working a job.
// Only the coordinates are stored; navigation is handled elsewhere.
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint validates that both coordinates are within WGS84 bounds.
//
// Example:
//
//	p, err := kernel.NewGeoPoint(52.52, 13.405)
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	p := GeoPoint{guard: guard.NewConstructorGuard()}

	if err := errors.Join(p.setLatitude(latitude), p.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.latitude, p.longitude)
}

func (p *GeoPoint) setLatitude(v float64) error {
	if v < MinLatitude || v > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", v, MinLatitude, MaxLatitude)
	}
	p.latitude = v
	return nil
}

func (p *GeoPoint) setLongitude(v float64) error {
	if v < MinLongitude || v > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", v, MinLongitude, MaxLongitude)
	}
	p.longitude = v
	return nil
}
