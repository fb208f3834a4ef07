package kernel

import (
	"math"

	"kurye/internal/pkg/errs"
	"kurye/internal/pkg/guard"
)

// earthRadiusKm is the mean radius of the Earth used for great-circle distance.
const earthRadiusKm = 6371.0

const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0
)

// ErrGeoPointIsNotConstructed indicates that a GeoPoint was not created through NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError("GeoPoint must be created via NewGeoPoint")

// GeoPoint is a value object representing a geographic coordinate in
// decimal degrees. Latitude must be within [-90, 90] and longitude
// within [-180, 180].
//
// GeoPoint is immutable. The zero value is invalid and must be
// constructed through NewGeoPoint.
type GeoPoint struct {
	latitude  float64
	longitude float64

	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from latitude and longitude in decimal degrees.
// Returns errs.ErrValueIsOutOfRange when either coordinate is out of bounds
// or not a finite number.
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	if math.IsNaN(latitude) || math.IsInf(latitude, 0) ||
		latitude < minLatitude || latitude > maxLatitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("latitude", latitude, minLatitude, maxLatitude)
	}
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) ||
		longitude < minLongitude || longitude > maxLongitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("longitude", longitude, minLongitude, maxLongitude)
	}

	return GeoPoint{
		latitude:  latitude,
		longitude: longitude,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// IsEqual compares two points for exact coordinate equality.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.latitude == other.latitude && p.longitude == other.longitude
}

// DistanceKmTo returns the great-circle distance to other in kilometers,
// computed with the haversine formula.
func (p GeoPoint) DistanceKmTo(other GeoPoint) float64 {
	latFrom := degreesToRadians(p.latitude)
	latTo := degreesToRadians(other.latitude)
	deltaLat := degreesToRadians(other.latitude - p.latitude)
	deltaLon := degreesToRadians(other.longitude - p.longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(latFrom)*math.Cos(latTo)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// Validate checks that the GeoPoint was properly constructed.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
