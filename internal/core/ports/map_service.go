package ports

import (
	"context"

	"kurye/internal/core/domain/model/kernel"
)

// DistanceStatus says how a road-distance lookup went. The outcome is an
// explicit value rather than an error or a magic number so callers must
// decide what to do with a degraded result.
type DistanceStatus int

const (
	// DistanceOK means Km carries a road distance from the provider.
	DistanceOK DistanceStatus = iota

	// DistanceUnavailable means the provider could not be reached or
	// returned an error. Callers fall back to the great-circle distance
	// and skip checks that would punish the customer for an estimate.
	DistanceUnavailable

	// DistanceMisconfigured means the integration itself is broken, for
	// example a missing API key. Operationally an alert, behaviorally the
	// same fallback as DistanceUnavailable.
	DistanceMisconfigured
)

// String returns the human-readable name of the status.
func (s DistanceStatus) String() string {
	switch s {
	case DistanceOK:
		return "OK"
	case DistanceUnavailable:
		return "Unavailable"
	case DistanceMisconfigured:
		return "Misconfigured"
	default:
		return "Unknown"
	}
}

// RoadDistance is the result of a road-distance lookup. Km is only
// meaningful when Status is DistanceOK.
type RoadDistance struct {
	Km     float64
	Status DistanceStatus
}

// MapService resolves real road distances between two points through an
// external routing provider.
type MapService interface {
	// RoadDistance returns the road distance from from to to. It never
	// returns an error: provider failures are reported in the Status
	// field so degradation is always an explicit, visible branch.
	RoadDistance(ctx context.Context, from, to kernel.GeoPoint) RoadDistance
}
