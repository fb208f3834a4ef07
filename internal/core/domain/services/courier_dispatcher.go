package services

import (
	"errors"
	"sort"
	"time"

	"kurye/internal/core/domain/model/courier"
	"kurye/internal/core/domain/model/kernel"
)

const (
	// searchRadiusKm bounds how far from the pickup point couriers are
	// considered.
	searchRadiusKm = 10.0

	// locationMaxAge is how old a courier's last location report may be
	// before the courier is skipped as stale.
	locationMaxAge = 5 * time.Minute
)

// ErrNoCourierAvailable is returned when no candidate courier can take
// the order right now. Callers treat it as a retryable condition: the
// assignment job tries again on its next tick.
var ErrNoCourierAvailable = errors.New("no courier available")

// CourierDispatcher is a domain service that picks the best courier for
// a pickup point from a candidate list.
//
// A candidate qualifies when it can take an order at the given time
// (in rotation, under capacity, inside working hours), its last location
// report is fresh, and it is within the search radius of the pickup.
//
// Qualifying couriers are ranked by distance to the pickup, then by
// fewest active orders, then by highest rating. Ties after all three
// are broken by courier ID string order so the choice is deterministic.
type CourierDispatcher struct{}

// NewCourierDispatcher creates a new CourierDispatcher instance.
func NewCourierDispatcher() CourierDispatcher {
	return CourierDispatcher{}
}

// FindBestCourier returns the best qualifying courier for the pickup
// point, or ErrNoCourierAvailable when none qualifies.
func (d CourierDispatcher) FindBestCourier(
	pickup kernel.GeoPoint,
	candidates []*courier.Courier,
	now time.Time,
) (*courier.Courier, error) {
	if err := pickup.Validate(); err != nil {
		return nil, err
	}

	type ranked struct {
		courier    *courier.Courier
		distanceKm float64
	}

	var qualified []ranked
	for _, c := range candidates {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if !c.CanTake(now) || !c.IsLocationFresh(now, locationMaxAge) {
			continue
		}
		distance := c.Location().DistanceKmTo(pickup)
		if distance > searchRadiusKm {
			continue
		}
		qualified = append(qualified, ranked{courier: c, distanceKm: distance})
	}

	if len(qualified) == 0 {
		return nil, ErrNoCourierAvailable
	}

	sort.Slice(qualified, func(i, j int) bool {
		a, b := qualified[i], qualified[j]
		if a.distanceKm != b.distanceKm {
			return a.distanceKm < b.distanceKm
		}
		if a.courier.ActiveOrders() != b.courier.ActiveOrders() {
			return a.courier.ActiveOrders() < b.courier.ActiveOrders()
		}
		if a.courier.Rating() != b.courier.Rating() {
			return a.courier.Rating() > b.courier.Rating()
		}
		return a.courier.ID().String() < b.courier.ID().String()
	})

	return qualified[0].courier, nil
}
