package services_test

import (
	"testing"
	"time"

	"kurye/internal/core/domain/model/courier"
	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dispatchNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

// pickupPoint is the vendor location all distances are measured from.
func pickupPoint(t *testing.T) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(41.0, 29.0)
	require.NoError(t, err)
	return point
}

type courierSpec struct {
	lat, lon  float64
	rating    float64
	active    int
	locatedAt time.Time
	offline   bool
}

func buildCourier(t *testing.T, spec courierSpec) *courier.Courier {
	t.Helper()

	location, err := kernel.NewGeoPoint(spec.lat, spec.lon)
	require.NoError(t, err)
	hours, err := courier.NewWorkingHours(0, 0, 0, 0)
	require.NoError(t, err)

	locatedAt := spec.locatedAt
	if locatedAt.IsZero() {
		locatedAt = dispatchNow
	}

	status := courier.StatusAvailable
	if spec.active > 0 {
		status = courier.StatusBusy
	}
	if spec.offline {
		status = courier.StatusOffline
	}

	c, err := courier.RestoreCourier(
		kernel.NewUUID(), "Courier", courier.VehicleMotorcycle,
		location, locatedAt, status, hours,
		3, spec.active, spec.rating, 0, 0, 0,
	)
	require.NoError(t, err)
	return c
}

func TestCourierDispatcher_FindBestCourier(t *testing.T) {
	dispatcher := services.NewCourierDispatcher()

	t.Run("nearest_courier_wins", func(t *testing.T) {
		// Given one courier ~1.1 km away and one ~5.6 km away
		near := buildCourier(t, courierSpec{lat: 41.01, lon: 29.0, rating: 3})
		far := buildCourier(t, courierSpec{lat: 41.05, lon: 29.0, rating: 5})

		// When
		best, err := dispatcher.FindBestCourier(pickupPoint(t), []*courier.Courier{far, near}, dispatchNow)

		// Then
		require.NoError(t, err)
		assert.True(t, best.IsEqual(near))
	})

	t.Run("fewer_active_orders_breaks_distance_tie", func(t *testing.T) {
		// Given two couriers at the same coordinate
		idle := buildCourier(t, courierSpec{lat: 41.01, lon: 29.0, rating: 3, active: 0})
		loaded := buildCourier(t, courierSpec{lat: 41.01, lon: 29.0, rating: 5, active: 2})

		// When
		best, err := dispatcher.FindBestCourier(pickupPoint(t), []*courier.Courier{loaded, idle}, dispatchNow)

		// Then
		require.NoError(t, err)
		assert.True(t, best.IsEqual(idle))
	})

	t.Run("higher_rating_breaks_load_tie", func(t *testing.T) {
		// Given two equally placed, equally loaded couriers
		good := buildCourier(t, courierSpec{lat: 41.01, lon: 29.0, rating: 4.9})
		better := buildCourier(t, courierSpec{lat: 41.01, lon: 29.0, rating: 5})

		// When
		best, err := dispatcher.FindBestCourier(pickupPoint(t), []*courier.Courier{good, better}, dispatchNow)

		// Then
		require.NoError(t, err)
		assert.True(t, best.IsEqual(better))
	})

	t.Run("id_order_makes_full_tie_deterministic", func(t *testing.T) {
		// Given two indistinguishable couriers
		a := buildCourier(t, courierSpec{lat: 41.01, lon: 29.0, rating: 5})
		b := buildCourier(t, courierSpec{lat: 41.01, lon: 29.0, rating: 5})

		expected := a
		if b.ID().String() < a.ID().String() {
			expected = b
		}

		// When called with either ordering
		first, err := dispatcher.FindBestCourier(pickupPoint(t), []*courier.Courier{a, b}, dispatchNow)
		require.NoError(t, err)
		second, err := dispatcher.FindBestCourier(pickupPoint(t), []*courier.Courier{b, a}, dispatchNow)
		require.NoError(t, err)

		// Then the same courier wins both times
		assert.True(t, first.IsEqual(expected))
		assert.True(t, second.IsEqual(expected))
	})

	t.Run("skips_couriers_outside_search_radius", func(t *testing.T) {
		// Given a courier ~22 km away
		distant := buildCourier(t, courierSpec{lat: 41.2, lon: 29.0, rating: 5})

		// When
		_, err := dispatcher.FindBestCourier(pickupPoint(t), []*courier.Courier{distant}, dispatchNow)

		// Then
		require.ErrorIs(t, err, services.ErrNoCourierAvailable)
	})

	t.Run("skips_stale_locations", func(t *testing.T) {
		// Given a nearby courier whose last report is 10 minutes old
		stale := buildCourier(t, courierSpec{
			lat: 41.01, lon: 29.0, rating: 5,
			locatedAt: dispatchNow.Add(-10 * time.Minute),
		})

		// When
		_, err := dispatcher.FindBestCourier(pickupPoint(t), []*courier.Courier{stale}, dispatchNow)

		// Then
		require.ErrorIs(t, err, services.ErrNoCourierAvailable)
	})

	t.Run("skips_offline_couriers", func(t *testing.T) {
		offline := buildCourier(t, courierSpec{lat: 41.01, lon: 29.0, rating: 5, offline: true})

		_, err := dispatcher.FindBestCourier(pickupPoint(t), []*courier.Courier{offline}, dispatchNow)

		require.ErrorIs(t, err, services.ErrNoCourierAvailable)
	})

	t.Run("empty_candidate_list", func(t *testing.T) {
		_, err := dispatcher.FindBestCourier(pickupPoint(t), nil, dispatchNow)

		require.ErrorIs(t, err, services.ErrNoCourierAvailable)
	})
}
