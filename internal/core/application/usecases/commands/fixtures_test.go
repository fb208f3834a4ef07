package commands_test

import (
	"testing"
	"time"

	"kurye/internal/core/domain/model/assignment"
	"kurye/internal/core/domain/model/courier"
	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/core/domain/model/order"
	"kurye/internal/core/domain/model/vendor"

	"github.com/stretchr/testify/require"
)

// testNow is a Monday afternoon, outside peak hours and inside every
// fixture courier's shift.
var testNow = time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

func testPoint(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return point
}

func newTestVendor(t *testing.T) *vendor.Vendor {
	t.Helper()
	v, err := vendor.NewVendor(
		kernel.NewUUID(),
		"Kadıköy Lokantası",
		vendor.TypeRestaurant,
		testPoint(t, 41.0082, 28.9784),
		10,
		0,
	)
	require.NoError(t, err)
	return v
}

func newTestCourier(t *testing.T, location kernel.GeoPoint) *courier.Courier {
	t.Helper()
	hours, err := courier.NewWorkingHours(0, 0, 0, 0)
	require.NoError(t, err)

	c, err := courier.NewCourier(
		kernel.NewUUID(),
		"Mehmet",
		courier.VehicleMotorcycle,
		location,
		hours,
		3,
		testNow,
	)
	require.NoError(t, err)
	require.NoError(t, c.GoOnline())
	return c
}

// reloadCourier rebuilds a courier from its current state, the way a
// repository Get returns a fresh aggregate for the same row.
func reloadCourier(t *testing.T, c *courier.Courier) *courier.Courier {
	t.Helper()
	restored, err := courier.RestoreCourier(
		c.ID(), c.Name(), c.Vehicle(), c.Location(), c.LocatedAt(),
		c.Status(), c.WorkingHours(), c.MaxActiveOrders(), c.ActiveOrders(),
		c.Rating(), c.TotalDeliveries(), c.TotalEarnings(), c.Version(),
	)
	require.NoError(t, err)
	return restored
}

func newTestItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 120, 2)
	require.NoError(t, err)
	return []order.Item{item}
}

func newReadyOrder(t *testing.T, v *vendor.Vendor, address kernel.GeoPoint) *order.Order {
	t.Helper()
	ord, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), v.ID(), address, newTestItems(t), testNow,
	)
	require.NoError(t, err)
	require.NoError(t, ord.ApplyPricing(20, 0, nil, nil))
	require.NoError(t, ord.StartPreparing(testNow))
	require.NoError(t, ord.MarkReady(testNow))
	return ord
}

func newAssignedPair(t *testing.T, v *vendor.Vendor, address kernel.GeoPoint) (
	*order.Order, *courier.Courier, *assignment.OrderCourier,
) {
	t.Helper()
	ord := newReadyOrder(t, v, address)
	assignee := newTestCourier(t, v.Location())

	require.NoError(t, ord.Assign(testNow))
	require.NoError(t, assignee.MarkAssigned(testNow))

	record, err := assignment.NewOrderCourier(
		kernel.NewUUID(),
		ord.ID(),
		assignee.ID(),
		assignment.Fee{Base: 15, DistanceBonus: 10, VehicleBonus: 5, Total: 30},
		testNow,
	)
	require.NoError(t, err)
	return ord, assignee, record
}
