package services_test

import (
	"fmt"
	"testing"
	"time"

	"kurye/internal/core/domain/model/courier"
	"kurye/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// offPeak is well outside the 18:00-22:59 evening window.
var offPeak = time.Date(2025, 3, 14, 11, 0, 0, 0, time.UTC)

func TestDeliveryFeeCalculator_DistanceTiers(t *testing.T) {
	calculator := services.NewDeliveryFeeCalculator()

	testCases := []struct {
		distanceKm float64
		expected   float64
	}{
		{0, 15},
		{1.5, 15},
		{2, 15},
		{3, 20},
		{5, 30},
		{7, 46},
		{10, 70},
		{12, 90},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%.1fkm", tc.distanceKm), func(t *testing.T) {
			// When
			breakdown, err := calculator.Calculate(tc.distanceKm, courier.VehicleBicycle, offPeak)

			// Then
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, breakdown.Total, 1e-9)
			assert.InDelta(t, 15, breakdown.Base, 1e-9)
			assert.Zero(t, breakdown.VehicleBonus)
			assert.Zero(t, breakdown.TimeBonus)
		})
	}
}

func TestDeliveryFeeCalculator_VehicleBonus(t *testing.T) {
	calculator := services.NewDeliveryFeeCalculator()

	testCases := []struct {
		name     string
		vehicle  courier.VehicleType
		expected float64
	}{
		{"bicycle", courier.VehicleBicycle, 46},
		{"motorcycle", courier.VehicleMotorcycle, 51},
		{"car", courier.VehicleCar, 56},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// When
			breakdown, err := calculator.Calculate(7, tc.vehicle, offPeak)

			// Then
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, breakdown.Total, 1e-9)
		})
	}
}

func TestDeliveryFeeCalculator_PeakHours(t *testing.T) {
	calculator := services.NewDeliveryFeeCalculator()
	day := func(hour int) time.Time {
		return time.Date(2025, 3, 14, hour, 30, 0, 0, time.UTC)
	}

	t.Run("evening_adds_twenty_percent_of_base", func(t *testing.T) {
		for _, hour := range []int{18, 19, 20, 21, 22} {
			// When
			breakdown, err := calculator.Calculate(1, courier.VehicleBicycle, day(hour))

			// Then
			require.NoError(t, err)
			assert.InDelta(t, 3, breakdown.TimeBonus, 1e-9, "hour %d", hour)
			assert.InDelta(t, 18, breakdown.Total, 1e-9, "hour %d", hour)
		}
	})

	t.Run("outside_the_window_no_bonus", func(t *testing.T) {
		for _, hour := range []int{0, 9, 12, 17, 23} {
			breakdown, err := calculator.Calculate(1, courier.VehicleBicycle, day(hour))

			require.NoError(t, err)
			assert.Zero(t, breakdown.TimeBonus, "hour %d", hour)
		}
	})
}

func TestDeliveryFeeCalculator_Monotonicity(t *testing.T) {
	calculator := services.NewDeliveryFeeCalculator()

	previous := 0.0
	for distance := 0.0; distance <= 25.0; distance += 0.25 {
		breakdown, err := calculator.Calculate(distance, courier.VehicleMotorcycle, offPeak)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, breakdown.Total, previous, "fee decreased at %.2f km", distance)
		previous = breakdown.Total
	}
}

func TestDeliveryFeeCalculator_Rejections(t *testing.T) {
	calculator := services.NewDeliveryFeeCalculator()

	t.Run("negative_distance", func(t *testing.T) {
		_, err := calculator.Calculate(-1, courier.VehicleBicycle, offPeak)
		require.Error(t, err)
	})

	t.Run("invalid_vehicle", func(t *testing.T) {
		_, err := calculator.Calculate(1, courier.VehicleUnknown, offPeak)
		require.Error(t, err)
	})
}
