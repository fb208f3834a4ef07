package services

import (
	"fmt"
	"time"

	"kurye/internal/core/domain/model/courier"
	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/pkg/errs"
)

const (
	baseFee = 15.0

	// Distance tier boundaries in kilometers and the per-km rates above them.
	shortTierEndKm  = 2.0
	mediumTierEndKm = 5.0
	longTierEndKm   = 10.0

	mediumTierRate  = 5.0
	longTierRate    = 8.0
	extremeTierRate = 10.0

	// Flat amounts for fully crossed tiers.
	mediumTierFlat = 15.0 // 3 km at 5.0
	longTierFlat   = 40.0 // 5 km at 8.0

	// Evening peak window, inclusive on both ends.
	peakStartHour = 18
	peakEndHour   = 22

	peakRate = 0.20
)

// FeeBreakdown itemizes a delivery fee. Total is the rounded sum of the
// components; the breakdown feeds courier earning records.
type FeeBreakdown struct {
	Base          float64
	DistanceBonus float64
	VehicleBonus  float64
	TimeBonus     float64
	Total         float64
}

// DeliveryFeeCalculator is a pure domain service computing the fee paid
// to a courier for one delivery. The caller supplies the time so the
// peak-hour component stays deterministic and testable.
//
// Fee model:
//   - base 15.00
//   - distance: free up to 2 km, then 5.00/km to 5 km, 8.00/km to 10 km,
//     and 10.00/km beyond
//   - vehicle: bicycle +0, motorcycle +5.00, car +10.00
//   - time: +20% of base between 18:00 and 22:59 local time
//
// The fee is monotone non-decreasing in distance.
type DeliveryFeeCalculator struct{}

// NewDeliveryFeeCalculator creates a new DeliveryFeeCalculator instance.
func NewDeliveryFeeCalculator() DeliveryFeeCalculator {
	return DeliveryFeeCalculator{}
}

// Calculate computes the fee breakdown for a delivery of the given road
// distance by the given vehicle at the given local time.
func (c DeliveryFeeCalculator) Calculate(distanceKm float64, vehicle courier.VehicleType, at time.Time) (FeeBreakdown, error) {
	if distanceKm < 0 {
		return FeeBreakdown{}, errs.NewValueIsInvalidErrorWithCause(
			"distanceKm is invalid",
			fmt.Errorf("%v is negative", distanceKm),
		)
	}
	if err := vehicle.Validate(); err != nil {
		return FeeBreakdown{}, err
	}

	breakdown := FeeBreakdown{
		Base:          baseFee,
		DistanceBonus: distanceBonus(distanceKm),
		VehicleBonus:  vehicle.FeeBonus(),
	}
	if hour := at.Hour(); hour >= peakStartHour && hour <= peakEndHour {
		breakdown.TimeBonus = baseFee * peakRate
	}

	breakdown.Total = kernel.RoundMoney(
		breakdown.Base + breakdown.DistanceBonus + breakdown.VehicleBonus + breakdown.TimeBonus,
	)
	return breakdown, nil
}

func distanceBonus(distanceKm float64) float64 {
	switch {
	case distanceKm <= shortTierEndKm:
		return 0
	case distanceKm <= mediumTierEndKm:
		return (distanceKm - shortTierEndKm) * mediumTierRate
	case distanceKm <= longTierEndKm:
		return mediumTierFlat + (distanceKm-mediumTierEndKm)*longTierRate
	default:
		return mediumTierFlat + longTierFlat + (distanceKm-longTierEndKm)*extremeTierRate
	}
}
