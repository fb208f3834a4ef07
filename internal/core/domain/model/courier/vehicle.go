package courier

import (
	"fmt"

	"kurye/internal/pkg/errs"
)

// VehicleType is the courier's vehicle. It drives the vehicle component
// of the delivery fee.
type VehicleType int

const (
	// VehicleUnknown represents an invalid or undefined vehicle type.
	VehicleUnknown VehicleType = iota

	// VehicleBicycle adds no vehicle bonus to the delivery fee.
	VehicleBicycle

	// VehicleMotorcycle adds a 5.00 vehicle bonus.
	VehicleMotorcycle

	// VehicleCar adds a 10.00 vehicle bonus.
	VehicleCar
)

func getVehicleTypeStrings() map[VehicleType]string {
	return map[VehicleType]string{
		VehicleUnknown:    "Unknown",
		VehicleBicycle:    "Bicycle",
		VehicleMotorcycle: "Motorcycle",
		VehicleCar:        "Car",
	}
}

// Validate checks if the VehicleType value is one of the defined vehicles.
func (v VehicleType) Validate() error {
	switch v {
	case VehicleBicycle, VehicleMotorcycle, VehicleCar:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("vehicleType is invalid", fmt.Errorf("%d is not a valid vehicle type", v))
	}
}

// String returns the human-readable name of the vehicle type.
func (v VehicleType) String() string {
	if str, ok := getVehicleTypeStrings()[v]; ok {
		return str
	}
	return "Unknown"
}

// FeeBonus returns the vehicle component of the delivery fee.
func (v VehicleType) FeeBonus() float64 {
	switch v {
	case VehicleMotorcycle:
		return 5
	case VehicleCar:
		return 10
	default:
		return 0
	}
}
