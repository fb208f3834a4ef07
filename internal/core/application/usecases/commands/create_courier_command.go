package commands

import (
	"errors"

	"kurye/internal/core/domain/model/courier"
	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/pkg/guard"
)

var (
	ErrCreateCourierCommandIsNotConstructed = errors.New(
		"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
	)
	ErrNameIsRequired           = errors.New("name is required")
	ErrMaxActiveOrdersIsInvalid = errors.New("maxActiveOrders must be greater than 0")
)

// CreateCourierCommand registers a new courier in the fleet.
//
// Example:
//
//	hours, _ := courier.NewWorkingHours(9, 0, 21, 0)
//	location, _ := kernel.NewGeoPoint(41.0082, 28.9784)
//	cmd, err := NewCreateCourierCommand("Ayşe", courier.VehicleMotorcycle, location, hours, 3)
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register courier: %w", err)
//	}
//	fmt.Printf("registered courier %s", cmd.CourierID())
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID       kernel.UUID
	name            string
	vehicle         courier.VehicleType
	location        kernel.GeoPoint
	workingHours    courier.WorkingHours
	maxActiveOrders int

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a new courier.
// Automatically generates a unique ID for the courier.
func NewCreateCourierCommand(
	name string,
	vehicle courier.VehicleType,
	location kernel.GeoPoint,
	workingHours courier.WorkingHours,
	maxActiveOrders int,
) (CreateCourierCommand, error) {
	command := CreateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(kernel.NewUUID()),
		command.setName(name),
		command.setVehicle(vehicle),
		command.setLocation(location),
		command.setWorkingHours(workingHours),
		command.setMaxActiveOrders(maxActiveOrders),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCourierCommandIsNotConstructed if validation fails.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// CourierID returns the generated courier ID.
func (c CreateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Name returns the courier name from the command.
func (c CreateCourierCommand) Name() string {
	return c.name
}

// Vehicle returns the courier's vehicle type.
func (c CreateCourierCommand) Vehicle() courier.VehicleType {
	return c.vehicle
}

// Location returns the courier's starting location.
func (c CreateCourierCommand) Location() kernel.GeoPoint {
	return c.location
}

// WorkingHours returns the courier's daily shift window.
func (c CreateCourierCommand) WorkingHours() courier.WorkingHours {
	return c.workingHours
}

// MaxActiveOrders returns how many deliveries the courier may carry at once.
func (c CreateCourierCommand) MaxActiveOrders() int {
	return c.maxActiveOrders
}

func (c *CreateCourierCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}

func (c *CreateCourierCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCourierCommand) setVehicle(vehicle courier.VehicleType) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}

	c.vehicle = vehicle
	return nil
}

func (c *CreateCourierCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

func (c *CreateCourierCommand) setWorkingHours(hours courier.WorkingHours) error {
	if err := hours.Validate(); err != nil {
		return err
	}

	c.workingHours = hours
	return nil
}

func (c *CreateCourierCommand) setMaxActiveOrders(maxActiveOrders int) error {
	if maxActiveOrders <= 0 {
		return ErrMaxActiveOrdersIsInvalid
	}

	c.maxActiveOrders = maxActiveOrders
	return nil
}
