// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/pkg/guard"
)

var (
	ErrGetCourierActiveOrdersQueryIsNotConstructed = errors.New(
		"GetCourierActiveOrdersQuery must be created via NewGetCourierActiveOrdersQuery constructor",
	)
)

// GetCourierActiveOrdersQuery retrieves the orders a courier is
// currently carrying or has been offered. Powers the courier app's
// task list.
type GetCourierActiveOrdersQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierActiveOrdersQuery creates a query for the courier's
// active workload.
func NewGetCourierActiveOrdersQuery(courierID kernel.UUID) (GetCourierActiveOrdersQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierActiveOrdersQuery{}, err
	}

	return GetCourierActiveOrdersQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierActiveOrdersQueryIsNotConstructed)
}

// CourierID returns the courier whose workload is requested.
func (q GetCourierActiveOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetCourierActiveOrdersQueryResponse is one active task in the
// courier's list: the assignment plus the order facts needed to act on
// it.
type GetCourierActiveOrdersQueryResponse struct {
	AssignmentID kernel.UUID
	OrderID      kernel.UUID

	AssignmentStatus int
	AssignedAt       time.Time

	DeliveryAddress kernel.GeoPoint
	OrderTotal      float64
	FeeTotal        float64
}
