package queries

import (
	"errors"
	"time"

	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/pkg/guard"
)

var (
	ErrGetOrderCourierHistoryQueryIsNotConstructed = errors.New(
		"GetOrderCourierHistoryQuery must be created via NewGetOrderCourierHistoryQuery constructor",
	)
)

// GetOrderCourierHistoryQuery retrieves every assignment attempt an
// order went through, including rejected offers. Support teams use it
// to answer "why did this order take so long".
type GetOrderCourierHistoryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderCourierHistoryQuery creates a query for the order's
// assignment audit trail.
func NewGetOrderCourierHistoryQuery(orderID kernel.UUID) (GetOrderCourierHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderCourierHistoryQuery{}, err
	}

	return GetOrderCourierHistoryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderCourierHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderCourierHistoryQueryIsNotConstructed)
}

// OrderID returns the order whose history is requested.
func (q GetOrderCourierHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderCourierHistoryQueryResponse is one assignment attempt in the
// order's trail.
type GetOrderCourierHistoryQueryResponse struct {
	AssignmentID kernel.UUID
	CourierID    kernel.UUID
	CourierName  string

	Status       int
	RejectReason string

	AssignedAt  time.Time
	RespondedAt *time.Time

	FeeTotal float64
	Tip      float64
}
