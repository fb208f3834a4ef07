package queries

import (
	"context"

	"kurye/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCourierActiveOrdersQueryHandler reads a courier's open assignments
// straight from the database. Uses direct SQL for read performance and
// to join assignment and order facts in one round trip.
type GetCourierActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierActiveOrdersQueryHandler creates a handler for courier
// workload queries.
func NewGetCourierActiveOrdersQueryHandler(db *gorm.DB) GetCourierActiveOrdersQueryHandler {
	return GetCourierActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns the courier's active assignments
// oldest first, each joined with the order it belongs to.
func (h GetCourierActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCourierActiveOrdersQuery,
) ([]GetCourierActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tasks := make([]GetCourierActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			oc.id,
			oc.order_id,
			oc.status,
			oc.assigned_at,
			oc.fee_total,
			o.address_lat,
			o.address_lng,
			o.total_amount
		FROM order_couriers oc
		JOIN orders o ON o.id = oc.order_id
		WHERE oc.courier_id = ? AND oc.active
		ORDER BY oc.assigned_at
	`, query.CourierID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var task GetCourierActiveOrdersQueryResponse
		var assignmentID, orderID uuid.UUID
		var lat, lng float64

		err = rows.Scan(
			&assignmentID,
			&orderID,
			&task.AssignmentStatus,
			&task.AssignedAt,
			&task.FeeTotal,
			&lat,
			&lng,
			&task.OrderTotal,
		)
		if err != nil {
			return nil, err
		}

		task.AssignmentID, err = kernel.UUIDFromBytes(assignmentID[:])
		if err != nil {
			return nil, err
		}
		task.OrderID, err = kernel.UUIDFromBytes(orderID[:])
		if err != nil {
			return nil, err
		}
		task.DeliveryAddress, err = kernel.NewGeoPoint(lat, lng)
		if err != nil {
			return nil, err
		}

		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
