package queries

import (
	"context"
	"database/sql"

	"kurye/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderCourierHistoryQueryHandler reads an order's full assignment
// trail from the database, joined with courier names for display.
type GetOrderCourierHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderCourierHistoryQueryHandler creates a handler for order
// assignment history queries.
func NewGetOrderCourierHistoryQueryHandler(db *gorm.DB) GetOrderCourierHistoryQueryHandler {
	return GetOrderCourierHistoryQueryHandler{db: db}
}

// Handle executes the query. Returns every assignment attempt for the
// order, oldest first.
func (h GetOrderCourierHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderCourierHistoryQuery,
) ([]GetOrderCourierHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	attempts := make([]GetOrderCourierHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			oc.id,
			oc.courier_id,
			c.name,
			oc.status,
			oc.reject_reason,
			oc.assigned_at,
			oc.responded_at,
			oc.fee_total,
			oc.tip
		FROM order_couriers oc
		JOIN couriers c ON c.id = oc.courier_id
		WHERE oc.order_id = ?
		ORDER BY oc.assigned_at
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var attempt GetOrderCourierHistoryQueryResponse
		var assignmentID, courierID uuid.UUID
		var respondedAt sql.NullTime

		err = rows.Scan(
			&assignmentID,
			&courierID,
			&attempt.CourierName,
			&attempt.Status,
			&attempt.RejectReason,
			&attempt.AssignedAt,
			&respondedAt,
			&attempt.FeeTotal,
			&attempt.Tip,
		)
		if err != nil {
			return nil, err
		}

		attempt.AssignmentID, err = kernel.UUIDFromBytes(assignmentID[:])
		if err != nil {
			return nil, err
		}
		attempt.CourierID, err = kernel.UUIDFromBytes(courierID[:])
		if err != nil {
			return nil, err
		}
		if respondedAt.Valid {
			at := respondedAt.Time
			attempt.RespondedAt = &at
		}

		attempts = append(attempts, attempt)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return attempts, nil
}
