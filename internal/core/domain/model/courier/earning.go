package courier

import (
	"time"

	"kurye/internal/core/domain/model/kernel"
)

// Earning is the payout record written when a delivery completes. It
// keeps the fee breakdown the payout was computed from so settlement
// disputes can be answered from the ledger alone. The payout fields
// never change after that; only the Paid flag flips once the amount
// reaches the courier's wallet, so records left unpaid by a failed
// credit can be found and re-synced.
type Earning struct {
	ID           kernel.UUID
	CourierID    kernel.UUID
	OrderID      kernel.UUID
	AssignmentID kernel.UUID

	BaseFee       float64
	DistanceBonus float64
	VehicleBonus  float64
	TimeBonus     float64
	Tip           float64
	Total         float64

	EarnedAt time.Time

	Paid   bool
	PaidAt *time.Time
}
