package assignment_test

import (
	"testing"
	"time"

	"kurye/internal/core/domain/model/assignment"
	"kurye/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var offerTime = time.Date(2025, 3, 14, 19, 30, 0, 0, time.UTC)

func newTestAssignment(t *testing.T) *assignment.OrderCourier {
	t.Helper()
	fee := assignment.Fee{Base: 15, DistanceBonus: 16, VehicleBonus: 5, TimeBonus: 10, Total: 46}
	a, err := assignment.NewOrderCourier(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), fee, offerTime,
	)
	require.NoError(t, err)
	return a
}

func TestNewOrderCourier(t *testing.T) {
	t.Run("creates_active_assigned_record", func(t *testing.T) {
		// When
		a := newTestAssignment(t)

		// Then
		require.NoError(t, a.Validate())
		assert.Equal(t, assignment.StatusAssigned, a.Status())
		assert.True(t, a.IsActive())
		assert.Equal(t, offerTime, a.AssignedAt())
		assert.InDelta(t, 46.0, a.DeliveryFee(), 1e-9)
		assert.InDelta(t, 16.0, a.Fee().DistanceBonus, 1e-9)
		assert.Nil(t, a.RespondedAt())
		assert.Equal(t, 0, a.Version())
	})

	t.Run("rejects_negative_fee", func(t *testing.T) {
		_, err := assignment.NewOrderCourier(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), assignment.Fee{Total: -1}, offerTime,
		)
		require.Error(t, err)
	})

	t.Run("rejects_invalid_ids", func(t *testing.T) {
		_, err := assignment.NewOrderCourier(
			kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), assignment.Fee{Total: 10}, offerTime,
		)
		require.Error(t, err)
	})

	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var a assignment.OrderCourier
		require.ErrorIs(t, a.Validate(), assignment.ErrOrderCourierIsNotConstructed)
	})
}

func TestOrderCourier_HappyPath(t *testing.T) {
	// Given
	a := newTestAssignment(t)
	step := offerTime

	// When
	step = step.Add(time.Minute)
	require.NoError(t, a.Accept(step))
	assert.Equal(t, assignment.StatusAccepted, a.Status())
	require.NotNil(t, a.RespondedAt())
	assert.Equal(t, step, *a.RespondedAt())

	step = step.Add(10 * time.Minute)
	require.NoError(t, a.PickUp(step))
	assert.Equal(t, assignment.StatusPickedUp, a.Status())

	step = step.Add(time.Minute)
	require.NoError(t, a.StartDelivery(step))
	assert.Equal(t, assignment.StatusOutForDelivery, a.Status())

	step = step.Add(15 * time.Minute)
	require.NoError(t, a.Deliver(12.5, step))

	// Then
	assert.Equal(t, assignment.StatusDelivered, a.Status())
	assert.False(t, a.IsActive())
	assert.InDelta(t, 12.5, a.Tip(), 1e-9)
	require.NotNil(t, a.DeliveredAt())
	assert.Equal(t, step, *a.DeliveredAt())
}

func TestOrderCourier_Reject(t *testing.T) {
	t.Run("reject_deactivates_and_records_reason", func(t *testing.T) {
		// Given
		a := newTestAssignment(t)

		// When
		err := a.Reject("too far away", offerTime.Add(time.Minute))

		// Then
		require.NoError(t, err)
		assert.Equal(t, assignment.StatusRejected, a.Status())
		assert.Equal(t, "too far away", a.RejectReason())
		assert.False(t, a.IsActive())
	})

	t.Run("requires_reason", func(t *testing.T) {
		a := newTestAssignment(t)
		require.Error(t, a.Reject("", offerTime))
		assert.Equal(t, assignment.StatusAssigned, a.Status())
	})

	t.Run("rejected_record_is_immutable", func(t *testing.T) {
		// Given
		a := newTestAssignment(t)
		require.NoError(t, a.Reject("too far away", offerTime))

		// Then every further transition fails with a typed error
		var transitionErr *assignment.StateTransitionError

		err := a.Accept(offerTime)
		require.ErrorIs(t, err, assignment.ErrStateTransition)
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, assignment.StatusRejected, transitionErr.From)
		assert.Equal(t, assignment.StatusAccepted, transitionErr.To)

		require.Error(t, a.PickUp(offerTime))
		require.Error(t, a.Deliver(0, offerTime))
		require.Error(t, a.Cancel(offerTime))
	})
}

func TestOrderCourier_InvalidTransitions(t *testing.T) {
	t.Run("cannot_pick_up_before_accept", func(t *testing.T) {
		a := newTestAssignment(t)
		require.ErrorIs(t, a.PickUp(offerTime), assignment.ErrStateTransition)
	})

	t.Run("cannot_deliver_before_out_for_delivery", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.Accept(offerTime))
		require.ErrorIs(t, a.Deliver(0, offerTime), assignment.ErrStateTransition)
	})

	t.Run("cannot_accept_twice", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.Accept(offerTime))
		require.ErrorIs(t, a.Accept(offerTime), assignment.ErrStateTransition)
	})

	t.Run("rejects_negative_tip", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.Accept(offerTime))
		require.NoError(t, a.PickUp(offerTime))
		require.NoError(t, a.StartDelivery(offerTime))
		require.Error(t, a.Deliver(-1, offerTime))
		assert.Equal(t, assignment.StatusOutForDelivery, a.Status())
	})
}

func TestOrderCourier_Cancel(t *testing.T) {
	t.Run("cancel_active_assignment", func(t *testing.T) {
		// Given
		a := newTestAssignment(t)
		require.NoError(t, a.Accept(offerTime))

		// When
		err := a.Cancel(offerTime.Add(time.Minute))

		// Then
		require.NoError(t, err)
		assert.Equal(t, assignment.StatusCancelled, a.Status())
		assert.False(t, a.IsActive())
		require.NotNil(t, a.CancelledAt())
	})

	t.Run("cannot_cancel_delivered_assignment", func(t *testing.T) {
		// Given
		a := newTestAssignment(t)
		require.NoError(t, a.Accept(offerTime))
		require.NoError(t, a.PickUp(offerTime))
		require.NoError(t, a.StartDelivery(offerTime))
		require.NoError(t, a.Deliver(0, offerTime))

		// When
		err := a.Cancel(offerTime)

		// Then
		require.ErrorIs(t, err, assignment.ErrStateTransition)
	})
}

func TestRestoreOrderCourier(t *testing.T) {
	t.Run("restores_persisted_state", func(t *testing.T) {
		// Given
		responded := offerTime.Add(time.Minute)

		// When
		a, err := assignment.RestoreOrderCourier(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			assignment.StatusAccepted, "",
			offerTime, &responded, nil, nil, nil, nil,
			assignment.Fee{Base: 15, DistanceBonus: 16, VehicleBonus: 5, TimeBonus: 10, Total: 46}, 0, true, 2,
		)

		// Then
		require.NoError(t, err)
		assert.Equal(t, assignment.StatusAccepted, a.Status())
		assert.True(t, a.IsActive())
		assert.Equal(t, 2, a.Version())
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := assignment.RestoreOrderCourier(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			assignment.StatusUnknown, "",
			offerTime, nil, nil, nil, nil, nil,
			assignment.Fee{}, 0, false, 0,
		)
		require.Error(t, err)
	})
}
