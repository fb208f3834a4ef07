package commands_test

import (
	"testing"

	"kurye/internal/core/application/usecases/commands"
	"kurye/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	address := testPoint(t, 41.02, 28.99)
	items := []commands.OrderItemSpec{{ProductID: kernel.NewUUID(), Quantity: 1}}

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), address,
			"Istanbul", "Kadikoy", items, nil, "",
		)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Istanbul", cmd.City())
		assert.Len(t, cmd.Items(), 1)
	})

	t.Run("empty_cart", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), address,
			"Istanbul", "Kadikoy", nil, nil, "",
		)
		require.ErrorIs(t, err, commands.ErrOrderItemsAreRequired)
	})

	t.Run("zero_quantity", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), address,
			"Istanbul", "Kadikoy",
			[]commands.OrderItemSpec{{ProductID: kernel.NewUUID(), Quantity: 0}},
			nil, "",
		)
		require.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	})

	t.Run("missing_city", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), address,
			"", "Kadikoy", items, nil, "",
		)
		require.ErrorIs(t, err, commands.ErrCityIsRequired)
	})

	t.Run("campaign_and_coupon_conflict", func(t *testing.T) {
		campaignID := kernel.NewUUID()
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), address,
			"Istanbul", "Kadikoy", items, &campaignID, "WELCOME10",
		)
		require.ErrorIs(t, err, commands.ErrDiscountSourceConflict)
	})

	t.Run("not_constructed", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
