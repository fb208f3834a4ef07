package queries_test

import (
	"testing"

	"kurye/internal/core/application/usecases/queries"
	"kurye/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderCourierHistoryQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrderCourierHistoryQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetOrderCourierHistoryQuery_EmptyOrderID(t *testing.T) {
	_, err := queries.NewGetOrderCourierHistoryQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetOrderCourierHistoryQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderCourierHistoryQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderCourierHistoryQueryIsNotConstructed)
}
