package queries_test

import (
	"testing"

	"sendit/internal/core/application/usecases/queries"
	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackOrderQuery_ValidInput(t *testing.T) {
	tn := order.NewTrackingNumber()
	q, err := queries.NewTrackOrderQuery(tn)
	require.NoError(t, err)
	assert.Equal(t, tn, q.TrackingNumber())
	assert.NoError(t, q.Validate())
}

func TestNewTrackOrderQuery_EmptyTrackingNumber(t *testing.T) {
	_, err := queries.NewTrackOrderQuery(order.TrackingNumber(""))
	require.Error(t, err)
}

func TestTrackOrderQuery_Validate_NotConstructed(t *testing.T) {
	q := queries.TrackOrderQuery{}
	require.ErrorIs(t, q.Validate(), queries.ErrTrackOrderQueryIsNotConstructed)
}

func TestNewGetUserOrdersQuery_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	q, err := queries.NewGetUserOrdersQuery(id)
	require.NoError(t, err)
	assert.Equal(t, id, q.UserID())
}

func TestNewGetUserOrdersQuery_InvalidUserID(t *testing.T) {
	_, err := queries.NewGetUserOrdersQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewGetUserParcelsQuery_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	q, err := queries.NewGetUserParcelsQuery(id)
	require.NoError(t, err)
	assert.Equal(t, id, q.UserID())
}

func TestNewGetUserParcelsQuery_InvalidUserID(t *testing.T) {
	_, err := queries.NewGetUserParcelsQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
