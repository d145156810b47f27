package commands_test

import (
	"testing"

	"sendit/internal/core/application/usecases/commands"
	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	stored := newStoredParcel(t, userID)
	cmd, err := commands.NewUpdateParcelCommand(stored.ID(), userID, "heavier books", 12, 40, 30, 20, 150, true)
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateParcelCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, "heavier books", stored.Description())
	assert.InEpsilon(t, 12.0, stored.WeightKg(), 1e-9)
	assert.True(t, stored.Fragile())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateParcelCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	parcelID := kernel.NewUUID()
	cmd, err := commands.NewUpdateParcelCommand(parcelID, kernel.NewUUID(), "books", 4.5, 30, 20, 10, 100, false)
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, parcelID).
			Return(nil, errs.NewObjectNotFoundError("parcelID", parcelID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateParcelCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateParcelCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	owner := kernel.NewUUID()
	stored := newStoredParcel(t, owner)
	cmd, err := commands.NewUpdateParcelCommand(stored.ID(), kernel.NewUUID(), "books", 4.5, 30, 20, 10, 100, false)
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateParcelCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateParcelCommandHandler_Handle_InvalidFields_LeaveParcelUntouched(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	stored := newStoredParcel(t, userID)
	cmd, err := commands.NewUpdateParcelCommand(stored.ID(), userID, "books", 500, 30, 20, 10, 100, false)
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateParcelCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
	assert.InEpsilon(t, 4.5, stored.WeightKg(), 1e-9)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
