package commands_test

import (
	"context"
	"errors"
	"testing"

	"sendit/internal/core/application/usecases/commands"
	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyOverdue(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func TestNotifyOverdueOrdersCommandHandler_Handle_NotifiesEachOrder(t *testing.T) {
	ctx := t.Context()
	first := newStoredOrder(t, kernel.NewUUID())
	second := newStoredOrder(t, kernel.NewUUID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetAllOverdue", ctx).Return([]*order.Order{first, second}, nil).Once()

	notifier := new(MockNotifier)
	notifier.On("NotifyOverdue", ctx, first).Return(nil).Once()
	notifier.On("NotifyOverdue", ctx, second).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewNotifyOverdueOrdersCommandHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, commands.NewNotifyOverdueOrdersCommand()))
	notifier.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestNotifyOverdueOrdersCommandHandler_Handle_ContinuesPastFailures(t *testing.T) {
	ctx := t.Context()
	first := newStoredOrder(t, kernel.NewUUID())
	second := newStoredOrder(t, kernel.NewUUID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetAllOverdue", ctx).Return([]*order.Order{first, second}, nil).Once()

	notifier := new(MockNotifier)
	notifier.On("NotifyOverdue", ctx, first).Return(errors.New("smtp down")).Once()
	notifier.On("NotifyOverdue", ctx, second).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewNotifyOverdueOrdersCommandHandler(factory, notifier)
	require.Error(t, h.Handle(ctx, commands.NewNotifyOverdueOrdersCommand()))
	notifier.AssertExpectations(t)
}

func TestNotifyOverdueOrdersCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	notifier := new(MockNotifier)
	h := commands.NewNotifyOverdueOrdersCommandHandler(factory, notifier)
	require.Error(t, h.Handle(t.Context(), commands.NotifyOverdueOrdersCommand{}))
	factory.AssertNotCalled(t, "Create")
}
