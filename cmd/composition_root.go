package cmd

import (
	"log/slog"
	"time"

	"sendit/internal/adapters/in/http/auth"
	"sendit/internal/adapters/out/notify"
	"sendit/internal/adapters/out/postgres"
	"sendit/internal/adapters/out/postgres/userrepo"
	"sendit/internal/core/application/usecases/commands"
	"sendit/internal/core/application/usecases/queries"
	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/order"
	"sendit/internal/core/domain/services"

	"gorm.io/gorm"
)

// noopTracker satisfies the repositories' aggregate tracker for read paths
// that run outside a unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

const tokenTTL = 24 * time.Hour

// CompositionRoot wires adapters, domain services, and use case handlers.
// Handlers are cheap value types, so each accessor builds a fresh one.
type CompositionRoot struct {
	gormDB           *gorm.DB
	uowFactory       postgres.GormUnitOfWorkFactory
	pricingService   services.PricingService
	transitionPolicy order.TransitionPolicy
	authService      *auth.Service
	logger           *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	var policy order.TransitionPolicy = order.AllowAnyTransition
	if config.StrictStatusTransitions {
		policy = order.RejectTerminalTransition
	}

	return CompositionRoot{
		gormDB:           gormDB,
		uowFactory:       *postgres.NewGormUnitOfWorkFactory(gormDB),
		pricingService:   services.NewPricingService(services.DefaultPricingConfig()),
		transitionPolicy: policy,
		authService: auth.NewService(
			userrepo.NewGormUserRepository(gormDB, noopTracker{}),
			config.JWTSecret,
			tokenTTL,
		),
		logger: logger,
	}
}

func (c *CompositionRoot) AuthService() *auth.Service {
	return c.authService
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	return commands.NewCreateParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateUpdateParcelCommandHandler() commands.UpdateParcelCommandHandler {
	return commands.NewUpdateParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateDeleteParcelCommandHandler() commands.DeleteParcelCommandHandler {
	return commands.NewDeleteParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.pricingService)
}

func (c *CompositionRoot) CreateChangeDestinationCommandHandler() commands.ChangeDestinationCommandHandler {
	return commands.NewChangeDestinationCommandHandler(c.orderUoWFactory(), c.pricingService)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.transitionPolicy)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateNotifyOverdueOrdersCommandHandler() commands.NotifyOverdueOrdersCommandHandler {
	notifier := notify.NewSlogNotifier(c.logger)
	return commands.NewNotifyOverdueOrdersCommandHandler(c.orderUoWFactory(), notifier)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserParcelsQueryHandler() queries.GetUserParcelsQueryHandler {
	return queries.NewGetUserParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
