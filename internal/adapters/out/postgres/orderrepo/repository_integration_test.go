package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"sendit/internal/adapters/out/postgres/orderrepo"
	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/order"
	"sendit/internal/core/domain/model/parcel"
	"sendit/internal/core/domain/services"
	"sendit/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct {
	tracked []kernel.UUID
}

func (m *mockAggregateTracker) TrackAggregate(id kernel.UUID, _ any) {
	m.tracked = append(m.tracked, id)
}

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	tracker   *mockAggregateTracker
	repo      *orderrepo.GormOrderRepository
	pricing   services.PricingService
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.pricing = services.NewPricingService(services.DefaultPricingConfig())
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
	suite.tracker = &mockAggregateTracker{}
	suite.repo = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) newLocation(lat, lon float64, city string) kernel.Location {
	loc, err := kernel.NewLocation(lat, lon, "1 Main St", city, "NY", "USA", "10001")
	suite.Require().NoError(err)
	return loc
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(userID kernel.UUID) *order.Order {
	dims, err := parcel.NewDimensions(30, 20, 10)
	suite.Require().NoError(err)
	p, err := parcel.NewParcel(kernel.NewUUID(), userID, "books", 4.5, dims, 100, false)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		userID,
		p,
		suite.newLocation(40.7128, -74.0060, "New York"),
		suite.newLocation(41.8781, -87.6298, "Chicago"),
		suite.pricing,
	)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	userID := kernel.NewUUID()
	o := suite.newOrder(userID)

	err := suite.repo.Add(context.Background(), o)
	suite.Require().NoError(err)
	suite.Len(suite.tracker.tracked, 1)

	restored, err := suite.repo.Get(context.Background(), o.ID())
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(o.ID()))
	suite.True(restored.UserID().IsEqual(userID))
	suite.Equal(o.TrackingNumber(), restored.TrackingNumber())
	suite.Equal(order.Pending, restored.Status())
	suite.InDelta(o.DistanceKm(), restored.DistanceKm(), 0.001)
	suite.Equal(o.DurationMinutes(), restored.DurationMinutes())
	suite.InDelta(o.Price(), restored.Price(), 0.001)
	suite.Nil(restored.CurrentLocation())
	suite.Nil(restored.ActualDelivery())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndPosition() {
	o := suite.newOrder(kernel.NewUUID())
	err := suite.repo.Add(context.Background(), o)
	suite.Require().NoError(err)

	pos := suite.newLocation(40.4406, -79.9959, "Pittsburgh")
	err = o.UpdateStatus(order.InTransit, &pos, nil)
	suite.Require().NoError(err)

	err = suite.repo.Update(context.Background(), o)
	suite.Require().NoError(err)

	restored, err := suite.repo.Get(context.Background(), o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InTransit, restored.Status())
	suite.Require().NotNil(restored.CurrentLocation())
	suite.Equal("Pittsburgh", restored.CurrentLocation().City())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsDeliveryStamp() {
	o := suite.newOrder(kernel.NewUUID())
	err := suite.repo.Add(context.Background(), o)
	suite.Require().NoError(err)

	err = o.UpdateStatus(order.Delivered, nil, nil)
	suite.Require().NoError(err)
	err = suite.repo.Update(context.Background(), o)
	suite.Require().NoError(err)

	restored, err := suite.repo.Get(context.Background(), o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, restored.Status())
	suite.Require().NotNil(restored.ActualDelivery())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_UnknownID_ReturnsNotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByTrackingNumber() {
	o := suite.newOrder(kernel.NewUUID())
	err := suite.repo.Add(context.Background(), o)
	suite.Require().NoError(err)

	restored, err := suite.repo.GetByTrackingNumber(context.Background(), o.TrackingNumber())
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(o.ID()))

	_, err = suite.repo.GetByTrackingNumber(context.Background(), order.NewTrackingNumber())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateTrackingNumber_Fails() {
	o := suite.newOrder(kernel.NewUUID())
	err := suite.repo.Add(context.Background(), o)
	suite.Require().NoError(err)

	err = suite.db.Exec(`
		INSERT INTO orders (id, user_id, parcel_id, tracking_number, status)
		SELECT ?, user_id, parcel_id, tracking_number, status FROM orders WHERE id = ?
	`, kernel.NewUUID().Bytes(), o.ID().Bytes()).Error
	suite.Require().Error(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllOverdue() {
	// A freshly created order has a future estimate and must not show up.
	fresh := suite.newOrder(kernel.NewUUID())
	err := suite.repo.Add(context.Background(), fresh)
	suite.Require().NoError(err)

	// Craft a stored order whose estimate is in the past.
	late := suite.newOrder(kernel.NewUUID())
	err = suite.repo.Add(context.Background(), late)
	suite.Require().NoError(err)
	err = suite.db.Exec(
		"UPDATE orders SET estimated_delivery = NOW() - INTERVAL '1 day' WHERE id = ?",
		late.ID().Bytes(),
	).Error
	suite.Require().NoError(err)

	// Delivered orders are never overdue, even past their estimate.
	done := suite.newOrder(kernel.NewUUID())
	err = done.UpdateStatus(order.Delivered, nil, nil)
	suite.Require().NoError(err)
	err = suite.repo.Add(context.Background(), done)
	suite.Require().NoError(err)
	err = suite.db.Exec(
		"UPDATE orders SET estimated_delivery = NOW() - INTERVAL '1 day' WHERE id = ?",
		done.ID().Bytes(),
	).Error
	suite.Require().NoError(err)

	overdue, err := suite.repo.GetAllOverdue(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(overdue, 1)
	suite.True(overdue[0].ID().IsEqual(late.ID()))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
