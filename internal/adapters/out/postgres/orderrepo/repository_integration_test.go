package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"purchase/internal/adapters/out/postgres/orderrepo"
	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/domain/model/order"
	"purchase/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repository's tracker dependency in tests that do
// not exercise unit of work behavior.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// OrderRepositoryIntegrationTestSuite tests the GORM order repository against
// a real PostgreSQL database.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
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

	suite.repo = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(courseCount int) *order.Order {
	courseIDs := make([]kernel.UUID, 0, courseCount)
	for range courseCount {
		courseIDs = append(courseIDs, kernel.NewUUID())
	}

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), courseIDs, "paypal")
	suite.Require().NoError(err)
	return o
}

// TestAddAndGet verifies a full roundtrip of an order including the course
// reference array and the default lifecycle fields.
func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	o := suite.newOrder(3)
	o.SetNotes("gift purchase")
	suite.Require().NoError(o.SetTotalPrice(129.97))

	err := suite.repo.Add(ctx, o)
	suite.Require().NoError(err)

	restored, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.True(o.ID().IsEqual(restored.ID()))
	suite.True(o.BuyerID().IsEqual(restored.BuyerID()))
	suite.Len(restored.CourseIDs(), 3)
	for i, id := range o.CourseIDs() {
		suite.True(id.IsEqual(restored.CourseIDs()[i]))
	}
	suite.Equal(order.Pending, restored.Status())
	suite.Equal("paypal", restored.PaymentMethod())
	suite.Equal(order.PaymentPending, restored.PaymentStatus())
	suite.WithinDuration(o.PurchasedAt(), restored.PurchasedAt(), time.Second)
	suite.Nil(restored.CompletedAt())
	suite.Nil(restored.CancelledAt())
	suite.Equal("gift purchase", restored.Notes())
	suite.InDelta(129.97, restored.TotalPrice(), 0.0001)
}

// TestUpdate verifies status changes and lifecycle timestamps survive an update.
func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate() {
	ctx := context.Background()
	o := suite.newOrder(1)

	err := suite.repo.Add(ctx, o)
	suite.Require().NoError(err)

	suite.Require().NoError(o.ChangeStatus(order.Completed))
	o.ApplyStatusTimestamps(time.Now())
	suite.Require().NoError(o.ChangePaymentStatus(order.PaymentCompleted))

	err = suite.repo.Update(ctx, o)
	suite.Require().NoError(err)

	restored, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Completed, restored.Status())
	suite.Equal(order.PaymentCompleted, restored.PaymentStatus())
	suite.Require().NotNil(restored.CompletedAt())
	suite.WithinDuration(*o.CompletedAt(), *restored.CompletedAt(), time.Second)
	suite.Nil(restored.CancelledAt())
}

// TestUpdateMissing verifies updating a non-persisted order fails.
func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateMissing() {
	ctx := context.Background()
	o := suite.newOrder(1)

	err := suite.repo.Update(ctx, o)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetMissing verifies the repository maps a missing row to a not found error.
func (suite *OrderRepositoryIntegrationTestSuite) TestGetMissing() {
	ctx := context.Background()

	_, err := suite.repo.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// TestAddAll verifies batch insert persists every order.
func (suite *OrderRepositoryIntegrationTestSuite) TestAddAll() {
	ctx := context.Background()
	orders := []*order.Order{suite.newOrder(1), suite.newOrder(2), suite.newOrder(1)}

	err := suite.repo.AddAll(ctx, orders)
	suite.Require().NoError(err)

	for _, o := range orders {
		restored, getErr := suite.repo.Get(ctx, o.ID())
		suite.Require().NoError(getErr)
		suite.True(o.ID().IsEqual(restored.ID()))
	}
}

// TestGetAllInStatus verifies status filtering.
func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInStatus() {
	ctx := context.Background()

	pending := suite.newOrder(1)
	cancelled := suite.newOrder(1)
	suite.Require().NoError(cancelled.ChangeStatus(order.Cancelled))

	suite.Require().NoError(suite.repo.Add(ctx, pending))
	suite.Require().NoError(suite.repo.Add(ctx, cancelled))

	pendingOrders, err := suite.repo.GetAllInStatus(ctx, order.Pending)
	suite.Require().NoError(err)
	suite.Require().Len(pendingOrders, 1)
	suite.True(pending.ID().IsEqual(pendingOrders[0].ID()))

	cancelledOrders, err := suite.repo.GetAllInStatus(ctx, order.Cancelled)
	suite.Require().NoError(err)
	suite.Require().Len(cancelledOrders, 1)
	suite.True(cancelled.ID().IsEqual(cancelledOrders[0].ID()))

	completedOrders, err := suite.repo.GetAllInStatus(ctx, order.Completed)
	suite.Require().NoError(err)
	suite.Empty(completedOrders)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
