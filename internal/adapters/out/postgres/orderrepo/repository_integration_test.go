package orderrepo_test

import (
	"context"
	"testing"

	"courierhub/internal/adapters/out/postgres/orderrepo"
	"courierhub/internal/adapters/out/postgres/pgtest"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = orderrepo.NewGormOrderRepository(suite.database.DB)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(destination *kernel.Coordinates) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "5 Rue de Marseille", destination, 42.5, 3)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	dest, err := kernel.NewCoordinates(36.85, 10.2)
	suite.Require().NoError(err)
	o := suite.newOrder(&dest)

	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(o.ID(), got.ID())
	suite.Equal(o.ClientID(), got.ClientID())
	suite.Equal(o.RestaurantID(), got.RestaurantID())
	suite.Equal("5 Rue de Marseille", got.DeliveryAddress())
	suite.Require().NotNil(got.Destination())
	suite.InDelta(36.85, got.Destination().Latitude(), 1e-9)
	suite.InDelta(10.2, got.Destination().Longitude(), 1e-9)
	suite.Equal(order.Pending, got.Status())
	suite.Equal(order.PaymentPending, got.PaymentStatus())
	suite.InDelta(42.5, got.TotalPrice(), 1e-9)
	suite.InDelta(3.0, got.DeliveryFee(), 1e-9)
	suite.Nil(got.Courier())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_WithoutDestination() {
	ctx := context.Background()
	o := suite.newOrder(nil)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())

	suite.Require().NoError(err)
	suite.Nil(got.Destination())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AssignThenReject_ClearsCourier() {
	ctx := context.Background()
	o := suite.newOrder(nil)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	courierID := kernel.NewUUID()
	suite.Require().NoError(o.AssignCourier(courierID))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	assigned, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.AwaitingCourier, assigned.Status())
	suite.Require().NotNil(assigned.Courier())
	suite.Equal(courierID, *assigned.Courier())

	suite.Require().NoError(o.Reject(courierID))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	rejected, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, rejected.Status())
	suite.Nil(rejected.Courier())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.newOrder(nil))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFound() {
	got, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(got)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
