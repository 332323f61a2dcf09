package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/pgtest"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
	m.Called(id, aggregate)
}

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
	productID  int64
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	product := productrepo.ProductDTO{Name: "Toor Dal", Price: decimal.NewFromInt(120), Unit: "kg"}
	suite.Require().NoError(suite.database.DB.Create(&product).Error)
	suite.productID = product.ID

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.database.DB, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsOrderWithItems() {
	ctx := context.Background()
	o := suite.newOrder("ORD-ADD", "data:image/png;base64,AAAA")

	suite.tracker.On("TrackAggregate", "ORD-ADD", o).Once()

	suite.Require().NoError(suite.repository.Add(ctx, o))

	stored, err := suite.repository.Get(ctx, "ORD-ADD")
	suite.Require().NoError(err)
	suite.Equal(order.StatusNewOrder, stored.Status())
	suite.Equal("Asha", stored.Customer().Name())
	suite.Equal("asha@upi", stored.Customer().UPI())
	suite.Require().Len(stored.Items(), 2)
	suite.Equal(3, stored.Items()[0].Quantity())
	suite.Equal(1, stored.Items()[1].Quantity())
	suite.True(decimal.NewFromInt(600).Equal(stored.TotalAmount()))
	suite.True(stored.DeliveryCharge().IsZero())
	suite.Equal([]byte{0, 0, 0}, stored.Screenshot().Data())
	suite.Equal("image/png", stored.Screenshot().MIME())
	suite.Equal(order.ScreenshotUploaded, stored.Screenshot().Status())
	suite.WithinDuration(o.Date(), stored.Date(), time.Second)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateID_AlreadyExists() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", "ORD-DUP", mock.Anything).Once()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("ORD-DUP", "")))

	err := suite.repository.Add(ctx, suite.newOrder("ORD-DUP", ""))

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnknownProduct_InvalidItems() {
	ctx := context.Background()
	customer, err := order.NewCustomer("Asha", "Pune", "9876543210", "")
	suite.Require().NoError(err)
	item, err := order.NewItem(suite.productID+100, 1, decimal.NewFromInt(10))
	suite.Require().NoError(err)
	o, err := order.NewOrder("ORD-FK", time.Now(), customer, []order.Item{item}, order.PaymentScreenshot{}, delivery.EmptyConfig())
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, o)

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
	var count int64
	suite.Require().NoError(suite.database.DB.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Zero(count)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	stored, err := suite.repository.Get(context.Background(), "ORD-MISSING")

	suite.Nil(stored)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusTransitions() {
	ctx := context.Background()
	o := suite.newOrder("ORD-UPD", "")
	suite.tracker.On("TrackAggregate", "ORD-UPD", o).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	for _, target := range []order.Status{order.StatusPaymentDone, order.StatusOrderProcessed} {
		suite.Require().NoError(o.ChangeStatus(target))
		suite.Require().NoError(suite.repository.Update(ctx, o))

		stored, err := suite.repository.Get(ctx, "ORD-UPD")
		suite.Require().NoError(err)
		suite.Equal(target, stored.Status())
		suite.True(o.DeliveryCharge().Equal(stored.DeliveryCharge()))
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_NotFound() {
	err := suite.repository.Update(context.Background(), suite.newOrder("ORD-GHOST", ""))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrderAndItems() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", "ORD-DEL", mock.Anything).Once()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("ORD-DEL", "")))

	suite.Require().NoError(suite.repository.Delete(ctx, "ORD-DEL"))

	var items int64
	suite.Require().NoError(suite.database.DB.Model(&orderrepo.OrderItemDTO{}).
		Where("order_id = ?", "ORD-DEL").Count(&items).Error)
	suite.Zero(items)
	_, err := suite.repository.Get(ctx, "ORD-DEL")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().ErrorIs(suite.repository.Delete(ctx, "ORD-DEL"), errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindByLegacyScreenshot() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Times(5)
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("ORD-EXACT", "/uploads/proof_1.png")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("ORD-LIKE", "C:/old/proof_2.png (copy)")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("ORD-OTHER", "/uploads/proofX.png")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("ORD-HAS-BLOB", "/uploads/proof_3.png")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("ORD-NO-BLOB", "old proof_3.png")))
	suite.Require().NoError(suite.database.DB.Model(&orderrepo.OrderDTO{}).
		Where("id = ?", "ORD-HAS-BLOB").Update("payment_screenshot", []byte{0x89, 0x50}).Error)

	suite.Run("exact reference wins", func() {
		found, err := suite.repository.FindByLegacyScreenshot(ctx, "proof_1.png")

		suite.Require().NoError(err)
		suite.Require().Len(found, 1)
		suite.Equal("ORD-EXACT", found[0].ID())
		suite.Len(found[0].Items(), 2)
	})

	suite.Run("containing the filename is the fallback", func() {
		found, err := suite.repository.FindByLegacyScreenshot(ctx, "proof_2.png")

		suite.Require().NoError(err)
		suite.Require().Len(found, 1)
		suite.Equal("ORD-LIKE", found[0].ID())
	})

	suite.Run("orders holding binary proof are skipped", func() {
		found, err := suite.repository.FindByLegacyScreenshot(ctx, "proof_3.png")

		suite.Require().NoError(err)
		suite.Require().Len(found, 1)
		suite.Equal("ORD-NO-BLOB", found[0].ID())
	})

	suite.Run("wildcards in the filename are literal", func() {
		found, err := suite.repository.FindByLegacyScreenshot(ctx, "proof_.png")

		suite.Require().NoError(err)
		suite.Empty(found)
	})

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(id, screenshot string) *order.Order {
	customer, err := order.NewCustomer("Asha", "Pune", "9876543210", "asha@upi")
	suite.Require().NoError(err)

	first, err := order.NewItem(suite.productID, 3, decimal.NewFromInt(120))
	suite.Require().NoError(err)
	second, err := order.NewItem(suite.productID, 1, decimal.NewFromInt(240))
	suite.Require().NoError(err)

	shot, err := order.ParsePaymentScreenshot(screenshot)
	suite.Require().NoError(err)

	cfg, err := delivery.NewConfig([]delivery.Tier{
		delivery.MustNewTier(decimal.Zero, decimal.NewNullDecimal(decimal.RequireFromString("499.99")), decimal.NewFromInt(50)),
		delivery.MustNewTier(decimal.NewFromInt(500), decimal.NullDecimal{}, decimal.Zero),
	}, decimal.NewFromInt(50), "")
	suite.Require().NoError(err)

	o, err := order.NewOrder(id, time.Now().UTC().Truncate(time.Microsecond), customer, []order.Item{first, second}, shot, cfg)
	suite.Require().NoError(err)
	return o
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
