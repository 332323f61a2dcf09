package queries_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/pgtest"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/adapters/out/uploads"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(string, any) {}

type OrderQueriesIntegrationTestSuite struct {
	suite.Suite
	database    *pgtest.Database
	orderRepo   *orderrepo.GormOrderRepository
	productRepo *productrepo.GormProductRepository
	uploadsDir  string
	rice        *product.Product
	dal         *product.Product
}

func (suite *OrderQueriesIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.orderRepo = orderrepo.NewGormOrderRepository(database.DB, noopTracker{})
	suite.productRepo = productrepo.NewGormProductRepository(database.DB, noopTracker{})
}

func (suite *OrderQueriesIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.database.Truncate())
	suite.uploadsDir = suite.T().TempDir()

	var err error
	suite.rice, err = product.NewProduct("Basmati Rice", decimal.NewFromInt(120), "kg", "Grains", "rice.png", 50)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.productRepo.Add(ctx, suite.rice))

	suite.dal, err = product.NewProduct("Toor Dal", decimal.NewFromInt(240), "kg", "Pulses", "", 30)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.productRepo.Add(ctx, suite.dal))
}

func (suite *OrderQueriesIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *OrderQueriesIntegrationTestSuite) TestListOrders_NewestFirstWithItems() {
	ctx := context.Background()
	now := time.Now().UTC()
	suite.addOrder("ORD-OLD", now.Add(-time.Hour), "", order.StatusNewOrder)
	suite.addOrder("ORD-NEW", now, "data:image/png;base64,AAAA", order.StatusPaymentDone)

	query, err := queries.NewListOrdersQuery("")
	suite.Require().NoError(err)

	orders, err := queries.NewListOrdersQueryHandler(suite.database.DB).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.Equal("ORD-NEW", orders[0].ID)
	suite.Equal("Payment Done", orders[0].Status)
	suite.Equal("Uploaded", orders[0].PaymentScreenshot)
	suite.Equal("No Screenshot", orders[1].PaymentScreenshot)
	suite.Equal("Asha", orders[0].Customer.Name)
	suite.Equal("9876543210", orders[0].Customer.MobileNumber)
	suite.True(decimal.NewFromInt(600).Equal(orders[0].TotalAmount))
	suite.True(orders[0].DeliveryCharge.IsZero())
	suite.Require().Len(orders[0].Items, 2)
	suite.Equal("Basmati Rice", orders[0].Items[0].Name)
	suite.Equal(3, orders[0].Items[0].Quantity)
	suite.Equal("Toor Dal", orders[0].Items[1].Name)
	suite.Equal("Pulses", orders[0].Items[1].Category)
}

func (suite *OrderQueriesIntegrationTestSuite) TestListOrders_StatusFilter() {
	ctx := context.Background()
	suite.addOrder("ORD-A", time.Now(), "", order.StatusNewOrder)
	suite.addOrder("ORD-B", time.Now(), "", order.StatusOrderProcessed)

	query, err := queries.NewListOrdersQuery("Order Processed")
	suite.Require().NoError(err)

	orders, err := queries.NewListOrdersQueryHandler(suite.database.DB).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal("ORD-B", orders[0].ID)
}

func (suite *OrderQueriesIntegrationTestSuite) TestListOrders_Empty() {
	query, err := queries.NewListOrdersQuery("")
	suite.Require().NoError(err)

	orders, err := queries.NewListOrdersQueryHandler(suite.database.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(orders)
	suite.Empty(orders)
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrder() {
	ctx := context.Background()
	suite.addOrder("ORD-TRACK", time.Now(), "Paid at counter", order.StatusPaymentDone)
	handler := queries.NewGetOrderQueryHandler(suite.database.DB)

	suite.Run("existing order", func() {
		query, err := queries.NewGetOrderQuery("ORD-TRACK")
		suite.Require().NoError(err)

		resp, err := handler.Handle(ctx, query)

		suite.Require().NoError(err)
		suite.Equal("Payment Done", resp.Status)
		suite.Equal("Paid at counter", resp.PaymentScreenshot)
		suite.Len(resp.Items, 2)
	})

	suite.Run("unknown order", func() {
		query, err := queries.NewGetOrderQuery("ORD-NOPE")
		suite.Require().NoError(err)

		_, err = handler.Handle(ctx, query)

		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	})
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrderScreenshot() {
	ctx := context.Background()
	suite.Require().NoError(os.WriteFile(filepath.Join(suite.uploadsDir, "proof.jpg"), []byte{7, 7}, 0o600))
	suite.addOrder("ORD-BIN", time.Now(), "data:image/png;base64,AAAA", order.StatusNewOrder)
	suite.addOrder("ORD-FILE", time.Now(), "/uploads/proof.jpg", order.StatusNewOrder)
	suite.addOrder("ORD-GONE", time.Now(), "/uploads/missing.jpg", order.StatusNewOrder)
	suite.addOrder("ORD-MARK", time.Now(), "Paid via cash", order.StatusNewOrder)
	suite.addOrder("ORD-NONE", time.Now(), "", order.StatusNewOrder)

	handler := queries.NewGetOrderScreenshotQueryHandler(suite.database.DB, uploads.NewDirStore(suite.uploadsDir))
	handle := func(id string) (queries.GetOrderScreenshotQueryResponse, error) {
		query, err := queries.NewGetOrderScreenshotQuery(id)
		suite.Require().NoError(err)
		return handler.Handle(ctx, query)
	}

	suite.Run("binary proof", func() {
		resp, err := handle("ORD-BIN")

		suite.Require().NoError(err)
		suite.True(resp.IsBinary())
		suite.Equal([]byte{0, 0, 0}, resp.Data)
		suite.Equal("image/png", resp.MIME)
	})

	suite.Run("legacy upload file", func() {
		resp, err := handle("ORD-FILE")

		suite.Require().NoError(err)
		suite.Equal([]byte{7, 7}, resp.Data)
		suite.Equal("image/jpeg", resp.MIME)
	})

	suite.Run("legacy upload file missing", func() {
		_, err := handle("ORD-GONE")

		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	})

	suite.Run("marker", func() {
		resp, err := handle("ORD-MARK")

		suite.Require().NoError(err)
		suite.False(resp.IsBinary())
		suite.Equal("Paid via cash", resp.Marker)
	})

	suite.Run("no screenshot", func() {
		_, err := handle("ORD-NONE")

		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	})

	suite.Run("unknown order", func() {
		_, err := handle("ORD-NOPE")

		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	})

	suite.Run("uploads unavailable", func() {
		query, err := queries.NewGetOrderScreenshotQuery("ORD-FILE")
		suite.Require().NoError(err)

		_, err = queries.NewGetOrderScreenshotQueryHandler(suite.database.DB, nil).Handle(ctx, query)

		suite.Require().ErrorIs(err, errs.ErrStorageIsUnavailable)
	})
}

func (suite *OrderQueriesIntegrationTestSuite) TestListProducts() {
	products, err := queries.NewListProductsQueryHandler(suite.database.DB).
		Handle(context.Background(), queries.NewListProductsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(products, 2)
	suite.Equal(suite.rice.ID(), products[0].ID)
	suite.Equal("Basmati Rice", products[0].Name)
	suite.Equal("rice.png", products[0].Image)
	suite.Equal(50, products[0].StockQuantity)
	suite.Equal("240.00", products[1].Price.StringFixed(2))
}

func (suite *OrderQueriesIntegrationTestSuite) addOrder(id string, date time.Time, screenshot string, status order.Status) {
	ctx := context.Background()

	customer, err := order.NewCustomer("Asha", "Pune", "9876543210", "")
	suite.Require().NoError(err)
	first, err := order.NewItem(suite.rice.ID(), 3, suite.rice.Price())
	suite.Require().NoError(err)
	second, err := order.NewItem(suite.dal.ID(), 1, suite.dal.Price())
	suite.Require().NoError(err)
	shot, err := order.ParsePaymentScreenshot(screenshot)
	suite.Require().NoError(err)
	cfg, err := delivery.NewConfig([]delivery.Tier{
		delivery.MustNewTier(decimal.NewFromInt(500), decimal.NullDecimal{}, decimal.Zero),
	}, decimal.NewFromInt(50), "")
	suite.Require().NoError(err)

	o, err := order.NewOrder(id, date, customer, []order.Item{first, second}, shot, cfg)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, o))

	for current := order.StatusNewOrder; current != status; {
		next, ok := current.Next()
		suite.Require().True(ok)
		suite.Require().NoError(o.ChangeStatus(next))
		current = next
	}
	if status != order.StatusNewOrder {
		suite.Require().NoError(suite.orderRepo.Update(ctx, o))
	}
}

func TestOrderQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesIntegrationTestSuite))
}
