package cmd

import (
	"log/slog"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/deliveryrepo"
	"storefront/internal/adapters/out/uploads"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	uploads      *uploads.DirStore
	availability *postgres.Availability
	storage      *postgres.Storage
	amounts      kernel.AmountParser

	deliveryConfig queries.GetDeliveryConfigQueryHandler
}

// NewCompositionRoot wires the adapters shared by every entry point. cfg must have
// passed Validate.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	mode, _ := cfg.ParseMode()

	return CompositionRoot{
		cfg:          cfg,
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		logger:       logger,
		uploads:      uploads.NewDirStore(cfg.ResolvedUploadsDir()),
		availability: postgres.NewAvailability(),
		storage:      postgres.NewStorage(gormDB),
		amounts:      kernel.NewAmountParser(mode),
		deliveryConfig: queries.NewGetDeliveryConfigQueryHandler(
			deliveryrepo.NewGormDeliveryConfigRepository(gormDB),
			logger,
		),
	}
}

func (c *CompositionRoot) Availability() *postgres.Availability {
	return c.availability
}

func (c *CompositionRoot) Storage() *postgres.Storage {
	return c.storage
}

func (c *CompositionRoot) Uploads() *uploads.DirStore {
	return c.uploads
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryConfigUoWFactory() commands.DeliveryConfigUoWFactory {
	return FuncDeliveryConfigUoWFactory(func() commands.DeliveryConfigUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.deliveryConfig)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateReplaceDeliveryConfigCommandHandler() commands.ReplaceDeliveryConfigCommandHandler {
	return commands.NewReplaceDeliveryConfigCommandHandler(c.deliveryConfigUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateMigrateLegacyScreenshotsCommandHandler() commands.MigrateLegacyScreenshotsCommandHandler {
	return commands.NewMigrateLegacyScreenshotsCommandHandler(c.orderUoWFactory(), c.uploads)
}

func (c *CompositionRoot) CreateGetDeliveryConfigQueryHandler() queries.GetDeliveryConfigQueryHandler {
	return c.deliveryConfig
}

func (c *CompositionRoot) CreateQuoteDeliveryChargeQueryHandler() queries.QuoteDeliveryChargeQueryHandler {
	return queries.NewQuoteDeliveryChargeQueryHandler(c.deliveryConfig)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderScreenshotQueryHandler() queries.GetOrderScreenshotQueryHandler {
	return queries.NewGetOrderScreenshotQueryHandler(c.gormDB, c.uploads)
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the HTTP adapter over every use case.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	createOrder := c.CreateCreateOrderCommandHandler()
	changeStatus := c.CreateChangeOrderStatusCommandHandler()
	deleteOrder := c.CreateDeleteOrderCommandHandler()
	replaceConfig := c.CreateReplaceDeliveryConfigCommandHandler()
	createProduct := c.CreateCreateProductCommandHandler()
	updateProduct := c.CreateUpdateProductCommandHandler()
	deleteProduct := c.CreateDeleteProductCommandHandler()

	handlers := httpin.Handlers{
		CreateOrder:           &createOrder,
		ChangeOrderStatus:     &changeStatus,
		DeleteOrder:           &deleteOrder,
		ReplaceDeliveryConfig: &replaceConfig,
		CreateProduct:         &createProduct,
		UpdateProduct:         &updateProduct,
		DeleteProduct:         &deleteProduct,

		GetDeliveryConfig:   c.CreateGetDeliveryConfigQueryHandler(),
		QuoteDeliveryCharge: c.CreateQuoteDeliveryChargeQueryHandler(),
		ListOrders:          c.CreateListOrdersQueryHandler(),
		GetOrder:            c.CreateGetOrderQueryHandler(),
		GetOrderScreenshot:  c.CreateGetOrderScreenshotQueryHandler(),
		ListProducts:        c.CreateListProductsQueryHandler(),
	}

	return httpin.NewServer(handlers, c.amounts, c.logger)
}

func (c *CompositionRoot) RouterConfig() httpin.RouterConfig {
	return httpin.RouterConfig{
		AdminUser: c.cfg.AdminUser,
		AdminPass: c.cfg.AdminPass,
		Origins: httpin.OriginPolicy{
			Allowed:    c.cfg.AllowedOrigins(),
			Production: c.cfg.IsProduction(),
		},
		BodyLimit:        c.cfg.BodyLimit,
		ValidateRequests: c.cfg.OpenAPIRequestValidation,
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	probe := jobs.NewStorageProbeJob(c.storage, c.availability, c.cfg.StorageProbeInterval, c.logger)
	return jobs.NewJobManager(probe)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncDeliveryConfigUoWFactory func() commands.DeliveryConfigUoW

func (f FuncDeliveryConfigUoWFactory) Create() commands.DeliveryConfigUoW {
	return f()
}
