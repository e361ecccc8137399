package cmd

import (
	"context"
	"errors"
	"log/slog"

	httpadapter "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/kafka"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/report"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/sales"
	"ordering/internal/core/ports"
	"ordering/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg    Config
	gormDB *gorm.DB
	logger *slog.Logger

	uowFactory   *postgres.GormUnitOfWorkFactory
	publisher    ports.EventPublisher
	reportWriter ports.SalesReportWriter
	clock        kernel.Clock
	defaults     order.Defaults
	policy       order.TransitionPolicy

	closers []func() error
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	defaults, err := cfg.OrderDefaults()
	if err != nil {
		return nil, err
	}
	policy, err := cfg.TransitionPolicy()
	if err != nil {
		return nil, err
	}
	reportWriter, err := report.NewFileWriter(cfg.ReportDirectory(), logger)
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		cfg:          cfg,
		gormDB:       gormDB,
		logger:       logger,
		reportWriter: reportWriter,
		clock:        kernel.SystemClock{},
		defaults:     defaults,
		policy:       policy,
	}

	if cfg.KafkaHost != "" && cfg.KafkaOrderChangedTopic != "" {
		publisher, pubErr := kafka.NewPublisher(kafka.NewWriter(cfg.KafkaHost, cfg.KafkaOrderChangedTopic), logger)
		if pubErr != nil {
			return nil, pubErr
		}
		root.publisher = publisher
		root.closers = append(root.closers, publisher.Close)
	} else {
		root.publisher = kafka.NewNoopPublisher(logger)
	}

	root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, root.publisher, logger)
	return root, nil
}

// Close releases the resources owned by the root. The database is closed by the caller.
func (c *CompositionRoot) Close() error {
	var errs []error
	for _, closeFn := range c.closers {
		errs = append(errs, closeFn())
	}
	return errors.Join(errs...)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.defaults, c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.policy, c.clock)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateGenerateSalesReportCommandHandler() commands.GenerateSalesReportCommandHandler {
	reportQuery := c.CreateGetSalesReportQueryHandler()
	var source ports.SalesReportSource = FuncSalesReportSource(func(ctx context.Context) (sales.Report, error) {
		return reportQuery.Handle(ctx, queries.NewGetSalesReportQuery())
	})
	return commands.NewGenerateSalesReportCommandHandler(source, c.reportWriter)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCustomersQueryHandler() queries.ListCustomersQueryHandler {
	return queries.NewListCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSalesReportQueryHandler() queries.GetSalesReportQueryHandler {
	return queries.NewGetSalesReportQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		UpdateOrder:         c.CreateUpdateOrderCommandHandler(),
		ChangeOrderStatus:   c.CreateChangeOrderStatusCommandHandler(),
		DeleteOrder:         c.CreateDeleteOrderCommandHandler(),
		CreateCustomer:      c.CreateCreateCustomerCommandHandler(),
		CreateProduct:       c.CreateCreateProductCommandHandler(),
		GenerateSalesReport: c.CreateGenerateSalesReportCommandHandler(),
		GetOrder:            c.CreateGetOrderQueryHandler(),
		ListOrders:          c.CreateListOrdersQueryHandler(),
		ListCustomers:       c.CreateListCustomersQueryHandler(),
		ListProducts:        c.CreateListProductsQueryHandler(),
		GetSalesReport:      c.CreateGetSalesReportQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGenerateSalesReportCommandHandler(), c.cfg.ReportSchedule, c.logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncSalesReportSource func(ctx context.Context) (sales.Report, error)

func (f FuncSalesReportSource) Load(ctx context.Context) (sales.Report, error) {
	return f(ctx)
}
