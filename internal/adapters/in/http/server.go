package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/model/sales"
	"ordering/internal/generated/servers"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const ordersPath = "/api/v1/orders"

// Use case handlers the server delegates to. The command and query handlers of the
// application layer satisfy them.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	UpdateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error)
	}
	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error)
	}
	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}
	CreateCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCustomerCommand) (*customer.Customer, error)
	}
	CreateProductHandler interface {
		Handle(ctx context.Context, cmd commands.CreateProductCommand) (*product.Product, error)
	}
	GenerateSalesReportHandler interface {
		Handle(ctx context.Context, cmd commands.GenerateSalesReportCommand) (string, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderResponse, error)
	}
	ListCustomersHandler interface {
		Handle(ctx context.Context, query queries.ListCustomersQuery) ([]queries.CustomerResponse, error)
	}
	ListProductsHandler interface {
		Handle(ctx context.Context, query queries.ListProductsQuery) ([]queries.ProductResponse, error)
	}
	GetSalesReportHandler interface {
		Handle(ctx context.Context, query queries.GetSalesReportQuery) (sales.Report, error)
	}
)

// Handlers groups every use case the server exposes.
type Handlers struct {
	CreateOrder         CreateOrderHandler
	UpdateOrder         UpdateOrderHandler
	ChangeOrderStatus   ChangeOrderStatusHandler
	DeleteOrder         DeleteOrderHandler
	CreateCustomer      CreateCustomerHandler
	CreateProduct       CreateProductHandler
	GenerateSalesReport GenerateSalesReportHandler

	GetOrder       GetOrderHandler
	ListOrders     ListOrdersHandler
	ListCustomers  ListCustomersHandler
	ListProducts   ListProductsHandler
	GetSalesReport GetSalesReportHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
// Handlers return errors untranslated; NewErrorHandler maps them to status codes.
type Server struct {
	handlers Handlers
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	query := queries.NewListOrdersQuery(params.Status, params.CustomerId)

	orders, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = orderFromReadModel(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := bindBody(ctx, "order", &body); err != nil {
		return err
	}
	if err := ctx.Validate(&body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(orderInput(body))
	if err != nil {
		return err
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	ctx.Response().Header().Set(echo.HeaderLocation, ordersPath+"/"+strconv.FormatInt(created.ID(), 10))
	return ctx.JSON(http.StatusCreated, orderFromDomain(created))
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id int64) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}

	found, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, orderFromReadModel(found))
}

// UpdateOrder handles PUT /api/v1/orders/{id}.
func (s *Server) UpdateOrder(ctx echo.Context, id int64) error {
	var body servers.NewOrder
	if err := bindBody(ctx, "order", &body); err != nil {
		return err
	}
	if err := ctx.Validate(&body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderCommand(id, orderInput(body))
	if err != nil {
		return err
	}

	updated, err := s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/{id}.
func (s *Server) DeleteOrder(ctx echo.Context, id int64) error {
	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return err
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles PUT /api/v1/orders/{id}/status. The body is a bare JSON string.
func (s *Server) ChangeOrderStatus(ctx echo.Context, id int64) error {
	var status string
	if err := bindBody(ctx, "status", &status); err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, status)
	if err != nil {
		return err
	}

	changed, err := s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(changed))
}

// ListCustomers handles GET /api/v1/customers.
func (s *Server) ListCustomers(ctx echo.Context) error {
	customers, err := s.handlers.ListCustomers.Handle(ctx.Request().Context(), queries.NewListCustomersQuery())
	if err != nil {
		return err
	}

	response := make([]servers.Customer, len(customers))
	for i, c := range customers {
		response[i] = servers.Customer{Id: c.ID, Name: c.Name, Email: c.Email}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body servers.NewCustomer
	if err := bindBody(ctx, "customer", &body); err != nil {
		return err
	}
	if err := ctx.Validate(&body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateCustomerCommand(body.Name, body.Email)
	if err != nil {
		return err
	}

	created, err := s.handlers.CreateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Customer{
		Id:    created.ID(),
		Name:  created.Name(),
		Email: created.Email(),
	})
}

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(ctx echo.Context) error {
	products, err := s.handlers.ListProducts.Handle(ctx.Request().Context(), queries.NewListProductsQuery())
	if err != nil {
		return err
	}

	response := make([]servers.Product, len(products))
	for i, p := range products {
		response[i] = servers.Product{Id: p.ID, Name: p.Name, Price: p.Price.StringFixed(2)}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body servers.NewProduct
	if err := bindBody(ctx, "product", &body); err != nil {
		return err
	}
	if err := ctx.Validate(&body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateProductCommand(body.Name, *body.Price)
	if err != nil {
		return err
	}

	created, err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Product{
		Id:    created.ID(),
		Name:  created.Name(),
		Price: created.Price().String(),
	})
}

// GetSalesReport handles GET /api/v1/reports/sales.
func (s *Server) GetSalesReport(ctx echo.Context) error {
	report, err := s.handlers.GetSalesReport.Handle(ctx.Request().Context(), queries.NewGetSalesReportQuery())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, salesReport(report))
}

// GenerateSalesReport handles POST /api/v1/reports/sales.
func (s *Server) GenerateSalesReport(ctx echo.Context) error {
	path, err := s.handlers.GenerateSalesReport.Handle(ctx.Request().Context(), commands.NewGenerateSalesReportCommand())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.ReportFile{Path: path})
}

// bindBody rejects a missing or null body before handing it to the echo binder.
func bindBody(ctx echo.Context, name string, dst any) error {
	raw, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").SetInternal(err)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return errs.NewValueIsRequiredErrorWithCause(name, fmt.Errorf("request body is empty"))
	}

	ctx.Request().Body = io.NopCloser(bytes.NewReader(raw))
	return ctx.Bind(dst)
}

func orderInput(body servers.NewOrder) commands.OrderInput {
	input := commands.OrderInput{
		CustomerID: body.CustomerId,
		ProductID:  body.ProductId,
		Quantity:   body.Quantity,
		Status:     body.Status,
		Notes:      body.Notes,
	}
	if body.UnitPrice != nil {
		input.UnitPrice = *body.UnitPrice
	}
	if body.Date != nil {
		input.Date = *body.Date
	}
	return input
}

func orderFromDomain(o *order.Order) servers.Order {
	return servers.Order{
		Id:         o.ID(),
		CustomerId: o.CustomerID(),
		ProductId:  o.ProductID(),
		Quantity:   o.Quantity(),
		UnitPrice:  o.UnitPrice().String(),
		Total:      o.Total().String(),
		Status:     o.Status().String(),
		Date:       o.Date(),
		Notes:      o.Notes(),
	}
}

func orderFromReadModel(o queries.OrderResponse) servers.Order {
	return servers.Order{
		Id:         o.ID,
		CustomerId: o.CustomerID,
		ProductId:  o.ProductID,
		Quantity:   o.Quantity,
		UnitPrice:  fixed(o.UnitPrice),
		Total:      fixed(o.Total),
		Status:     o.Status,
		Date:       o.PlacedAt,
		Notes:      o.Notes,
	}
}

func salesReport(report sales.Report) servers.SalesReport {
	response := servers.SalesReport{
		GeneratedAt:  report.GeneratedAt,
		Products:     make([]servers.ProductSales, len(report.Products)),
		Statuses:     make([]servers.StatusSales, len(report.Statuses)),
		TotalOrders:  report.TotalOrders,
		TotalUnits:   report.TotalUnits,
		TotalRevenue: report.TotalRevenue.String(),
	}

	for i, line := range report.Products {
		response.Products[i] = servers.ProductSales{
			ProductId:   line.ProductID,
			ProductName: line.ProductName,
			Orders:      line.Orders,
			Units:       line.Units,
			Revenue:     line.Revenue.String(),
		}
	}
	for i, line := range report.Statuses {
		response.Statuses[i] = servers.StatusSales{
			Status:  line.Status.String(),
			Orders:  line.Orders,
			Revenue: line.Revenue.String(),
		}
	}

	return response
}

func fixed(d decimal.Decimal) string {
	return d.StringFixed(2)
}
