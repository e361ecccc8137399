package http_test

import (
	"context"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/model/sales"

	"github.com/stretchr/testify/mock"
)

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockUpdateOrderHandler struct{ mock.Mock }

func (m *MockUpdateOrderHandler) Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockChangeOrderStatusHandler struct{ mock.Mock }

func (m *MockChangeOrderStatusHandler) Handle(
	ctx context.Context,
	cmd commands.ChangeOrderStatusCommand,
) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockDeleteOrderHandler struct{ mock.Mock }

func (m *MockDeleteOrderHandler) Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCreateCustomerHandler struct{ mock.Mock }

func (m *MockCreateCustomerHandler) Handle(
	ctx context.Context,
	cmd commands.CreateCustomerCommand,
) (*customer.Customer, error) {
	args := m.Called(ctx, cmd)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

type MockCreateProductHandler struct{ mock.Mock }

func (m *MockCreateProductHandler) Handle(ctx context.Context, cmd commands.CreateProductCommand) (*product.Product, error) {
	args := m.Called(ctx, cmd)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

type MockGenerateSalesReportHandler struct{ mock.Mock }

func (m *MockGenerateSalesReportHandler) Handle(ctx context.Context, cmd commands.GenerateSalesReportCommand) (string, error) {
	args := m.Called(ctx, cmd)
	return args.String(0), args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error) {
	args := m.Called(ctx, query)
	o, _ := args.Get(0).(queries.OrderResponse)
	return o, args.Error(1)
}

type MockListOrdersHandler struct{ mock.Mock }

func (m *MockListOrdersHandler) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderResponse, error) {
	args := m.Called(ctx, query)
	o, _ := args.Get(0).([]queries.OrderResponse)
	return o, args.Error(1)
}

type MockListCustomersHandler struct{ mock.Mock }

func (m *MockListCustomersHandler) Handle(
	ctx context.Context,
	query queries.ListCustomersQuery,
) ([]queries.CustomerResponse, error) {
	args := m.Called(ctx, query)
	c, _ := args.Get(0).([]queries.CustomerResponse)
	return c, args.Error(1)
}

type MockListProductsHandler struct{ mock.Mock }

func (m *MockListProductsHandler) Handle(
	ctx context.Context,
	query queries.ListProductsQuery,
) ([]queries.ProductResponse, error) {
	args := m.Called(ctx, query)
	p, _ := args.Get(0).([]queries.ProductResponse)
	return p, args.Error(1)
}

type MockGetSalesReportHandler struct{ mock.Mock }

func (m *MockGetSalesReportHandler) Handle(ctx context.Context, query queries.GetSalesReportQuery) (sales.Report, error) {
	args := m.Called(ctx, query)
	r, _ := args.Get(0).(sales.Report)
	return r, args.Error(1)
}
