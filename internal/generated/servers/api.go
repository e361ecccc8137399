// Package servers holds the HTTP contract of the ordering API: the embedded OpenAPI
// document, its models, the ServerInterface and the echo wrapper that binds parameters.
package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List orders matching optional filters
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// Place a new order
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// Delete an order
	// (DELETE /api/v1/orders/{id})
	DeleteOrder(ctx echo.Context, id int64) error
	// Get one order
	// (GET /api/v1/orders/{id})
	GetOrder(ctx echo.Context, id int64) error
	// Replace every mutable field of an order
	// (PUT /api/v1/orders/{id})
	UpdateOrder(ctx echo.Context, id int64) error
	// Move an order to another status
	// (PUT /api/v1/orders/{id}/status)
	ChangeOrderStatus(ctx echo.Context, id int64) error
	// List customers
	// (GET /api/v1/customers)
	ListCustomers(ctx echo.Context) error
	// Register a customer
	// (POST /api/v1/customers)
	CreateCustomer(ctx echo.Context) error
	// List products
	// (GET /api/v1/products)
	ListProducts(ctx echo.Context) error
	// Add a product to the catalogue
	// (POST /api/v1/products)
	CreateProduct(ctx echo.Context) error
	// Aggregate sales per product and per status
	// (GET /api/v1/reports/sales)
	GetSalesReport(ctx echo.Context) error
	// Write the sales report to a file
	// (POST /api/v1/reports/sales)
	GenerateSalesReport(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var err error

	var params ListOrdersParams

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "customerId", ctx.QueryParams(), &params.CustomerId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter customerId: %s", err))
	}

	return w.Handler.ListOrders(ctx, params)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// DeleteOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteOrder(ctx, id)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, id)
}

// UpdateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrder(ctx, id)
}

// ChangeOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeOrderStatus(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ChangeOrderStatus(ctx, id)
}

// ListCustomers converts echo context to params.
func (w *ServerInterfaceWrapper) ListCustomers(ctx echo.Context) error {
	return w.Handler.ListCustomers(ctx)
}

// CreateCustomer converts echo context to params.
func (w *ServerInterfaceWrapper) CreateCustomer(ctx echo.Context) error {
	return w.Handler.CreateCustomer(ctx)
}

// ListProducts converts echo context to params.
func (w *ServerInterfaceWrapper) ListProducts(ctx echo.Context) error {
	return w.Handler.ListProducts(ctx)
}

// CreateProduct converts echo context to params.
func (w *ServerInterfaceWrapper) CreateProduct(ctx echo.Context) error {
	return w.Handler.CreateProduct(ctx)
}

// GetSalesReport converts echo context to params.
func (w *ServerInterfaceWrapper) GetSalesReport(ctx echo.Context) error {
	return w.Handler.GetSalesReport(ctx)
}

// GenerateSalesReport converts echo context to params.
func (w *ServerInterfaceWrapper) GenerateSalesReport(ctx echo.Context) error {
	return w.Handler.GenerateSalesReport(ctx)
}

func bindOrderID(ctx echo.Context) (int64, error) {
	var id int64

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return id, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used to register routes.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends baseURL to the paths,
// so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/orders", wrapper.ListOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.DELETE(baseURL+"/api/v1/orders/:id", wrapper.DeleteOrder)
	router.GET(baseURL+"/api/v1/orders/:id", wrapper.GetOrder)
	router.PUT(baseURL+"/api/v1/orders/:id", wrapper.UpdateOrder)
	router.PUT(baseURL+"/api/v1/orders/:id/status", wrapper.ChangeOrderStatus)
	router.GET(baseURL+"/api/v1/customers", wrapper.ListCustomers)
	router.POST(baseURL+"/api/v1/customers", wrapper.CreateCustomer)
	router.GET(baseURL+"/api/v1/products", wrapper.ListProducts)
	router.POST(baseURL+"/api/v1/products", wrapper.CreateProduct)
	router.GET(baseURL+"/api/v1/reports/sales", wrapper.GetSalesReport)
	router.POST(baseURL+"/api/v1/reports/sales", wrapper.GenerateSalesReport)
}
