package servers

import (
	"time"

	"github.com/shopspring/decimal"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder defines model for NewOrder. Omitted fields are left to the server defaults.
type NewOrder struct {
	CustomerId int64            `json:"customerId,omitempty" validate:"gte=0"`
	ProductId  int64            `json:"productId,omitempty"  validate:"gte=0"`
	Quantity   int              `json:"quantity,omitempty"   validate:"gte=0"`
	UnitPrice  *decimal.Decimal `json:"unitPrice,omitempty"`
	Status     string           `json:"status,omitempty"`
	Date       *time.Time       `json:"date,omitempty"`
	Notes      string           `json:"notes,omitempty"      validate:"max=2000"`
}

// Order defines model for Order.
type Order struct {
	Id         int64     `json:"id"`
	CustomerId int64     `json:"customerId"`
	ProductId  int64     `json:"productId"`
	Quantity   int       `json:"quantity"`
	UnitPrice  string    `json:"unitPrice"`
	Total      string    `json:"total"`
	Status     string    `json:"status"`
	Date       time.Time `json:"date"`
	Notes      string    `json:"notes,omitempty"`
}

// NewCustomer defines model for NewCustomer.
type NewCustomer struct {
	Name  string `json:"name"            validate:"required,max=255"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

// Customer defines model for Customer.
type Customer struct {
	Id    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// NewProduct defines model for NewProduct.
type NewProduct struct {
	Name  string           `json:"name"  validate:"required,max=255"`
	Price *decimal.Decimal `json:"price" validate:"required"`
}

// Product defines model for Product.
type Product struct {
	Id    int64  `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

// ProductSales defines model for one product line of SalesReport.
type ProductSales struct {
	ProductId   int64  `json:"productId"`
	ProductName string `json:"productName"`
	Orders      int    `json:"orders"`
	Units       int    `json:"units"`
	Revenue     string `json:"revenue"`
}

// StatusSales defines model for one status line of SalesReport.
type StatusSales struct {
	Status  string `json:"status"`
	Orders  int    `json:"orders"`
	Revenue string `json:"revenue"`
}

// SalesReport defines model for SalesReport.
type SalesReport struct {
	GeneratedAt  time.Time      `json:"generatedAt"`
	Products     []ProductSales `json:"products"`
	Statuses     []StatusSales  `json:"statuses"`
	TotalOrders  int            `json:"totalOrders"`
	TotalUnits   int            `json:"totalUnits"`
	TotalRevenue string         `json:"totalRevenue"`
}

// ReportFile defines model for ReportFile.
type ReportFile struct {
	Path string `json:"path"`
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Status     *string `form:"status,omitempty"     json:"status,omitempty"`
	CustomerId *int64  `form:"customerId,omitempty" json:"customerId,omitempty"`
}
