// Package sales models the sales report: revenue and volume per product and per order status.
package sales

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// ProductLine aggregates every order placed for one product.
type ProductLine struct {
	ProductID   int64
	ProductName string
	Orders      int
	Units       int
	Revenue     kernel.Money
}

// StatusLine aggregates every order currently in one status.
type StatusLine struct {
	Status  order.Status
	Orders  int
	Revenue kernel.Money
}

// Row is one (product, status) group as returned by the store.
type Row struct {
	ProductID   int64
	ProductName string
	Status      order.Status
	Orders      int
	Units       int
	Revenue     kernel.Money
}

// Report is a point in time summary of all stored orders.
type Report struct {
	GeneratedAt  time.Time
	Products     []ProductLine
	Statuses     []StatusLine
	TotalOrders  int
	TotalUnits   int
	TotalRevenue kernel.Money
}

// NewReport folds grouped rows into per-product and per-status lines.
// Products keep the order of their first row; statuses follow the lifecycle order
// and statuses without orders are reported with zero values.
func NewReport(generatedAt time.Time, rows []Row) Report {
	report := Report{
		GeneratedAt:  generatedAt,
		Products:     make([]ProductLine, 0),
		TotalRevenue: kernel.ZeroMoney(),
	}

	productIndex := make(map[int64]int)
	statusIndex := make(map[order.Status]int)
	for _, status := range order.AllStatuses() {
		statusIndex[status] = len(report.Statuses)
		report.Statuses = append(report.Statuses, StatusLine{Status: status, Revenue: kernel.ZeroMoney()})
	}

	for _, row := range rows {
		i, ok := productIndex[row.ProductID]
		if !ok {
			i = len(report.Products)
			productIndex[row.ProductID] = i
			report.Products = append(report.Products, ProductLine{
				ProductID:   row.ProductID,
				ProductName: row.ProductName,
				Revenue:     kernel.ZeroMoney(),
			})
		}
		line := &report.Products[i]
		line.Orders += row.Orders
		line.Units += row.Units
		line.Revenue = line.Revenue.Add(row.Revenue)

		s, ok := statusIndex[row.Status]
		if !ok {
			s = len(report.Statuses)
			statusIndex[row.Status] = s
			report.Statuses = append(report.Statuses, StatusLine{Status: row.Status, Revenue: kernel.ZeroMoney()})
		}
		statusLine := &report.Statuses[s]
		statusLine.Orders += row.Orders
		statusLine.Revenue = statusLine.Revenue.Add(row.Revenue)

		report.TotalOrders += row.Orders
		report.TotalUnits += row.Units
		report.TotalRevenue = report.TotalRevenue.Add(row.Revenue)
	}

	return report
}
