package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/sales"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetSalesReportQueryHandler builds the sales report from one grouped query.
// Orders are joined to products once and grouped by (product, status), so the cost
// does not grow with the number of products. Orders whose product row is missing
// are still counted, with an empty product name.
//
// Example:
//
//	handler := NewGetSalesReportQueryHandler(db, kernel.SystemClock{})
//	report, err := handler.Handle(ctx, NewGetSalesReportQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders, revenue %s\n", report.TotalOrders, report.TotalRevenue)
type GetSalesReportQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
}

func NewGetSalesReportQueryHandler(db *gorm.DB, clock kernel.Clock) GetSalesReportQueryHandler {
	return GetSalesReportQueryHandler{db: db, clock: clock}
}

func (h GetSalesReportQueryHandler) Handle(ctx context.Context, query GetSalesReportQuery) (sales.Report, error) {
	if err := query.Validate(); err != nil {
		return sales.Report{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.product_id,
			COALESCE(p.name, '') AS product_name,
			o.status,
			COUNT(*) AS orders,
			COALESCE(SUM(o.quantity), 0) AS units,
			COALESCE(SUM(o.total), 0) AS revenue
		FROM orders o
		LEFT JOIN products p ON p.id = o.product_id
		GROUP BY o.product_id, p.name, o.status
		ORDER BY o.product_id, o.status
	`).Rows()
	if err != nil {
		return sales.Report{}, errs.NewPersistenceErrorWithCause("aggregate sales", err)
	}
	defer rows.Close()

	lines := make([]sales.Row, 0)
	for rows.Next() {
		var (
			row     sales.Row
			status  string
			orders  int64
			units   int64
			revenue decimal.Decimal
		)

		if err = rows.Scan(&row.ProductID, &row.ProductName, &status, &orders, &units, &revenue); err != nil {
			return sales.Report{}, errs.NewPersistenceErrorWithCause("scan sales row", err)
		}

		amount, moneyErr := kernel.NewMoney(revenue)
		if moneyErr != nil {
			return sales.Report{}, moneyErr
		}

		row.Status = order.Status(status)
		row.Orders = int(orders)
		row.Units = int(units)
		row.Revenue = amount
		lines = append(lines, row)
	}

	if err = rows.Err(); err != nil {
		return sales.Report{}, errs.NewPersistenceErrorWithCause("read sales rows", err)
	}

	return sales.NewReport(h.clock.Now(), lines), nil
}
