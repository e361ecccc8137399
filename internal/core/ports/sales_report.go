package ports

import (
	"context"

	"ordering/internal/core/domain/model/sales"
)

// SalesReportSource loads the aggregated sales figures.
type SalesReportSource interface {
	Load(ctx context.Context) (sales.Report, error)
}

// SalesReportWriter stores a rendered report and returns where it was written.
type SalesReportWriter interface {
	Write(ctx context.Context, report sales.Report) (string, error)
}
