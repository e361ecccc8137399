// Package report renders sales reports as plain text tables on disk.
package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"ordering/internal/core/domain/model/sales"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
)

const fileTimestampLayout = "20060102-150405"

// FileWriter writes each report into its own file under dir.
// File names are sales-report-<timestamp>-<uuid>.txt so concurrent runs never collide.
type FileWriter struct {
	dir    string
	logger *slog.Logger
}

func NewFileWriter(dir string, logger *slog.Logger) (*FileWriter, error) {
	if dir == "" {
		return nil, fmt.Errorf("report directory is required")
	}
	return &FileWriter{
		dir:    dir,
		logger: logger.With("component", "report_writer"),
	}, nil
}

// Write renders report and returns the path of the created file.
func (w *FileWriter) Write(ctx context.Context, report sales.Report) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}

	name := fmt.Sprintf("sales-report-%s-%s.txt",
		report.GeneratedAt.UTC().Format(fileTimestampLayout), uuid.NewString())
	path := filepath.Join(w.dir, name)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}

	if err = Render(file, report); err != nil {
		_ = file.Close()
		return "", err
	}
	if err = file.Close(); err != nil {
		return "", fmt.Errorf("close report file: %w", err)
	}

	w.logger.InfoContext(ctx, "Sales report written",
		"path", path,
		"products", len(report.Products),
		"orders", report.TotalOrders)
	return path, nil
}

// Render writes the product table followed by the status table.
func Render(out io.Writer, report sales.Report) error {
	if _, err := fmt.Fprintf(out, "Sales report generated at %s\n\n", report.GeneratedAt.Format(time.RFC3339)); err != nil {
		return err
	}

	products := tablewriter.NewWriter(out)
	products.Header("Product ID", "Product", "Orders", "Units", "Revenue")
	for _, line := range report.Products {
		if err := products.Append([]string{
			strconv.FormatInt(line.ProductID, 10),
			line.ProductName,
			strconv.Itoa(line.Orders),
			strconv.Itoa(line.Units),
			line.Revenue.String(),
		}); err != nil {
			return fmt.Errorf("append product row: %w", err)
		}
	}
	products.Footer("", "Total",
		strconv.Itoa(report.TotalOrders),
		strconv.Itoa(report.TotalUnits),
		report.TotalRevenue.String())
	if err := products.Render(); err != nil {
		return fmt.Errorf("render product table: %w", err)
	}

	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}

	statuses := tablewriter.NewWriter(out)
	statuses.Header("Status", "Orders", "Revenue")
	for _, line := range report.Statuses {
		if err := statuses.Append([]string{
			line.Status.String(),
			strconv.Itoa(line.Orders),
			line.Revenue.String(),
		}); err != nil {
			return fmt.Errorf("append status row: %w", err)
		}
	}
	if err := statuses.Render(); err != nil {
		return fmt.Errorf("render status table: %w", err)
	}

	return nil
}
