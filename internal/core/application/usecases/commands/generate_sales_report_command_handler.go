package commands

import (
	"context"
	"fmt"

	"ordering/internal/core/ports"
)

// GenerateSalesReportCommandHandler loads the aggregated figures in one query and
// hands them to the report writer.
//
// Example:
//
//	handler := NewGenerateSalesReportCommandHandler(source, writer)
//	path, err := handler.Handle(ctx, NewGenerateSalesReportCommand())
//	if err != nil {
//	    return err
//	}
//	fmt.Println("report written to", path)
type GenerateSalesReportCommandHandler struct {
	source ports.SalesReportSource
	writer ports.SalesReportWriter
}

func NewGenerateSalesReportCommandHandler(
	source ports.SalesReportSource,
	writer ports.SalesReportWriter,
) GenerateSalesReportCommandHandler {
	return GenerateSalesReportCommandHandler{
		source: source,
		writer: writer,
	}
}

// Handle returns the location of the written report.
func (h GenerateSalesReportCommandHandler) Handle(ctx context.Context, cmd GenerateSalesReportCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	report, err := h.source.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("load sales figures: %w", err)
	}

	path, err := h.writer.Write(ctx, report)
	if err != nil {
		return "", fmt.Errorf("write sales report: %w", err)
	}

	return path, nil
}
