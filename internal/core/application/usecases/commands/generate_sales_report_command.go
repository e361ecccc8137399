package commands

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var ErrGenerateSalesReportCommandIsNotConstructed = errors.New(
	"GenerateSalesReportCommand must be created via NewGenerateSalesReportCommand constructor",
)

// GenerateSalesReportCommand asks for the current sales figures to be written to a report file.
// It is a parameterless command triggered by the API and by the scheduled job.
type GenerateSalesReportCommand struct {
	guard guard.ConstructorGuard
}

func NewGenerateSalesReportCommand() GenerateSalesReportCommand {
	return GenerateSalesReportCommand{guard: guard.NewConstructorGuard()}
}

func (c GenerateSalesReportCommand) Validate() error {
	return c.guard.Validate(ErrGenerateSalesReportCommandIsNotConstructed)
}
