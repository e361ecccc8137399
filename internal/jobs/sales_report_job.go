package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const defaultRunTimeout = 5 * time.Minute

// SalesReportHandler is the use case the job runs.
type SalesReportHandler interface {
	Handle(ctx context.Context, cmd commands.GenerateSalesReportCommand) (string, error)
}

// SalesReportJob writes the sales report on a cron schedule.
// The schedule uses six fields, seconds first: "0 0 2 * * *" runs daily at 02:00.
type SalesReportJob struct {
	handler  SalesReportHandler
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSalesReportJob creates the job. An empty schedule disables it: Start and Stop become no-ops.
func NewSalesReportJob(handler SalesReportHandler, schedule string, logger *slog.Logger) *SalesReportJob {
	return &SalesReportJob{
		handler:  handler,
		schedule: schedule,
		timeout:  defaultRunTimeout,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "sales_report_job"),
	}
}

// Enabled reports whether a schedule was configured.
func (j *SalesReportJob) Enabled() bool {
	return j.schedule != ""
}

// Start registers the schedule and starts the cron scheduler.
// It fails when the schedule cannot be parsed.
func (j *SalesReportJob) Start() error {
	if !j.Enabled() {
		j.logger.InfoContext(context.Background(), "Sales report job disabled (no schedule)")
		return nil
	}

	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Sales report job started", "schedule", j.schedule)
	return nil
}

// Run generates one report. It is what the scheduler calls on every tick.
func (j *SalesReportJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	path, err := j.handler.Handle(ctx, commands.NewGenerateSalesReportCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Sales report job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Sales report generated", "path", path)
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *SalesReportJob) Stop() {
	if !j.Enabled() {
		return
	}

	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Sales report job stopped")
}
