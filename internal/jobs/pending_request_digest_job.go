package jobs

import (
	"context"
	"log/slog"

	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/request"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// PendingRequestDigestJob periodically logs a digest of the day's change
// requests so approvers notice a growing backlog without polling the UI.
type PendingRequestDigestJob struct {
	handler  queries.ListRequestsForDateQueryHandler
	clock    ports.Clock
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPendingRequestDigestJob creates the digest job. The schedule is a
// cron expression with a seconds field.
func NewPendingRequestDigestJob(
	handler queries.ListRequestsForDateQueryHandler,
	clock ports.Clock,
	schedule string,
	logger *slog.Logger,
) *PendingRequestDigestJob {
	return &PendingRequestDigestJob{
		handler:  handler,
		clock:    clock,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "pending_request_digest_job"),
	}
}

// Start schedules the digest job.
func (j *PendingRequestDigestJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending request digest job started", "schedule", j.schedule)
	return nil
}

// Stop stops the digest job.
func (j *PendingRequestDigestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending request digest job stopped")
}

func (j *PendingRequestDigestJob) run() {
	ctx := context.Background()
	today := j.clock.Today()

	query, err := queries.NewListRequestsForDateQuery(today.Int())
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending request digest job failed", "error", err)
		return
	}

	rows, err := j.handler.Handle(ctx, query)
	if err != nil {
		err = errs.NewStoreFailureError("list requests for date", err)
		j.logger.ErrorContext(ctx, "Pending request digest job failed", "error", err)
		return
	}

	var pending, accepted, rejected int
	for _, row := range rows {
		switch request.Status(row.Status) {
		case request.StatusCreate:
			pending++
		case request.StatusAccept:
			accepted++
		case request.StatusReject:
			rejected++
		}
	}

	j.logger.InfoContext(ctx, "Change request digest",
		"businessDate", today.String(),
		"pending", pending,
		"accepted", accepted,
		"rejected", rejected,
	)
}
