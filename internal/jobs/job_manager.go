package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	digestJob *PendingRequestDigestJob
}

// NewJobManager creates a job manager over the configured jobs.
func NewJobManager(digestJob *PendingRequestDigestJob) *JobManager {
	return &JobManager{
		digestJob: digestJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.digestJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending request digest job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.digestJob.Stop()
}
