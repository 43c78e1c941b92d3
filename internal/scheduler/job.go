package scheduler

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// AdvanceJobArgs are the arguments of the job running the Advancer. The job
// carries no data; every run evaluates the clock at the time it executes.
type AdvanceJobArgs struct {
	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the advance worker.
func (args AdvanceJobArgs) Kind() string { return "AdvanceStalledPlacements" }

// InsertOpts makes sure at most one run is queued or running at a time, so an
// overlapping periodic tick or manual trigger collapses into the pending one.
func (args AdvanceJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
