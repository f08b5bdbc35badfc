package organizer

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// BroadcastJobArgs contains the arguments for a broadcast delivery job
// submitted to River. The payload itself lives in the broadcasts table; the
// job only carries the row ID.
type BroadcastJobArgs struct {
	// BroadcastID is the canonical UUID of the broadcast row to deliver.
	BroadcastID string `json:"broadcast_id" river:"unique"`
}

// Kind returns the River job kind used to register and dispatch the broadcast
// delivery worker.
func (args BroadcastJobArgs) Kind() string { return "DeliverBroadcastJob" }

// InsertOpts makes broadcast jobs unique per broadcast row so a retried
// enqueue cannot deliver the same broadcast twice.
func (args BroadcastJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// ReminderSweepArgs is the payload of the periodic reminder sweep job. The
// sweep carries no parameters; it walks all active events every run.
type ReminderSweepArgs struct{}

// Kind returns the River job kind used to register and dispatch the reminder
// sweep worker.
func (ReminderSweepArgs) Kind() string { return "ReminderSweepJob" }

// InsertOpts keeps at most one sweep in the queue at a time.
func (ReminderSweepArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
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
