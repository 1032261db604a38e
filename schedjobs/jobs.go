package schedjobs

import "time"

// IntervalJob runs Task every Every, first run one interval after adding.
// Used for recurring background work like signed-URL refresh cycles.
type IntervalJob struct {
	ID    string
	Every time.Duration
	Task  func() error
	// Job-specific callback
	OnFinished func(error)

	nextRun time.Time
}

type OneTimeJob struct {
	ID       string
	ExecTime time.Time
	Task     func() error
	// Job-specific callback
	OnFinished func(error)
}
