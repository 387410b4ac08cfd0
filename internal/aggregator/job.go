package aggregator

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// RunChecksJob is the river job behind Enqueue. Identical pending requests
// are de-duplicated by their arguments.
type RunChecksJob struct {
	SessionID string   `json:"session_id" river:"unique"`
	Domains   []string `json:"domains" river:"unique"`
	Kinds     []string `json:"kinds" river:"unique"`
	DNSTypes  []string `json:"dns_types" river:"unique"`
}

func (RunChecksJob) Kind() string { return "RunChecksJob" }

// InsertOpts runs each job once. Provider failures end up in the stored
// results instead.
func (RunChecksJob) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// Request converts the job arguments back into a Request. Unknown kinds are
// rejected.
func (j RunChecksJob) Request() (Request, error) {
	kinds, err := parseKinds(j.Kinds)
	if err != nil {
		return Request{}, err
	}

	return Request{Domains: j.Domains, Kinds: kinds, DNSTypes: j.DNSTypes}, nil
}
