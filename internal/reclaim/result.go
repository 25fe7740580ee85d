package reclaim

import (
	"errors"
	"fmt"
	"time"

	"github.com/osreclaim/osreclaim/internal/signature"
)

// Status is the fate of one planned resource.
type Status string

const (
	// StatusPlanned marks a resource discovered but not acted on.
	StatusPlanned Status = "planned"
	// StatusDeleted marks a resource whose deletion the control plane
	// accepted.
	StatusDeleted Status = "deleted"
	// StatusFailed marks a resource whose deletion failed. A failure never
	// stops the remaining deletions.
	StatusFailed Status = "failed"
	// StatusSkipped marks a resource the run never attempted, e.g. after
	// cancellation.
	StatusSkipped Status = "skipped"
)

// Outcome records the fate of one resource.
type Outcome struct {
	Kind   Kind   `json:"kind" yaml:"kind"`
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Status Status `json:"status" yaml:"status"`
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Result accumulates per-resource outcomes of one apply pass.
type Result struct {
	Signature  signature.Signature
	StartedAt  time.Time
	FinishedAt time.Time
	Outcomes   []Outcome

	errs []error
}

func newResult(sig signature.Signature) *Result {
	return &Result{
		Signature: sig,
		StartedAt: time.Now().UTC(),
	}
}

func (r *Result) recordDeleted(res Resource) {
	r.Outcomes = append(r.Outcomes, Outcome{
		Kind: res.Kind, ID: res.ID, Name: res.Name, Status: StatusDeleted,
	})
}

func (r *Result) recordFailed(res Resource, err error) {
	r.Outcomes = append(r.Outcomes, Outcome{
		Kind: res.Kind, ID: res.ID, Name: res.Name, Status: StatusFailed, Reason: err.Error(),
	})
	r.errs = append(r.errs, fmt.Errorf("%s %q: %w", res.Kind, res.Name, err))
}

func (r *Result) recordSkipped(res Resource, reason string) {
	r.Outcomes = append(r.Outcomes, Outcome{
		Kind: res.Kind, ID: res.ID, Name: res.Name, Status: StatusSkipped, Reason: reason,
	})
}

// Deleted returns the number of resources whose deletion was accepted.
func (r *Result) Deleted() int { return r.count(StatusDeleted) }

// Failed returns the number of resources whose deletion failed.
func (r *Result) Failed() int { return r.count(StatusFailed) }

// Skipped returns the number of resources the run never attempted.
func (r *Result) Skipped() int { return r.count(StatusSkipped) }

func (r *Result) count(status Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// Err returns the combined deletion failures, or nil if every attempted
// deletion succeeded.
func (r *Result) Err() error {
	if len(r.errs) == 0 {
		return nil
	}
	return errors.Join(r.errs...)
}
