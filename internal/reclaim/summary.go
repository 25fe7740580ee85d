package reclaim

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Summary is the machine-readable record of one run, written for automation
// that wraps the interactive tool.
type Summary struct {
	Signature  string    `json:"signature,omitempty" yaml:"signature,omitempty"`
	StartedAt  time.Time `json:"startedAt" yaml:"startedAt"`
	FinishedAt time.Time `json:"finishedAt" yaml:"finishedAt"`
	Planned    int       `json:"planned" yaml:"planned"`
	Deleted    int       `json:"deleted" yaml:"deleted"`
	Failed     int       `json:"failed" yaml:"failed"`
	Skipped    int       `json:"skipped" yaml:"skipped"`
	Resources  []Outcome `json:"resources" yaml:"resources"`
}

// PlanSummary builds a summary for a plan that was not applied, as written
// by dry runs. Every resource is reported as planned.
func PlanSummary(plan *Plan) *Summary {
	now := time.Now().UTC()
	s := &Summary{
		Signature:  plan.Signature.String(),
		StartedAt:  now,
		FinishedAt: now,
	}
	for _, kind := range Kinds {
		for _, r := range plan.Resources(kind) {
			s.Resources = append(s.Resources, Outcome{
				Kind: r.Kind, ID: r.ID, Name: r.Name, Status: StatusPlanned,
			})
		}
	}
	s.Planned = len(s.Resources)
	return s
}

// Summary condenses the result into its machine-readable form.
func (r *Result) Summary() *Summary {
	s := &Summary{
		Signature:  r.Signature.String(),
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
		Planned:    len(r.Outcomes),
		Resources:  r.Outcomes,
	}
	for _, o := range r.Outcomes {
		switch o.Status {
		case StatusDeleted:
			s.Deleted++
		case StatusFailed:
			s.Failed++
		case StatusSkipped:
			s.Skipped++
		}
	}
	return s
}

// Write encodes the summary to path. A .yaml or .yml extension selects YAML,
// anything else JSON.
func (s *Summary) Write(path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(s)
	default:
		data, err = json.MarshalIndent(s, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	}
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
