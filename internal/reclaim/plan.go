package reclaim

import (
	"github.com/osreclaim/osreclaim/internal/signature"
)

// Resource identifies one cloud object scheduled for reclamation. Floating
// IPs carry their IP address as Name, since they have no usable display name.
type Resource struct {
	ID   string
	Name string
	Kind Kind
}

// Plan is the kind-partitioned set of resources discovered for one signature
// in a single search pass. A plan is consumed at most once by Apply.
type Plan struct {
	Signature signature.Signature

	resources map[Kind][]Resource
}

// NewPlan returns an empty plan for the signature. Discover is the usual
// builder; NewPlan exists for assembling plans from other sources.
func NewPlan(sig signature.Signature) *Plan {
	return &Plan{
		Signature: sig,
		resources: make(map[Kind][]Resource),
	}
}

// Add appends a resource to its kind's list.
func (p *Plan) Add(r Resource) {
	p.resources[r.Kind] = append(p.resources[r.Kind], r)
}

// Resources returns the discovered resources of the given kind, in discovery
// order.
func (p *Plan) Resources(kind Kind) []Resource {
	return p.resources[kind]
}

// Count returns the number of discovered resources of the given kind.
func (p *Plan) Count(kind Kind) int {
	return len(p.resources[kind])
}

// Total returns the number of discovered resources across all kinds.
func (p *Plan) Total() int {
	total := 0
	for _, rs := range p.resources {
		total += len(rs)
	}
	return total
}

// Empty reports whether the plan holds no resources at all.
func (p *Plan) Empty() bool {
	return p.Total() == 0
}
