package reclaim

import (
	"context"
	"fmt"
	"strings"

	"github.com/osreclaim/osreclaim/internal/platform/openstack"
)

// FloatingIPFilter selects floating IPs for pruning.
type FloatingIPFilter struct {
	// DescriptionContains keeps only floating IPs whose description
	// contains the substring. Empty keeps the detached ones instead.
	DescriptionContains string
}

// DiscoverFloatingIPs builds a plan holding only floating IPs. Unlike the
// signature search this returns list errors: a single-kind plan with the one
// listing failed is necessarily empty, and an empty plan would mask the
// failure as "nothing found".
func DiscoverFloatingIPs(ctx context.Context, client openstack.ResourceClient, filter FloatingIPFilter) (*Plan, error) {
	fips, err := client.ListFloatingIPs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list floating IPs: %w", err)
	}

	plan := NewPlan("")
	for _, fip := range fips {
		if filter.DescriptionContains != "" {
			if !strings.Contains(fip.Description, filter.DescriptionContains) {
				continue
			}
		} else if fip.PortID != "" {
			continue
		}
		plan.Add(Resource{ID: fip.ID, Name: fip.FloatingIP, Kind: KindFloatingIP})
	}
	return plan, nil
}
