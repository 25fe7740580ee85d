package handlers

import (
	"context"
	"fmt"

	"github.com/osreclaim/osreclaim/internal/reclaim"
)

// PruneFIPsOptions carries the flag values of the prune-fips command.
type PruneFIPsOptions struct {
	Cloud               string
	DescriptionContains string
	AssumeYes           bool
	DryRun              bool
	Debug               bool
}

// PruneFIPs handles the prune-fips command.
//
// It selects leftover floating IPs, shows them and releases them once
// confirmed. Selection is by description substring when given, otherwise
// every detached floating IP of the project is selected.
func PruneFIPs(ctx context.Context, opts PruneFIPsOptions) error {
	logger := newLogger(opts.Debug)

	cloud, err := resolveCloud(opts.Cloud)
	if err != nil {
		return err
	}

	client, err := newResourceClient(ctx, cloud)
	if err != nil {
		return fmt.Errorf("failed to connect to cloud %q: %w", cloud, err)
	}

	plan, err := discoverFloatingIPs(ctx, client, reclaim.FloatingIPFilter{
		DescriptionContains: opts.DescriptionContains,
	})
	if err != nil {
		return err
	}
	if plan.Empty() {
		fmt.Println("No leftover floating IPs found.")
		return nil
	}

	fmt.Print(renderPlan(plan))

	if opts.DryRun {
		return nil
	}

	confirmed, err := confirmApply(ctx, opts.AssumeYes, plan.Total())
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Println("Aborted, nothing deleted.")
		return nil
	}

	result := applyPlan(ctx, client, plan, logger)
	fmt.Print(renderResult(result))

	if err := result.Err(); err != nil {
		logger.WithError(err).Warn("some floating IPs could not be deleted")
	}
	return nil
}
