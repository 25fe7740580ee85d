// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic and
// can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/osreclaim/osreclaim/internal/platform/openstack"
	"github.com/osreclaim/osreclaim/internal/reclaim"
	"github.com/osreclaim/osreclaim/internal/signature"
)

// ClusterOptions carries the flag and argument values of the cluster command.
type ClusterOptions struct {
	Signature   string
	Cloud       string
	Workspace   string
	AssumeYes   bool
	DryRun      bool
	SummaryPath string
	Debug       bool
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newResourceClient builds the authenticated OpenStack client.
	newResourceClient = func(ctx context.Context, cloud string) (openstack.ResourceClient, error) {
		return openstack.NewRealClient(ctx, cloud)
	}

	discoverResources   = reclaim.Discover
	discoverFloatingIPs = reclaim.DiscoverFloatingIPs
	applyPlan           = reclaim.Apply
)

// Cluster handles the cluster command.
//
// It resolves the signature, searches the cloud for the cluster's resources,
// shows the plan and deletes everything once confirmed. Deletion failures
// are reported but never fail the run; only a failed precondition does.
func Cluster(ctx context.Context, opts ClusterOptions) error {
	logger := newLogger(opts.Debug)

	sig, err := resolveSignature(opts)
	if err != nil {
		return err
	}
	cloud, err := resolveCloud(opts.Cloud)
	if err != nil {
		return err
	}

	client, err := newResourceClient(ctx, cloud)
	if err != nil {
		return fmt.Errorf("failed to connect to cloud %q: %w", cloud, err)
	}

	logger.WithFields(logrus.Fields{"signature": sig, "cloud": cloud}).
		Info("searching for abandoned resources")
	plan, err := discoverResources(ctx, client, sig, logger)
	if err != nil {
		return err
	}
	if plan.Empty() {
		fmt.Printf("No resources found for signature %s.\n", sig)
		return writeSummary(opts.SummaryPath, reclaim.PlanSummary(plan))
	}

	fmt.Print(renderPlan(plan))

	if opts.DryRun {
		return writeSummary(opts.SummaryPath, reclaim.PlanSummary(plan))
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
		logger.WithError(err).Warn("some resources could not be deleted")
	}
	return writeSummary(opts.SummaryPath, result.Summary())
}

func resolveSignature(opts ClusterOptions) (signature.Signature, error) {
	if opts.Signature != "" {
		return signature.Parse(opts.Signature)
	}
	sig, err := signature.FromMetadata(opts.Workspace)
	if err != nil {
		return "", fmt.Errorf("no signature argument and none found in the workspace "+
			"(pass the signature explicitly or point --workspace at an install directory): %w", err)
	}
	return sig, nil
}

// resolveCloud picks the clouds.yaml entry to authenticate against.
func resolveCloud(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if cloud := os.Getenv("OS_CLOUD"); cloud != "" {
		return cloud, nil
	}
	return "", errors.New("no cloud selected: pass --cloud or set OS_CLOUD")
}

// newLogger builds the run logger. Log lines go to stderr so stdout carries
// only the plan and result output.
func newLogger(debug bool) logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func writeSummary(path string, summary *reclaim.Summary) error {
	if path == "" {
		return nil
	}
	return summary.Write(path)
}
