package commands

import (
	"github.com/spf13/cobra"

	"github.com/osreclaim/osreclaim/cmd/osreclaim/handlers"
)

// PruneFIPs returns the prune-fips command.
//
// Floating IPs outlive clusters more often than any other kind: they are
// allocated from a shared pool and survive even a clean teardown when the
// detach raced the teardown. This command collects them independently of any
// cluster signature.
func PruneFIPs() *cobra.Command {
	var opts handlers.PruneFIPsOptions

	cmd := &cobra.Command{
		Use:   "prune-fips",
		Short: "Delete leftover floating IPs",
		Long: `Prune-fips deletes floating IPs that no cluster uses anymore.

By default only detached floating IPs are selected. With
--description-contains the selection switches to floating IPs whose
description contains the given substring, attached or not.

Example:
  osreclaim prune-fips --cloud mycloud
  osreclaim prune-fips --description-contains openshift-cluster-tx7fp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.PruneFIPs(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Cloud, "cloud", "", "Named cloud from clouds.yaml (defaults to $OS_CLOUD)")
	cmd.Flags().StringVar(&opts.DescriptionContains, "description-contains", "", "Select floating IPs whose description contains this substring instead of the detached ones")
	cmd.Flags().BoolVarP(&opts.AssumeYes, "assume-yes", "y", false, "Delete without asking for confirmation")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Show the selected floating IPs without deleting anything")
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "Enable debug logging")

	return cmd
}
