package commands

import (
	"github.com/spf13/cobra"

	"github.com/osreclaim/osreclaim/cmd/osreclaim/handlers"
)

// Cluster returns the cluster command.
//
// The cluster command searches the cloud for every resource tied to one
// cluster signature, shows the reclamation plan and, once confirmed,
// deletes the resources in dependency order.
func Cluster() *cobra.Command {
	var opts handlers.ClusterOptions

	cmd := &cobra.Command{
		Use:   "cluster [signature]",
		Short: "Find and delete the resources of one abandoned cluster",
		Long: `Cluster searches the cloud for the resources an OpenShift deployment left
behind and deletes them in dependency order.

The cluster is identified by its five-character signature, given either as
the argument or read from <workspace>/metadata.json. The search covers:
  - Instances and server groups
  - Volumes and images
  - Ports, subnets, routers and networks
  - Security groups
  - Floating IPs

The plan is shown before anything is deleted, and only the literal answer
"yes" proceeds. Individual deletion failures are logged and skipped; the
remaining resources are still reclaimed.

Example:
  osreclaim cluster tx7fp --cloud mycloud
  osreclaim cluster -w ./clusters/prod-04

WARNING: This operation is irreversible. Deleted resources cannot be
recovered.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Signature = args[0]
			}
			return handlers.Cluster(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Cloud, "cloud", "", "Named cloud from clouds.yaml (defaults to $OS_CLOUD)")
	cmd.Flags().StringVarP(&opts.Workspace, "workspace", "w", ".", "Directory holding metadata.json when no signature is given")
	cmd.Flags().BoolVarP(&opts.AssumeYes, "assume-yes", "y", false, "Delete without asking for confirmation")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Show the reclamation plan without deleting anything")
	cmd.Flags().StringVar(&opts.SummaryPath, "summary", "", "Write a machine-readable run summary to this file (.yaml/.yml for YAML, otherwise JSON)")
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "Enable debug logging")

	return cmd
}
