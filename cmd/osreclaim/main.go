// Package main is the entry point for the osreclaim CLI.
//
// osreclaim finds and deletes the OpenStack resources an abandoned OpenShift
// cluster deployment left behind. Clusters are identified by a five-character
// signature; every resource created for such a cluster carries the signature
// in its name or description, and osreclaim uses those markers to build and
// execute a reclamation plan.
//
// Commands: cluster, prune-fips, version.
//
// For detailed usage information, run:
//
//	osreclaim --help
package main

import (
	"fmt"
	"os"

	"github.com/osreclaim/osreclaim/cmd/osreclaim/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
