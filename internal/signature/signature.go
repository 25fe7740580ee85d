// Package signature defines the five-character cluster signature that ties
// OpenStack resources back to a single OpenShift deployment, and resolves it
// from the installer's metadata record.
package signature

import (
	"fmt"
	"regexp"
)

// pattern is the exact shape of a signature: five lowercase alphanumeric
// characters, as produced by the installer's infrastructure-id generator.
var pattern = regexp.MustCompile(`^[a-z0-9]{5}$`)

// Signature identifies one cluster deployment. Every resource name pattern
// the reclaimer searches for derives from it.
type Signature string

// Parse validates raw against the signature format.
func Parse(raw string) (Signature, error) {
	if !pattern.MatchString(raw) {
		return "", fmt.Errorf("invalid signature %q: must be 5 lowercase alphanumeric characters", raw)
	}
	return Signature(raw), nil
}

func (s Signature) String() string {
	return string(s)
}

// ClusterID returns the infrastructure id shared by the deployment's
// resources, e.g. "openshift-cluster-ff9fw".
func (s Signature) ClusterID() string {
	return "openshift-cluster-" + string(s)
}

// ResourcePrefix returns the name prefix carried by resources the installer
// creates directly, e.g. "openshift-cluster-ff9fw-".
func (s Signature) ResourcePrefix() string {
	return s.ClusterID() + "-"
}

// RHCOSImage returns the name of the deployment's uploaded base image.
func (s Signature) RHCOSImage() string {
	return s.ClusterID() + "-rhcos"
}

// IgnitionImage returns the name of the deployment's bootstrap ignition image.
func (s Signature) IgnitionImage() string {
	return s.ClusterID() + "-ignition"
}
