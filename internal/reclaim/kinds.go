// Package reclaim implements signature-based discovery and dependency-ordered
// deletion of the OpenStack resources a cluster deployment leaves behind.
package reclaim

// Kind enumerates the resource kinds the reclaimer manages.
type Kind string

const (
	KindInstance      Kind = "instance"
	KindVolume        Kind = "volume"
	KindPort          Kind = "port"
	KindSubnet        Kind = "subnet"
	KindRouter        Kind = "router"
	KindNetwork       Kind = "network"
	KindSecurityGroup Kind = "security group"
	KindServerGroup   Kind = "server group"
	KindImage         Kind = "image"
	KindFloatingIP    Kind = "floating IP"
)

// Kinds lists every kind in deletion order. Cloud networking resources form
// a dependency graph (instance -> port -> subnet -> router -> network);
// deleting out of this order draws "in use" refusals from the control plane.
var Kinds = []Kind{
	KindInstance,
	KindVolume,
	KindPort,
	KindSubnet,
	KindRouter,
	KindNetwork,
	KindSecurityGroup,
	KindServerGroup,
	KindImage,
	KindFloatingIP,
}

// routerInterfaceOwnerPrefix marks ports that attach a router to a subnet.
// Such ports cannot be deleted directly while attached; the attachment has
// to be removed first.
const routerInterfaceOwnerPrefix = "network:router_interface"
