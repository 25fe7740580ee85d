package openstack

import (
	"context"

	"github.com/gophercloud/gophercloud/v2/openstack/blockstorage/v3/volumes"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/servergroups"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/servers"
	"github.com/gophercloud/gophercloud/v2/openstack/image/v2/images"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/layer3/floatingips"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/layer3/routers"
	secgroups "github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/security/groups"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/networks"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/ports"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/subnets"
)

// ComputeClient defines the interface for server and server-group operations.
type ComputeClient interface {
	ListServers(ctx context.Context) ([]servers.Server, error)
	// GetServer returns the server with the given id, or nil if it no longer
	// exists.
	GetServer(ctx context.Context, id string) (*servers.Server, error)
	DeleteServer(ctx context.Context, id string) error
	ListServerGroups(ctx context.Context) ([]servergroups.ServerGroup, error)
	DeleteServerGroup(ctx context.Context, id string) error
}

// ImageClient defines the interface for image operations.
type ImageClient interface {
	// ImageByName probes for an image with the exact given name, returning
	// nil when no such image exists. The probe never scans the catalog.
	ImageByName(ctx context.Context, name string) (*images.Image, error)
	DeleteImage(ctx context.Context, id string) error
}

// VolumeClient defines the interface for volume operations.
type VolumeClient interface {
	ListVolumes(ctx context.Context) ([]volumes.Volume, error)
	DeleteVolume(ctx context.Context, id string) error
}

// NetworkClient defines the interface for network, subnet, port,
// security-group and floating-IP operations.
type NetworkClient interface {
	ListNetworks(ctx context.Context) ([]networks.Network, error)
	DeleteNetwork(ctx context.Context, id string) error
	ListSubnets(ctx context.Context) ([]subnets.Subnet, error)
	DeleteSubnet(ctx context.Context, id string) error
	ListPorts(ctx context.Context) ([]ports.Port, error)
	DeletePort(ctx context.Context, id string) error
	ListSecurityGroups(ctx context.Context) ([]secgroups.SecGroup, error)
	DeleteSecurityGroup(ctx context.Context, id string) error
	ListFloatingIPs(ctx context.Context) ([]floatingips.FloatingIP, error)
	DeleteFloatingIP(ctx context.Context, id string) error
}

// RouterClient defines the interface for router operations, including the
// attachment mutations that must happen before a router can be deleted.
type RouterClient interface {
	ListRouters(ctx context.Context) ([]routers.Router, error)
	// GetRouter returns the router with the given id, or nil if it no longer
	// exists.
	GetRouter(ctx context.Context, id string) (*routers.Router, error)
	DeleteRouter(ctx context.Context, id string) error
	// UnsetRouterGateway clears the router's external gateway.
	UnsetRouterGateway(ctx context.Context, id string) error
	// RemoveRouterInterface detaches the router from the given subnet.
	RemoveRouterInterface(ctx context.Context, routerID, subnetID string) error
	// RouterPorts returns the ports whose owning device is the given router.
	RouterPorts(ctx context.Context, routerID string) ([]ports.Port, error)
}

// ResourceClient combines every control-plane capability the reclaimer needs.
type ResourceClient interface {
	ComputeClient
	ImageClient
	VolumeClient
	NetworkClient
	RouterClient
}
