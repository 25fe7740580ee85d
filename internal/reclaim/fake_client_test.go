package reclaim

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

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
	"github.com/sirupsen/logrus"

	"github.com/osreclaim/osreclaim/internal/platform/openstack"
)

func testLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// fakeClient is an in-memory control plane. Deletes mutate its state, so a
// second pass against it observes the post-deletion world. Every operation
// is appended to calls in the order it was made.
type fakeClient struct {
	servers      []servers.Server
	serverGroups []servergroups.ServerGroup
	images       []images.Image
	volumes      []volumes.Volume
	networks     []networks.Network
	subnets      []subnets.Subnet
	ports        []ports.Port
	secGroups    []secgroups.SecGroup
	floatingIPs  []floatingips.FloatingIP
	routers      []routers.Router

	// failures maps a call key to how many times that call should fail
	// before succeeding again. Negative means fail forever.
	failures map[string]int

	// stuckServers holds servers whose deletion is accepted but never
	// takes effect.
	stuckServers map[string]bool

	// afterCall, when set, runs after each recorded call. Tests use it to
	// mutate the fake mid-run.
	afterCall func(key string)

	calls []string
}

var _ openstack.ResourceClient = (*fakeClient)(nil)

func newFakeClient() *fakeClient {
	return &fakeClient{
		failures:     map[string]int{},
		stuckServers: map[string]bool{},
	}
}

func (c *fakeClient) call(key string) error {
	c.calls = append(c.calls, key)
	err := c.injectedFailure(key)
	if c.afterCall != nil {
		c.afterCall(key)
	}
	return err
}

func (c *fakeClient) injectedFailure(key string) error {
	n, ok := c.failures[key]
	if !ok || n == 0 {
		return nil
	}
	if n > 0 {
		c.failures[key] = n - 1
	}
	return fmt.Errorf("injected failure: %s", key)
}

// callsWithPrefix returns the recorded calls starting with the given prefix,
// preserving order.
func (c *fakeClient) callsWithPrefix(prefix string) []string {
	var out []string
	for _, call := range c.calls {
		if strings.HasPrefix(call, prefix) {
			out = append(out, call)
		}
	}
	return out
}

func (c *fakeClient) addServer(id, name string) {
	c.servers = append(c.servers, servers.Server{ID: id, Name: name})
}

func (c *fakeClient) addServerGroup(id, name string) {
	c.serverGroups = append(c.serverGroups, servergroups.ServerGroup{ID: id, Name: name})
}

func (c *fakeClient) addImage(id, name string) {
	c.images = append(c.images, images.Image{ID: id, Name: name})
}

func (c *fakeClient) addVolume(id, name string) {
	c.volumes = append(c.volumes, volumes.Volume{ID: id, Name: name})
}

func (c *fakeClient) addNetwork(id, name string) {
	c.networks = append(c.networks, networks.Network{ID: id, Name: name})
}

func (c *fakeClient) addSubnet(id, name string) {
	c.subnets = append(c.subnets, subnets.Subnet{ID: id, Name: name})
}

func (c *fakeClient) addPort(id, name string) {
	c.ports = append(c.ports, ports.Port{ID: id, Name: name})
}

// addRouterPort attaches a port to a router. Router interface ports carry no
// meaningful name on real deployments, so none is set here.
func (c *fakeClient) addRouterPort(id, routerID, deviceOwner, subnetID string) {
	c.ports = append(c.ports, ports.Port{
		ID:          id,
		DeviceID:    routerID,
		DeviceOwner: deviceOwner,
		FixedIPs:    []ports.IP{{SubnetID: subnetID}},
	})
}

func (c *fakeClient) addSecurityGroup(id, name string) {
	c.secGroups = append(c.secGroups, secgroups.SecGroup{ID: id, Name: name})
}

func (c *fakeClient) addFloatingIP(id, address, description, portID string) {
	c.floatingIPs = append(c.floatingIPs, floatingips.FloatingIP{
		ID:          id,
		FloatingIP:  address,
		Description: description,
		PortID:      portID,
	})
}

func (c *fakeClient) addRouter(id, name string) {
	c.routers = append(c.routers, routers.Router{ID: id, Name: name})
}

func (c *fakeClient) ListServers(ctx context.Context) ([]servers.Server, error) {
	if err := c.call("list servers"); err != nil {
		return nil, err
	}
	return c.servers, nil
}

func (c *fakeClient) GetServer(ctx context.Context, id string) (*servers.Server, error) {
	if err := c.call("get server " + id); err != nil {
		return nil, err
	}
	for i := range c.servers {
		if c.servers[i].ID == id {
			return &c.servers[i], nil
		}
	}
	return nil, nil
}

func (c *fakeClient) DeleteServer(ctx context.Context, id string) error {
	if err := c.call("delete server " + id); err != nil {
		return err
	}
	if c.stuckServers[id] {
		return nil
	}
	c.servers = slices.DeleteFunc(c.servers, func(s servers.Server) bool { return s.ID == id })
	return nil
}

func (c *fakeClient) ListServerGroups(ctx context.Context) ([]servergroups.ServerGroup, error) {
	if err := c.call("list server groups"); err != nil {
		return nil, err
	}
	return c.serverGroups, nil
}

func (c *fakeClient) DeleteServerGroup(ctx context.Context, id string) error {
	if err := c.call("delete server group " + id); err != nil {
		return err
	}
	c.serverGroups = slices.DeleteFunc(c.serverGroups, func(g servergroups.ServerGroup) bool { return g.ID == id })
	return nil
}

func (c *fakeClient) ImageByName(ctx context.Context, name string) (*images.Image, error) {
	if err := c.call("image by name " + name); err != nil {
		return nil, err
	}
	for i := range c.images {
		if c.images[i].Name == name {
			return &c.images[i], nil
		}
	}
	return nil, nil
}

func (c *fakeClient) DeleteImage(ctx context.Context, id string) error {
	if err := c.call("delete image " + id); err != nil {
		return err
	}
	c.images = slices.DeleteFunc(c.images, func(img images.Image) bool { return img.ID == id })
	return nil
}

func (c *fakeClient) ListVolumes(ctx context.Context) ([]volumes.Volume, error) {
	if err := c.call("list volumes"); err != nil {
		return nil, err
	}
	return c.volumes, nil
}

func (c *fakeClient) DeleteVolume(ctx context.Context, id string) error {
	if err := c.call("delete volume " + id); err != nil {
		return err
	}
	c.volumes = slices.DeleteFunc(c.volumes, func(v volumes.Volume) bool { return v.ID == id })
	return nil
}

func (c *fakeClient) ListNetworks(ctx context.Context) ([]networks.Network, error) {
	if err := c.call("list networks"); err != nil {
		return nil, err
	}
	return c.networks, nil
}

func (c *fakeClient) DeleteNetwork(ctx context.Context, id string) error {
	if err := c.call("delete network " + id); err != nil {
		return err
	}
	c.networks = slices.DeleteFunc(c.networks, func(n networks.Network) bool { return n.ID == id })
	return nil
}

func (c *fakeClient) ListSubnets(ctx context.Context) ([]subnets.Subnet, error) {
	if err := c.call("list subnets"); err != nil {
		return nil, err
	}
	return c.subnets, nil
}

func (c *fakeClient) DeleteSubnet(ctx context.Context, id string) error {
	if err := c.call("delete subnet " + id); err != nil {
		return err
	}
	c.subnets = slices.DeleteFunc(c.subnets, func(s subnets.Subnet) bool { return s.ID == id })
	return nil
}

func (c *fakeClient) ListPorts(ctx context.Context) ([]ports.Port, error) {
	if err := c.call("list ports"); err != nil {
		return nil, err
	}
	return c.ports, nil
}

func (c *fakeClient) DeletePort(ctx context.Context, id string) error {
	if err := c.call("delete port " + id); err != nil {
		return err
	}
	c.ports = slices.DeleteFunc(c.ports, func(p ports.Port) bool { return p.ID == id })
	return nil
}

func (c *fakeClient) ListSecurityGroups(ctx context.Context) ([]secgroups.SecGroup, error) {
	if err := c.call("list security groups"); err != nil {
		return nil, err
	}
	return c.secGroups, nil
}

func (c *fakeClient) DeleteSecurityGroup(ctx context.Context, id string) error {
	if err := c.call("delete security group " + id); err != nil {
		return err
	}
	c.secGroups = slices.DeleteFunc(c.secGroups, func(g secgroups.SecGroup) bool { return g.ID == id })
	return nil
}

func (c *fakeClient) ListFloatingIPs(ctx context.Context) ([]floatingips.FloatingIP, error) {
	if err := c.call("list floating ips"); err != nil {
		return nil, err
	}
	return c.floatingIPs, nil
}

func (c *fakeClient) DeleteFloatingIP(ctx context.Context, id string) error {
	if err := c.call("delete floating ip " + id); err != nil {
		return err
	}
	c.floatingIPs = slices.DeleteFunc(c.floatingIPs, func(f floatingips.FloatingIP) bool { return f.ID == id })
	return nil
}

func (c *fakeClient) ListRouters(ctx context.Context) ([]routers.Router, error) {
	if err := c.call("list routers"); err != nil {
		return nil, err
	}
	return c.routers, nil
}

func (c *fakeClient) GetRouter(ctx context.Context, id string) (*routers.Router, error) {
	if err := c.call("get router " + id); err != nil {
		return nil, err
	}
	for i := range c.routers {
		if c.routers[i].ID == id {
			return &c.routers[i], nil
		}
	}
	return nil, nil
}

func (c *fakeClient) DeleteRouter(ctx context.Context, id string) error {
	if err := c.call("delete router " + id); err != nil {
		return err
	}
	c.routers = slices.DeleteFunc(c.routers, func(r routers.Router) bool { return r.ID == id })
	return nil
}

func (c *fakeClient) UnsetRouterGateway(ctx context.Context, id string) error {
	return c.call("unset gateway " + id)
}

func (c *fakeClient) RemoveRouterInterface(ctx context.Context, routerID, subnetID string) error {
	if err := c.call("remove interface " + routerID + " " + subnetID); err != nil {
		return err
	}
	for i, p := range c.ports {
		if p.DeviceID != routerID {
			continue
		}
		if len(p.FixedIPs) > 0 && p.FixedIPs[0].SubnetID == subnetID {
			c.ports = slices.Delete(c.ports, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("router %s has no interface on subnet %s", routerID, subnetID)
}

func (c *fakeClient) RouterPorts(ctx context.Context, routerID string) ([]ports.Port, error) {
	if err := c.call("router ports " + routerID); err != nil {
		return nil, err
	}
	var out []ports.Port
	for _, p := range c.ports {
		if p.DeviceID == routerID {
			out = append(out, p)
		}
	}
	return out, nil
}
