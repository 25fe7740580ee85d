package openstack

import (
	"context"
	"fmt"

	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/layer3/floatingips"
	secgroups "github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/security/groups"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/networks"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/ports"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/subnets"
)

// ListNetworks returns all networks visible to the authenticated project.
func (c *RealClient) ListNetworks(ctx context.Context) ([]networks.Network, error) {
	page, err := networks.List(c.network, networks.ListOpts{}).AllPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list networks: %w", err)
	}
	return networks.ExtractNetworks(page)
}

// DeleteNetwork deletes the network with the given id.
func (c *RealClient) DeleteNetwork(ctx context.Context, id string) error {
	err := networks.Delete(ctx, c.network, id).ExtractErr()
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("failed to delete network %s: %w", id, err)
	}
	return nil
}

// ListSubnets returns all subnets visible to the authenticated project.
func (c *RealClient) ListSubnets(ctx context.Context) ([]subnets.Subnet, error) {
	page, err := subnets.List(c.network, subnets.ListOpts{}).AllPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subnets: %w", err)
	}
	return subnets.ExtractSubnets(page)
}

// DeleteSubnet deletes the subnet with the given id.
func (c *RealClient) DeleteSubnet(ctx context.Context, id string) error {
	err := subnets.Delete(ctx, c.network, id).ExtractErr()
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("failed to delete subnet %s: %w", id, err)
	}
	return nil
}

// ListPorts returns all ports visible to the authenticated project.
func (c *RealClient) ListPorts(ctx context.Context) ([]ports.Port, error) {
	page, err := ports.List(c.network, ports.ListOpts{}).AllPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ports: %w", err)
	}
	return ports.ExtractPorts(page)
}

// DeletePort deletes the port with the given id.
func (c *RealClient) DeletePort(ctx context.Context, id string) error {
	err := ports.Delete(ctx, c.network, id).ExtractErr()
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("failed to delete port %s: %w", id, err)
	}
	return nil
}

// ListSecurityGroups returns all security groups of the authenticated
// project.
func (c *RealClient) ListSecurityGroups(ctx context.Context) ([]secgroups.SecGroup, error) {
	page, err := secgroups.List(c.network, secgroups.ListOpts{}).AllPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list security groups: %w", err)
	}
	return secgroups.ExtractGroups(page)
}

// DeleteSecurityGroup deletes the security group with the given id.
func (c *RealClient) DeleteSecurityGroup(ctx context.Context, id string) error {
	err := secgroups.Delete(ctx, c.network, id).ExtractErr()
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("failed to delete security group %s: %w", id, err)
	}
	return nil
}

// ListFloatingIPs returns all floating IPs of the authenticated project.
func (c *RealClient) ListFloatingIPs(ctx context.Context) ([]floatingips.FloatingIP, error) {
	page, err := floatingips.List(c.network, floatingips.ListOpts{}).AllPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list floating IPs: %w", err)
	}
	return floatingips.ExtractFloatingIPs(page)
}

// DeleteFloatingIP deletes the floating IP with the given id.
func (c *RealClient) DeleteFloatingIP(ctx context.Context, id string) error {
	err := floatingips.Delete(ctx, c.network, id).ExtractErr()
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("failed to delete floating IP %s: %w", id, err)
	}
	return nil
}
