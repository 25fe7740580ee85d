package openstack

import (
	"context"
	"fmt"

	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/servergroups"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/servers"
)

// ListServers returns all servers visible to the authenticated project.
func (c *RealClient) ListServers(ctx context.Context) ([]servers.Server, error) {
	page, err := servers.List(c.compute, servers.ListOpts{}).AllPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}
	return servers.ExtractServers(page)
}

// GetServer returns the server with the given id, or nil if it no longer
// exists.
func (c *RealClient) GetServer(ctx context.Context, id string) (*servers.Server, error) {
	srv, err := servers.Get(ctx, c.compute, id).Extract()
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get server %s: %w", id, err)
	}
	return srv, nil
}

// DeleteServer deletes the server with the given id.
func (c *RealClient) DeleteServer(ctx context.Context, id string) error {
	err := servers.Delete(ctx, c.compute, id).ExtractErr()
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("failed to delete server %s: %w", id, err)
	}
	return nil
}

// ListServerGroups returns all server groups of the authenticated project.
func (c *RealClient) ListServerGroups(ctx context.Context) ([]servergroups.ServerGroup, error) {
	page, err := servergroups.List(c.compute, servergroups.ListOpts{}).AllPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list server groups: %w", err)
	}
	return servergroups.ExtractServerGroups(page)
}

// DeleteServerGroup deletes the server group with the given id.
func (c *RealClient) DeleteServerGroup(ctx context.Context, id string) error {
	err := servergroups.Delete(ctx, c.compute, id).ExtractErr()
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("failed to delete server group %s: %w", id, err)
	}
	return nil
}
