package openstack

import (
	"context"
	"fmt"

	"github.com/gophercloud/gophercloud/v2/openstack/blockstorage/v3/volumes"
)

// ListVolumes returns all volumes of the authenticated project.
func (c *RealClient) ListVolumes(ctx context.Context) ([]volumes.Volume, error) {
	page, err := volumes.List(c.volume, volumes.ListOpts{}).AllPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list volumes: %w", err)
	}
	return volumes.ExtractVolumes(page)
}

// DeleteVolume deletes the volume with the given id.
func (c *RealClient) DeleteVolume(ctx context.Context, id string) error {
	err := volumes.Delete(ctx, c.volume, id, volumes.DeleteOpts{}).ExtractErr()
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("failed to delete volume %s: %w", id, err)
	}
	return nil
}
