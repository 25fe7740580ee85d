package openstack

import (
	"context"
	"fmt"

	"github.com/gophercloud/gophercloud/v2/openstack/image/v2/images"
)

// ImageByName probes for an image with the exact given name. The image
// service filters server-side, so this never walks the catalog. Returns nil
// when no such image exists; if several share the name, the first is
// returned.
func (c *RealClient) ImageByName(ctx context.Context, name string) (*images.Image, error) {
	page, err := images.List(c.image, images.ListOpts{Name: name}).AllPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to probe image %q: %w", name, err)
	}
	found, err := images.ExtractImages(page)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

// DeleteImage deletes the image with the given id.
func (c *RealClient) DeleteImage(ctx context.Context, id string) error {
	err := images.Delete(ctx, c.image, id).ExtractErr()
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("failed to delete image %s: %w", id, err)
	}
	return nil
}
