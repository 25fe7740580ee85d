package openstack

import (
	"context"
	"fmt"

	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/layer3/routers"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/ports"
)

// ListRouters returns all routers visible to the authenticated project.
func (c *RealClient) ListRouters(ctx context.Context) ([]routers.Router, error) {
	page, err := routers.List(c.network, routers.ListOpts{}).AllPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list routers: %w", err)
	}
	return routers.ExtractRouters(page)
}

// GetRouter returns the router with the given id, or nil if it no longer
// exists.
func (c *RealClient) GetRouter(ctx context.Context, id string) (*routers.Router, error) {
	router, err := routers.Get(ctx, c.network, id).Extract()
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get router %s: %w", id, err)
	}
	return router, nil
}

// DeleteRouter deletes the router with the given id.
func (c *RealClient) DeleteRouter(ctx context.Context, id string) error {
	err := routers.Delete(ctx, c.network, id).ExtractErr()
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("failed to delete router %s: %w", id, err)
	}
	return nil
}

// UnsetRouterGateway clears the router's external gateway. Updating with an
// empty gateway info drops the external attachment.
func (c *RealClient) UnsetRouterGateway(ctx context.Context, id string) error {
	opts := routers.UpdateOpts{GatewayInfo: &routers.GatewayInfo{}}
	_, err := routers.Update(ctx, c.network, id, opts).Extract()
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("failed to unset gateway of router %s: %w", id, err)
	}
	return nil
}

// RemoveRouterInterface detaches the router from the given subnet.
func (c *RealClient) RemoveRouterInterface(ctx context.Context, routerID, subnetID string) error {
	opts := routers.RemoveInterfaceOpts{SubnetID: subnetID}
	_, err := routers.RemoveInterface(ctx, c.network, routerID, opts).Extract()
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("failed to remove interface %s from router %s: %w", subnetID, routerID, err)
	}
	return nil
}

// RouterPorts returns the ports whose owning device is the given router.
func (c *RealClient) RouterPorts(ctx context.Context, routerID string) ([]ports.Port, error) {
	page, err := ports.List(c.network, ports.ListOpts{DeviceID: routerID}).AllPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ports of router %s: %w", routerID, err)
	}
	return ports.ExtractPorts(page)
}
