package openstack

import (
	"context"
	"fmt"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/utils/v2/openstack/clientconfig"
)

// userAgent identifies reclaimer traffic so cloud operators can tell it
// apart from installer requests.
const userAgent = "osreclaim/1.0"

// RealClient implements ResourceClient against a live OpenStack cloud.
type RealClient struct {
	compute *gophercloud.ServiceClient
	image   *gophercloud.ServiceClient
	network *gophercloud.ServiceClient
	volume  *gophercloud.ServiceClient
}

var _ ResourceClient = (*RealClient)(nil)

// DefaultClientOpts generates client opts for the named cloud profile.
// Reading auth data from environment variables is disabled by the invalid
// EnvPrefix; the clouds.yaml profile alone must be enough to authenticate.
func DefaultClientOpts(cloud string) *clientconfig.ClientOpts {
	opts := new(clientconfig.ClientOpts)
	opts.Cloud = cloud
	opts.EnvPrefix = "NO_ENV_VARIABLES_"
	return opts
}

// newServiceClient is a wrapper around clientconfig.NewServiceClient that
// consistently sets the user agent.
func newServiceClient(ctx context.Context, service string, opts *clientconfig.ClientOpts) (*gophercloud.ServiceClient, error) {
	client, err := clientconfig.NewServiceClient(ctx, service, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", service, err)
	}

	ua := gophercloud.UserAgent{}
	ua.Prepend(userAgent)
	client.UserAgent = ua

	return client, nil
}

// NewRealClient authenticates against the named cloud profile and builds a
// service client for every API the reclaimer touches. An error here is a
// precondition failure: missing profile, bad credentials, or an unreachable
// control plane.
func NewRealClient(ctx context.Context, cloud string) (*RealClient, error) {
	opts := DefaultClientOpts(cloud)

	compute, err := newServiceClient(ctx, "compute", opts)
	if err != nil {
		return nil, err
	}
	image, err := newServiceClient(ctx, "image", opts)
	if err != nil {
		return nil, err
	}
	network, err := newServiceClient(ctx, "network", opts)
	if err != nil {
		return nil, err
	}
	volume, err := newServiceClient(ctx, "volume", opts)
	if err != nil {
		return nil, err
	}

	return &RealClient{
		compute: compute,
		image:   image,
		network: network,
		volume:  volume,
	}, nil
}
