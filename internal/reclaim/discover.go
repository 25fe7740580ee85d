package reclaim

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/osreclaim/osreclaim/internal/platform/openstack"
	"github.com/osreclaim/osreclaim/internal/signature"
)

// Discover searches the cloud for every resource tied to the signature and
// returns them as a plan. A failed listing for one kind is logged and treated
// as that kind yielding zero results; it never aborts the scan of the other
// kinds. The only error returned is context cancellation.
func Discover(ctx context.Context, client openstack.ResourceClient, sig signature.Signature, logger logrus.FieldLogger) (*Plan, error) {
	plan := NewPlan(sig)

	searches := []struct {
		name    string
		execute func(context.Context, openstack.ResourceClient, signature.Signature, *Plan) error
	}{
		{"instances", discoverInstances},
		{"volumes", discoverVolumes},
		{"ports", discoverPorts},
		{"subnets", discoverSubnets},
		{"routers", discoverRouters},
		{"networks", discoverNetworks},
		{"security groups", discoverSecurityGroups},
		{"server groups", discoverServerGroups},
		{"images", discoverImages},
		{"floating IPs", discoverFloatingIPs},
	}

	for _, search := range searches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		logger.Debugf("searching %s", search.name)
		if err := search.execute(ctx, client, sig, plan); err != nil {
			logger.WithError(err).Warnf("failed to search %s, treating the kind as empty", search.name)
		}
	}

	return plan, nil
}

func discoverInstances(ctx context.Context, client openstack.ResourceClient, sig signature.Signature, plan *Plan) error {
	servers, err := client.ListServers(ctx)
	if err != nil {
		return err
	}
	for _, s := range servers {
		if strings.HasPrefix(s.Name, sig.ResourcePrefix()) {
			plan.Add(Resource{ID: s.ID, Name: s.Name, Kind: KindInstance})
		}
	}
	return nil
}

func discoverVolumes(ctx context.Context, client openstack.ResourceClient, sig signature.Signature, plan *Plan) error {
	volumes, err := client.ListVolumes(ctx)
	if err != nil {
		return err
	}
	for _, v := range volumes {
		if strings.HasPrefix(v.Name, sig.ResourcePrefix()) {
			plan.Add(Resource{ID: v.ID, Name: v.Name, Kind: KindVolume})
		}
	}
	return nil
}

func discoverPorts(ctx context.Context, client openstack.ResourceClient, sig signature.Signature, plan *Plan) error {
	ports, err := client.ListPorts(ctx)
	if err != nil {
		return err
	}
	for _, p := range ports {
		if strings.HasPrefix(p.Name, sig.ResourcePrefix()) {
			plan.Add(Resource{ID: p.ID, Name: p.Name, Kind: KindPort})
		}
	}
	return nil
}

func discoverSubnets(ctx context.Context, client openstack.ResourceClient, sig signature.Signature, plan *Plan) error {
	subnets, err := client.ListSubnets(ctx)
	if err != nil {
		return err
	}
	for _, s := range subnets {
		if strings.HasPrefix(s.Name, sig.ResourcePrefix()) {
			plan.Add(Resource{ID: s.ID, Name: s.Name, Kind: KindSubnet})
		}
	}
	return nil
}

// discoverRouters matches the signature anywhere in the name. Router names
// follow the naming convention of a separate orchestration layer
// (k8s-clusterapi-cluster-<namespace>-<signature>), so a prefix match on the
// cluster id would miss them.
func discoverRouters(ctx context.Context, client openstack.ResourceClient, sig signature.Signature, plan *Plan) error {
	routers, err := client.ListRouters(ctx)
	if err != nil {
		return err
	}
	for _, r := range routers {
		if strings.Contains(r.Name, sig.String()) {
			plan.Add(Resource{ID: r.ID, Name: r.Name, Kind: KindRouter})
		}
	}
	return nil
}

func discoverNetworks(ctx context.Context, client openstack.ResourceClient, sig signature.Signature, plan *Plan) error {
	networks, err := client.ListNetworks(ctx)
	if err != nil {
		return err
	}
	for _, n := range networks {
		if strings.HasPrefix(n.Name, sig.ResourcePrefix()) {
			plan.Add(Resource{ID: n.ID, Name: n.Name, Kind: KindNetwork})
		}
	}
	return nil
}

func discoverSecurityGroups(ctx context.Context, client openstack.ResourceClient, sig signature.Signature, plan *Plan) error {
	groups, err := client.ListSecurityGroups(ctx)
	if err != nil {
		return err
	}
	for _, g := range groups {
		if strings.HasPrefix(g.Name, sig.ResourcePrefix()) {
			plan.Add(Resource{ID: g.ID, Name: g.Name, Kind: KindSecurityGroup})
		}
	}
	return nil
}

func discoverServerGroups(ctx context.Context, client openstack.ResourceClient, sig signature.Signature, plan *Plan) error {
	groups, err := client.ListServerGroups(ctx)
	if err != nil {
		return err
	}
	for _, g := range groups {
		if strings.HasPrefix(g.Name, sig.ResourcePrefix()) {
			plan.Add(Resource{ID: g.ID, Name: g.Name, Kind: KindServerGroup})
		}
	}
	return nil
}

// discoverImages probes for the two expected image names instead of walking
// the image catalog, which is shared across projects and can be large.
func discoverImages(ctx context.Context, client openstack.ResourceClient, sig signature.Signature, plan *Plan) error {
	for _, name := range []string{sig.RHCOSImage(), sig.IgnitionImage()} {
		image, err := client.ImageByName(ctx, name)
		if err != nil {
			return err
		}
		if image != nil {
			plan.Add(Resource{ID: image.ID, Name: image.Name, Kind: KindImage})
		}
	}
	return nil
}

// discoverFloatingIPs matches on the description field: a floating IP's
// association to a cluster is recorded there, not in a name.
func discoverFloatingIPs(ctx context.Context, client openstack.ResourceClient, sig signature.Signature, plan *Plan) error {
	fips, err := client.ListFloatingIPs(ctx)
	if err != nil {
		return err
	}
	for _, fip := range fips {
		if strings.Contains(fip.Description, sig.ClusterID()) {
			plan.Add(Resource{ID: fip.ID, Name: fip.FloatingIP, Kind: KindFloatingIP})
		}
	}
	return nil
}
