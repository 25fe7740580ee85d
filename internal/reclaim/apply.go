package reclaim

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/ports"
	"github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/osreclaim/osreclaim/internal/platform/openstack"
)

// routerDeleteAttempts bounds the deletion attempts per router. Exhausting
// the attempts marks the router failed; it never aborts the run.
const routerDeleteAttempts = 3

const (
	defaultServerWaitInterval = 5 * time.Second
	defaultServerWaitTimeout  = 5 * time.Minute
	defaultRouterInterval     = 2 * time.Second
)

type applyConfig struct {
	serverWaitInterval time.Duration
	serverWaitTimeout  time.Duration
	routerInterval     time.Duration
}

// ApplyOption overrides a timing knob of the apply phase.
type ApplyOption func(*applyConfig)

// WithServerWaitInterval sets the poll interval while waiting for deleted
// instances to be gone.
func WithServerWaitInterval(d time.Duration) ApplyOption {
	return func(c *applyConfig) {
		c.serverWaitInterval = d
	}
}

// WithServerWaitTimeout sets how long to wait for a deleted instance to be
// gone.
func WithServerWaitTimeout(d time.Duration) ApplyOption {
	return func(c *applyConfig) {
		c.serverWaitTimeout = d
	}
}

// WithRouterRetryInterval sets the pause between router deletion attempts.
func WithRouterRetryInterval(d time.Duration) ApplyOption {
	return func(c *applyConfig) {
		c.routerInterval = d
	}
}

type applier struct {
	client openstack.ResourceClient
	logger logrus.FieldLogger
	result *Result
	cfg    applyConfig
}

// Apply consumes the plan, deleting every member in dependency order. Each
// failure is logged, recorded and skipped; nothing short of cancellation
// stops the remaining deletions. The returned result carries one outcome per
// planned resource.
//
// The order is a topological sort of the resource dependency graph
// (instance -> port -> subnet -> router -> network). Routers get a
// preparation pass before the port phase: they are the only kind with
// removable sub-attachments that themselves block deletion.
func Apply(ctx context.Context, client openstack.ResourceClient, plan *Plan, logger logrus.FieldLogger, opts ...ApplyOption) *Result {
	cfg := applyConfig{
		serverWaitInterval: defaultServerWaitInterval,
		serverWaitTimeout:  defaultServerWaitTimeout,
		routerInterval:     defaultRouterInterval,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &applier{
		client: client,
		logger: logger,
		result: newResult(plan.Signature),
		cfg:    cfg,
	}

	a.deleteInstances(ctx, plan.Resources(KindInstance))
	a.deleteAll(ctx, plan.Resources(KindVolume), a.client.DeleteVolume)
	a.prepareRouters(ctx, plan.Resources(KindRouter))
	a.deleteAll(ctx, plan.Resources(KindPort), a.client.DeletePort)
	a.deleteAll(ctx, plan.Resources(KindSubnet), a.client.DeleteSubnet)
	a.deleteRouters(ctx, plan.Resources(KindRouter))
	a.deleteAll(ctx, plan.Resources(KindNetwork), a.client.DeleteNetwork)
	a.deleteAll(ctx, plan.Resources(KindSecurityGroup), a.client.DeleteSecurityGroup)
	a.deleteAll(ctx, plan.Resources(KindServerGroup), a.client.DeleteServerGroup)
	a.deleteAll(ctx, plan.Resources(KindImage), a.client.DeleteImage)
	a.deleteAll(ctx, plan.Resources(KindFloatingIP), a.client.DeleteFloatingIP)

	a.result.FinishedAt = time.Now().UTC()
	return a.result
}

func (a *applier) logResource(r Resource) *logrus.Entry {
	return a.logger.WithFields(logrus.Fields{
		"kind": string(r.Kind),
		"name": r.Name,
		"id":   r.ID,
	})
}

// deleteAll deletes the given resources one at a time, recording each
// outcome.
func (a *applier) deleteAll(ctx context.Context, resources []Resource, del func(context.Context, string) error) {
	for _, r := range resources {
		if ctx.Err() != nil {
			a.result.recordSkipped(r, "run canceled")
			continue
		}
		a.logResource(r).Info("deleting")
		if err := del(ctx, r.ID); err != nil {
			a.logResource(r).WithError(err).Warn("deletion failed, continuing")
			a.result.recordFailed(r, err)
			continue
		}
		a.result.recordDeleted(r)
	}
}

// deleteInstances deletes the servers and waits for them to be fully gone.
// Instances hold ports and volumes attached; waiting here releases those
// attachments before the later phases touch them.
func (a *applier) deleteInstances(ctx context.Context, instances []Resource) {
	deleted := make([]Resource, 0, len(instances))
	for _, r := range instances {
		if ctx.Err() != nil {
			a.result.recordSkipped(r, "run canceled")
			continue
		}
		a.logResource(r).Info("deleting")
		if err := a.client.DeleteServer(ctx, r.ID); err != nil {
			a.logResource(r).WithError(err).Warn("deletion failed, continuing")
			a.result.recordFailed(r, err)
			continue
		}
		deleted = append(deleted, r)
	}

	for _, r := range deleted {
		if err := a.waitForServerGone(ctx, r.ID); err != nil {
			if errors.Is(err, context.Canceled) {
				a.result.recordSkipped(r, "run canceled")
				continue
			}
			a.logResource(r).WithError(err).Warn("instance not fully gone, continuing")
			a.result.recordFailed(r, fmt.Errorf("waiting for deletion: %w", err))
			continue
		}
		a.result.recordDeleted(r)
	}
}

func (a *applier) waitForServerGone(ctx context.Context, id string) error {
	return wait.PollUntilContextTimeout(ctx, a.cfg.serverWaitInterval, a.cfg.serverWaitTimeout, true,
		func(ctx context.Context) (bool, error) {
			server, err := a.client.GetServer(ctx, id)
			if err != nil {
				return false, err
			}
			return server == nil, nil
		})
}

// prepareRouters strips the attachments that block router deletion later:
// the external gateway and the subnet interfaces. The routers themselves are
// left in place for the router phase.
func (a *applier) prepareRouters(ctx context.Context, routers []Resource) {
	for _, r := range routers {
		if ctx.Err() != nil {
			return
		}
		a.logResource(r).Info("preparing router")

		// A router without a gateway is not an error; the unset is
		// best-effort.
		if err := a.client.UnsetRouterGateway(ctx, r.ID); err != nil {
			a.logResource(r).WithError(err).Warn("failed to unset router gateway, continuing")
		}

		attached, err := a.client.RouterPorts(ctx, r.ID)
		if err != nil {
			a.logResource(r).WithError(err).Warn("failed to list router ports, continuing")
			continue
		}
		for _, p := range attached {
			if !strings.HasPrefix(p.DeviceOwner, routerInterfaceOwnerPrefix) {
				continue
			}
			a.removeRouterInterface(ctx, r, p)
		}
	}
}

// removeRouterInterface detaches one subnet interface from the router,
// falling back to deleting the port directly when the detach is refused.
func (a *applier) removeRouterInterface(ctx context.Context, router Resource, port ports.Port) {
	if len(port.FixedIPs) > 0 {
		subnetID := port.FixedIPs[0].SubnetID
		err := a.client.RemoveRouterInterface(ctx, router.ID, subnetID)
		if err == nil {
			return
		}
		a.logResource(router).WithError(err).WithField("port", port.ID).
			Warn("interface removal refused, deleting the port directly")
	}
	if err := a.client.DeletePort(ctx, port.ID); err != nil {
		a.logResource(router).WithError(err).WithField("port", port.ID).
			Warn("failed to delete router port, continuing")
	}
}

func (a *applier) deleteRouters(ctx context.Context, routers []Resource) {
	for _, r := range routers {
		if ctx.Err() != nil {
			a.result.recordSkipped(r, "run canceled")
			continue
		}
		a.logResource(r).Info("deleting")
		if err := a.deleteRouter(ctx, r); err != nil {
			if errors.Is(err, context.Canceled) {
				a.result.recordSkipped(r, "run canceled")
				continue
			}
			a.logResource(r).WithError(err).Warn("router deletion failed, continuing")
			a.result.recordFailed(r, err)
			continue
		}
		a.result.recordDeleted(r)
	}
}

// deleteRouter tries the deletion up to routerDeleteAttempts times. The
// control plane refuses routers that still hold ports, so between attempts
// the router is re-resolved and any ports still attached to it are swept
// away. A router that vanished between attempts counts as deleted.
func (a *applier) deleteRouter(ctx context.Context, r Resource) error {
	var lastErr error
	for attempt := 1; attempt <= routerDeleteAttempts; attempt++ {
		if attempt > 1 {
			router, err := a.client.GetRouter(ctx, r.ID)
			if err == nil && router == nil {
				return nil
			}
			a.sweepRouterPorts(ctx, r)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(a.cfg.routerInterval):
			}
		}
		lastErr = a.client.DeleteRouter(ctx, r.ID)
		if lastErr == nil {
			return nil
		}
		a.logResource(r).WithError(lastErr).
			Warnf("router deletion attempt %d/%d failed", attempt, routerDeleteAttempts)
	}
	return lastErr
}

// sweepRouterPorts deletes every port still attached to the router.
func (a *applier) sweepRouterPorts(ctx context.Context, r Resource) {
	attached, err := a.client.RouterPorts(ctx, r.ID)
	if err != nil {
		a.logResource(r).WithError(err).Warn("failed to re-list router ports")
		return
	}
	for _, p := range attached {
		if err := a.client.DeletePort(ctx, p.ID); err != nil {
			a.logResource(r).WithError(err).WithField("port", p.ID).
				Warn("failed to delete attached port")
		}
	}
}
