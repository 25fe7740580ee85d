// Package openstack provides a thin wrapper around the OpenStack control
// plane for the resource kinds the reclaimer manages.
//
// # Architecture
//
// The package is organized into domain-specific modules:
//
//   - client.go: capability interfaces consumed by the reclaimer
//   - real_client.go: service-client construction from a named cloud profile
//   - servers.go: server and server-group operations
//   - images.go: image probe and deletion
//   - volumes.go: volume operations
//   - network.go: network, subnet, port, security-group and floating-IP operations
//   - routers.go: router listing, deletion and attachment mutations
//   - errors.go: control-plane error classification
//
// # Behavior
//
// All operations are synchronous calls against the control plane. Deletes are
// idempotent at this layer: a 404 for an already-gone resource is success.
// Nothing here retries; retry discipline belongs to the caller, which knows
// the dependency order between resource kinds.
//
// Authentication follows the standard OpenStack client conventions: the cloud
// profile named by OS_CLOUD (or an explicit override) is resolved from
// clouds.yaml through gophercloud's clientconfig.
package openstack
