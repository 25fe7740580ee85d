package openstack

import (
	"net/http"

	"github.com/gophercloud/gophercloud/v2"
)

// IsNotFound checks if an error is a 404 from the control plane. Deleting an
// already-gone resource surfaces as success through this check.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	return gophercloud.ResponseCodeIs(err, http.StatusNotFound)
}

// IsConflict checks if the control plane refused an operation because the
// resource is still in use or referenced by another resource.
func IsConflict(err error) bool {
	if err == nil {
		return false
	}
	return gophercloud.ResponseCodeIs(err, http.StatusConflict)
}
