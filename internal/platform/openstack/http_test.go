package openstack

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gophercloud/gophercloud/v2"
)

// testServer creates an httptest server that can be used to mock OpenStack
// API responses.
type testServer struct {
	server *httptest.Server
	mux    *http.ServeMux
}

// newTestServer creates a new test server for mocking the OpenStack API.
func newTestServer() *testServer {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	return &testServer{
		server: server,
		mux:    mux,
	}
}

// close shuts down the test server.
func (ts *testServer) close() {
	ts.server.Close()
}

// serviceClient returns a gophercloud service client aimed at the test
// server.
func (ts *testServer) serviceClient() *gophercloud.ServiceClient {
	return &gophercloud.ServiceClient{
		ProviderClient: &gophercloud.ProviderClient{TokenID: "test-token"},
		Endpoint:       ts.server.URL + "/",
	}
}

// realClient returns a RealClient with every service endpoint aimed at the
// test server. The mock paths never collide because each OpenStack service
// uses distinct resource routes.
func (ts *testServer) realClient() *RealClient {
	sc := ts.serviceClient()
	return &RealClient{
		compute: sc,
		image:   sc,
		network: sc,
		volume:  sc,
	}
}

// handleFunc registers a handler for a specific path.
func (ts *testServer) handleFunc(pattern string, handler http.HandlerFunc) {
	ts.mux.HandleFunc(pattern, handler)
}

// jsonResponse writes a JSON response with the given status code and body.
func jsonResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
