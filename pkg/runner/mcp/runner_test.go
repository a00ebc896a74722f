package mcp

import (
	"context"
	"testing"
)

func TestEndpointPathNormalization(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"", "/mcp"},
		{"  ", "/mcp"},
		{"mcp", "/mcp"},
		{"/rpc", "/rpc"},
		{"rpc/v1", "/rpc/v1"},
	}

	for _, tc := range tests {
		r := Runner{Path: tc.path}
		if got := r.endpointPath(); got != tc.want {
			t.Errorf("endpointPath(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestDoRequiresJournal(t *testing.T) {
	if err := (Runner{}).Do(context.Background()); err == nil {
		t.Fatal("expected an error without a journal")
	}
}

func TestDoRejectsUnknownTransport(t *testing.T) {
	svc := newTestService(t)
	r := Runner{Journal: svc.Journal, Transport: "carrier-pigeon"}
	if err := r.Do(context.Background()); err == nil {
		t.Fatal("expected an error for an unknown transport")
	}
}

func TestServeHTTPRejectsHalfTLSPair(t *testing.T) {
	svc := newTestService(t)
	r := Runner{
		Journal:   svc.Journal,
		Transport: TransportHTTP,
		TLS:       TLS{CertFile: "cert.pem"},
	}
	if err := r.Do(context.Background()); err == nil {
		t.Fatal("expected an error when only the certificate is set")
	}
}
