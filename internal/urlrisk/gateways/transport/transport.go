// Package transport exposes the evaluator over HTTP. It converts requests
// into evaluator calls and results into JSON so the service layer only sees
// domain types.
package transport

import (
	"context"
	"fmt"

	"github.com/haukened/urlrisk/internal/urlrisk/common/log"
	"github.com/haukened/urlrisk/internal/urlrisk/services/evaluator"
)

// ServerTransport is the lifecycle every transport implements.
type ServerTransport interface {
	// Start begins serving requests with the given evaluator. It returns once
	// the listener is bound; cancelling ctx stops the transport.
	Start(ctx context.Context, eval evaluator.URLEvaluator) error

	// Stop gracefully shuts down the transport.
	Stop() error

	// Address returns the bound address once started, else the configured one.
	Address() string
}

// TransportType names a transport implementation.
type TransportType string

const (
	// TransportHTTP serves the JSON API over plain HTTP.
	TransportHTTP TransportType = "http"
)

// NewTransport creates a transport of the given type.
func NewTransport(transportType TransportType, addr string, logger log.Logger) (ServerTransport, error) {
	switch transportType {
	case TransportHTTP:
		return NewHTTPTransport(addr, logger), nil
	default:
		return nil, fmt.Errorf("unsupported transport type: %s", transportType)
	}
}
