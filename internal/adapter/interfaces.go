// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used to talk to the SoftLayer API
// once client settings have been resolved.
//
// The primary abstraction is [APIAdapter]. The package ships an HTTP/REST
// implementation ([NewHTTPAPIAdapter]) configured from a merged
// config.Settings value: endpoint URL, request timeout, proxy and
// credentials.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/api_adapter_mock.go -package=mock

// APIAdapter performs calls against the SoftLayer API.
type APIAdapter interface {
	// Call invokes method on service without parameters and returns the raw
	// JSON response body. Returns an error if the request fails or the API
	// responds with a non-2xx status.
	Call(ctx context.Context, service, method string) ([]byte, error)

	// EndpointURL returns the normalised base URL calls are sent to.
	EndpointURL() string
}
