// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// RequestIDHeader carries the request identifier on outgoing requests.
const RequestIDHeader = "X-Request-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance with a
// default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// WithRequestID registers a request middleware that sets [RequestIDHeader]
// on every request. The ID is taken from the request context when present
// (see [WithRequestID]), otherwise a new one is generated.
func (c *HTTPClient) WithRequestID() *HTTPClient {
	c.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(RequestIDHeader) != "" {
			return nil
		}

		id, ok := GetRequestIDFromContext(r.Context())
		if !ok {
			id = NewRequestID()
		}
		r.SetHeader(RequestIDHeader, id)
		return nil
	})

	return c
}
