// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors returned by [APIAdapter] implementations. HTTP status
// codes are mapped onto them by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrInvalidEndpoint indicates an endpoint URL without scheme or host.
	ErrInvalidEndpoint = errors.New("invalid endpoint url")
	// ErrInvalidProxy indicates a proxy value that is not a valid URL.
	ErrInvalidProxy = errors.New("invalid proxy url")
	// ErrInvalidCall indicates a call not in Service::method form.
	ErrInvalidCall = errors.New("invalid api call")
)
