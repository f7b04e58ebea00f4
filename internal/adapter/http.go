// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-softlayer-config/internal/auth"
	"github.com/MKhiriev/go-softlayer-config/internal/config"
	"github.com/MKhiriev/go-softlayer-config/internal/logger"
	"github.com/MKhiriev/go-softlayer-config/internal/utils"
)

// DefaultEndpointURL is used when the resolved settings carry no endpoint.
const DefaultEndpointURL = "https://api.softlayer.com/rest/v3.1/"

type httpAPIAdapter struct {
	client  *utils.HTTPClient
	baseURL string
	auth    auth.Authentication

	logger *logger.Logger
}

// NewHTTPAPIAdapter constructs an HTTP/REST implementation of [APIAdapter]
// from resolved settings.
//
// The base URL is settings.EndpointURL (or [DefaultEndpointURL]). A positive
// settings.Timeout bounds every request; zero or negative means no client
// timeout. settings.Proxy, when set, must be a valid URL. settings.Auth is
// applied to every request.
//
// A nil log makes each call log through the logger attached to its context
// (see [logger.FromContext]).
//
// Returns an error wrapping [ErrInvalidEndpoint] or [ErrInvalidProxy] when the
// settings cannot be turned into a usable client.
func NewHTTPAPIAdapter(settings *config.Settings, log *logger.Logger) (APIAdapter, error) {
	if settings == nil {
		settings = &config.Settings{}
	}
	endpoint := settings.EndpointURL
	if endpoint == "" {
		endpoint = DefaultEndpointURL
	}
	baseURL, err := normalizeBaseURL(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}

	client := utils.NewHTTPClient().WithRequestID()
	client.
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if settings.Timeout > 0 {
		client.SetTimeout(settings.Timeout)
	}

	if settings.Proxy != "" {
		proxy, err := normalizeProxyURL(settings.Proxy)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidProxy, err)
		}
		client.SetProxy(proxy)
	}

	return &httpAPIAdapter{client: client, baseURL: baseURL, auth: settings.Auth, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// normalizeProxyURL accepts "host:port" shorthand, defaulting to http.
func normalizeProxyURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", fmt.Errorf("proxy %q has no host", raw)
	}

	return u.String(), nil
}

// EndpointURL implements [APIAdapter].
func (h *httpAPIAdapter) EndpointURL() string {
	return h.baseURL
}

// Call implements [APIAdapter]. It sends GET /{service}/{method}.json,
// tagged with a request ID that is also attached to the log entries.
func (h *httpAPIAdapter) Call(ctx context.Context, service, method string) ([]byte, error) {
	if service == "" || method == "" {
		return nil, fmt.Errorf("%w: service and method are required", ErrInvalidCall)
	}

	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = utils.NewRequestID()
		ctx = utils.WithRequestID(ctx, requestID)
	}

	base := h.logger
	if base == nil {
		base = logger.FromContext(ctx)
	}

	log := base.With().
		Str("request_id", requestID).
		Str("service", service).
		Str("method", method).
		Logger()

	req := h.client.R().SetContext(ctx)
	if h.auth != nil {
		h.auth.Apply(req)
	}

	resp, err := req.Get("/" + url.PathEscape(service) + "/" + url.PathEscape(method) + ".json")
	if err != nil {
		log.Error().Err(err).Msg("api call failed")
		return nil, fmt.Errorf("%s::%s request: %w", service, method, err)
	}

	log.Debug().Int("status", resp.StatusCode()).Dur("took", resp.Time()).Msg("api call finished")

	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("%s::%s: %w", service, method, err)
	}

	return resp.Body(), nil
}

// ParseCall splits a "Service::method" call string.
func ParseCall(call string) (service, method string, err error) {
	service, method, found := strings.Cut(strings.TrimSpace(call), "::")
	if !found || service == "" || method == "" || strings.Contains(method, "::") {
		return "", "", fmt.Errorf("%w: %q, want Service::method", ErrInvalidCall, call)
	}

	return service, method, nil
}
