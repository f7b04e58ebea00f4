// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-softlayer-config/internal/auth"
)

// Settings is the client configuration produced by a [Resolver] and by the
// merge of all resolvers. A zero field means the option is unset.
type Settings struct {
	// Auth is the credential used for API calls, or nil. It is left out of
	// serialized settings; print it through its redacting String method.
	Auth auth.Authentication `json:"-" yaml:"-"`

	// EndpointURL is the base URL of the API.
	EndpointURL string `json:"endpoint_url,omitempty" yaml:"endpoint_url,omitempty"`

	// Timeout bounds a single API request. Only collected here; the HTTP
	// client built from the settings enforces it.
	Timeout time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`

	// Proxy is the proxy URL outgoing requests go through.
	Proxy string `json:"proxy,omitempty" yaml:"proxy,omitempty"`
}

// Arguments holds explicitly supplied options. The same value is handed to
// every resolver in the chain.
type Arguments struct {
	// Username and APIKey build a [auth.BasicAuthentication] when Auth is
	// nil and both are non-empty.
	Username string
	APIKey   string

	// Auth is a pre-built credential. It takes priority over Username and
	// APIKey.
	Auth auth.Authentication

	EndpointURL string
	Timeout     time.Duration
	Proxy       string

	// ConfigFile is an extra config file read after the default search
	// paths. Only [ConfigFileResolver] uses it.
	ConfigFile string
}

// GetClientSettings resolves settings from args, the environment and the
// config files, in that order of precedence.
//
// It is shorthand for NewSettingsResolver(DefaultResolvers()...).Resolve(args).
func GetClientSettings(args Arguments) (*Settings, error) {
	return NewSettingsResolver(DefaultResolvers()...).Resolve(args)
}
