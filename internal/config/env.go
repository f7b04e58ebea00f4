// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-softlayer-config/internal/auth"
	"github.com/caarlos0/env/v11"
)

// Environment variables read by [EnvResolver].
const (
	EnvUsername = "SL_USERNAME"
	EnvAPIKey   = "SL_API_KEY"
)

// envSettings maps the recognised environment variables. Lower-case proxy
// variables are the convention and are checked before the upper-case ones.
type envSettings struct {
	Username string `env:"SL_USERNAME"`
	APIKey   string `env:"SL_API_KEY"`

	HTTPSProxy      string `env:"https_proxy"`
	HTTPProxy       string `env:"http_proxy"`
	HTTPSProxyUpper string `env:"HTTPS_PROXY"`
	HTTPProxyUpper  string `env:"HTTP_PROXY"`
}

func (e envSettings) proxy() string {
	for _, p := range []string{e.HTTPSProxy, e.HTTPProxy, e.HTTPSProxyUpper, e.HTTPProxyUpper} {
		if p != "" {
			return p
		}
	}
	return ""
}

// EnvResolver resolves credentials and proxy from environment variables.
// Empty variables are treated as absent.
type EnvResolver struct {
	// Environment replaces the process environment when non-nil.
	Environment map[string]string
}

// NewEnvResolver returns an *EnvResolver reading the process environment.
func NewEnvResolver() *EnvResolver {
	return &EnvResolver{}
}

// Resolve implements [Resolver].
func (r *EnvResolver) Resolve(_ Arguments) (*Settings, error) {
	var es envSettings
	if err := r.parse(&es); err != nil {
		return nil, err
	}

	settings := &Settings{Proxy: es.proxy()}
	if es.Username != "" && es.APIKey != "" {
		settings.Auth = auth.NewBasicAuthentication(es.Username, es.APIKey)
	}

	return settings, nil
}

// parse populates es using the caarlos0/env library.
func (r *EnvResolver) parse(es *envSettings) error {
	var err error
	if r.Environment == nil {
		err = env.Parse(es)
	} else {
		err = env.ParseWithOptions(es, env.Options{Environment: r.Environment})
	}
	if err != nil {
		return fmt.Errorf("error getting env settings: %w", err)
	}

	return nil
}
