// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/go-softlayer-config/internal/auth"

// ArgsResolver resolves settings from explicit [Arguments]. It always
// contributes and never fails.
type ArgsResolver struct{}

// Resolve implements [Resolver].
func (ArgsResolver) Resolve(args Arguments) (*Settings, error) {
	return settingsFromArgs(args), nil
}

func settingsFromArgs(args Arguments) *Settings {
	settings := &Settings{
		Auth:        args.Auth,
		EndpointURL: args.EndpointURL,
		Timeout:     args.Timeout,
		Proxy:       args.Proxy,
	}

	if settings.Auth == nil && args.Username != "" && args.APIKey != "" {
		settings.Auth = auth.NewBasicAuthentication(args.Username, args.APIKey)
	}

	return settings
}
