// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-softlayer-config/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgsResolver_UsernameAPIKey(t *testing.T) {
	got, err := ArgsResolver{}.Resolve(Arguments{
		Username:    "username",
		APIKey:      "api_key",
		EndpointURL: "http://endpoint/",
		Timeout:     10 * time.Second,
		Proxy:       "https://localhost:3128",
	})

	require.NoError(t, err)
	assert.Equal(t, "http://endpoint/", got.EndpointURL)
	assert.Equal(t, 10*time.Second, got.Timeout)
	assert.Equal(t, "https://localhost:3128", got.Proxy)

	basic, ok := got.Auth.(*auth.BasicAuthentication)
	require.True(t, ok, "expected *auth.BasicAuthentication, got %T", got.Auth)
	assert.Equal(t, "username", basic.Username)
	assert.Equal(t, "api_key", basic.APIKey)
}

func TestArgsResolver_NoAuth(t *testing.T) {
	got, err := ArgsResolver{}.Resolve(Arguments{})

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, &Settings{}, got)
}

func TestArgsResolver_WithAuth(t *testing.T) {
	a := auth.NewTokenAuthentication(1, "token")

	got, err := ArgsResolver{}.Resolve(Arguments{Auth: a, Username: "ignored", APIKey: "ignored"})

	require.NoError(t, err)
	assert.Empty(t, got.EndpointURL)
	assert.Zero(t, got.Timeout)
	assert.Same(t, a, got.Auth)
}

func TestArgsResolver_PartialCredentials(t *testing.T) {
	tests := []struct {
		name string
		args Arguments
	}{
		{name: "username only", args: Arguments{Username: "u"}},
		{name: "api key only", args: Arguments{APIKey: "k"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ArgsResolver{}.Resolve(tt.args)
			require.NoError(t, err)
			assert.Nil(t, got.Auth)
		})
	}
}

func TestArgsResolver_IgnoresConfigFile(t *testing.T) {
	got, err := ArgsResolver{}.Resolve(Arguments{ConfigFile: "path/to/config"})

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, got)
}
