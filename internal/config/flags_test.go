// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cl, err := ParseFlags([]string{
		"--username", "u",
		"--api-key", "k",
		"--endpoint-url", "https://api.example.com/",
		"--timeout", "30s",
		"--proxy", "http://proxy:3128",
		"-c", "/tmp/softlayer.conf",
		"-o", "yaml",
		"--call", "SoftLayer_Account::getObject",
		"-v",
	})

	require.NoError(t, err)
	assert.Equal(t, Arguments{
		Username:    "u",
		APIKey:      "k",
		EndpointURL: "https://api.example.com/",
		Timeout:     30 * time.Second,
		Proxy:       "http://proxy:3128",
		ConfigFile:  "/tmp/softlayer.conf",
	}, cl.Arguments)
	assert.Equal(t, OutputYAML, cl.Output)
	assert.Equal(t, "SoftLayer_Account::getObject", cl.Call)
	assert.True(t, cl.Verbose)
}

func TestParseFlags_Defaults(t *testing.T) {
	cl, err := ParseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, Arguments{}, cl.Arguments)
	assert.Equal(t, OutputJSON, cl.Output)
	assert.Empty(t, cl.Call)
	assert.False(t, cl.Verbose)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"--unknown"}},
		{name: "bad duration", args: []string{"--timeout", "soon"}},
		{name: "bad output", args: []string{"--output", "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl, err := ParseFlags(tt.args)
			require.Error(t, err)
			assert.Nil(t, cl)
			assert.ErrorIs(t, err, ErrInvalidFlags)
		})
	}
}
