// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-softlayer-config/internal/adapter"
	"github.com/MKhiriev/go-softlayer-config/internal/config"
	"github.com/MKhiriev/go-softlayer-config/internal/logger"
	"gopkg.in/yaml.v3"
)

// ErrUnknownOutput indicates an output format other than json or yaml.
var ErrUnknownOutput = errors.New("unknown output format")

// App prints resolved settings or performs a single API call.
type App struct {
	settings *config.Settings
	api      adapter.APIAdapter

	output string
	call   string
	out    io.Writer

	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp wires an App. settings and api must not be nil; cl selects the
// output format and the optional call. Output is written to out.
func NewApp(settings *config.Settings, api adapter.APIAdapter, cl *config.CommandLine, out io.Writer, log *logger.Logger) (*App, error) {
	if settings == nil || api == nil || cl == nil || out == nil {
		return nil, errors.New("client app requires settings, adapter, command line and output")
	}
	if log == nil {
		log = logger.Nop()
	}

	switch cl.Output {
	case "", config.OutputJSON, config.OutputYAML:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOutput, cl.Output)
	}

	return &App{
		settings: settings,
		api:      api,
		output:   cl.Output,
		call:     cl.Call,
		out:      out,
		logger:   log,
	}, nil
}

// Run implements [Client].
func (a *App) Run(ctx context.Context) error {
	if a.call == "" {
		return a.printSettings()
	}

	service, method, err := adapter.ParseCall(a.call)
	if err != nil {
		return err
	}

	a.logger.Info().Str("endpoint", a.api.EndpointURL()).Str("call", a.call).Msg("calling api")

	body, err := a.api.Call(ctx, service, method)
	if err != nil {
		return fmt.Errorf("api call: %w", err)
	}

	if _, err = fmt.Fprintln(a.out, string(body)); err != nil {
		return fmt.Errorf("write api response: %w", err)
	}

	return nil
}

// settingsView is the printable form of resolved settings.
type settingsView struct {
	Auth             string `json:"auth,omitempty" yaml:"auth,omitempty"`
	EndpointURL      string `json:"endpoint_url,omitempty" yaml:"endpoint_url,omitempty"`
	EffectiveBaseURL string `json:"effective_base_url" yaml:"effective_base_url"`
	Timeout          string `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	Proxy            string `json:"proxy,omitempty" yaml:"proxy,omitempty"`
}

func newSettingsView(s *config.Settings, effectiveBaseURL string) settingsView {
	v := settingsView{
		EndpointURL:      s.EndpointURL,
		EffectiveBaseURL: effectiveBaseURL,
		Proxy:            s.Proxy,
	}
	if s.Auth != nil {
		v.Auth = s.Auth.String()
	}
	if s.Timeout != 0 {
		v.Timeout = s.Timeout.String()
	}
	return v
}

func (a *App) printSettings() error {
	view := newSettingsView(a.settings, a.api.EndpointURL())

	if a.output == config.OutputYAML {
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return fmt.Errorf("encode settings as yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(view); err != nil {
		return fmt.Errorf("encode settings as json: %w", err)
	}

	return nil
}
