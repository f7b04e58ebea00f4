// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
)

// Output formats accepted by the --output flag.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// CommandLine is the parsed command line of the client binary.
type CommandLine struct {
	// Arguments are the explicit settings; they take precedence over the
	// environment and config files.
	Arguments Arguments

	// Output is the format settings are printed in ("json" or "yaml").
	Output string

	// Call is an optional API call in "Service::method" form.
	Call string

	// Verbose enables debug logging on stderr.
	Verbose bool
}

// ParseFlags parses args (without the program name).
//
// Flags:
//
//	--username      API username
//	--api-key       API key
//	--endpoint-url  API endpoint URL
//	--timeout       request timeout (e.g., "30s", "1m")
//	--proxy         proxy URL
//	-c/--config     extra INI config file read after the default paths
//	-o/--output     output format: json or yaml
//	--call          API call in Service::method form
//	-v/--verbose    debug logging
func ParseFlags(args []string) (*CommandLine, error) {
	cl := &CommandLine{}
	app := newFlagApp(cl)

	if _, err := app.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFlags, err)
	}

	return cl, nil
}

func newFlagApp(cl *CommandLine) *kingpin.Application {
	app := kingpin.New("sl-client", "Resolve SoftLayer API client settings and optionally call the API")

	app.Flag("username", "API username").StringVar(&cl.Arguments.Username)
	app.Flag("api-key", "API key").StringVar(&cl.Arguments.APIKey)
	app.Flag("endpoint-url", "API endpoint URL").StringVar(&cl.Arguments.EndpointURL)
	app.Flag("timeout", "Request timeout (e.g., 30s, 1m)").DurationVar(&cl.Arguments.Timeout)
	app.Flag("proxy", "Proxy URL").StringVar(&cl.Arguments.Proxy)
	app.Flag("config", "Extra INI config file, read after the default search paths").Short('c').StringVar(&cl.Arguments.ConfigFile)
	app.Flag("output", "Output format").Short('o').Default(OutputJSON).EnumVar(&cl.Output, OutputJSON, OutputYAML)
	app.Flag("call", "API call in Service::method form").StringVar(&cl.Call)
	app.Flag("verbose", "Enable debug logging").Short('v').BoolVar(&cl.Verbose)

	return app
}
