// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-softlayer-config/internal/auth"
	"gopkg.in/ini.v1"
)

// DefaultSection is the config file section holding client settings.
const DefaultSection = "softlayer"

// Keys recognised inside the settings section.
const (
	keyEndpointURL = "endpoint_url"
	keyTimeout     = "timeout"
	keyProxy       = "proxy"
	keyUsername    = "username"
	keyAPIKey      = "api_key"
)

// DefaultSearchPaths returns the config files read on every resolution,
// lowest precedence first.
func DefaultSearchPaths() []string {
	return []string{"/etc/softlayer.conf", "~/.softlayer"}
}

// Loader reads the config files at paths, in order. Files that do not exist
// are skipped; a key repeated in a later file overrides the earlier value.
type Loader func(paths []string) (*ini.File, error)

// LooseLoad is the default [Loader], backed by gopkg.in/ini.v1.
func LooseLoad(paths []string) (*ini.File, error) {
	if len(paths) == 0 {
		return ini.Empty(), nil
	}

	sources := make([]any, 0, len(paths))
	for _, p := range paths {
		sources = append(sources, p)
	}

	return ini.LoadSources(ini.LoadOptions{Loose: true, InsensitiveKeys: true}, sources[0], sources[1:]...)
}

// ConfigFileResolver resolves settings from INI config files. The files in
// SearchPaths are read first and [Arguments.ConfigFile] last, so the
// explicit file overrides the defaults.
type ConfigFileResolver struct {
	// SearchPaths defaults to [DefaultSearchPaths] when nil.
	SearchPaths []string
	// Section defaults to [DefaultSection] when empty.
	Section string
	// Load defaults to [LooseLoad] when nil.
	Load Loader
	// HomeDir expands a leading "~". Defaults to os.UserHomeDir.
	HomeDir func() (string, error)
}

// NewConfigFileResolver returns a *ConfigFileResolver with the default
// search paths, section and loader.
func NewConfigFileResolver() *ConfigFileResolver {
	return &ConfigFileResolver{
		SearchPaths: DefaultSearchPaths(),
		Section:     DefaultSection,
		Load:        LooseLoad,
		HomeDir:     os.UserHomeDir,
	}
}

// Resolve implements [Resolver]. It returns nil settings when no file read
// has the settings section.
func (r *ConfigFileResolver) Resolve(args Arguments) (*Settings, error) {
	load := r.Load
	if load == nil {
		load = LooseLoad
	}

	file, err := load(r.paths(args.ConfigFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFile, err)
	}

	section, err := file.GetSection(r.section())
	if err != nil {
		return nil, nil
	}

	defaults, _ := file.GetSection(ini.DefaultSection)
	value := func(key string) string { return lookup(section, defaults, key) }

	timeout, err := parseTimeout(value(keyTimeout))
	if err != nil {
		return nil, fmt.Errorf("%w: %s.%s: %w", ErrConfigFile, section.Name(), keyTimeout, err)
	}

	settings := &Settings{
		EndpointURL: value(keyEndpointURL),
		Timeout:     timeout,
		Proxy:       value(keyProxy),
	}

	username := value(keyUsername)
	apiKey := value(keyAPIKey)
	if username != "" && apiKey != "" {
		settings.Auth = auth.NewBasicAuthentication(username, apiKey)
	}

	return settings, nil
}

// paths builds the ordered list handed to the loader.
func (r *ConfigFileResolver) paths(configFile string) []string {
	search := r.SearchPaths
	if search == nil {
		search = DefaultSearchPaths()
	}

	paths := make([]string, 0, len(search)+1)
	paths = append(paths, search...)
	if configFile != "" {
		paths = append(paths, configFile)
	}

	for i, p := range paths {
		paths[i] = r.expandHome(p)
	}

	return paths
}

func (r *ConfigFileResolver) section() string {
	if r.Section == "" {
		return DefaultSection
	}
	return r.Section
}

// expandHome replaces a leading "~" with the home directory. The path is
// returned unchanged when the home directory is unknown.
func (r *ConfigFileResolver) expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	homeDir := r.HomeDir
	if homeDir == nil {
		homeDir = os.UserHomeDir
	}

	home, err := homeDir()
	if err != nil || home == "" {
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// lookup reads key from section, falling back to the [DEFAULT] section.
func lookup(section, defaults *ini.Section, key string) string {
	for _, sec := range []*ini.Section{section, defaults} {
		if sec != nil && sec.HasKey(key) {
			return strings.TrimSpace(sec.Key(key).String())
		}
	}
	return ""
}

// maxTimeoutSeconds bounds the seconds a time.Duration can hold.
const maxTimeoutSeconds = float64(math.MaxInt64) / float64(time.Second)

// parseTimeout accepts a number of seconds ("10", "2.5") or a Go duration
// ("30s"). An empty value is an unset timeout.
func parseTimeout(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}

	if seconds, err := strconv.ParseFloat(raw, 64); err == nil {
		if math.IsNaN(seconds) || math.IsInf(seconds, 0) || math.Abs(seconds) >= maxTimeoutSeconds {
			return 0, fmt.Errorf("timeout %q is out of range", raw)
		}
		return time.Duration(seconds * float64(time.Second)), nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("timeout %q is neither seconds nor a duration", raw)
	}

	return d, nil
}
