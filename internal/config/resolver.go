// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/MKhiriev/go-softlayer-config/internal/logger"
)

//go:generate mockgen -source=resolver.go -destination=../mock/resolver_mock.go -package=mock

// Resolver produces a partial [Settings] value from one source.
//
// Resolve returns nil when the source has nothing to contribute. An error
// aborts the whole resolution.
type Resolver interface {
	Resolve(args Arguments) (*Settings, error)
}

// ResolverFunc adapts an ordinary function to the [Resolver] interface.
type ResolverFunc func(args Arguments) (*Settings, error)

// Resolve calls f(args).
func (f ResolverFunc) Resolve(args Arguments) (*Settings, error) {
	return f(args)
}

// DefaultResolvers returns a fresh default chain: arguments, environment,
// config files.
func DefaultResolvers() []Resolver {
	return []Resolver{
		ArgsResolver{},
		NewEnvResolver(),
		NewConfigFileResolver(),
	}
}

// SettingsResolver combines the output of an ordered list of resolvers.
// Earlier resolvers take precedence over later ones.
type SettingsResolver struct {
	resolvers []Resolver
	logger    *logger.Logger
}

// NewSettingsResolver returns a *SettingsResolver running resolvers in the
// given order. With no resolvers Resolve returns empty settings.
func NewSettingsResolver(resolvers ...Resolver) *SettingsResolver {
	return &SettingsResolver{
		resolvers: resolvers,
		logger:    logger.Nop(),
	}
}

// WithLogger sets the logger used to trace which resolvers contributed.
func (r *SettingsResolver) WithLogger(log *logger.Logger) *SettingsResolver {
	if log != nil {
		r.logger = log
	}
	return r
}

// Resolve runs every resolver with args and merges the results. For each
// field the first non-empty value wins. Nil results are skipped.
func (r *SettingsResolver) Resolve(args Arguments) (*Settings, error) {
	b := newSettingsBuilder(r.logger)
	for i, resolver := range r.resolvers {
		b.with(i, resolver, args)
	}

	return b.build()
}
