// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"reflect"

	"dario.cat/mergo"
	"github.com/MKhiriev/go-softlayer-config/internal/auth"
	"github.com/MKhiriev/go-softlayer-config/internal/logger"
)

type settingsBuilder struct {
	settings []*Settings
	err      error
	logger   *logger.Logger
}

func newSettingsBuilder(log *logger.Logger) *settingsBuilder {
	return &settingsBuilder{
		settings: make([]*Settings, 0, 3),
		logger:   log,
	}
}

// build merges the collected settings left to right. mergo only fills
// fields that are still zero in the result, so earlier settings win.
func (b *settingsBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, b.err
	}

	merged := new(Settings)
	for _, s := range b.settings {
		if err := mergo.Merge(merged, s, mergo.WithTransformers(keepAuth{})); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMergeSettings, err)
		}
	}

	b.logger.Debug().
		Strs("set", merged.setFields()).
		Int("contributors", len(b.settings)).
		Msg("client settings resolved")

	return merged, nil
}

// with runs r and keeps its result for the merge. Once a resolver has
// failed the remaining ones are not run.
func (b *settingsBuilder) with(position int, r Resolver, args Arguments) *settingsBuilder {
	if b.err != nil {
		return b
	}

	s, err := r.Resolve(args)
	if err != nil {
		b.err = fmt.Errorf("%w: resolver #%d (%T): %w", ErrResolver, position, r, err)
		return b
	}

	if s.isEmpty() {
		b.logger.Debug().Int("resolver", position).Str("type", fmt.Sprintf("%T", r)).Msg("resolver contributed nothing")
		return b
	}

	b.logger.Debug().
		Int("resolver", position).
		Str("type", fmt.Sprintf("%T", r)).
		Strs("set", s.setFields()).
		Msg("resolver contributed settings")

	b.settings = append(b.settings, s)
	return b
}

var authType = reflect.TypeFor[auth.Authentication]()

// keepAuth stops mergo from descending into an Auth that is already set.
// mergo only consults transformers for a non-nil destination, so an unset
// Auth is still filled by the regular merge.
type keepAuth struct{}

func (keepAuth) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ != authType {
		return nil
	}

	return func(dst, src reflect.Value) error {
		return nil
	}
}
