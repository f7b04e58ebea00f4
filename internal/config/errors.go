// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrResolver wraps an error returned by a resolver in the chain.
	ErrResolver = errors.New("settings resolver failed")
	// ErrMergeSettings indicates that a partial Settings value could not be
	// merged into the result.
	ErrMergeSettings = errors.New("error merging settings")
	// ErrConfigFile indicates a config file that could not be parsed, or a
	// value inside it that could not be converted (for example a timeout
	// that is not a number).
	ErrConfigFile = errors.New("invalid config file")
	// ErrInvalidFlags indicates malformed command-line flags.
	ErrInvalidFlags = errors.New("invalid command-line flags")
)
