// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config resolves SoftLayer API client settings (credentials,
// endpoint URL, timeout and proxy) from several sources.
//
// Each source is a [Resolver] producing a partial [Settings] value. A
// [SettingsResolver] runs its resolvers in order and merges their results:
// the first non-empty value of every field wins, later resolvers only fill
// fields that are still unset. The default order is:
//  1. Explicit arguments ([ArgsResolver])
//  2. Environment variables ([EnvResolver])
//  3. INI config files ([ConfigFileResolver])
//
// The main entry point is [GetClientSettings].
package config
