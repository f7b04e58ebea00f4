// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth defines the credential values carried by resolved client
// settings.
//
// The config package treats an [Authentication] as an opaque value: it only
// checks whether one is present. The adapter package decides how a concrete
// value is attached to outgoing API requests via [Authentication.Apply].
package auth
