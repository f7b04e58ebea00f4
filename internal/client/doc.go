// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the runtime of the sl-client binary.
//
// It prints the resolved client settings, with credentials redacted, or
// performs a single API call through an adapter built from those settings.
package client
