// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// isEmpty reports whether s contributes nothing to a merge. A nil *Settings
// is empty.
func (s *Settings) isEmpty() bool {
	return s == nil || len(s.setFields()) == 0
}

// setFields lists the names of the options that are set in s, in a fixed
// order. Used for logging, so it never carries values.
func (s *Settings) setFields() []string {
	if s == nil {
		return nil
	}

	fields := make([]string, 0, 4)
	if s.Auth != nil {
		fields = append(fields, "auth")
	}
	if s.EndpointURL != "" {
		fields = append(fields, "endpoint_url")
	}
	if s.Timeout != 0 {
		fields = append(fields, "timeout")
	}
	if s.Proxy != "" {
		fields = append(fields, "proxy")
	}

	return fields
}
