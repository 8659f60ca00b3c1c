/*
 *
 * Copyright 2024 gRPC authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

// Package httpfilter holds the process-wide registry of HTTP filter
// providers consulted while resolving per-scope filter overrides on RDS
// resources.
package httpfilter

import "google.golang.org/protobuf/proto"

// Config is the opaque, provider-produced representation of an HTTP
// filter's configuration. It round-trips unmodified into the parsed route
// table; the RDS parser never inspects its contents.
type Config interface {
	isFilterConfig()
}

// Provider is implemented by every registered HTTP filter. TypeURLs
// reports every Any type-URL the provider recognizes (a filter may be
// reachable under more than one type-URL across Envoy releases).
type Provider interface {
	TypeURLs() []string
	// ParseFilterConfigOverride parses a per-route, per-vhost, or
	// per-weighted-cluster override for this filter.
	ParseFilterConfigOverride(cfg proto.Message) (Config, error)
}

var m = make(map[string]Provider)

// Register adds a provider to the registry under every type-URL it
// reports. Intended to be called from an init function of the package
// implementing the filter.
func Register(p Provider) {
	for _, u := range p.TypeURLs() {
		m[u] = p
	}
}

// UnregisterForTesting removes the provider registered under typeURL. It
// exists to let tests exercise the "unsupported filter" path without
// leaking registrations across test cases.
func UnregisterForTesting(typeURL string) {
	delete(m, typeURL)
}

// Get returns the provider registered for typeURL, or nil if none is
// registered.
func Get(typeURL string) Provider {
	return m[typeURL]
}
