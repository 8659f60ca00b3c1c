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

// Package clusterspecifier holds the process-wide registry of
// cluster-specifier plugins (e.g. RLS) consulted while resolving the
// CLUSTER_SPECIFIER_PLUGIN route action.
package clusterspecifier

import "google.golang.org/protobuf/proto"

// BalancerConfig is the opaque, plugin-produced load balancing
// configuration attached to a NamedPluginConfig. The RDS parser never
// inspects its contents; it round-trips into the parsed route table.
type BalancerConfig []map[string]any

// ClusterSpecifierPlugin is implemented by every registered
// cluster-specifier plugin.
type ClusterSpecifierPlugin interface {
	// TypeURLs reports every Any type-URL this plugin recognizes.
	TypeURLs() []string
	// ParseClusterSpecifierConfig parses a plugin-specific configuration
	// message into a BalancerConfig, or returns an error if the
	// configuration is malformed.
	ParseClusterSpecifierConfig(cfg proto.Message) (BalancerConfig, error)
}

var m = make(map[string]ClusterSpecifierPlugin)

// Register adds a plugin to the registry under every type-URL it reports.
// Intended to be called from an init function of the package implementing
// the plugin.
func Register(b ClusterSpecifierPlugin) {
	for _, u := range b.TypeURLs() {
		m[u] = b
	}
}

// UnregisterForTesting removes the plugin registered under typeURL.
func UnregisterForTesting(typeURL string) {
	delete(m, typeURL)
}

// Get returns the plugin registered for typeURL, or nil if none is
// registered.
func Get(typeURL string) ClusterSpecifierPlugin {
	return m[typeURL]
}
