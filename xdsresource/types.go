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

// Package xdsresource parses and validates RDS (Route Discovery Service)
// RouteConfiguration resources into an immutable in-memory route table.
package xdsresource

import (
	"regexp"
	"time"

	"google.golang.org/grpc/codes"

	"github.com/grpc/grpc-go-xds-rds/xdsresource/clusterspecifier"
	"github.com/grpc/grpc-go-xds-rds/xdsresource/httpfilter"
	"github.com/grpc/grpc-go-xds-rds/xdsresource/matcher"
)

// RouteConfigUpdate is the result of parsing a RouteConfiguration: an
// immutable, ordered list of virtual hosts. Equality is structural.
type RouteConfigUpdate struct {
	VirtualHosts []VirtualHost
}

// VirtualHost groups routes selected by matching a request authority
// against Domains.
type VirtualHost struct {
	Name            string
	Domains         []string
	Routes          []Route
	FilterOverrides map[string]httpfilter.Config
}

// ActionKind discriminates the two Route variants. Routes the parser
// chooses to skip are never represented by a Route value at all; there is
// no Skip variant.
type ActionKind int

const (
	// ActionForward is a route that forwards to a RouteAction.
	ActionForward ActionKind = iota
	// ActionNonForwarding is a route with no forwarding action (e.g. it
	// exists purely to carry filter overrides for requests terminated
	// elsewhere in the filter chain).
	ActionNonForwarding
)

// Route is a (match, action) pair plus any per-route filter overrides. For
// ActionNonForwarding routes, Action is the zero RouteAction and must be
// ignored.
type Route struct {
	Match           RouteMatch
	Kind            ActionKind
	Action          RouteAction
	FilterOverrides map[string]httpfilter.Config
}

// RouteMatch is the set of conditions a request must satisfy to select a
// Route.
type RouteMatch struct {
	Path     PathMatcher
	Headers  []matcher.HeaderMatcher
	Fraction *FractionMatcher
}

// PathMatcherKind discriminates the three PathMatcher variants.
type PathMatcherKind int

const (
	// PathPrefix matches when the request path has the given prefix.
	PathPrefix PathMatcherKind = iota
	// PathExact matches when the request path equals the literal exactly.
	PathExact
	// PathRegex matches when the request path satisfies the compiled
	// pattern.
	PathRegex
)

// PathMatcher is a tagged variant over Prefix/Exact/Regex path matching.
// Case sensitivity defaults to true when the source field is absent; it is
// meaningless (always false-valued) for PathRegex.
type PathMatcher struct {
	Kind          PathMatcherKind
	Literal       string
	CaseSensitive bool
	Regex         *regexp.Regexp
}

func (pm PathMatcher) String() string {
	switch pm.Kind {
	case PathPrefix:
		return "prefix:" + pm.Literal
	case PathExact:
		return "path:" + pm.Literal
	case PathRegex:
		return "regex:" + pm.Regex.String()
	default:
		return "unknown path matcher"
	}
}

// FractionMatcher matches a pseudo-random draw against Numerator out of
// Denominator. Denominator is always one of 100, 10000, or 1000000.
type FractionMatcher struct {
	Numerator   uint32
	Denominator uint64
}

const (
	fractionDenomHundred     = 100
	fractionDenomTenThousand = 10_000
	fractionDenomMillion     = 1_000_000
)

// RouteActionKind discriminates the three RouteAction variants.
type RouteActionKind int

const (
	// RouteActionCluster forwards to a single named cluster.
	RouteActionCluster RouteActionKind = iota
	// RouteActionWeightedClusters forwards to one of several clusters
	// chosen by weight.
	RouteActionWeightedClusters
	// RouteActionClusterSpecifierPlugin defers cluster selection to a
	// cluster-specifier plugin.
	RouteActionClusterSpecifierPlugin
)

// RouteAction is a tagged variant carrying the fields common to all three
// cluster-selection strategies plus the strategy-specific payload.
type RouteAction struct {
	Kind RouteActionKind

	// Populated when Kind == RouteActionCluster.
	ClusterName string
	// Populated when Kind == RouteActionWeightedClusters.
	WeightedClusters []ClusterWeight
	// Populated when Kind == RouteActionClusterSpecifierPlugin.
	ClusterSpecifierPlugin NamedPluginConfig

	HashPolicies    []HashPolicy
	Timeout         *time.Duration
	RetryPolicy     *RetryPolicy
	AutoHostRewrite bool
}

// ClusterWeight is one weighted entry of a RouteActionWeightedClusters
// action.
type ClusterWeight struct {
	Name            string
	Weight          uint64
	FilterOverrides map[string]httpfilter.Config
}

// HashPolicyKind discriminates the two HashPolicy variants the parser
// retains; all other upstream kinds are silently dropped during parsing.
type HashPolicyKind int

const (
	// HashPolicyHeader hashes on a request header's value.
	HashPolicyHeader HashPolicyKind = iota
	// HashPolicyChannelID hashes on the channel's identity, selected via
	// the fixed filter-state key "io.grpc.channel_id".
	HashPolicyChannelID
)

// HashPolicy is one entry of a RouteAction's hash-policy list.
type HashPolicy struct {
	Kind         HashPolicyKind
	Terminal     bool
	HeaderName   string
	Regex        *regexp.Regexp
	Substitution string
}

// RetryPolicy is the normalized retry configuration for a RouteAction.
// PerAttemptRecvTimeout is always absent in this core; the field isn't
// modeled because nothing here ever populates it.
type RetryPolicy struct {
	MaxAttempts          int
	RetryableStatusCodes []codes.Code
	InitialBackoff       time.Duration
	MaxBackoff           time.Duration
}

// NamedPluginConfig names a cluster-specifier plugin and carries its
// already-parsed, provider-opaque configuration.
type NamedPluginConfig struct {
	Name   string
	Config clusterspecifier.BalancerConfig
}

// PluginConfigMap maps a cluster-specifier plugin name to its parsed
// configuration. Populated once per RouteConfiguration by the resource
// driver; names are guaranteed unique within a map.
type PluginConfigMap map[string]clusterspecifier.BalancerConfig

// OptionalPluginSet is the set of cluster-specifier plugin names that
// parsed cleanly but whose type-URL is unrecognized and were declared
// optional.
type OptionalPluginSet map[string]struct{}
