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

package xdsresource

import (
	"fmt"
	"regexp"
	"time"

	v3routepb "github.com/envoyproxy/go-control-plane/envoy/config/route/v3"
)

const channelIDFilterStateKey = "io.grpc.channel_id"

// parseRouteAction parses a RouteAction. ok is false when the action is a
// well-formed but unactionable choice that causes the enclosing route to
// be dropped (CLUSTER_HEADER, an absent optional cluster-specifier plugin,
// cluster-specifier-plugin usage while the feature is disabled, or an
// unset/unknown cluster specifier).
func parseRouteAction(ra *v3routepb.RouteAction, plugins PluginConfigMap, optionalPlugins OptionalPluginSet, args Args) (RouteAction, bool, error) {
	timeout := parseTimeout(ra)

	retry, err := parseRetryPolicy(ra.GetRetryPolicy())
	if err != nil {
		return RouteAction{}, false, err
	}

	hashPolicies, err := parseHashPolicies(ra.GetHashPolicy())
	if err != nil {
		return RouteAction{}, false, err
	}

	authorityRewrite := args.Flags.XDSAuthorityRewrite &&
		args.ServerConfig.TrustedXDSServer &&
		ra.GetAutoHostRewrite().GetValue()

	common := RouteAction{
		HashPolicies:    hashPolicies,
		Timeout:         timeout,
		RetryPolicy:     retry,
		AutoHostRewrite: authorityRewrite,
	}

	switch cs := ra.GetClusterSpecifier().(type) {
	case *v3routepb.RouteAction_Cluster:
		common.Kind = RouteActionCluster
		common.ClusterName = cs.Cluster
		return common, true, nil
	case *v3routepb.RouteAction_ClusterHeader:
		return RouteAction{}, false, nil
	case *v3routepb.RouteAction_WeightedClusters:
		weighted, err := parseWeightedClusters(cs.WeightedClusters)
		if err != nil {
			return RouteAction{}, false, err
		}
		common.Kind = RouteActionWeightedClusters
		common.WeightedClusters = weighted
		return common, true, nil
	case *v3routepb.RouteAction_ClusterSpecifierPlugin:
		if !args.Flags.EnableRouteLookup {
			return RouteAction{}, false, nil
		}
		name := cs.ClusterSpecifierPlugin
		cfg, ok := plugins[name]
		if !ok {
			if _, optional := optionalPlugins[name]; optional {
				return RouteAction{}, false, nil
			}
			return RouteAction{}, false, fmt.Errorf("ClusterSpecifierPlugin for [%s] not found", name)
		}
		common.Kind = RouteActionClusterSpecifierPlugin
		common.ClusterSpecifierPlugin = NamedPluginConfig{Name: name, Config: cfg}
		return common, true, nil
	default:
		return RouteAction{}, false, nil
	}
}

func parseTimeout(ra *v3routepb.RouteAction) *time.Duration {
	msd := ra.GetMaxStreamDuration()
	if msd == nil {
		return nil
	}
	if h := msd.GetGrpcTimeoutHeaderMax(); h != nil {
		d := h.AsDuration()
		return &d
	}
	if s := msd.GetMaxStreamDuration(); s != nil {
		d := s.AsDuration()
		return &d
	}
	return nil
}

func parseHashPolicies(policies []*v3routepb.RouteAction_HashPolicy) ([]HashPolicy, error) {
	var out []HashPolicy
	for _, p := range policies {
		switch spec := p.GetPolicySpecifier().(type) {
		case *v3routepb.RouteAction_HashPolicy_Header_:
			hp := HashPolicy{
				Kind:       HashPolicyHeader,
				Terminal:   p.GetTerminal(),
				HeaderName: spec.Header.GetHeaderName(),
			}
			if rr := spec.Header.GetRegexRewrite(); rr != nil && rr.GetPattern() != nil {
				re, err := regexp.Compile(rr.GetPattern().GetRegex())
				if err != nil {
					return nil, fmt.Errorf("hash policy header %q: malformed regex rewrite pattern: %v", hp.HeaderName, err)
				}
				hp.Regex = re
				hp.Substitution = rr.GetSubstitution()
			}
			out = append(out, hp)
		case *v3routepb.RouteAction_HashPolicy_FilterState_:
			if spec.FilterState.GetKey() != channelIDFilterStateKey {
				continue
			}
			out = append(out, HashPolicy{Kind: HashPolicyChannelID, Terminal: p.GetTerminal()})
		default:
			// Cookie, connection-properties, and query-parameter hash
			// policies are silently dropped; this core only ever
			// produces Header and ChannelID policies.
		}
	}
	return out, nil
}
