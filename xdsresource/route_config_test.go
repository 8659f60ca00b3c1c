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
	"strings"
	"testing"

	v3corepb "github.com/envoyproxy/go-control-plane/envoy/config/core/v3"
	v3routepb "github.com/envoyproxy/go-control-plane/envoy/config/route/v3"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	"github.com/grpc/grpc-go-xds-rds/xdsresource/internal/envconfig"
)

func defaultArgs() Args {
	return Args{Flags: envconfig.Flags{EnableRouteLookup: true}}
}

// TestParseScenarioS1 reproduces spec scenario S1.
func TestParseScenarioS1(t *testing.T) {
	rc := &v3routepb.RouteConfiguration{
		Name: "r",
		VirtualHosts: []*v3routepb.VirtualHost{
			{
				Name:    "v",
				Domains: []string{"*"},
				Routes: []*v3routepb.Route{
					{
						Match: &v3routepb.RouteMatch{PathSpecifier: &v3routepb.RouteMatch_Prefix{Prefix: "/"}},
						Action: &v3routepb.Route_Route{Route: &v3routepb.RouteAction{
							ClusterSpecifier: &v3routepb.RouteAction_Cluster{Cluster: "c"},
						}},
					},
				},
			},
		},
	}

	got, err := Parse(defaultArgs(), rc)
	if err != nil {
		t.Fatalf("Parse() returned err: %v", err)
	}
	if len(got.VirtualHosts) != 1 {
		t.Fatalf("len(VirtualHosts) = %d, want 1", len(got.VirtualHosts))
	}
	vh := got.VirtualHosts[0]
	if vh.Name != "v" || len(vh.Routes) != 1 {
		t.Fatalf("virtual host = %+v, want name=v with 1 route", vh)
	}
	route := vh.Routes[0]
	if route.Kind != ActionForward {
		t.Fatalf("route.Kind = %v, want ActionForward", route.Kind)
	}
	if route.Match.Path.Kind != PathPrefix || route.Match.Path.Literal != "/" || !route.Match.Path.CaseSensitive {
		t.Errorf("path matcher = %+v", route.Match.Path)
	}
	if route.Action.Kind != RouteActionCluster || route.Action.ClusterName != "c" {
		t.Errorf("action = %+v, want Cluster(\"c\")", route.Action)
	}
	if route.Action.Timeout != nil {
		t.Errorf("Timeout = %v, want nil", route.Action.Timeout)
	}
	if route.Action.RetryPolicy != nil {
		t.Errorf("RetryPolicy = %v, want nil", route.Action.RetryPolicy)
	}
	if len(route.Action.HashPolicies) != 0 {
		t.Errorf("HashPolicies = %v, want empty", route.Action.HashPolicies)
	}
	if route.Action.AutoHostRewrite {
		t.Errorf("AutoHostRewrite = true, want false")
	}
}

// TestParseScenarioS4: a route with a query-parameter matcher is dropped,
// sibling routes in the same vhost are unaffected.
func TestParseScenarioS4(t *testing.T) {
	rc := &v3routepb.RouteConfiguration{
		Name: "r",
		VirtualHosts: []*v3routepb.VirtualHost{
			{
				Name:    "v",
				Domains: []string{"*"},
				Routes: []*v3routepb.Route{
					{
						Match: &v3routepb.RouteMatch{
							PathSpecifier:   &v3routepb.RouteMatch_Prefix{Prefix: "/a"},
							QueryParameters: []*v3routepb.QueryParameterMatcher{{Name: "q"}},
						},
						Action: &v3routepb.Route_Route{Route: &v3routepb.RouteAction{
							ClusterSpecifier: &v3routepb.RouteAction_Cluster{Cluster: "dropped"},
						}},
					},
					{
						Match: &v3routepb.RouteMatch{PathSpecifier: &v3routepb.RouteMatch_Prefix{Prefix: "/b"}},
						Action: &v3routepb.Route_Route{Route: &v3routepb.RouteAction{
							ClusterSpecifier: &v3routepb.RouteAction_Cluster{Cluster: "kept"},
						}},
					},
				},
			},
		},
	}

	got, err := Parse(defaultArgs(), rc)
	if err != nil {
		t.Fatalf("Parse() returned err: %v", err)
	}
	routes := got.VirtualHosts[0].Routes
	if len(routes) != 1 {
		t.Fatalf("len(routes) = %d, want 1", len(routes))
	}
	if routes[0].Action.ClusterName != "kept" {
		t.Errorf("surviving route cluster = %q, want %q", routes[0].Action.ClusterName, "kept")
	}
}

// TestParseScenarioS5: two ClusterSpecifierPlugin entries sharing a name
// reject the whole resource.
func TestParseScenarioS5(t *testing.T) {
	rc := &v3routepb.RouteConfiguration{
		Name: "r",
		ClusterSpecifierPlugins: []*v3routepb.ClusterSpecifierPlugin{
			{Extension: &v3corepb.TypedExtensionConfig{Name: "p", TypedConfig: &anypb.Any{TypeUrl: "type.googleapis.com/unknown.plugin"}}, IsOptional: true},
			{Extension: &v3corepb.TypedExtensionConfig{Name: "p", TypedConfig: &anypb.Any{TypeUrl: "type.googleapis.com/unknown.plugin"}}, IsOptional: true},
		},
	}

	_, err := Parse(defaultArgs(), rc)
	if err == nil {
		t.Fatal("Parse() returned nil err, want duplicate-plugin-name error")
	}
	if !strings.Contains(err.Error(), "Multiple ClusterSpecifierPlugins with the same name: p") {
		t.Errorf("err = %v, want it to contain the literal duplicate-name message", err)
	}
}

// TestParseScenarioS6: a FilterConfig wrapper with an unknown inner type
// and is_optional=true is silently omitted from the override map.
func TestParseScenarioS6(t *testing.T) {
	wrapper := mustAny(t, &v3routepb.FilterConfig{
		IsOptional: true,
		Config:     &anypb.Any{TypeUrl: "type.googleapis.com/unknown.X"},
	})
	rc := &v3routepb.RouteConfiguration{
		Name: "r",
		VirtualHosts: []*v3routepb.VirtualHost{
			{
				Name:    "v",
				Domains: []string{"*"},
				TypedPerFilterConfig: map[string]*anypb.Any{
					"unknown-filter": wrapper,
				},
			},
		},
	}

	got, err := Parse(defaultArgs(), rc)
	if err != nil {
		t.Fatalf("Parse() returned err: %v", err)
	}
	if _, ok := got.VirtualHosts[0].FilterOverrides["unknown-filter"]; ok {
		t.Errorf("FilterOverrides contains an entry for the unsupported-but-optional filter, want none")
	}
}

// TestParseAtomicity: an invalid message type never returns a partial tree.
func TestParseAtomicity(t *testing.T) {
	got, err := Parse(defaultArgs(), &v3corepb.Node{})
	if err == nil {
		t.Fatal("Parse() returned nil err for a non-RouteConfiguration message")
	}
	if got != nil {
		t.Errorf("Parse() returned non-nil update %+v alongside an error", got)
	}
}

func mustAny(t *testing.T, m proto.Message) *anypb.Any {
	t.Helper()
	a, err := anypb.New(m)
	if err != nil {
		t.Fatalf("anypb.New(%v) failed: %v", m, err)
	}
	return a
}
