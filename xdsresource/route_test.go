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
	"testing"

	v3routepb "github.com/envoyproxy/go-control-plane/envoy/config/route/v3"
)

func TestParseRouteNonForwarding(t *testing.T) {
	r := &v3routepb.Route{
		Match:  &v3routepb.RouteMatch{PathSpecifier: &v3routepb.RouteMatch_Prefix{Prefix: "/"}},
		Action: &v3routepb.Route_NonForwardingAction{},
	}
	got, ok, err := parseRoute(r, nil, nil, defaultArgs())
	if err != nil || !ok {
		t.Fatalf("parseRoute() = (_, %v, %v)", ok, err)
	}
	if got.Kind != ActionNonForwarding {
		t.Errorf("Kind = %v, want ActionNonForwarding", got.Kind)
	}
}

func TestParseRouteUnknownActionErrors(t *testing.T) {
	r := &v3routepb.Route{
		Match: &v3routepb.RouteMatch{PathSpecifier: &v3routepb.RouteMatch_Prefix{Prefix: "/"}},
	}
	_, _, err := parseRoute(r, nil, nil, defaultArgs())
	if err == nil {
		t.Fatal("parseRoute() returned nil err for a route with no action set")
	}
}

func TestParseRouteRedirectErrors(t *testing.T) {
	r := &v3routepb.Route{
		Match:  &v3routepb.RouteMatch{PathSpecifier: &v3routepb.RouteMatch_Prefix{Prefix: "/"}},
		Action: &v3routepb.Route_Redirect{Redirect: &v3routepb.RedirectAction{}},
	}
	_, _, err := parseRoute(r, nil, nil, defaultArgs())
	if err == nil {
		t.Fatal("parseRoute() returned nil err for a REDIRECT action")
	}
}

func TestParseRouteMatchSkipPropagates(t *testing.T) {
	r := &v3routepb.Route{
		Match: &v3routepb.RouteMatch{
			PathSpecifier:   &v3routepb.RouteMatch_Prefix{Prefix: "/"},
			QueryParameters: []*v3routepb.QueryParameterMatcher{{Name: "q"}},
		},
		Action: &v3routepb.Route_NonForwardingAction{},
	}
	_, ok, err := parseRoute(r, nil, nil, defaultArgs())
	if err != nil {
		t.Fatalf("parseRoute() returned err: %v", err)
	}
	if ok {
		t.Error("ok = true, want false (query-parameter match should skip regardless of action kind)")
	}
}
