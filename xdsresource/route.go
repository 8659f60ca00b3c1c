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

	v3routepb "github.com/envoyproxy/go-control-plane/envoy/config/route/v3"
)

// parseRoute parses one Route entry. ok is false when the route should be
// dropped entirely (an unmatchable match, or a route action that resolved
// to a well-formed no-op); no error accompanies that case.
func parseRoute(r *v3routepb.Route, plugins PluginConfigMap, optionalPlugins OptionalPluginSet, args Args) (Route, bool, error) {
	match, ok, err := parseRouteMatch(r.GetMatch())
	if err != nil {
		return Route{}, false, err
	}
	if !ok {
		return Route{}, false, nil
	}

	overrides, err := parseFilterOverrides(r.GetTypedPerFilterConfig())
	if err != nil {
		return Route{}, false, err
	}

	switch action := r.GetAction().(type) {
	case *v3routepb.Route_Route:
		ra, ok, err := parseRouteAction(action.Route, plugins, optionalPlugins, args)
		if err != nil {
			return Route{}, false, err
		}
		if !ok {
			return Route{}, false, nil
		}
		return Route{Match: match, Kind: ActionForward, Action: ra, FilterOverrides: overrides}, true, nil
	case *v3routepb.Route_NonForwardingAction:
		return Route{Match: match, Kind: ActionNonForwarding, FilterOverrides: overrides}, true, nil
	default:
		return Route{}, false, fmt.Errorf("unknown action type")
	}
}
