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

// parseVirtualHost parses one VirtualHost entry. Any route or override
// error aborts the whole virtual host, named in the returned error.
func parseVirtualHost(vh *v3routepb.VirtualHost, plugins PluginConfigMap, optionalPlugins OptionalPluginSet, args Args) (VirtualHost, error) {
	routes := make([]Route, 0, len(vh.GetRoutes()))
	for _, r := range vh.GetRoutes() {
		route, ok, err := parseRoute(r, plugins, optionalPlugins, args)
		if err != nil {
			return VirtualHost{}, fmt.Errorf("virtual host %q: %v", vh.GetName(), err)
		}
		if !ok {
			if args.Logger != nil {
				args.Logger.Warningf("virtual host %q: route %v skipped", vh.GetName(), r.GetName())
			}
			continue
		}
		routes = append(routes, route)
	}

	overrides, err := parseFilterOverrides(vh.GetTypedPerFilterConfig())
	if err != nil {
		return VirtualHost{}, fmt.Errorf("virtual host %q: %v", vh.GetName(), err)
	}

	return VirtualHost{
		Name:            vh.GetName(),
		Domains:         vh.GetDomains(),
		Routes:          routes,
		FilterOverrides: overrides,
	}, nil
}
