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
	v3routepb "github.com/envoyproxy/go-control-plane/envoy/config/route/v3"
	"google.golang.org/protobuf/proto"
)

// Parse translates a RouteConfiguration message into a RouteConfigUpdate,
// or rejects the whole resource with a *ResourceError. It is the sole
// entry point an external dispatch harness calls once it has already
// unpacked the Any and matched its type-URL against RouteConfigTypeURL.
func Parse(args Args, msg proto.Message) (*RouteConfigUpdate, error) {
	rc, ok := msg.(*v3routepb.RouteConfiguration)
	if !ok {
		return nil, resourceErrorf("unexpected resource type %T, want *RouteConfiguration", msg)
	}

	plugins := PluginConfigMap{}
	optionalPlugins := OptionalPluginSet{}
	if args.Flags.EnableRouteLookup {
		for _, p := range rc.GetClusterSpecifierPlugins() {
			name, cfg, ok, err := parseClusterSpecifierPlugin(p)
			if err != nil {
				return nil, wrapResourceError("cluster specifier plugins", err)
			}
			if _, dup := plugins[name]; dup {
				return nil, resourceErrorf("Multiple ClusterSpecifierPlugins with the same name: %s", name)
			}
			if _, dup := optionalPlugins[name]; dup {
				return nil, resourceErrorf("Multiple ClusterSpecifierPlugins with the same name: %s", name)
			}
			if ok {
				plugins[name] = cfg
			} else {
				optionalPlugins[name] = struct{}{}
			}
		}
	}

	vhosts := make([]VirtualHost, 0, len(rc.GetVirtualHosts()))
	for _, vh := range rc.GetVirtualHosts() {
		parsed, err := parseVirtualHost(vh, plugins, optionalPlugins, args)
		if err != nil {
			return nil, wrapResourceError("route configuration "+rc.GetName(), err)
		}
		vhosts = append(vhosts, parsed)
	}

	return &RouteConfigUpdate{VirtualHosts: vhosts}, nil
}
