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

	"github.com/grpc/grpc-go-xds-rds/xdsresource/clusterspecifier"
)

// parseClusterSpecifierPlugin resolves a single ClusterSpecifierPlugin
// entry. ok is false and err is nil when the plugin's type is unrecognized
// but the entry is marked optional; the caller is responsible for
// recording the plugin's name in OptionalPluginSet in that case. Any other
// failure is returned as an error and must be surfaced as ResourceInvalid
// by the caller.
func parseClusterSpecifierPlugin(p *v3routepb.ClusterSpecifierPlugin) (name string, cfg clusterspecifier.BalancerConfig, ok bool, err error) {
	ext := p.GetExtension()
	name = ext.GetName()

	msg, typeURL, _, err := unwrapTypedExtension(ext.GetTypedConfig(), false)
	if err != nil {
		return name, nil, false, fmt.Errorf("cluster specifier plugin %q: %v", name, err)
	}

	plugin := clusterspecifier.Get(typeURL)
	if plugin == nil {
		if p.GetIsOptional() {
			return name, nil, false, nil
		}
		return name, nil, false, fmt.Errorf("Unsupported ClusterSpecifierPlugin type: %s", typeURL)
	}

	balancerCfg, err := plugin.ParseClusterSpecifierConfig(msg)
	if err != nil {
		return name, nil, false, fmt.Errorf("cluster specifier plugin %q: %v", name, err)
	}
	return name, balancerCfg, true, nil
}
