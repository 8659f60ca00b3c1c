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
	v1xdsudpatypepb "github.com/cncf/xds/go/udpa/type/v1"
	v3xdsxdstypepb "github.com/cncf/xds/go/xds/type/v3"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	"github.com/grpc/grpc-go-xds-rds/xdsresource/httpfilter"
)

// unwrapTypedExtension peels off, in order, the FilterConfig optional
// wrapper (if unwrapWrapper is true) and then a TypedStruct envelope
// (legacy or current), returning the innermost message together with its
// resolved type-URL and whether the entry was declared optional.
func unwrapTypedExtension(cfg *anypb.Any, unwrapWrapper bool) (msg proto.Message, typeURL string, optional bool, err error) {
	if unwrapWrapper {
		if cfg.MessageIs(&v3routepb.FilterConfig{}) {
			var wrapper v3routepb.FilterConfig
			if err := cfg.UnmarshalTo(&wrapper); err != nil {
				return nil, "", false, fmt.Errorf("failed to unmarshal FilterConfig wrapper: %v", err)
			}
			optional = wrapper.GetIsOptional()
			cfg = wrapper.GetConfig()
			if cfg == nil {
				return nil, "", optional, fmt.Errorf("FilterConfig wrapper has no inner config")
			}
		}
	}

	switch {
	case cfg.MessageIs(&v3xdsxdstypepb.TypedStruct{}):
		var ts v3xdsxdstypepb.TypedStruct
		if err := cfg.UnmarshalTo(&ts); err != nil {
			return nil, "", optional, fmt.Errorf("failed to unmarshal TypedStruct: %v", err)
		}
		return &ts, ts.GetTypeUrl(), optional, nil
	case cfg.MessageIs(&v1xdsudpatypepb.TypedStruct{}):
		var ts v1xdsudpatypepb.TypedStruct
		if err := cfg.UnmarshalTo(&ts); err != nil {
			return nil, "", optional, fmt.Errorf("failed to unmarshal TypedStruct: %v", err)
		}
		return &ts, ts.GetTypeUrl(), optional, nil
	default:
		return cfg, cfg.GetTypeUrl(), optional, nil
	}
}

// parseFilterOverrides resolves a per-scope (vhost/route/weighted-cluster)
// filter override map from raw Any values to parsed httpfilter.Config
// values.
func parseFilterOverrides(raw map[string]*anypb.Any) (map[string]httpfilter.Config, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[string]httpfilter.Config, len(raw))
	for name, any := range raw {
		msg, typeURL, optional, err := unwrapTypedExtension(any, true)
		if err != nil {
			return nil, fmt.Errorf("filter override %q: %v", name, err)
		}
		provider := httpfilter.Get(typeURL)
		if provider == nil {
			if optional {
				continue
			}
			return nil, fmt.Errorf("HttpFilter [%s](%s) is required but unsupported", name, typeURL)
		}
		cfg, err := provider.ParseFilterConfigOverride(msg)
		if err != nil {
			return nil, fmt.Errorf("filter override %q: %v", name, err)
		}
		out[name] = cfg
	}
	return out, nil
}
