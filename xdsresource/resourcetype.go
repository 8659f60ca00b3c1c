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

// RouteConfigTypeURL is the Any type-URL identifying a RouteConfiguration
// resource on the wire.
const RouteConfigTypeURL = "type.googleapis.com/envoy.config.route.v3.RouteConfiguration"

// RouteConfigTypeName is the short name a dispatch harness uses to route
// resources of this type to Parse.
const RouteConfigTypeName = "RouteConfigResource"

// FilterConfigWrapperTypeURL is the Any type-URL of the optional-wrapper
// message that carries is_optional alongside a filter's real config.
const FilterConfigWrapperTypeURL = "type.googleapis.com/envoy.config.route.v3.FilterConfig"

// Legacy and current TypedStruct envelope type-URLs; both carry an inner
// type-URL and a raw struct payload in place of the outer Any.
const (
	TypedStructURLV1 = "type.googleapis.com/udpa.type.v1.TypedStruct"
	TypedStructURLV3 = "type.googleapis.com/xds.type.v3.TypedStruct"
)

// ExtractResourceName returns the "name" field of msg if it is a
// RouteConfiguration, and false otherwise. It is the operation an external
// dispatch harness uses to key a newly-arrived resource before this parser
// ever sees it.
func ExtractResourceName(msg proto.Message) (string, bool) {
	rc, ok := msg.(*v3routepb.RouteConfiguration)
	if !ok {
		return "", false
	}
	return rc.GetName(), true
}
