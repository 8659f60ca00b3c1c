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
	"github.com/grpc/grpc-go-xds-rds/xdsresource/internal/envconfig"
	"github.com/grpc/grpc-go-xds-rds/xdsresource/internal/xdslog"
)

// ServerConfig captures the properties of the xDS server that delivered
// the resource being parsed. TrustedXDSServer gates privileged semantics
// such as authority rewrite.
type ServerConfig struct {
	TrustedXDSServer bool
}

// Args bundles everything the parser consumes beyond the RouteConfiguration
// message itself: the server capability, the feature flags (injected
// rather than read live from the environment so tests can override them
// per call), and an optional logger for diagnostics.
type Args struct {
	ServerConfig ServerConfig
	Flags        envconfig.Flags
	Logger       *xdslog.PrefixLogger
}
