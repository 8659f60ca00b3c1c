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

// Package envconfig holds the process-wide feature flags consulted while
// parsing RDS resources. Tests need to flip these per call, so they are
// carried as a plain struct rather than read live from the environment at
// every call site.
package envconfig

import (
	"os"
	"strconv"
)

const (
	rlsLBEnv          = "GRPC_EXPERIMENTAL_XDS_RLS_LB"
	authorityRewriteEnv = "GRPC_EXPERIMENTAL_XDS_AUTHORITY_REWRITE"
)

// Flags bundles the feature flags the RDS parser consults. The zero value is
// not a valid production configuration; use FlagsFromEnv to build one from
// the process environment, or a struct literal in tests.
type Flags struct {
	// EnableRouteLookup gates population of the cluster-specifier-plugin map
	// and dispatch of the CLUSTER_SPECIFIER_PLUGIN route action. Defaults to
	// true when read from the environment.
	EnableRouteLookup bool
	// XDSAuthorityRewrite gates the auto-host-rewrite computation. Defaults
	// to false when read from the environment.
	XDSAuthorityRewrite bool
}

// FlagsFromEnv builds a Flags value from the process environment, applying
// the documented defaults when a variable is unset or unparsable.
func FlagsFromEnv() Flags {
	return Flags{
		EnableRouteLookup:   boolFromEnv(rlsLBEnv, true),
		XDSAuthorityRewrite: boolFromEnv(authorityRewriteEnv, false),
	}
}

func boolFromEnv(env string, def bool) bool {
	v, ok := os.LookupEnv(env)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
