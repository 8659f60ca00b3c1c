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

// Command rdsdump decodes a serialized envoy.config.route.v3.RouteConfiguration
// message and prints the parsed route table as JSON. It exists to exercise
// the parser end to end from outside the package; it is not a substitute
// for the xDS transport that would deliver these resources in production.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	v3routepb "github.com/envoyproxy/go-control-plane/envoy/config/route/v3"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/grpc/grpc-go-xds-rds/xdsresource"
	"github.com/grpc/grpc-go-xds-rds/xdsresource/internal/envconfig"
	"github.com/grpc/grpc-go-xds-rds/xdsresource/internal/xdslog"
)

var (
	inputPath = flag.String("input", "", "path to a JSON-encoded RouteConfiguration message")
	trusted   = flag.Bool("trusted", false, "treat the source of the resource as a trusted xDS server")
)

func main() {
	flag.Parse()
	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "usage: rdsdump -input <path>")
		os.Exit(2)
	}

	raw, err := os.ReadFile(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading %s: %v\n", *inputPath, err)
		os.Exit(1)
	}

	var rc v3routepb.RouteConfiguration
	if err := protojson.Unmarshal(raw, &rc); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshaling RouteConfiguration: %v\n", err)
		os.Exit(1)
	}

	args := xdsresource.Args{
		ServerConfig: xdsresource.ServerConfig{TrustedXDSServer: *trusted},
		Flags:        envconfig.FlagsFromEnv(),
		Logger:       xdslog.NewPrefixLogger("rdsdump"),
	}

	update, err := xdsresource.Parse(args, &rc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parsing RouteConfiguration %q: %v\n", rc.GetName(), err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(update, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshaling result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
