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
	"testing"

	v3corepb "github.com/envoyproxy/go-control-plane/envoy/config/core/v3"
	v3routepb "github.com/envoyproxy/go-control-plane/envoy/config/route/v3"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	"github.com/grpc/grpc-go-xds-rds/xdsresource/clusterspecifier"
)

const testPluginTypeURL = "type.googleapis.com/test.Plugin"

type testPlugin struct{ failParse bool }

func (testPlugin) TypeURLs() []string { return []string{testPluginTypeURL} }

func (p testPlugin) ParseClusterSpecifierConfig(cfg proto.Message) (clusterspecifier.BalancerConfig, error) {
	if p.failParse {
		return nil, fmt.Errorf("injected failure")
	}
	return clusterspecifier.BalancerConfig{{"test_lb": struct{}{}}}, nil
}

func TestParseClusterSpecifierPluginRegistered(t *testing.T) {
	clusterspecifier.Register(testPlugin{})
	defer clusterspecifier.UnregisterForTesting(testPluginTypeURL)

	p := &v3routepb.ClusterSpecifierPlugin{
		Extension: &v3corepb.TypedExtensionConfig{
			Name:        "p",
			TypedConfig: &anypb.Any{TypeUrl: testPluginTypeURL},
		},
	}
	name, cfg, ok, err := parseClusterSpecifierPlugin(p)
	if err != nil {
		t.Fatalf("parseClusterSpecifierPlugin() returned err: %v", err)
	}
	if !ok || name != "p" || cfg == nil {
		t.Errorf("got (%q, %v, %v), want (\"p\", non-nil, true)", name, cfg, ok)
	}
}

func TestParseClusterSpecifierPluginUnknownOptional(t *testing.T) {
	p := &v3routepb.ClusterSpecifierPlugin{
		Extension: &v3corepb.TypedExtensionConfig{
			Name:        "p",
			TypedConfig: &anypb.Any{TypeUrl: "type.googleapis.com/unknown"},
		},
		IsOptional: true,
	}
	name, cfg, ok, err := parseClusterSpecifierPlugin(p)
	if err != nil {
		t.Fatalf("parseClusterSpecifierPlugin() returned err: %v", err)
	}
	if ok || cfg != nil || name != "p" {
		t.Errorf("got (%q, %v, %v), want (\"p\", nil, false)", name, cfg, ok)
	}
}

func TestParseClusterSpecifierPluginUnknownRequired(t *testing.T) {
	p := &v3routepb.ClusterSpecifierPlugin{
		Extension: &v3corepb.TypedExtensionConfig{
			Name:        "p",
			TypedConfig: &anypb.Any{TypeUrl: "type.googleapis.com/unknown"},
		},
	}
	_, _, _, err := parseClusterSpecifierPlugin(p)
	if err == nil {
		t.Fatal("parseClusterSpecifierPlugin() returned nil err, want unsupported-type error")
	}
}

func TestParseClusterSpecifierPluginProviderError(t *testing.T) {
	clusterspecifier.Register(testPlugin{failParse: true})
	defer clusterspecifier.UnregisterForTesting(testPluginTypeURL)

	p := &v3routepb.ClusterSpecifierPlugin{
		Extension: &v3corepb.TypedExtensionConfig{
			Name:        "p",
			TypedConfig: &anypb.Any{TypeUrl: testPluginTypeURL},
		},
	}
	_, _, _, err := parseClusterSpecifierPlugin(p)
	if err == nil {
		t.Fatal("parseClusterSpecifierPlugin() returned nil err, want the plugin's injected failure")
	}
}
