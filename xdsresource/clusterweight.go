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

// parseClusterWeight parses one WeightedCluster_ClusterWeight entry.
// Filter-override errors are bubbled with the weight's own name prefixed.
func parseClusterWeight(cw *v3routepb.WeightedCluster_ClusterWeight) (ClusterWeight, error) {
	overrides, err := parseFilterOverrides(cw.GetTypedPerFilterConfig())
	if err != nil {
		return ClusterWeight{}, fmt.Errorf("cluster weight %q: %w", cw.GetName(), err)
	}
	return ClusterWeight{
		Name:            cw.GetName(),
		Weight:          uint64(cw.GetWeight().GetValue()),
		FilterOverrides: overrides,
	}, nil
}

// parseWeightedClusters parses a WeightedCluster action, enforcing the
// weight-sum bounds: the list must be non-empty, the 64-bit sum must be
// strictly positive, and it must not exceed 2^32-1.
func parseWeightedClusters(wc *v3routepb.WeightedCluster) ([]ClusterWeight, error) {
	entries := wc.GetClusters()
	if len(entries) == 0 {
		return nil, fmt.Errorf("weighted cluster list is empty")
	}

	out := make([]ClusterWeight, 0, len(entries))
	var sum uint64
	for _, e := range entries {
		cw, err := parseClusterWeight(e)
		if err != nil {
			return nil, err
		}
		out = append(out, cw)
		sum += cw.Weight
	}

	if sum <= 0 {
		return nil, fmt.Errorf("Sum of cluster weights should be above 0")
	}
	const maxWeightSum = 1<<32 - 1
	if sum > maxWeightSum {
		return nil, fmt.Errorf("sum of cluster weights %d exceeds the maximum of %d", sum, maxWeightSum)
	}

	return out, nil
}
