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
	"strings"
	"time"

	v3routepb "github.com/envoyproxy/go-control-plane/envoy/config/route/v3"
	"google.golang.org/grpc/codes"
)

const (
	defaultMaxAttempts    = 2
	defaultInitialBackoff = 25 * time.Millisecond
	defaultMaxBackoff     = 250 * time.Millisecond
	minBackoff            = time.Millisecond
)

var supportedRetryableCodes = map[string]codes.Code{
	"CANCELLED":          codes.Canceled,
	"DEADLINE_EXCEEDED":  codes.DeadlineExceeded,
	"INTERNAL":           codes.Internal,
	"RESOURCE_EXHAUSTED": codes.ResourceExhausted,
	"UNAVAILABLE":        codes.Unavailable,
}

// parseRetryPolicy implements the numeric-bounds enforcement and
// status-code mapping of the retry policy parser. The RouteAction parser
// calls it for every action; a nil rp (no retry_policy) yields a nil
// RetryPolicy and no error.
func parseRetryPolicy(rp *v3routepb.RetryPolicy) (*RetryPolicy, error) {
	if rp == nil {
		return nil, nil
	}

	maxAttempts := defaultMaxAttempts
	if nr := rp.GetNumRetries(); nr != nil {
		maxAttempts = int(nr.GetValue()) + 1
	}

	initial := defaultInitialBackoff
	max := defaultMaxBackoff
	if bo := rp.GetRetryBackOff(); bo != nil {
		base := bo.GetBaseInterval()
		if base == nil {
			return nil, fmt.Errorf("No base_interval specified in retry_backoff")
		}
		baseDur := base.AsDuration()
		if baseDur <= 0 {
			return nil, fmt.Errorf("base_interval in retry_backoff must be positive")
		}
		originalBase := baseDur
		clampedBase := baseDur
		if clampedBase < minBackoff {
			clampedBase = minBackoff
		}
		initial = clampedBase

		if mi := bo.GetMaxInterval(); mi != nil {
			maxDur := mi.AsDuration()
			if maxDur < originalBase {
				return nil, fmt.Errorf("max_interval in retry_backoff cannot be less than base_interval")
			}
			if maxDur < minBackoff {
				maxDur = minBackoff
			}
			max = maxDur
		} else {
			max = initial * 10
		}
	}

	retryableCodes := parseRetryOn(rp.GetRetryOn())

	return &RetryPolicy{
		MaxAttempts:          maxAttempts,
		RetryableStatusCodes: retryableCodes,
		InitialBackoff:       initial,
		MaxBackoff:           max,
	}, nil
}

func parseRetryOn(retryOn string) []codes.Code {
	var result []codes.Code
	for _, tok := range strings.Split(retryOn, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		tok = strings.ToUpper(strings.ReplaceAll(tok, "-", "_"))
		if c, ok := supportedRetryableCodes[tok]; ok {
			result = append(result, c)
		}
	}
	return result
}
