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
	"regexp"

	v3routepb "github.com/envoyproxy/go-control-plane/envoy/config/route/v3"
	v3typepb "github.com/envoyproxy/go-control-plane/envoy/type/v3"

	"github.com/grpc/grpc-go-xds-rds/xdsresource/matcher"
)

// parseRouteMatch parses a single RouteMatch. ok is false when the route
// should be skipped entirely (a query-parameter matcher was present); it
// carries no error in that case.
func parseRouteMatch(m *v3routepb.RouteMatch) (rm RouteMatch, ok bool, err error) {
	if len(m.GetQueryParameters()) > 0 {
		return RouteMatch{}, false, nil
	}

	path, err := parsePathMatcher(m)
	if err != nil {
		return RouteMatch{}, false, err
	}

	var frac *FractionMatcher
	if rf := m.GetRuntimeFraction(); rf != nil {
		fm, err := parseFractionMatcher(rf.GetDefaultValue())
		if err != nil {
			return RouteMatch{}, false, err
		}
		frac = fm
	}

	headers := make([]matcher.HeaderMatcher, 0, len(m.GetHeaders()))
	for _, hm := range m.GetHeaders() {
		built, err := matcher.BuildHeaderMatcher(hm)
		if err != nil {
			return RouteMatch{}, false, err
		}
		headers = append(headers, built)
	}

	return RouteMatch{Path: path, Headers: headers, Fraction: frac}, true, nil
}

func parsePathMatcher(m *v3routepb.RouteMatch) (PathMatcher, error) {
	switch pt := m.GetPathSpecifier().(type) {
	case *v3routepb.RouteMatch_Prefix:
		return PathMatcher{Kind: PathPrefix, Literal: pt.Prefix, CaseSensitive: caseSensitive(m)}, nil
	case *v3routepb.RouteMatch_Path:
		return PathMatcher{Kind: PathExact, Literal: pt.Path, CaseSensitive: caseSensitive(m)}, nil
	case *v3routepb.RouteMatch_SafeRegex:
		re, err := regexp.Compile(pt.SafeRegex.GetRegex())
		if err != nil {
			return PathMatcher{}, fmt.Errorf("Malformed safe regex pattern: %v", err)
		}
		return PathMatcher{Kind: PathRegex, Regex: re}, nil
	default:
		return PathMatcher{}, fmt.Errorf("Unknown path match type")
	}
}

func caseSensitive(m *v3routepb.RouteMatch) bool {
	if cs := m.GetCaseSensitive(); cs != nil {
		return cs.GetValue()
	}
	return true
}

func parseFractionMatcher(fp *v3typepb.FractionalPercent) (*FractionMatcher, error) {
	var denom uint64
	switch fp.GetDenominator() {
	case v3typepb.FractionalPercent_HUNDRED:
		denom = fractionDenomHundred
	case v3typepb.FractionalPercent_TEN_THOUSAND:
		denom = fractionDenomTenThousand
	case v3typepb.FractionalPercent_MILLION:
		denom = fractionDenomMillion
	default:
		return nil, fmt.Errorf("unrecognized fractional percent denominator: %v", fp.GetDenominator())
	}
	return &FractionMatcher{Numerator: fp.GetNumerator(), Denominator: denom}, nil
}
