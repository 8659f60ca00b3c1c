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

// Package matcher builds the header and string matchers used by
// RouteMatch. It only builds matchers; evaluating them against a live
// request is out of scope for this core.
package matcher

import (
	"fmt"
	"regexp"

	v3routepb "github.com/envoyproxy/go-control-plane/envoy/config/route/v3"
)

// HeaderMatcher is the opaque value the header-matcher builder hands back
// to the RDS parser. The parser never inspects it beyond String(); it is
// consumed by the downstream request-routing layer, out of scope here.
type HeaderMatcher interface {
	String() string
}

type headerExactMatcher struct {
	key, exact string
	invert     bool
}

func (hem *headerExactMatcher) String() string {
	return fmt.Sprintf("headerExact:%v:%v:invert(%v)", hem.key, hem.exact, hem.invert)
}

type headerRegexMatcher struct {
	key string
	re  *regexp.Regexp
	invert bool
}

func (hrm *headerRegexMatcher) String() string {
	return fmt.Sprintf("headerRegex:%v:%v:invert(%v)", hrm.key, hrm.re.String(), hrm.invert)
}

type headerRangeMatcher struct {
	key        string
	start, end int64
	invert     bool
}

func (hrm *headerRangeMatcher) String() string {
	return fmt.Sprintf("headerRange:%v:[%d,%d):invert(%v)", hrm.key, hrm.start, hrm.end, hrm.invert)
}

type headerPresentMatcher struct {
	key     string
	present bool
	invert  bool
}

func (hpm *headerPresentMatcher) String() string {
	return fmt.Sprintf("headerPresent:%v:%v:invert(%v)", hpm.key, hpm.present, hpm.invert)
}

type headerPrefixMatcher struct {
	key, prefix string
	invert      bool
}

func (hpm *headerPrefixMatcher) String() string {
	return fmt.Sprintf("headerPrefix:%v:%v:invert(%v)", hpm.key, hpm.prefix, hpm.invert)
}

type headerSuffixMatcher struct {
	key, suffix string
	invert      bool
}

func (hsm *headerSuffixMatcher) String() string {
	return fmt.Sprintf("headerSuffix:%v:%v:invert(%v)", hsm.key, hsm.suffix, hsm.invert)
}

type headerStringMatcher struct {
	key string
	sm  *StringMatcher
	invert bool
}

func (hsm *headerStringMatcher) String() string {
	return fmt.Sprintf("headerString:%v:%v:invert(%v)", hsm.key, hsm.sm, hsm.invert)
}

// BuildHeaderMatcher builds a HeaderMatcher from an
// envoy.config.route.v3.HeaderMatcher proto. It is the "external matcher
// builder" the route match parser delegates to for every entry in a
// RouteMatch's header list.
func BuildHeaderMatcher(hm *v3routepb.HeaderMatcher) (HeaderMatcher, error) {
	invert := hm.GetInvertMatch()
	switch hm.GetHeaderMatchSpecifier().(type) {
	case *v3routepb.HeaderMatcher_ExactMatch:
		return &headerExactMatcher{key: hm.GetName(), exact: hm.GetExactMatch(), invert: invert}, nil
	case *v3routepb.HeaderMatcher_SafeRegexMatch:
		re, err := regexp.Compile(hm.GetSafeRegexMatch().GetRegex())
		if err != nil {
			return nil, fmt.Errorf("header matcher %v: %v", hm.GetName(), err)
		}
		return &headerRegexMatcher{key: hm.GetName(), re: re, invert: invert}, nil
	case *v3routepb.HeaderMatcher_RangeMatch:
		return &headerRangeMatcher{
			key:    hm.GetName(),
			start:  hm.GetRangeMatch().GetStart(),
			end:    hm.GetRangeMatch().GetEnd(),
			invert: invert,
		}, nil
	case *v3routepb.HeaderMatcher_PresentMatch:
		return &headerPresentMatcher{key: hm.GetName(), present: hm.GetPresentMatch(), invert: invert}, nil
	case *v3routepb.HeaderMatcher_PrefixMatch:
		return &headerPrefixMatcher{key: hm.GetName(), prefix: hm.GetPrefixMatch(), invert: invert}, nil
	case *v3routepb.HeaderMatcher_SuffixMatch:
		return &headerSuffixMatcher{key: hm.GetName(), suffix: hm.GetSuffixMatch(), invert: invert}, nil
	case *v3routepb.HeaderMatcher_StringMatch:
		sm, err := StringMatcherFromProto(hm.GetStringMatch())
		if err != nil {
			return nil, fmt.Errorf("header matcher %v: %v", hm.GetName(), err)
		}
		return &headerStringMatcher{key: hm.GetName(), sm: sm, invert: invert}, nil
	default:
		return nil, fmt.Errorf("header matcher %v: unrecognized header match specifier %T", hm.GetName(), hm.GetHeaderMatchSpecifier())
	}
}
