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

package matcher

import (
	"fmt"
	"regexp"
	"strings"

	v3matcherpb "github.com/envoyproxy/go-control-plane/envoy/type/matcher/v3"
)

// StringMatcher mirrors envoy.type.matcher.v3.StringMatcher: exactly one of
// its match kinds is populated.
type StringMatcher struct {
	exact      *string
	prefix     *string
	suffix     *string
	contains   *string
	regex      *regexp.Regexp
	ignoreCase bool
}

func (sm *StringMatcher) String() string {
	switch {
	case sm.exact != nil:
		return fmt.Sprintf("exact:%v:ignoreCase(%v)", *sm.exact, sm.ignoreCase)
	case sm.prefix != nil:
		return fmt.Sprintf("prefix:%v:ignoreCase(%v)", *sm.prefix, sm.ignoreCase)
	case sm.suffix != nil:
		return fmt.Sprintf("suffix:%v:ignoreCase(%v)", *sm.suffix, sm.ignoreCase)
	case sm.contains != nil:
		return fmt.Sprintf("contains:%v:ignoreCase(%v)", *sm.contains, sm.ignoreCase)
	case sm.regex != nil:
		return fmt.Sprintf("regex:%v", sm.regex.String())
	default:
		return "empty string matcher"
	}
}

// StringMatcherFromProto builds a StringMatcher from an
// envoy.type.matcher.v3.StringMatcher proto.
func StringMatcherFromProto(msg *v3matcherpb.StringMatcher) (*StringMatcher, error) {
	ignoreCase := msg.GetIgnoreCase()
	switch msg.GetMatchPattern().(type) {
	case *v3matcherpb.StringMatcher_Exact:
		e := msg.GetExact()
		return &StringMatcher{exact: &e, ignoreCase: ignoreCase}, nil
	case *v3matcherpb.StringMatcher_Prefix:
		p := msg.GetPrefix()
		if p == "" {
			return nil, fmt.Errorf("empty prefix is not allowed in StringMatcher")
		}
		return &StringMatcher{prefix: &p, ignoreCase: ignoreCase}, nil
	case *v3matcherpb.StringMatcher_Suffix:
		s := msg.GetSuffix()
		if s == "" {
			return nil, fmt.Errorf("empty suffix is not allowed in StringMatcher")
		}
		return &StringMatcher{suffix: &s, ignoreCase: ignoreCase}, nil
	case *v3matcherpb.StringMatcher_Contains:
		c := msg.GetContains()
		if c == "" {
			return nil, fmt.Errorf("empty contains is not allowed in StringMatcher")
		}
		return &StringMatcher{contains: &c, ignoreCase: ignoreCase}, nil
	case *v3matcherpb.StringMatcher_SafeRegex:
		pattern := msg.GetSafeRegex().GetRegex()
		if ignoreCase {
			pattern = "(?i)" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("malformed safe regex pattern: %v", err)
		}
		return &StringMatcher{regex: re}, nil
	default:
		return nil, fmt.Errorf("unrecognized string matcher pattern %T", msg.GetMatchPattern())
	}
}

// Match reports whether v satisfies sm. Kept for completeness of the
// matcher construction path; the RDS parser itself never calls it since
// execution against live values is out of scope.
func (sm *StringMatcher) Match(v string) bool {
	if sm.ignoreCase {
		v = strings.ToLower(v)
	}
	switch {
	case sm.exact != nil:
		e := *sm.exact
		if sm.ignoreCase {
			e = strings.ToLower(e)
		}
		return v == e
	case sm.prefix != nil:
		p := *sm.prefix
		if sm.ignoreCase {
			p = strings.ToLower(p)
		}
		return strings.HasPrefix(v, p)
	case sm.suffix != nil:
		s := *sm.suffix
		if sm.ignoreCase {
			s = strings.ToLower(s)
		}
		return strings.HasSuffix(v, s)
	case sm.contains != nil:
		c := *sm.contains
		if sm.ignoreCase {
			c = strings.ToLower(c)
		}
		return strings.Contains(v, c)
	case sm.regex != nil:
		return sm.regex.MatchString(v)
	}
	return false
}
