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

import "fmt"

// ResourceError wraps the first unrecoverable error encountered while
// parsing a RouteConfiguration. The whole update is rejected atomically;
// a ResourceError never carries a partial RouteConfigUpdate.
type ResourceError struct {
	// Detail is the wrapped failure, already annotated with the name of
	// whichever entity (virtual host, route, weight, filter, plugin)
	// surfaced it.
	Detail error
}

func (e *ResourceError) Error() string {
	return e.Detail.Error()
}

func (e *ResourceError) Unwrap() error {
	return e.Detail
}

func resourceErrorf(format string, args ...any) *ResourceError {
	return &ResourceError{Detail: fmt.Errorf(format, args...)}
}

func wrapResourceError(prefix string, err error) *ResourceError {
	return &ResourceError{Detail: fmt.Errorf("%s: %w", prefix, err)}
}
