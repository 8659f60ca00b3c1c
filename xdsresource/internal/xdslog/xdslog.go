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

// Package xdslog provides the minimal logging facility used while parsing
// RDS resources. It exists so the parser can name what it drops without
// pulling in a full structured-logging dependency the rest of this core
// doesn't need.
package xdslog

import (
	"fmt"
	"log"
	"os"
)

// Logger is the logging surface the resource parser depends on. Only the
// severities the parser actually emits are exposed.
type Logger interface {
	Infof(format string, args ...any)
	Warningf(format string, args ...any)
	Errorf(format string, args ...any)
}

// PrefixLogger decorates every line with a fixed prefix, e.g. the resource
// name being parsed, so diagnostics from concurrent parses are attributable.
type PrefixLogger struct {
	prefix string
	logger *log.Logger
}

// NewPrefixLogger returns a Logger writing to stderr with the given prefix.
// A nil *PrefixLogger is valid and every method on it is a no-op, so callers
// may pass one through unconditionally without a nil check at every call
// site.
func NewPrefixLogger(prefix string) *PrefixLogger {
	if prefix != "" {
		prefix = "[" + prefix + "] "
	}
	return &PrefixLogger{
		prefix: prefix,
		logger: log.New(os.Stderr, "", log.LstdFlags),
	}
}

func (pl *PrefixLogger) log(severity, format string, args ...any) {
	if pl == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	pl.logger.Printf("%s%s: %s", pl.prefix, severity, msg)
}

// Infof logs at info severity.
func (pl *PrefixLogger) Infof(format string, args ...any) { pl.log("INFO", format, args...) }

// Warningf logs at warning severity. The parser uses this for every Skip
// decision.
func (pl *PrefixLogger) Warningf(format string, args ...any) { pl.log("WARNING", format, args...) }

// Errorf logs at error severity.
func (pl *PrefixLogger) Errorf(format string, args ...any) { pl.log("ERROR", format, args...) }
