/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package resolver chooses the Binding a process uses out of the registered
// ones.
//
// The bundled binding of package builder is the fallback: any other binding
// wins over it. With several non-bundled bindings the last one registered
// wins. Only a single override is a supported setup; the order rule merely
// keeps the choice deterministic.
package resolver

import (
	"errors"
	"log/slog"

	"dirpx.dev/eid/apis"
	"dirpx.dev/eid/builder"
	uref "dirpx.dev/eid/utils/reflect"
)

// ErrNoBinding is returned when no binding is registered at all.
var ErrNoBinding = errors.New("eid(resolver): no binding registered")

// corePkgPath is the package that declares the bundled binding.
var corePkgPath = uref.PkgPathOf((*builder.Binding)(nil))

// Option customizes the resolver returned by New.
type Option func(*chooser)

// WithLogger logs the chosen binding at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *chooser) {
		if l != nil {
			c.log = l
		}
	}
}

// New constructs an apis.Resolver applying the tie-break rule.
func New(opts ...Option) apis.Resolver {
	c := &chooser{log: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// chooser is the stateless tie-break resolver.
type chooser struct {
	log *slog.Logger
}

// Ensure chooser implements apis.Resolver.
var _ apis.Resolver = (*chooser)(nil)

// Resolve picks a binding out of candidates.
func (c *chooser) Resolve(candidates []apis.Binding) (apis.Binding, error) {
	b, err := Choose(candidates)
	if err != nil {
		c.log.Error("eid: binding resolution failed", slog.Any("error", err))
		return nil, err
	}
	c.log.Debug("eid: binding resolved",
		slog.String("binding", uref.TypeName(b)),
		slog.Bool("core", IsCore(b)),
		slog.Int("candidates", len(candidates)))
	return b, nil
}

// Choose applies the tie-break rule to candidates in order. Nil entries are
// skipped.
func Choose(candidates []apis.Binding) (apis.Binding, error) {
	var chosen apis.Binding
	for _, b := range candidates {
		if b == nil {
			continue
		}
		if chosen == nil || !IsCore(b) {
			chosen = b
		}
	}
	if chosen == nil {
		return nil, ErrNoBinding
	}
	return chosen, nil
}

// IsCore reports whether b is the binding bundled with this module.
func IsCore(b apis.Binding) bool {
	return b != nil && uref.PkgPathOf(b) == corePkgPath
}
