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

package eid

import (
	"sync"

	"dirpx.dev/eid/apis"
	"dirpx.dev/eid/builder"
	"dirpx.dev/eid/registry"
	"dirpx.dev/eid/resolver"
)

// init registers the bundled binding in the global registry.
func init() {
	if err := registry.Global().RegisterBinding(builder.CoreName, builder.New()); err != nil {
		panic(err)
	}
}

// resolved is the once-resolved process-wide binding.
var resolved = sync.OnceValues(func() (apis.Binding, error) {
	return resolver.New().Resolve(registry.Global().Bindings())
})

// DefaultBinding returns the process-wide binding, resolving it from
// registry.Global() on first call. Bindings registered after that are not
// considered. It panics with resolver.ErrNoBinding if the registry holds no
// binding at all.
func DefaultBinding() apis.Binding {
	b, err := resolved()
	if err != nil {
		panic(err)
	}
	return b
}

// Factory creates Eids bound to one Binding.
type Factory struct {
	b apis.Binding
}

// With returns a Factory over b. Eids it creates use only b and never the
// process-wide binding. It panics if b is nil.
func With(b apis.Binding) Factory {
	if b == nil {
		panic(resolver.ErrNoBinding)
	}
	return Factory{b: b}
}

// Binding returns the binding of f.
func (f Factory) Binding() apis.Binding {
	return f.b
}

// New creates an Eid with id and at most one ref. The id is checked by the
// configured validator, if any, before a unique token is drawn.
func (f Factory) New(id string, ref ...string) (*Eid, error) {
	return newEid(f.b, id, ref)
}

// MustNew is like New but panics on error.
func (f Factory) MustNew(id string, ref ...string) *Eid {
	e, err := f.New(id, ref...)
	if err != nil {
		panic(err)
	}
	return e
}

// New creates an Eid with the process-wide binding.
func New(id string, ref ...string) (*Eid, error) {
	return newEid(DefaultBinding(), id, ref)
}

// MustNew is like New but panics on error.
func MustNew(id string, ref ...string) *Eid {
	e, err := New(id, ref...)
	if err != nil {
		panic(err)
	}
	return e
}
