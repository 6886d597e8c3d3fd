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

package registry

import (
	"errors"
	"sync"

	"dirpx.dev/eid/apis"
	uref "dirpx.dev/eid/utils/reflect"
)

var (
	// ErrEmptyName is returned when an empty name is provided.
	ErrEmptyName = errors.New("eid(registry): empty name provided")
	// ErrNilBinding is returned when a nil binding is provided.
	ErrNilBinding = errors.New("eid(registry): nil binding provided")
	// ErrNilConfigurator is returned when a nil configurator is provided.
	ErrNilConfigurator = errors.New("eid(registry): nil configurator provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a name with a different value.
	ErrConflictingRegistration = errors.New("eid(registry): conflicting registration")
	// ErrSealed is returned when registering into a sealed registry.
	ErrSealed = errors.New("eid(registry): registry is sealed")
)

// global is the process-wide registry consulted by binding discovery.
var global = New()

// Global returns the process-wide registry. Packages that provide a binding
// or configurator register it here from an init function.
func Global() apis.Registry {
	return global
}

// New constructs an empty Registry.
func New() apis.Registry {
	return &registry{}
}

// key identifies a registration.
type key struct {
	kind apis.EntryKind
	name string
}

// registry is an ordered Registry backed by sync.Map for the
// idempotency fast path.
type registry struct {
	// mu guards entries, sealed and write-side consistency of m.
	mu sync.Mutex
	// m maps key to the registered value.
	m sync.Map // map[key]any
	// entries holds registrations in order.
	entries []apis.Entry
	// sealed rejects further registrations.
	sealed bool
}

// RegisterBinding adds b under name.
func (r *registry) RegisterBinding(name string, b apis.Binding) error {
	if b == nil {
		return ErrNilBinding
	}
	return r.register(apis.KindBinding, name, b)
}

// RegisterConfigurator adds c under name.
func (r *registry) RegisterConfigurator(name string, c apis.Configurator) error {
	if c == nil {
		return ErrNilConfigurator
	}
	return r.register(apis.KindConfigurator, name, c)
}

// register stores value under (kind,name).
// It is idempotent for the same (kind,name,value) triple.
func (r *registry) register(kind apis.EntryKind, name string, value any) error {
	// Validate inputs early.
	if name == "" {
		return ErrEmptyName
	}
	k := key{kind: kind, name: name}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(k); ok {
		return sameOrConflict(old, value)
	}

	// Write path: guard with a mutex to keep order consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(k); ok {
		return sameOrConflict(old, value)
	}
	if r.sealed {
		return ErrSealed
	}

	r.m.Store(k, value)
	r.entries = append(r.entries, apis.Entry{Kind: kind, Name: name, Value: value})
	return nil
}

func sameOrConflict(old, value any) error {
	if uref.Same(old, value) {
		return nil // idempotent re-registration
	}
	return ErrConflictingRegistration
}

// Bindings returns registered bindings in registration order.
func (r *registry) Bindings() []apis.Binding {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]apis.Binding, 0, len(r.entries))
	for _, e := range r.entries {
		if e.Kind == apis.KindBinding {
			out = append(out, e.Value.(apis.Binding))
		}
	}
	return out
}

// Configurators returns registered configurators in registration order.
func (r *registry) Configurators() []apis.Configurator {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]apis.Configurator, 0, len(r.entries))
	for _, e := range r.entries {
		if e.Kind == apis.KindConfigurator {
			out = append(out, e.Value.(apis.Configurator))
		}
	}
	return out
}

// Entries returns a snapshot for diagnostics/docs in registration order.
func (r *registry) Entries() []apis.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]apis.Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Seal rejects further registrations. Idempotent re-registrations of
// existing entries still succeed.
func (r *registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
}

// Reset clears all registered entries and unseals the registry.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.entries = nil
	r.sealed = false
}
