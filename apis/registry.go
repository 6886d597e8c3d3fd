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

package apis

// Registry holds the Bindings and Configurators a host application makes
// available to the library. Registration order is preserved and is the
// discovery order.
type Registry interface {
	// RegisterBinding adds a named Binding. Re-registering the same name with
	// the same value is a no-op; a different value is a conflict.
	RegisterBinding(name string, b Binding) error
	// RegisterConfigurator adds a named Configurator with the same rules.
	RegisterConfigurator(name string, c Configurator) error
	// Bindings returns registered bindings in registration order.
	Bindings() []Binding
	// Configurators returns registered configurators in registration order.
	Configurators() []Configurator
	// Entries returns a snapshot for diagnostics.
	Entries() []Entry
	// Count returns the number of registered entries.
	Count() int
	// Seal rejects any further registration.
	Seal()
	// Reset clears all entries and unseals the registry.
	Reset()
}

// EntryKind tells bindings and configurators apart in a Registry snapshot.
type EntryKind string

const (
	// KindBinding marks a Binding entry.
	KindBinding EntryKind = "binding"
	// KindConfigurator marks a Configurator entry.
	KindConfigurator EntryKind = "configurator"
)

// Entry is a single registration in a Registry snapshot.
type Entry struct {
	// Kind is the kind of the registered value.
	Kind EntryKind
	// Name is the registration name.
	Name string
	// Value is the registered Binding or Configurator.
	Value any
}
