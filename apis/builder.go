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

// Binding bundles the configuration system with the factories the library
// needs. It is the single pluggable extension point; a process normally
// resolves one Binding and reuses it everywhere.
type Binding interface {
	// ConfigurationSystem returns the configuration system of this binding.
	ConfigurationSystem() ConfigurationSystem
	// Messages returns the factory that builds lazy Eid message texts.
	Messages() MessageFactory
	// Lazies returns the factory that builds memoized values.
	Lazies() LazyFactory
}

// MessageFactory builds the lazy text of an Eid paired with a message template.
type MessageFactory interface {
	// CreateMessage pairs id with template and args. Nothing is formatted yet.
	CreateMessage(id Identifier, template string, args []any) Text
}

// Text is a lazily evaluated, memoized display text.
type Text interface {
	// Identifier returns the Eid this text belongs to.
	Identifier() Identifier
	// Get forces evaluation and returns the full text. On a template error the
	// returned text is still displayable and the error is reported alongside.
	Get() (string, error)
	// Message returns only the formatted message part.
	Message() (string, error)
	// Evaluated reports whether the text was already computed.
	Evaluated() bool
	// String returns the full text, ignoring any error.
	String() string
}

// Supplier yields a string value, possibly computing it on first use.
type Supplier interface {
	Get() (string, error)
}

// LazyFactory builds memoized suppliers. The wrapped function runs at most once.
type LazyFactory interface {
	Lazy(fn func() (string, error)) Supplier
}
