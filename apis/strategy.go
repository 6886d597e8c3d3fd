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

// Identifier is the read-only view of an Eid that strategies work with.
type Identifier interface {
	// ID returns the developer-assigned exception identifier, e.g. "20181215:000127".
	ID() string
	// Ref returns the optional reference code. An empty string means no reference.
	Ref() string
	// Unique returns the per-instance random token.
	Unique() string
}

// Formatter renders an Identifier, optionally followed by a message, to display text.
// Implementations must be pure and safe for concurrent use.
type Formatter interface {
	// Format renders id alone, e.g. "[20150718:012917]<a1b2c3>".
	Format(id Identifier) string
	// FormatMessage renders id followed by an already formatted message,
	// e.g. "[20151117:192211]<a1b2c3> => Files: 18".
	FormatMessage(id Identifier, message string) string
}

// UniqueIDGenerator mints the short random token attached to every Eid.
// GenerateUniqID is called concurrently from unrelated goroutines and must not panic.
type UniqueIDGenerator interface {
	GenerateUniqID() string
}

// UniqueIDGeneratorFunc adapts a plain function to UniqueIDGenerator.
type UniqueIDGeneratorFunc func() string

// GenerateUniqID calls f.
func (f UniqueIDGeneratorFunc) GenerateUniqID() string {
	return f()
}

// Validator checks the shape of an identifier before an Eid is constructed.
type Validator interface {
	IsValid(id string) bool
}

// ValidatorFunc adapts a plain predicate to Validator.
type ValidatorFunc func(id string) bool

// IsValid calls f.
func (f ValidatorFunc) IsValid(id string) bool {
	return f(id)
}
