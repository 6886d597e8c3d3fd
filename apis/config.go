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

import (
	"time"

	"golang.org/x/text/language"
)

// Configuration is an immutable snapshot of the library settings.
// It is passed by value; a published snapshot is never mutated.
type Configuration struct {
	// Formatter renders Eids and messages. Never nil in a published snapshot.
	Formatter Formatter

	// Generator mints unique tokens. Never nil in a published snapshot.
	Generator UniqueIDGenerator

	// Validator is optional. When nil, identifiers are not validated.
	Validator Validator

	// Locale drives number and date rendering inside message templates.
	// language.Und means the platform default, resolved at formatting time.
	Locale language.Tag

	// TimeZone is forced onto date/time arguments of message templates.
	// nil means time.Local, resolved at formatting time.
	TimeZone *time.Location
}

// Configure reinstalls every field of c on b. This lets a previously captured
// snapshot be applied as a Configurator to restore it.
func (c Configuration) Configure(b ConfigurationBuilder) error {
	b.Formatter(c.Formatter).
		UniqueIDGenerator(c.Generator).
		Validator(c.Validator).
		Locale(c.Locale).
		TimeZone(c.TimeZone)
	return nil
}

// ConfigurationBuilder is the mutable view a Configurator works on.
// Setters replace the whole field and return the builder for chaining.
type ConfigurationBuilder interface {
	Formatter(f Formatter) ConfigurationBuilder
	UniqueIDGenerator(g UniqueIDGenerator) ConfigurationBuilder
	Validator(v Validator) ConfigurationBuilder
	Locale(tag language.Tag) ConfigurationBuilder
	TimeZone(loc *time.Location) ConfigurationBuilder

	// FutureConfiguration returns the settings as they stand right now,
	// including changes made earlier by the same or preceding configurators.
	FutureConfiguration() Configuration
}

// Configurator is a unit of configuration mutation.
// A returned error aborts the surrounding configuration step unchanged.
type Configurator interface {
	Configure(b ConfigurationBuilder) error
}

// ConfiguratorFunc adapts a plain function to Configurator.
type ConfiguratorFunc func(b ConfigurationBuilder) error

// Configure calls f.
func (f ConfiguratorFunc) Configure(b ConfigurationBuilder) error {
	return f(b)
}

// ConfigurationSystem owns the current Configuration.
type ConfigurationSystem interface {
	// Configuration returns the effective snapshot, initializing it on first use.
	Configuration() (Configuration, error)

	// Configure applies c to a copy of the current snapshot and publishes the copy.
	// It returns the snapshot that was current before the call; passing that
	// value back to Configure restores it.
	Configure(c Configurator) (Configuration, error)
}
