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

package config

import (
	"errors"
	"time"

	"golang.org/x/text/language"

	"dirpx.dev/eid/apis"
	"dirpx.dev/eid/strategy"
)

var (
	// ErrNilFormatter is returned when a configurator sets a nil formatter.
	ErrNilFormatter = errors.New("eid(config): nil formatter")
	// ErrNilGenerator is returned when a configurator sets a nil unique id generator.
	ErrNilGenerator = errors.New("eid(config): nil unique id generator")
)

// DefaultConfiguration is the baseline every configuration system starts from:
// the default formatter and generator, no validator, platform locale and zone.
func DefaultConfiguration() apis.Configuration {
	return apis.Configuration{
		Formatter: strategy.DefaultFormatter(),
		Generator: strategy.DefaultGenerator(),
	}
}

// Default returns the built-in configurator. It runs before any discovered
// configurator and installs the default formatter and generator.
func Default() apis.Configurator {
	return apis.ConfiguratorFunc(func(b apis.ConfigurationBuilder) error {
		b.Formatter(strategy.DefaultFormatter()).
			UniqueIDGenerator(strategy.DefaultGenerator())
		return nil
	})
}

// Builder is a copy-on-write apis.ConfigurationBuilder. It works on its own
// copy of a snapshot; nothing is published until the owner calls Build.
type Builder struct {
	cfg apis.Configuration
	err error
}

// Ensure Builder implements apis.ConfigurationBuilder.
var _ apis.ConfigurationBuilder = (*Builder)(nil)

// NewBuilder starts a builder from a copy of base.
func NewBuilder(base apis.Configuration) *Builder {
	return &Builder{cfg: base}
}

// Formatter sets the formatter. A nil formatter is recorded as an error.
func (b *Builder) Formatter(f apis.Formatter) apis.ConfigurationBuilder {
	if f == nil {
		b.fail(ErrNilFormatter)
		return b
	}
	b.cfg.Formatter = f
	return b
}

// UniqueIDGenerator sets the generator. A nil generator is recorded as an error.
func (b *Builder) UniqueIDGenerator(g apis.UniqueIDGenerator) apis.ConfigurationBuilder {
	if g == nil {
		b.fail(ErrNilGenerator)
		return b
	}
	b.cfg.Generator = g
	return b
}

// Validator sets the validator. nil disables validation.
func (b *Builder) Validator(v apis.Validator) apis.ConfigurationBuilder {
	b.cfg.Validator = v
	return b
}

// Locale sets the locale. language.Und selects the platform default.
func (b *Builder) Locale(tag language.Tag) apis.ConfigurationBuilder {
	b.cfg.Locale = tag
	return b
}

// TimeZone sets the time zone. nil selects time.Local.
func (b *Builder) TimeZone(loc *time.Location) apis.ConfigurationBuilder {
	b.cfg.TimeZone = loc
	return b
}

// FutureConfiguration returns the settings as built so far.
func (b *Builder) FutureConfiguration() apis.Configuration {
	return b.cfg
}

// Build returns the built snapshot, or the first error recorded by a setter.
func (b *Builder) Build() (apis.Configuration, error) {
	if b.err != nil {
		return apis.Configuration{}, b.err
	}
	return b.cfg, nil
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Apply runs configurators in order on a copy of base and returns the result.
// The first failing configurator aborts the whole step; base is never changed.
func Apply(base apis.Configuration, configurators ...apis.Configurator) (apis.Configuration, error) {
	b := NewBuilder(base)
	for _, c := range configurators {
		if c == nil {
			continue
		}
		if err := c.Configure(b); err != nil {
			return apis.Configuration{}, err
		}
		if b.err != nil {
			return apis.Configuration{}, b.err
		}
	}
	return b.Build()
}

// NewConfiguration builds a snapshot from the defaults and opts.
func NewConfiguration(opts ...Option) (apis.Configuration, error) {
	return Apply(DefaultConfiguration(), Configurator(opts...))
}

// Option is a functional option that mutates a configuration under construction.
type Option func(apis.ConfigurationBuilder)

// Configurator bundles opts into a single apis.Configurator.
func Configurator(opts ...Option) apis.Configurator {
	return apis.ConfiguratorFunc(func(b apis.ConfigurationBuilder) error {
		for _, opt := range opts {
			opt(b)
		}
		return nil
	})
}

// WithFormatter sets the formatter.
func WithFormatter(f apis.Formatter) Option {
	return func(b apis.ConfigurationBuilder) { b.Formatter(f) }
}

// WithUniqueIDGenerator sets the unique id generator.
func WithUniqueIDGenerator(g apis.UniqueIDGenerator) Option {
	return func(b apis.ConfigurationBuilder) { b.UniqueIDGenerator(g) }
}

// WithValidator sets the validator. nil disables validation.
func WithValidator(v apis.Validator) Option {
	return func(b apis.ConfigurationBuilder) { b.Validator(v) }
}

// WithLocale sets the locale used by message templates.
func WithLocale(tag language.Tag) Option {
	return func(b apis.ConfigurationBuilder) { b.Locale(tag) }
}

// WithTimeZone sets the time zone forced onto date and time arguments.
func WithTimeZone(loc *time.Location) Option {
	return func(b apis.ConfigurationBuilder) { b.TimeZone(loc) }
}
