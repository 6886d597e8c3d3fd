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

// Package builder provides the Binding bundled with this module.
//
// A Binding owns its own configuration system, so independent Bindings never
// share configuration. The bundled Binding registers itself in the global
// registry under CoreName; resolution prefers any other registered Binding.
package builder

import (
	"log/slog"

	"dirpx.dev/eid/apis"
	"dirpx.dev/eid/lazy"
	"dirpx.dev/eid/registry"
	"dirpx.dev/eid/strategy"
	"dirpx.dev/eid/system"
	"dirpx.dev/eid/text"
)

// CoreName is the registry name of the bundled Binding.
const CoreName = "eid.core"

// Option customizes a Binding built by New.
type Option func(*options)

type options struct {
	reg      apis.Registry
	extra    []apis.Configurator
	discover bool
	log      *slog.Logger
}

// WithRegistry sets the registry whose configurators are discovered on first
// use. The default is registry.Global().
func WithRegistry(reg apis.Registry) Option {
	return func(o *options) { o.reg = reg }
}

// WithConfigurators appends configurators applied after the discovered ones.
func WithConfigurators(cs ...apis.Configurator) Option {
	return func(o *options) { o.extra = append(o.extra, cs...) }
}

// WithoutDiscovery ignores registered configurators. Only the built-in
// defaults and WithConfigurators apply.
func WithoutDiscovery() Option {
	return func(o *options) { o.discover = false }
}

// WithLogger sets the logger of the configuration system.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// New creates a Binding with its own configuration system.
func New(opts ...Option) *Binding {
	o := options{discover: true, log: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	discover := func() []apis.Configurator {
		var out []apis.Configurator
		if o.discover {
			reg := o.reg
			if reg == nil {
				reg = registry.Global()
			}
			out = append(out, reg.Configurators()...)
		}
		return append(out, o.extra...)
	}

	sys := system.New(system.WithDiscovery(discover), system.WithLogger(o.log))
	return &Binding{
		sys:      sys,
		messages: messageFactory{sys: sys},
		log:      o.log,
	}
}

// Binding is the bundled apis.Binding.
type Binding struct {
	// sys is the configuration system of this binding.
	sys *system.System
	// messages builds lazy message texts against sys.
	messages messageFactory
	// log receives configuration events of this binding.
	log *slog.Logger
}

// Ensure Binding implements apis.Binding.
var _ apis.Binding = (*Binding)(nil)

// ConfigurationSystem returns the configuration system of this binding.
func (b *Binding) ConfigurationSystem() apis.ConfigurationSystem {
	return b.sys
}

// Messages returns the message factory of this binding.
func (b *Binding) Messages() apis.MessageFactory {
	return b.messages
}

// Logger returns the logger of this binding.
func (b *Binding) Logger() *slog.Logger {
	return b.log
}

// Lazies returns the lazy value factory of this binding.
func (b *Binding) Lazies() apis.LazyFactory {
	return lazyFactory{}
}

// messageFactory captures the current configuration for every new text.
type messageFactory struct {
	sys apis.ConfigurationSystem
}

// CreateMessage pairs id with template and args under the current configuration.
func (f messageFactory) CreateMessage(id apis.Identifier, template string, args []any) apis.Text {
	cfg, err := f.sys.Configuration()
	if err != nil {
		return text.Failed(id, strategy.DefaultFormatter(), err)
	}
	return text.New(id, cfg, template, args)
}

// lazyFactory wraps functions in lazy.Value.
type lazyFactory struct{}

// Lazy returns a memoized supplier of fn.
func (lazyFactory) Lazy(fn func() (string, error)) apis.Supplier {
	return lazy.Of(fn)
}
