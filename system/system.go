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

package system

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"dirpx.dev/eid/apis"
	"dirpx.dev/eid/config"
)

// ErrNilConfigurator is returned when Configure is called with nil.
var ErrNilConfigurator = errors.New("eid(system): nil configurator")

// initKey is the singleflight key of the initial build.
const initKey = "init"

// Option customizes a System.
type Option func(*System)

// WithDiscovery sets the function that lists the configurators applied after
// the built-in default on first use. It is called once per initialization.
func WithDiscovery(fn func() []apis.Configurator) Option {
	return func(s *System) {
		if fn != nil {
			s.discover = fn
		}
	}
}

// WithLogger sets the logger used for initialization and reconfiguration events.
func WithLogger(l *slog.Logger) Option {
	return func(s *System) {
		if l != nil {
			s.log = l
		}
	}
}

// New returns a System that has not initialized yet.
func New(opts ...Option) *System {
	s := &System{
		discover: func() []apis.Configurator { return nil },
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// System is the default apis.ConfigurationSystem.
type System struct {
	// mu serializes writers so we never publish partially-built snapshots.
	mu sync.Mutex
	// cur is the published snapshot; nil until the first successful build.
	cur atomic.Pointer[apis.Configuration]
	// sf collapses concurrent first reads into one build.
	sf singleflight.Group
	// discover lists configurators applied after the default one.
	discover func() []apis.Configurator
	// log receives lifecycle events.
	log *slog.Logger
}

// Ensure System implements apis.ConfigurationSystem.
var _ apis.ConfigurationSystem = (*System)(nil)

// Configuration returns the current snapshot, building it on first use.
// A failed build is reported to every waiting caller and nothing is
// published, so the next call tries again.
func (s *System) Configuration() (apis.Configuration, error) {
	// Fast path: already initialized.
	if c := s.cur.Load(); c != nil {
		return *c, nil
	}

	v, err, _ := s.sf.Do(initKey, func() (any, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		// Re-check under lock in case a writer initialized meanwhile.
		if c := s.cur.Load(); c != nil {
			return *c, nil
		}
		c, err := s.initLocked()
		if err != nil {
			return nil, err
		}
		return *c, nil
	})
	if err != nil {
		return apis.Configuration{}, err
	}
	return v.(apis.Configuration), nil
}

// Configure applies c to a copy of the current snapshot and publishes the
// result. It returns the snapshot that was current before the call. On error
// the current snapshot stays in place.
func (s *System) Configure(c apis.Configurator) (apis.Configuration, error) {
	if c == nil {
		return apis.Configuration{}, ErrNilConfigurator
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Load the old state, initializing it if nobody read it yet.
	old := s.cur.Load()
	if old == nil {
		var err error
		if old, err = s.initLocked(); err != nil {
			return apis.Configuration{}, err
		}
	}

	next, err := config.Apply(*old, c)
	if err != nil {
		s.log.Warn("eid: configuration rejected", slog.Any("error", err))
		return apis.Configuration{}, err
	}

	// Store the new state atomically.
	s.cur.Store(&next)
	s.log.Debug("eid: configuration replaced", attrs(next)...)
	return *old, nil
}

// Reset drops the published snapshot. The next read initializes again and
// rediscovers configurators.
func (s *System) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur.Store(nil)
}

// initLocked builds and publishes the initial snapshot. Callers hold s.mu.
func (s *System) initLocked() (*apis.Configuration, error) {
	discovered := s.discover()
	chain := make([]apis.Configurator, 0, len(discovered)+1)
	chain = append(chain, config.Default())
	chain = append(chain, discovered...)

	c, err := config.Apply(apis.Configuration{}, chain...)
	if err != nil {
		s.log.Error("eid: configuration initialization failed",
			slog.Int("configurators", len(discovered)),
			slog.Any("error", err))
		return nil, err
	}

	s.cur.Store(&c)
	s.log.Debug("eid: configuration initialized",
		append(attrs(c), slog.Int("configurators", len(discovered)))...)
	return &c, nil
}

// attrs describes a snapshot for logging.
func attrs(c apis.Configuration) []any {
	out := []any{
		slog.Any("formatter", c.Formatter),
		slog.Any("generator", c.Generator),
		slog.String("locale", c.Locale.String()),
	}
	if c.Validator != nil {
		out = append(out, slog.Any("validator", c.Validator))
	}
	if c.TimeZone != nil {
		out = append(out, slog.String("timezone", c.TimeZone.String()))
	}
	return out
}
