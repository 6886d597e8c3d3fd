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

package system_test

import (
	"errors"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"dirpx.dev/eid/apis"
	"dirpx.dev/eid/config"
	"dirpx.dev/eid/strategy"
	"dirpx.dev/eid/system"
)

func quiet() system.Option {
	return system.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestConfiguration_DefaultsWithoutDiscovery(t *testing.T) {
	s := system.New(quiet())

	c, err := s.Configuration()
	require.NoError(t, err)
	assert.Equal(t, strategy.DefaultFormatter(), c.Formatter)
	assert.NotNil(t, c.Generator)
	assert.Nil(t, c.Validator)
	assert.Equal(t, language.Und, c.Locale)
}

func TestConfiguration_DiscoveredAppliedInOrder(t *testing.T) {
	var order []string
	mark := func(name string, tag language.Tag) apis.Configurator {
		return apis.ConfiguratorFunc(func(b apis.ConfigurationBuilder) error {
			order = append(order, name)
			b.Locale(tag)
			return nil
		})
	}
	s := system.New(quiet(), system.WithDiscovery(func() []apis.Configurator {
		return []apis.Configurator{mark("first", language.German), mark("second", language.Polish)}
	}))

	c, err := s.Configuration()
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, language.Polish, c.Locale)
}

func TestConfiguration_ConcurrentInitRunsOnce(t *testing.T) {
	var discovered atomic.Int32
	s := system.New(quiet(), system.WithDiscovery(func() []apis.Configurator {
		discovered.Add(1)
		time.Sleep(10 * time.Millisecond)
		return []apis.Configurator{config.Configurator(config.WithLocale(language.French))}
	}))

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			c, err := s.Configuration()
			if err != nil || c.Locale != language.French {
				t.Errorf("Configuration() = (%v, %v)", c.Locale, err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), discovered.Load())
}

func TestConfiguration_FailedInitIsRetried(t *testing.T) {
	boom := errors.New("boom")
	var fail atomic.Bool
	fail.Store(true)

	s := system.New(quiet(), system.WithDiscovery(func() []apis.Configurator {
		return []apis.Configurator{apis.ConfiguratorFunc(func(apis.ConfigurationBuilder) error {
			if fail.Load() {
				return boom
			}
			return nil
		})}
	}))

	_, err := s.Configuration()
	require.ErrorIs(t, err, boom)

	fail.Store(false)
	c, err := s.Configuration()
	require.NoError(t, err)
	assert.NotNil(t, c.Formatter)
}

func TestConfigure_ReturnsPreviousAndRestores(t *testing.T) {
	s := system.New(quiet())
	before, err := s.Configuration()
	require.NoError(t, err)

	prev, err := s.Configure(config.Configurator(
		config.WithLocale(language.German),
		config.WithTimeZone(time.UTC),
		config.WithValidator(strategy.TimestampValidator()),
	))
	require.NoError(t, err)
	assert.Equal(t, before, prev)

	now, err := s.Configuration()
	require.NoError(t, err)
	assert.Equal(t, language.German, now.Locale)
	assert.Equal(t, time.UTC, now.TimeZone)

	_, err = s.Configure(prev)
	require.NoError(t, err)
	restored, err := s.Configuration()
	require.NoError(t, err)
	assert.Equal(t, before, restored)
}

func TestConfigure_BeforeFirstRead(t *testing.T) {
	s := system.New(quiet(), system.WithDiscovery(func() []apis.Configurator {
		return []apis.Configurator{config.Configurator(config.WithLocale(language.Spanish))}
	}))

	prev, err := s.Configure(config.Configurator(config.WithTimeZone(time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, language.Spanish, prev.Locale)

	c, err := s.Configuration()
	require.NoError(t, err)
	assert.Equal(t, language.Spanish, c.Locale)
	assert.Equal(t, time.UTC, c.TimeZone)
}

func TestConfigure_ErrorKeepsCurrent(t *testing.T) {
	s := system.New(quiet())
	before, err := s.Configuration()
	require.NoError(t, err)

	_, err = s.Configure(config.Configurator(config.WithLocale(language.German), config.WithFormatter(nil)))
	require.ErrorIs(t, err, config.ErrNilFormatter)

	after, err := s.Configuration()
	require.NoError(t, err)
	assert.Equal(t, before, after)

	_, err = s.Configure(nil)
	require.ErrorIs(t, err, system.ErrNilConfigurator)
}

func TestConfigure_FutureConfigurationVisible(t *testing.T) {
	s := system.New(quiet())
	_, err := s.Configure(config.Configurator(config.WithLocale(language.Polish)))
	require.NoError(t, err)

	var seen language.Tag
	_, err = s.Configure(apis.ConfiguratorFunc(func(b apis.ConfigurationBuilder) error {
		b.TimeZone(time.UTC)
		seen = b.FutureConfiguration().Locale
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, language.Polish, seen)
}

func TestConfigure_ConcurrentWritersAndReaders(t *testing.T) {
	s := system.New(quiet())
	tags := []language.Tag{language.German, language.French, language.Polish, language.Spanish}

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(2 * workers)
	for w := range workers {
		go func(id int) {
			defer wg.Done()
			for i := range 200 {
				tag := tags[(i+id)%len(tags)]
				if _, err := s.Configure(config.Configurator(config.WithLocale(tag))); err != nil {
					t.Errorf("Configure() error = %v", err)
					return
				}
			}
		}(w)
		go func() {
			defer wg.Done()
			for range 1000 {
				c, err := s.Configuration()
				if err != nil || c.Formatter == nil || c.Generator == nil {
					t.Errorf("Configuration() = (%+v, %v)", c, err)
					return
				}
			}
		}()
	}
	wg.Wait()

	c, err := s.Configuration()
	require.NoError(t, err)
	assert.Contains(t, tags, c.Locale)
}

func TestReset_Rediscovers(t *testing.T) {
	var n atomic.Int32
	s := system.New(quiet(), system.WithDiscovery(func() []apis.Configurator {
		n.Add(1)
		return nil
	}))
	_, _ = s.Configuration()
	s.Reset()
	_, _ = s.Configuration()
	assert.Equal(t, int32(2), n.Load())
}
