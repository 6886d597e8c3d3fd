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

package config_test

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/text/language"

	"dirpx.dev/eid/apis"
	"dirpx.dev/eid/config"
	"dirpx.dev/eid/strategy"
)

func TestDefaultConfigurationValues(t *testing.T) {
	got := config.DefaultConfiguration()

	if got.Formatter != strategy.DefaultFormatter() {
		t.Fatalf("Formatter = %v, want default formatter", got.Formatter)
	}
	if got.Generator == nil {
		t.Fatal("Generator = nil, want default generator")
	}
	if got.Validator != nil {
		t.Fatalf("Validator = %v, want nil", got.Validator)
	}
	if got.Locale != language.Und {
		t.Fatalf("Locale = %v, want und", got.Locale)
	}
	if got.TimeZone != nil {
		t.Fatalf("TimeZone = %v, want nil", got.TimeZone)
	}
}

func TestDefaultConfigurator_FromZero(t *testing.T) {
	got, err := config.Apply(apis.Configuration{}, config.Default())
	if err != nil {
		t.Fatalf("Apply(Default) error = %v", err)
	}
	if got.Formatter == nil || got.Generator == nil {
		t.Fatalf("Apply(Default) = %+v, want formatter and generator set", got)
	}
}

func TestNewConfiguration_NoOptions_EqualsDefault(t *testing.T) {
	got, err := config.NewConfiguration()
	if err != nil {
		t.Fatalf("NewConfiguration() error = %v", err)
	}
	if got.Formatter != strategy.DefaultFormatter() || got.Validator != nil || got.Locale != language.Und {
		t.Fatalf("NewConfiguration() = %+v, want defaults", got)
	}
}

func TestOptions(t *testing.T) {
	gen := apis.UniqueIDGeneratorFunc(func() string { return "fixed" })
	val := strategy.TimestampValidator()
	utc := time.UTC

	got, err := config.NewConfiguration(
		config.WithUniqueIDGenerator(gen),
		config.WithValidator(val),
		config.WithLocale(language.German),
		config.WithTimeZone(utc),
	)
	if err != nil {
		t.Fatalf("NewConfiguration() error = %v", err)
	}
	if got.Generator.GenerateUniqID() != "fixed" {
		t.Fatalf("Generator not installed")
	}
	if got.Validator != val {
		t.Fatalf("Validator = %v, want %v", got.Validator, val)
	}
	if got.Locale != language.German {
		t.Fatalf("Locale = %v, want de", got.Locale)
	}
	if got.TimeZone != utc {
		t.Fatalf("TimeZone = %v, want UTC", got.TimeZone)
	}
}

func TestApply_DoesNotMutateBase(t *testing.T) {
	base := config.DefaultConfiguration()
	_, err := config.Apply(base, config.Configurator(config.WithLocale(language.Polish)))
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if base.Locale != language.Und {
		t.Fatalf("base.Locale = %v, want und", base.Locale)
	}
}

func TestApply_NilStrategiesRejected(t *testing.T) {
	base := config.DefaultConfiguration()

	if _, err := config.Apply(base, config.Configurator(config.WithFormatter(nil))); !errors.Is(err, config.ErrNilFormatter) {
		t.Fatalf("nil formatter: want ErrNilFormatter, got %v", err)
	}
	if _, err := config.Apply(base, config.Configurator(config.WithUniqueIDGenerator(nil))); !errors.Is(err, config.ErrNilGenerator) {
		t.Fatalf("nil generator: want ErrNilGenerator, got %v", err)
	}
	// nil validator disables validation and is fine.
	if _, err := config.Apply(base, config.Configurator(config.WithValidator(nil))); err != nil {
		t.Fatalf("nil validator: unexpected error %v", err)
	}
}

func TestApply_ErrorAbortsChain(t *testing.T) {
	boom := errors.New("boom")
	ran := false
	_, err := config.Apply(config.DefaultConfiguration(),
		apis.ConfiguratorFunc(func(apis.ConfigurationBuilder) error { return boom }),
		apis.ConfiguratorFunc(func(apis.ConfigurationBuilder) error { ran = true; return nil }),
	)
	if !errors.Is(err, boom) {
		t.Fatalf("Apply() error = %v, want boom", err)
	}
	if ran {
		t.Fatal("configurator after a failure ran")
	}
}

func TestFutureConfiguration_SeesEarlierChanges(t *testing.T) {
	var seen language.Tag
	_, err := config.Apply(config.DefaultConfiguration(),
		config.Configurator(config.WithLocale(language.French)),
		apis.ConfiguratorFunc(func(b apis.ConfigurationBuilder) error {
			seen = b.FutureConfiguration().Locale
			return nil
		}),
	)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if seen != language.French {
		t.Fatalf("FutureConfiguration().Locale = %v, want fr", seen)
	}
}

func TestSnapshotAsConfigurator_Restores(t *testing.T) {
	prev, err := config.NewConfiguration(config.WithLocale(language.German), config.WithTimeZone(time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	changed, err := config.Apply(prev, config.Configurator(
		config.WithLocale(language.Polish),
		config.WithTimeZone(nil),
		config.WithValidator(strategy.TimestampValidator()),
	))
	if err != nil {
		t.Fatal(err)
	}
	restored, err := config.Apply(changed, prev)
	if err != nil {
		t.Fatal(err)
	}
	if restored != prev {
		t.Fatalf("restored = %+v, want %+v", restored, prev)
	}
}
