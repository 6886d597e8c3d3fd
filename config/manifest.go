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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"dirpx.dev/eid/apis"
	"dirpx.dev/eid/strategy"
)

// ErrInvalidManifest is returned when a manifest fails to decode or validate.
var ErrInvalidManifest = errors.New("eid(config): invalid manifest")

// Generator names accepted by Manifest.Generator.
const (
	GeneratorDefault = "default"
	GeneratorBase36  = "base36"
	GeneratorUUID    = "uuid"
	GeneratorULID    = "ulid"
	GeneratorXID     = "xid"
)

// Manifest is the declarative form of a configurator, loaded from YAML.
// Empty fields leave the corresponding setting untouched.
type Manifest struct {
	Locale          string            `yaml:"locale"`
	TimeZone        string            `yaml:"timeZone"`
	Generator       string            `yaml:"generator" validate:"omitempty,oneof=default base36 uuid ulid xid"`
	GeneratorLength int               `yaml:"generatorLength" validate:"omitempty,min=1,max=64"`
	Validator       ManifestValidator `yaml:"validator"`
	Layouts         ManifestLayouts   `yaml:"layouts"`
}

// ManifestValidator selects the identifier validator. At most one rule may be set.
type ManifestValidator struct {
	Pattern string `yaml:"pattern" validate:"excluded_with=Tag"`
	Tag     string `yaml:"tag"`
}

// ManifestLayouts overrides formatter layouts.
type ManifestLayouts struct {
	Plain   string `yaml:"plain"`
	Ref     string `yaml:"ref"`
	Message string `yaml:"message"`
}

var (
	manifestValidateOnce sync.Once
	manifestValidate     *validator.Validate
)

// LoadManifest decodes and validates a YAML manifest. Unknown keys are rejected.
func LoadManifest(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// ReadManifestFile loads a manifest from path.
func ReadManifestFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadManifest(bytes.NewReader(data))
}

// Validate checks the structural rules of m.
func (m *Manifest) Validate() error {
	manifestValidateOnce.Do(func() {
		manifestValidate = validator.New(validator.WithRequiredStructEnabled())
	})
	if err := manifestValidate.Struct(m); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	return nil
}

// Configurator resolves every named strategy in m up front and returns a
// configurator that installs them. Resolution errors surface here, not later
// inside a configuration step.
func (m *Manifest) Configurator() (apis.Configurator, error) {
	var opts []Option

	if m.Locale != "" {
		tag, err := language.Parse(m.Locale)
		if err != nil {
			return nil, fmt.Errorf("%w: locale %q: %w", ErrInvalidManifest, m.Locale, err)
		}
		opts = append(opts, WithLocale(tag))
	}

	if m.TimeZone != "" {
		loc, err := time.LoadLocation(m.TimeZone)
		if err != nil {
			return nil, fmt.Errorf("%w: time zone %q: %w", ErrInvalidManifest, m.TimeZone, err)
		}
		opts = append(opts, WithTimeZone(loc))
	}

	if m.Generator != "" || m.GeneratorLength != 0 {
		opts = append(opts, WithUniqueIDGenerator(m.generator()))
	}

	switch {
	case m.Validator.Pattern != "":
		v, err := strategy.PatternValidator(m.Validator.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
		}
		opts = append(opts, WithValidator(v))
	case m.Validator.Tag != "":
		v, err := strategy.TagValidator(m.Validator.Tag)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
		}
		opts = append(opts, WithValidator(v))
	}

	if l := m.Layouts; l != (ManifestLayouts{}) {
		var fo []strategy.FormatterOption
		if l.Plain != "" {
			fo = append(fo, strategy.WithLayout(l.Plain))
		}
		if l.Ref != "" {
			fo = append(fo, strategy.WithRefLayout(l.Ref))
		}
		if l.Message != "" {
			fo = append(fo, strategy.WithMessageLayout(l.Message))
		}
		f, err := strategy.NewFormatter(fo...)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
		}
		opts = append(opts, WithFormatter(f))
	}

	return Configurator(opts...), nil
}

func (m *Manifest) generator() apis.UniqueIDGenerator {
	switch m.Generator {
	case GeneratorUUID:
		return strategy.UUIDGenerator()
	case GeneratorULID:
		return strategy.ULIDGenerator()
	case GeneratorXID:
		return strategy.XIDGenerator()
	case GeneratorBase36:
		return strategy.Base36Generator(m.length())
	}
	if m.GeneratorLength != 0 {
		return strategy.Base36Generator(m.length())
	}
	return strategy.DefaultGenerator()
}

func (m *Manifest) length() int {
	if m.GeneratorLength > 0 {
		return m.GeneratorLength
	}
	return strategy.DefaultUniqueLength
}
