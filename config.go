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

package eid

import (
	"time"

	"golang.org/x/text/language"

	"dirpx.dev/eid/apis"
	"dirpx.dev/eid/config"
)

// Configuration returns the current configuration of the process-wide binding.
func Configuration() (apis.Configuration, error) {
	return DefaultBinding().ConfigurationSystem().Configuration()
}

// Configure applies c to the process-wide configuration. It returns the
// configuration it replaced; pass it to Restore to reinstate it.
func Configure(c apis.Configurator) (apis.Configuration, error) {
	return DefaultBinding().ConfigurationSystem().Configure(c)
}

// Restore reinstates a configuration returned by Configure or a Set function.
func Restore(prev apis.Configuration) error {
	_, err := Configure(prev)
	return err
}

// SetFormatter replaces the formatter.
func SetFormatter(f apis.Formatter) (apis.Configuration, error) {
	return Configure(config.Configurator(config.WithFormatter(f)))
}

// SetUniqueIDGenerator replaces the unique token generator.
func SetUniqueIDGenerator(g apis.UniqueIDGenerator) (apis.Configuration, error) {
	return Configure(config.Configurator(config.WithUniqueIDGenerator(g)))
}

// SetValidator replaces the id validator. nil disables validation.
func SetValidator(v apis.Validator) (apis.Configuration, error) {
	return Configure(config.Configurator(config.WithValidator(v)))
}

// SetLocale replaces the locale of message templates. language.Und selects
// the platform default.
func SetLocale(tag language.Tag) (apis.Configuration, error) {
	return Configure(config.Configurator(config.WithLocale(tag)))
}

// SetTimeZone replaces the time zone of message templates. nil selects
// time.Local.
func SetTimeZone(loc *time.Location) (apis.Configuration, error) {
	return Configure(config.Configurator(config.WithTimeZone(loc)))
}
