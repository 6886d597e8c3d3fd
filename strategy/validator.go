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

package strategy

import (
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"dirpx.dev/eid/apis"
)

// TimestampPattern matches the conventional "yyyyMMdd:HHmmss" identifiers.
const TimestampPattern = `^\d{8}:\d{6}$`

// ErrInvalidRule is returned when a validator rule cannot be compiled.
var ErrInvalidRule = errors.New("eid(strategy): invalid validator rule")

// PatternValidator returns a validator accepting identifiers that match pattern.
func PatternValidator(pattern string) (apis.Validator, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidRule)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRule, err)
	}
	return patternValidator{re: re}, nil
}

// MustPatternValidator is like PatternValidator but panics on a bad pattern.
func MustPatternValidator(pattern string) apis.Validator {
	v, err := PatternValidator(pattern)
	if err != nil {
		panic(err)
	}
	return v
}

// TimestampValidator accepts only identifiers shaped like "20181215:000127".
func TimestampValidator() apis.Validator {
	return timestampValidator
}

var timestampValidator = patternValidator{re: regexp.MustCompile(TimestampPattern)}

type patternValidator struct {
	re *regexp.Regexp
}

// IsValid matches id against the pattern.
func (v patternValidator) IsValid(id string) bool {
	return v.re.MatchString(id)
}

// String describes the rule.
func (v patternValidator) String() string {
	return "pattern " + v.re.String()
}

var (
	tagValidatorOnce sync.Once
	tagValidate      *validator.Validate
)

// validate returns the shared go-playground validator instance.
func validate() *validator.Validate {
	tagValidatorOnce.Do(func() {
		tagValidate = validator.New()
	})
	return tagValidate
}

// TagValidator returns a validator applying go-playground/validator tag rules,
// e.g. "required,len=15,startsnotwith=0", to the identifier.
func TagValidator(tag string) (apis.Validator, error) {
	if tag == "" {
		return nil, fmt.Errorf("%w: empty tag", ErrInvalidRule)
	}
	if err := checkTag(tag); err != nil {
		return nil, err
	}
	return tagValidator{tag: tag}, nil
}

// checkTag runs tag once so that unknown rules fail here instead of on the
// first Eid construction. The library panics on undefined rules.
func checkTag(tag string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrInvalidRule, r)
		}
	}()
	_ = validate().Var("", tag)
	return nil
}

type tagValidator struct {
	tag string
}

// IsValid reports whether id satisfies the tag rules.
func (v tagValidator) IsValid(id string) bool {
	return validate().Var(id, v.tag) == nil
}

// String describes the rule.
func (v tagValidator) String() string {
	return "tag " + v.tag
}
