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
	"strconv"
	"strings"

	"dirpx.dev/eid/apis"
)

const (
	// DefaultLayout renders an Eid without a reference: "[id]<unique>".
	DefaultLayout = "[%s]<%s>"
	// DefaultRefLayout renders an Eid with a reference: "[id|ref]<unique>".
	DefaultRefLayout = "[%s|%s]<%s>"
	// DefaultMessageLayout appends a message to a rendered Eid: "eid => message".
	DefaultMessageLayout = "%s => %s"
)

// ErrInvalidLayout is returned when a layout does not have the expected
// number of %s slots.
var ErrInvalidLayout = errors.New("eid(strategy): invalid layout")

// FormatterOption customizes a formatter built by NewFormatter.
type FormatterOption func(*formatter)

// WithLayout sets the layout used for Eids without a reference. It takes id and unique.
func WithLayout(layout string) FormatterOption {
	return func(f *formatter) { f.plain = layout }
}

// WithRefLayout sets the layout used for Eids with a reference. It takes id, ref and unique.
func WithRefLayout(layout string) FormatterOption {
	return func(f *formatter) { f.ref = layout }
}

// WithMessageLayout sets the layout that joins a rendered Eid and a message.
func WithMessageLayout(layout string) FormatterOption {
	return func(f *formatter) { f.message = layout }
}

// NewFormatter builds a layout based apis.Formatter. Every layout is checked
// to place each of its arguments exactly once.
func NewFormatter(opts ...FormatterOption) (apis.Formatter, error) {
	f := &formatter{
		plain:   DefaultLayout,
		ref:     DefaultRefLayout,
		message: DefaultMessageLayout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if err := validateLayout(f.plain, 2); err != nil {
		return nil, err
	}
	if err := validateLayout(f.ref, 3); err != nil {
		return nil, err
	}
	if err := validateLayout(f.message, 2); err != nil {
		return nil, err
	}
	return f, nil
}

// DefaultFormatter returns the formatter with the default layouts.
func DefaultFormatter() apis.Formatter {
	return defaultFormatter
}

var defaultFormatter = &formatter{
	plain:   DefaultLayout,
	ref:     DefaultRefLayout,
	message: DefaultMessageLayout,
}

// formatter renders Eids with fmt layouts. It holds no mutable state.
type formatter struct {
	plain   string
	ref     string
	message string
}

// Ensure formatter implements apis.Formatter.
var _ apis.Formatter = (*formatter)(nil)

// Format renders id with the plain or the ref layout.
func (f *formatter) Format(id apis.Identifier) string {
	if ref := id.Ref(); ref != "" {
		return fmt.Sprintf(f.ref, id.ID(), ref, id.Unique())
	}
	return fmt.Sprintf(f.plain, id.ID(), id.Unique())
}

// FormatMessage renders id and appends message with the message layout.
func (f *formatter) FormatMessage(id apis.Identifier, message string) string {
	return fmt.Sprintf(f.message, f.Format(id), message)
}

// String describes the layouts, mostly for diagnostics.
func (f *formatter) String() string {
	return "layouts(" + strconv.Quote(f.plain) + ", " + strconv.Quote(f.ref) + ", " + strconv.Quote(f.message) + ")"
}

// validateLayout renders layout with n distinct markers and requires each of
// them in the output, and no formatting complaints from fmt.
func validateLayout(layout string, n int) error {
	if layout == "" {
		return fmt.Errorf("%w: empty layout", ErrInvalidLayout)
	}
	args := make([]any, n)
	for i := range args {
		args[i] = strconv.Itoa(i) + "-layout-check"
	}
	out := fmt.Sprintf(layout, args...)
	if strings.Contains(out, "%!") {
		return fmt.Errorf("%w: %q does not take exactly %d arguments", ErrInvalidLayout, layout, n)
	}
	for _, a := range args {
		if !strings.Contains(out, a.(string)) {
			return fmt.Errorf("%w: %q does not take exactly %d arguments", ErrInvalidLayout, layout, n)
		}
	}
	return nil
}
