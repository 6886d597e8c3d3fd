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
	"bytes"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fxamacker/cbor/v2"

	"dirpx.dev/eid/apis"
	"dirpx.dev/eid/lazy"
	"dirpx.dev/eid/strategy"
)

var (
	// ErrEmptyID is returned when an Eid is created with an empty id.
	ErrEmptyID = errors.New("eid: empty id")
	// ErrTooManyRefs is returned when more than one ref is passed to New.
	ErrTooManyRefs = errors.New("eid: at most one ref is accepted")
	// ErrInvalidID is wrapped by InvalidIDError.
	ErrInvalidID = errors.New("eid: id rejected by validator")
)

// InvalidIDCode is the library code reported when a validator rejects an id.
const InvalidIDCode = "20181029:202004"

// InvalidIDError reports an id rejected by the configured validator.
type InvalidIDError struct {
	// ID is the rejected id.
	ID string
	// Code is always InvalidIDCode.
	Code string
	// Validator is the validator that rejected ID.
	Validator apis.Validator
}

// Error implements error.
func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("[%s] eid: invalid id %q, rejected by %v", e.Code, e.ID, e.Validator)
}

// Unwrap returns ErrInvalidID.
func (e *InvalidIDError) Unwrap() error {
	return ErrInvalidID
}

// Eid is an exception identifier: a developer-assigned id, an optional ref
// and a unique token drawn once per instance.
//
// Two Eids with the same id and ref are equal as codes, but each carries its
// own unique token. Create Eids with New or a Factory; the zero Eid has an
// empty id and no token. Marshal through a pointer, the codec methods have
// pointer receivers.
type Eid struct {
	id     string
	ref    string
	unique apis.Supplier
	b      apis.Binding
}

// Ensure Eid implements apis.Identifier.
var _ apis.Identifier = (*Eid)(nil)

// newEid validates id against the current configuration of b and captures
// its generator. The token is drawn on first use.
func newEid(b apis.Binding, id string, ref []string) (*Eid, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	if len(ref) > 1 {
		return nil, ErrTooManyRefs
	}
	cfg, err := b.ConfigurationSystem().Configuration()
	if err != nil {
		return nil, err
	}
	if v := cfg.Validator; v != nil && !v.IsValid(id) {
		return nil, &InvalidIDError{ID: id, Code: InvalidIDCode, Validator: v}
	}

	e := &Eid{id: id, b: b}
	if len(ref) == 1 {
		e.ref = ref[0]
	}
	gen := cfg.Generator
	e.unique = b.Lazies().Lazy(func() (string, error) {
		return gen.GenerateUniqID(), nil
	})
	return e, nil
}

// ID returns the developer-assigned id.
func (e *Eid) ID() string {
	return e.id
}

// Ref returns the reference code, or "" if none was given.
func (e *Eid) Ref() string {
	return e.ref
}

// Unique returns the unique token of this instance, or "" for the zero Eid.
func (e *Eid) Unique() string {
	if e.unique == nil {
		return ""
	}
	u, _ := e.unique.Get()
	return u
}

// String renders the Eid with the current formatter. When the configuration
// cannot be read, the error is logged to the binding's logger and the Eid
// is rendered with the default formatter.
func (e *Eid) String() string {
	b := e.binding()
	cfg, err := b.ConfigurationSystem().Configuration()
	if err != nil {
		loggerOf(b).Warn("eid: configuration unavailable, using default formatter",
			slog.String("id", e.id), slog.Any("error", err))
		return strategy.DefaultFormatter().Format(e)
	}
	return cfg.Formatter.Format(e)
}

// loggerOf returns the logger of b if it has one, else slog.Default().
func loggerOf(b apis.Binding) *slog.Logger {
	if l, ok := b.(interface{ Logger() *slog.Logger }); ok {
		if log := l.Logger(); log != nil {
			return log
		}
	}
	return slog.Default()
}

// Message pairs the Eid with a message template and its arguments. The
// template uses positional placeholders such as {0}, {1,number} or
// {0,date,long}; it is formatted on first read, not here.
func (e *Eid) Message(template string, args ...any) *Message {
	return &Message{
		eid:  e,
		text: e.binding().Messages().CreateMessage(e, template, args),
	}
}

// Binding returns the binding that created e. Decoded Eids report the
// process-wide binding.
func (e *Eid) Binding() apis.Binding {
	return e.binding()
}

func (e *Eid) binding() apis.Binding {
	if e.b == nil {
		return DefaultBinding()
	}
	return e.b
}

// wire is the serialized form of an Eid.
type wire struct {
	ID     string `json:"id" cbor:"1,keyasint"`
	Ref    string `json:"ref,omitempty" cbor:"2,keyasint,omitempty"`
	Unique string `json:"unique" cbor:"3,keyasint"`
}

func (e *Eid) wire() wire {
	return wire{ID: e.id, Ref: e.ref, Unique: e.Unique()}
}

func (e *Eid) thaw(w wire) {
	*e = Eid{id: w.ID, ref: w.Ref, unique: lazy.Evaluated(w.Unique)}
}

// MarshalJSON encodes id, ref and the unique token.
func (e *Eid) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.wire())
}

// UnmarshalJSON decodes an Eid. The decoded Eid uses the process-wide binding.
func (e *Eid) UnmarshalJSON(data []byte) error {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	e.thaw(w)
	return nil
}

// MarshalCBOR encodes id, ref and the unique token.
func (e *Eid) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(e.wire())
}

// UnmarshalCBOR decodes an Eid.
func (e *Eid) UnmarshalCBOR(data []byte) error {
	var w wire
	if err := cbor.Unmarshal(data, &w); err != nil {
		return err
	}
	e.thaw(w)
	return nil
}

// GobEncode encodes id, ref and the unique token.
func (e *Eid) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(e.wire()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode decodes an Eid.
func (e *Eid) GobDecode(data []byte) error {
	var w wire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return err
	}
	e.thaw(w)
	return nil
}
