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

// Package text implements the lazy text representation of an Eid paired with
// a message template.
//
// Nothing is formatted when a Representation is created. The first Get (or
// String) renders the template with the locale and time zone of the captured
// configuration, passes the result through the configured formatter and
// memoizes it; the configuration, template and arguments are released at
// that point. Serializing a Representation forces that evaluation first, so
// the encoded form carries only the identifier and the final strings.
package text

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/fxamacker/cbor/v2"

	"dirpx.dev/eid/apis"
	"dirpx.dev/eid/lazy"
	"dirpx.dev/eid/utils/msgfmt"
)

// Representation is the memoized display text of an Eid and its message.
// It is safe for concurrent use.
type Representation struct {
	id      apis.Identifier
	message *lazy.Value[string]
	text    *lazy.Value[string]
}

// Ensure Representation implements apis.Text.
var _ apis.Text = (*Representation)(nil)

// New captures id, cfg, template and args for later evaluation. args is
// copied so later changes by the caller do not leak into the text.
func New(id apis.Identifier, cfg apis.Configuration, template string, args []any) *Representation {
	args = slices.Clone(args)
	message := lazy.Of(func() (string, error) {
		return msgfmt.Format(cfg.Locale, cfg.TimeZone, template, args...)
	})
	formatter := cfg.Formatter
	return &Representation{
		id:      id,
		message: message,
		text: lazy.Of(func() (string, error) {
			m, err := message.Get()
			if err != nil {
				return formatter.FormatMessage(id, "!(template error: "+err.Error()+")"), err
			}
			return formatter.FormatMessage(id, m), nil
		}),
	}
}

// Failed returns a Representation for a message that could not be set up,
// e.g. because no configuration is available. Evaluation reports err; the text
// still renders id with f.
func Failed(id apis.Identifier, f apis.Formatter, err error) *Representation {
	message := lazy.Of(func() (string, error) { return "", err })
	return &Representation{
		id:      id,
		message: message,
		text: lazy.Of(func() (string, error) {
			return f.FormatMessage(id, "!(configuration error: "+err.Error()+")"), err
		}),
	}
}

// Evaluated returns a Representation that already holds its strings.
func Evaluated(id apis.Identifier, message, text string) *Representation {
	return &Representation{
		id:      id,
		message: lazy.Evaluated(message),
		text:    lazy.Evaluated(text),
	}
}

// Identifier returns the Eid this text belongs to.
func (r *Representation) Identifier() apis.Identifier {
	return r.id
}

// Get returns the full text. On a template error the text still renders the
// identifier, followed by a description of the failure, and the error is
// returned with it.
func (r *Representation) Get() (string, error) {
	return r.text.Get()
}

// Message returns the formatted message without the identifier.
func (r *Representation) Message() (string, error) {
	return r.message.Get()
}

// Evaluated reports whether the text was computed already.
func (r *Representation) Evaluated() bool {
	return r.text.Evaluated()
}

// String returns the full text.
func (r *Representation) String() string {
	s, _ := r.Get()
	return s
}

// Wire is the serialized form of a Representation.
type Wire struct {
	ID      string `json:"id" cbor:"1,keyasint"`
	Ref     string `json:"ref,omitempty" cbor:"2,keyasint,omitempty"`
	Unique  string `json:"unique" cbor:"3,keyasint"`
	Message string `json:"message" cbor:"4,keyasint"`
	Text    string `json:"text" cbor:"5,keyasint"`
}

// Freeze forces evaluation and returns the serializable form.
func (r *Representation) Freeze() (Wire, error) {
	return FreezeText(r)
}

// FreezeText forces evaluation of any apis.Text and returns its serializable
// form. A text whose evaluation failed cannot be frozen.
func FreezeText(t apis.Text) (Wire, error) {
	text, err := t.Get()
	if err != nil {
		return Wire{}, fmt.Errorf("%w: %w", lazy.ErrUnevaluable, err)
	}
	message, err := t.Message()
	if err != nil {
		return Wire{}, fmt.Errorf("%w: %w", lazy.ErrUnevaluable, err)
	}
	id := t.Identifier()
	return Wire{
		ID:      id.ID(),
		Ref:     id.Ref(),
		Unique:  id.Unique(),
		Message: message,
		Text:    text,
	}, nil
}

// Thaw rebuilds an evaluated Representation from w.
func Thaw(w Wire) *Representation {
	return Evaluated(Frozen{IDValue: w.ID, RefValue: w.Ref, UniqueValue: w.Unique}, w.Message, w.Text)
}

// MarshalJSON forces evaluation and encodes the result.
func (r *Representation) MarshalJSON() ([]byte, error) {
	w, err := r.Freeze()
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes an evaluated Representation.
func (r *Representation) UnmarshalJSON(data []byte) error {
	var w Wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*r = *Thaw(w)
	return nil
}

// MarshalCBOR forces evaluation and encodes the result.
func (r *Representation) MarshalCBOR() ([]byte, error) {
	w, err := r.Freeze()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(w)
}

// UnmarshalCBOR decodes an evaluated Representation.
func (r *Representation) UnmarshalCBOR(data []byte) error {
	var w Wire
	if err := cbor.Unmarshal(data, &w); err != nil {
		return err
	}
	*r = *Thaw(w)
	return nil
}

// GobEncode forces evaluation and encodes the result.
func (r *Representation) GobEncode() ([]byte, error) {
	w, err := r.Freeze()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(w); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode decodes an evaluated Representation.
func (r *Representation) GobDecode(data []byte) error {
	var w Wire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return err
	}
	*r = *Thaw(w)
	return nil
}

// Frozen is a plain apis.Identifier restored from serialized data.
type Frozen struct {
	IDValue     string
	RefValue    string
	UniqueValue string
}

// ID returns the identifier.
func (f Frozen) ID() string { return f.IDValue }

// Ref returns the reference code.
func (f Frozen) Ref() string { return f.RefValue }

// Unique returns the unique token.
func (f Frozen) Unique() string { return f.UniqueValue }
