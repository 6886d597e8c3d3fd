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

	"github.com/fxamacker/cbor/v2"

	"dirpx.dev/eid/apis"
	"dirpx.dev/eid/lazy"
	"dirpx.dev/eid/text"
)

// Message is an Eid paired with a lazily formatted message. The text is
// computed once, on first read, and shared by all readers. Messages are made
// by (*Eid).Message; the zero Message has no Eid and reads as empty text.
type Message struct {
	eid  *Eid
	text apis.Text
}

// emptyText backs the zero Message.
var emptyText apis.Text = text.Evaluated(text.Frozen{}, "", "")

func (m *Message) body() apis.Text {
	if m.text == nil {
		return emptyText
	}
	return m.text
}

// Eid returns the Eid of the message.
func (m *Message) Eid() *Eid {
	return m.eid
}

// Get returns the rendered Eid followed by the formatted message. If the
// template cannot be formatted the returned text still identifies the Eid and
// the error is returned alongside.
func (m *Message) Get() (string, error) {
	return m.body().Get()
}

// String returns the full text, ignoring template errors.
func (m *Message) String() string {
	return m.body().String()
}

// FormattedMessage returns the formatted message without the Eid.
func (m *Message) FormattedMessage() (string, error) {
	return m.body().Message()
}

// Evaluated reports whether the text was computed already.
func (m *Message) Evaluated() bool {
	return m.body().Evaluated()
}

// Len returns the number of runes of the full text.
func (m *Message) Len() int {
	return len(m.runes())
}

// RuneAt returns the rune at index i of the full text. It panics if i is out
// of range.
func (m *Message) RuneAt(i int) rune {
	return m.runes()[i]
}

// Slice returns the runes [start, end) of the full text. It panics if the
// bounds are out of range.
func (m *Message) Slice(start, end int) string {
	return string(m.runes()[start:end])
}

func (m *Message) runes() []rune {
	return []rune(m.String())
}

func (m *Message) freeze() (text.Wire, error) {
	return text.FreezeText(m.body())
}

func (m *Message) thaw(w text.Wire) {
	m.text = text.Thaw(w)
	m.eid = &Eid{id: w.ID, ref: w.Ref, unique: lazy.Evaluated(w.Unique)}
}

// MarshalJSON forces the text and encodes it with the Eid.
func (m *Message) MarshalJSON() ([]byte, error) {
	w, err := m.freeze()
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes an evaluated Message.
func (m *Message) UnmarshalJSON(data []byte) error {
	var w text.Wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	m.thaw(w)
	return nil
}

// MarshalCBOR forces the text and encodes it with the Eid.
func (m *Message) MarshalCBOR() ([]byte, error) {
	w, err := m.freeze()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(w)
}

// UnmarshalCBOR decodes an evaluated Message.
func (m *Message) UnmarshalCBOR(data []byte) error {
	var w text.Wire
	if err := cbor.Unmarshal(data, &w); err != nil {
		return err
	}
	m.thaw(w)
	return nil
}

// GobEncode forces the text and encodes it with the Eid.
func (m *Message) GobEncode() ([]byte, error) {
	w, err := m.freeze()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(w); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode decodes an evaluated Message.
func (m *Message) GobDecode(data []byte) error {
	var w text.Wire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return err
	}
	m.thaw(w)
	return nil
}
