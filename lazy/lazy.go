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

package lazy

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/fxamacker/cbor/v2"
)

// ErrUnevaluable is returned when a Value whose computation failed is serialized.
var ErrUnevaluable = errors.New("eid(lazy): value failed to evaluate")

// Value is a memoized, concurrency-safe lazy value.
// The zero Value is evaluated and holds the zero T.
type Value[T any] struct {
	// mu serializes the one-time evaluation.
	mu sync.Mutex
	// st is the current state. nil means the zero value.
	st atomic.Pointer[state[T]]
}

// state is a published snapshot of a Value. Never mutated once stored.
type state[T any] struct {
	// fn is set only while unevaluated.
	fn func() (T, error)
	// val is the result once evaluated.
	val T
	// err is the memoized evaluation error.
	err error
}

// Of returns an unevaluated Value computed by fn on first use.
func Of[T any](fn func() (T, error)) *Value[T] {
	v := &Value[T]{}
	v.st.Store(&state[T]{fn: fn})
	return v
}

// Evaluated returns a Value already holding val.
func Evaluated[T any](val T) *Value[T] {
	v := &Value[T]{}
	v.st.Store(&state[T]{val: val})
	return v
}

// Get returns the value, computing it on the first call. The function passed
// to Of runs at most once; its error is memoized along with the value.
func (v *Value[T]) Get() (T, error) {
	if s := v.st.Load(); s == nil || s.fn == nil {
		return v.result(s)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	s := v.st.Load()
	if s.fn == nil {
		return s.val, s.err
	}
	val, err := s.fn()
	v.st.Store(&state[T]{val: val, err: err})
	return val, err
}

// Evaluated reports whether the value was already computed.
func (v *Value[T]) Evaluated() bool {
	s := v.st.Load()
	return s == nil || s.fn == nil
}

func (v *Value[T]) result(s *state[T]) (T, error) {
	if s == nil {
		var zero T
		return zero, nil
	}
	return s.val, s.err
}

// freeze forces evaluation for serialization.
func (v *Value[T]) freeze() (T, error) {
	val, err := v.Get()
	if err != nil {
		return val, errors.Join(ErrUnevaluable, err)
	}
	return val, nil
}

// MarshalJSON forces evaluation and encodes the result.
func (v *Value[T]) MarshalJSON() ([]byte, error) {
	val, err := v.freeze()
	if err != nil {
		return nil, err
	}
	return json.Marshal(val)
}

// UnmarshalJSON decodes an evaluated Value.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	var val T
	if err := json.Unmarshal(data, &val); err != nil {
		return err
	}
	v.st.Store(&state[T]{val: val})
	return nil
}

// MarshalCBOR forces evaluation and encodes the result.
func (v *Value[T]) MarshalCBOR() ([]byte, error) {
	val, err := v.freeze()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(val)
}

// UnmarshalCBOR decodes an evaluated Value.
func (v *Value[T]) UnmarshalCBOR(data []byte) error {
	var val T
	if err := cbor.Unmarshal(data, &val); err != nil {
		return err
	}
	v.st.Store(&state[T]{val: val})
	return nil
}

// GobEncode forces evaluation and encodes the result.
func (v *Value[T]) GobEncode() ([]byte, error) {
	val, err := v.freeze()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&val); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode decodes an evaluated Value.
func (v *Value[T]) GobDecode(data []byte) error {
	var val T
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&val); err != nil {
		return err
	}
	v.st.Store(&state[T]{val: val})
	return nil
}
