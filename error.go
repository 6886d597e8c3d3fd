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

// Error is a failure tagged with an Eid. It is the hook richer error types
// build on: it renders the Eid, or the Eid message, followed by the cause.
type Error struct {
	// Eid identifies the failure. Never nil for errors made by Wrap.
	Eid *Eid
	// Message is set when the error was made from a Message.
	Message *Message
	// Cause is the wrapped error, if any.
	Cause error
}

// Wrap tags cause with e. cause may be nil.
func (e *Eid) Wrap(cause error) *Error {
	return &Error{Eid: e, Cause: cause}
}

// Wrap tags cause with the Eid of m and its message. cause may be nil.
func (m *Message) Wrap(cause error) *Error {
	return &Error{Eid: m.eid, Message: m, Cause: cause}
}

// Error renders the Eid or message, then the cause.
func (e *Error) Error() string {
	var s string
	if e.Message != nil {
		s = e.Message.String()
	} else {
		s = e.Eid.String()
	}
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

// Unwrap returns the cause and, when the message template failed, the
// template error.
func (e *Error) Unwrap() []error {
	var errs []error
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	if e.Message != nil {
		if _, err := e.Message.Get(); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Is reports whether target is an *Error carrying the same id.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Eid == nil || e.Eid == nil {
		return false
	}
	return t.Eid.ID() == e.Eid.ID()
}
