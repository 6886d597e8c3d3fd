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

// Package reflect holds the small reflection helpers used to identify
// bindings and compare registered values.
package reflect

import (
	"errors"
	"reflect"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("eid(reflect): nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping
	// containers) does not contain a named type.
	ErrReflectTypeNotNamed = errors.New("eid(reflect): type has no name")
)

// MaxUnwrap bounds how many container layers Normalize looks through.
const MaxUnwrap = 8

// Normalize unwraps containers and returns the nearest named inner type.
//
// Unwrapping policy:
//   - ptr/slice/array/chan -> Elem()
//   - map[K]V: the element if named, else the key if named, else keep
//     unwrapping the element.
//   - default: if t.Name() != "", return t; otherwise ErrReflectTypeNotNamed.
func Normalize(t reflect.Type) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}

	for i := 0; t != nil && i < MaxUnwrap; i++ {
		switch t.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Array, reflect.Chan:
			t = t.Elem()

		case reflect.Map:
			et := t.Elem()
			if et.Name() != "" {
				return et, nil
			}
			if kt := t.Key(); kt.Name() != "" {
				return kt, nil
			}
			t = et

		default:
			if t.Name() != "" {
				return t, nil
			}
			return nil, ErrReflectTypeNotNamed
		}
	}

	// After reaching max depth, ensure we ended on a named type.
	if t != nil && t.Name() != "" {
		return t, nil
	}
	return nil, ErrReflectTypeNotNamed
}

// PkgPathOf returns the import path of the package that declares the nearest
// named type of v, or "" for nil and unnamed values.
func PkgPathOf(v any) string {
	if v == nil {
		return ""
	}
	t, err := Normalize(reflect.TypeOf(v))
	if err != nil {
		return ""
	}
	return t.PkgPath()
}

// TypeName returns "pkgpath.Name" for the nearest named type of v, the bare
// name for predeclared types, or the reflect string when nothing is named.
func TypeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	rt := reflect.TypeOf(v)
	t, err := Normalize(rt)
	if err != nil {
		return rt.String()
	}
	if p := t.PkgPath(); p != "" {
		return p + "." + t.Name()
	}
	return t.Name()
}

// Same reports whether a and b hold the same value. Values of comparable
// dynamic types are compared with ==. Funcs, maps and slices are never the
// same, since Go offers no reliable identity for them.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	// Comparable types may still hold non-comparable values in interface fields.
	defer func() { _ = recover() }()
	return a == b
}
