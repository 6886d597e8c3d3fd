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

package reflect_test

import (
	"errors"
	"reflect"
	"runtime"
	"sync"
	"testing"

	uref "dirpx.dev/eid/utils/reflect"
)

// Local test types.
type A struct{}
type G[T any] struct{}
type W[T any] struct{ V T }

type fn func()

func TestNormalize_BasicContainers(t *testing.T) {
	cases := []struct {
		name string
		typ  reflect.Type
		want reflect.Type
	}{
		{"plain", reflect.TypeOf(A{}), reflect.TypeOf(A{})},
		{"ptr", reflect.TypeOf(&A{}), reflect.TypeOf(A{})},
		{"slice", reflect.TypeOf([]A{}), reflect.TypeOf(A{})},
		{"array", reflect.TypeOf([2]A{}), reflect.TypeOf(A{})},
		{"chan", reflect.TypeOf((chan A)(nil)), reflect.TypeOf(A{})},
		{"map elem", reflect.TypeOf(map[string]A{}), reflect.TypeOf(A{})},
		{"map key fallback", reflect.TypeOf(map[string]struct{ X int }{}), reflect.TypeOf("")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uref.Normalize(tc.typ)
			if err != nil {
				t.Fatalf("Normalize(%v) returned error: %v", tc.typ, err)
			}
			if got != tc.want {
				t.Fatalf("Normalize(%v) = %v, want %v", tc.typ, got, tc.want)
			}
		})
	}
}

func TestNormalize_Errors(t *testing.T) {
	if _, err := uref.Normalize(nil); !errors.Is(err, uref.ErrReflectNilType) {
		t.Fatalf("nil type: want ErrReflectNilType, got %v", err)
	}

	var anon = struct{ X int }{}
	if _, err := uref.Normalize(reflect.TypeOf(anon)); !errors.Is(err, uref.ErrReflectTypeNotNamed) {
		t.Fatalf("anonymous struct: want ErrReflectTypeNotNamed, got %v", err)
	}

	// Deeper than MaxUnwrap.
	deep := reflect.TypeOf(A{})
	for range uref.MaxUnwrap + 1 {
		deep = reflect.PointerTo(deep)
	}
	if _, err := uref.Normalize(deep); err == nil {
		t.Fatalf("too deep: expected error, got nil")
	}
}

func TestNormalize_GenericInstantiation(t *testing.T) {
	wt, err := uref.Normalize(reflect.TypeOf(W[G[int]]{}))
	if err != nil {
		t.Fatalf("Normalize(W[G[int]]{}): %v", err)
	}
	if wt == nil || wt.Name() == "" {
		t.Fatalf("Normalize(W[G[int]]{}) returned unnamed or nil type: %v", wt)
	}
}

func TestPkgPathOf(t *testing.T) {
	const self = "dirpx.dev/eid/utils/reflect_test"

	if got := uref.PkgPathOf(&A{}); got != self {
		t.Fatalf("PkgPathOf(&A{}) = %q, want %q", got, self)
	}
	if got := uref.PkgPathOf(errors.New("x")); got != "errors" {
		t.Fatalf("PkgPathOf(error) = %q, want errors", got)
	}
	if got := uref.PkgPathOf(nil); got != "" {
		t.Fatalf("PkgPathOf(nil) = %q, want empty", got)
	}
	if got := uref.PkgPathOf(42); got != "" {
		t.Fatalf("PkgPathOf(42) = %q, want empty", got)
	}
}

func TestTypeName(t *testing.T) {
	cases := map[string]any{
		"dirpx.dev/eid/utils/reflect_test.A": &A{},
		"int":                                7,
		"struct { X int }":                   struct{ X int }{},
		"<nil>":                              nil,
	}
	for want, v := range cases {
		if got := uref.TypeName(v); got != want {
			t.Errorf("TypeName(%T) = %q, want %q", v, got, want)
		}
	}
}

func TestSame(t *testing.T) {
	a := &A{}
	f := fn(func() {})

	cases := []struct {
		name string
		x, y any
		want bool
	}{
		{"same pointer", a, a, true},
		{"different pointers", a, &A{}, false},
		{"equal strings", "x", "x", true},
		{"different types", 1, int64(1), false},
		{"both nil", nil, nil, true},
		{"one nil", a, nil, false},
		{"funcs", f, f, false},
		{"slices", []int{1}, []int{1}, false},
		{"struct holding a slice", struct{ V any }{[]int{1}}, struct{ V any }{[]int{1}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := uref.Same(tc.x, tc.y); got != tc.want {
				t.Fatalf("Same() = %v, want %v", got, tc.want)
			}
		})
	}
}

// This test stresses the helpers concurrently; they hold no shared state.
func TestHelpers_Concurrent(t *testing.T) {
	values := []any{A{}, &A{}, []A{}, map[string]A{}, G[int]{}, W[G[int]]{}, 0}

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				v := values[i%len(values)]
				if rt, err := uref.Normalize(reflect.TypeOf(v)); err != nil || rt.Name() == "" {
					t.Errorf("Normalize(%T) = (%v, %v)", v, rt, err)
					return
				}
				_ = uref.TypeName(v)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkPkgPathOf(b *testing.B) {
	v := &A{}
	for i := 0; i < b.N; i++ {
		_ = uref.PkgPathOf(v)
	}
}
