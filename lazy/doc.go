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

// Package lazy provides a memoized value that is computed at most once and
// can cross a serialization boundary.
//
// A Value is either unevaluated, holding the function that computes it, or
// evaluated, holding only the result. The transition happens once, on the
// first Get, under a per-value lock: concurrent first readers block until the
// winner finishes and then all observe the same result. Once evaluated the
// function and everything it captured are released.
//
// Serialization forces evaluation first (force-before-freeze), so encoded
// data only ever carries results. A decoded Value is always evaluated.
// JSON, CBOR and gob encodings are supported.
package lazy
