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
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/rs/xid"

	"dirpx.dev/eid/apis"
)

// DefaultUniqueLength is the length of tokens minted by DefaultGenerator.
const DefaultUniqueLength = 6

const (
	// base36 is the radix of generated tokens.
	base36 = 36
	// minSixDigits is 36^5, the smallest number with six base36 digits.
	minSixDigits = 60466176
	// alphabet36 holds the base36 digits in order.
	alphabet36 = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// DefaultGenerator returns the default apis.UniqueIDGenerator. It draws from a
// fast, non-cryptographic PRNG and always yields six base36 characters.
func DefaultGenerator() apis.UniqueIDGenerator {
	return defaultGenerator{}
}

// defaultGenerator uses the goroutine-safe top level source of math/rand/v2.
type defaultGenerator struct{}

// GenerateUniqID returns a number from [36^5, MaxInt32) in base36.
func (defaultGenerator) GenerateUniqID() string {
	n := rand.Int32N(math.MaxInt32-minSixDigits) + minSixDigits
	return strconv.FormatInt(int64(n), base36)
}

// String names the generator.
func (defaultGenerator) String() string { return "base36(6)" }

// Base36Generator returns a generator of fixed-width base36 tokens of the given
// length. Lengths below 1 fall back to six characters.
func Base36Generator(length int) apis.UniqueIDGenerator {
	if length < 1 {
		length = DefaultUniqueLength
	}
	return base36Generator{length: length}
}

// base36Generator maps PRNG output onto the base36 alphabet.
type base36Generator struct {
	length int
}

// GenerateUniqID takes 6-bit chunks of PRNG output and keeps those below 36,
// so every digit is equally likely.
func (g base36Generator) GenerateUniqID() string {
	buf := make([]byte, g.length)
	var bits uint64
	left := 0
	for i := 0; i < len(buf); {
		if left == 0 {
			bits = rand.Uint64()
			left = 10 // 6-bit chunks per draw
		}
		d := int(bits & 0x3f)
		bits >>= 6
		left--
		if d < base36 {
			buf[i] = alphabet36[d]
			i++
		}
	}
	return string(buf)
}

// String names the generator.
func (g base36Generator) String() string { return "base36(" + strconv.Itoa(g.length) + ")" }

// UUIDGenerator returns a generator of RFC 9562 UUID v7 strings.
func UUIDGenerator() apis.UniqueIDGenerator {
	return apis.UniqueIDGeneratorFunc(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})
}

// ULIDGenerator returns a generator of ULID strings (26 characters, time sortable).
func ULIDGenerator() apis.UniqueIDGenerator {
	return apis.UniqueIDGeneratorFunc(func() string {
		return ulid.Make().String()
	})
}

// XIDGenerator returns a generator of xid strings (20 characters, time sortable).
func XIDGenerator() apis.UniqueIDGenerator {
	return apis.UniqueIDGeneratorFunc(func() string {
		return xid.New().String()
	})
}
