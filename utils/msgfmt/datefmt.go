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

package msgfmt

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/locales"
)

// dateToken is a literal or a field of a date pattern such as "MMM" or "yyyy".
type dateToken struct {
	literal string
	field   byte
	width   int
}

// compileDatePattern parses an LDML-like date pattern. Letters a-z and A-Z
// are fields, text in single quotes is literal and two quotes produce one.
func compileDatePattern(pattern string) ([]dateToken, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, errors.New("empty date pattern")
	}
	var (
		tokens []dateToken
		lit    strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, dateToken{literal: lit.String()})
			lit.Reset()
		}
	}
	inQuote := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\'':
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				lit.WriteByte('\'')
				i++
				continue
			}
			inQuote = !inQuote
		case inQuote:
			lit.WriteByte(c)
		case isPatternLetter(c):
			if !strings.ContainsRune("yMdEHhmsSaZz", rune(c)) {
				return nil, errors.New("unknown date pattern letter " + strconv.QuoteRune(rune(c)))
			}
			j := i
			for j < len(pattern) && pattern[j] == c {
				j++
			}
			flush()
			tokens = append(tokens, dateToken{field: c, width: j - i})
			i = j - 1
		default:
			lit.WriteByte(c)
		}
	}
	flush()
	return tokens, nil
}

func isPatternLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// formatDate renders t with tokens. Month and day names come from tr; the
// 'a' field is always AM or PM.
func formatDate(t time.Time, tokens []dateToken, tr locales.Translator) string {
	var b strings.Builder
	for _, tok := range tokens {
		if tok.field == 0 {
			b.WriteString(tok.literal)
			continue
		}
		switch tok.field {
		case 'y':
			if tok.width == 2 {
				b.WriteString(pad(t.Year()%100, 2))
			} else {
				b.WriteString(pad(t.Year(), tok.width))
			}
		case 'M':
			switch {
			case tok.width >= 4:
				b.WriteString(tr.MonthWide(t.Month()))
			case tok.width == 3:
				b.WriteString(tr.MonthAbbreviated(t.Month()))
			default:
				b.WriteString(pad(int(t.Month()), tok.width))
			}
		case 'd':
			b.WriteString(pad(t.Day(), tok.width))
		case 'E':
			if tok.width >= 4 {
				b.WriteString(tr.WeekdayWide(t.Weekday()))
			} else {
				b.WriteString(tr.WeekdayAbbreviated(t.Weekday()))
			}
		case 'H':
			b.WriteString(pad(t.Hour(), tok.width))
		case 'h':
			h := t.Hour() % 12
			if h == 0 {
				h = 12
			}
			b.WriteString(pad(h, tok.width))
		case 'm':
			b.WriteString(pad(t.Minute(), tok.width))
		case 's':
			b.WriteString(pad(t.Second(), tok.width))
		case 'S':
			b.WriteString(pad(t.Nanosecond()/int(time.Millisecond), tok.width))
		case 'a':
			if t.Hour() < 12 {
				b.WriteString("AM")
			} else {
				b.WriteString("PM")
			}
		case 'z':
			name, _ := t.Zone()
			b.WriteString(name)
		case 'Z':
			b.WriteString(t.Format("-0700"))
		}
	}
	return b.String()
}

// pad renders n with at least width digits.
func pad(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
