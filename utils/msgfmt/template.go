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
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// ErrArgument is returned when an argument is missing or has the wrong kind.
var ErrArgument = errors.New("eid(msgfmt): bad argument")

// SyntaxError describes a malformed template.
type SyntaxError struct {
	// Template is the offending template.
	Template string
	// Offset is the byte offset the problem was detected at.
	Offset int
	// Reason is a short description.
	Reason string
}

// Error implements error.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("eid(msgfmt): %s at offset %d in %q", e.Reason, e.Offset, e.Template)
}

// argKind is the format type of a placeholder.
type argKind int

const (
	kindAny argKind = iota
	kindNumber
	kindDate
	kindTime
)

// segment is either a literal or a placeholder.
type segment struct {
	literal string
	arg     *placeholder
}

// placeholder is a parsed {index,type,style}.
type placeholder struct {
	index int
	kind  argKind
	style string
	// pattern is set for date/time placeholders with a custom style.
	pattern []dateToken
}

// Template is a compiled message template. It is immutable and safe for
// concurrent use.
type Template struct {
	source   string
	segments []segment
}

// Format compiles template and renders it with args. tag == language.Und
// selects the platform default locale and a nil loc selects time.Local.
func Format(tag language.Tag, loc *time.Location, template string, args ...any) (string, error) {
	t, err := Compile(template)
	if err != nil {
		return "", err
	}
	return t.Execute(tag, loc, args...)
}

// Compile parses template.
func Compile(template string) (*Template, error) {
	p := parser{src: template}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return &Template{source: template, segments: p.segments}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(template string) *Template {
	t, err := Compile(template)
	if err != nil {
		panic(err)
	}
	return t
}

// String returns the template source.
func (t *Template) String() string {
	return t.source
}

// Execute renders the template. Nothing is returned on error.
func (t *Template) Execute(tag language.Tag, loc *time.Location, args ...any) (string, error) {
	if tag == language.Und {
		tag = DefaultLocale()
	}
	if loc == nil {
		loc = time.Local
	}
	f := newArgFormatter(tag, loc)
	var b strings.Builder
	for _, s := range t.segments {
		if s.arg == nil {
			b.WriteString(s.literal)
			continue
		}
		if s.arg.index >= len(args) {
			return "", fmt.Errorf("%w: no argument for index %d in %q", ErrArgument, s.arg.index, t.source)
		}
		out, err := f.format(s.arg, args[s.arg.index])
		if err != nil {
			return "", fmt.Errorf("%w in %q", err, t.source)
		}
		b.WriteString(out)
	}
	return b.String(), nil
}

// parser splits a template into segments.
type parser struct {
	src      string
	segments []segment
	lit      strings.Builder
}

func (p *parser) parse() error {
	inQuote := false
	for i := 0; i < len(p.src); i++ {
		c := p.src[i]
		switch {
		case c == '\'':
			if i+1 < len(p.src) && p.src[i+1] == '\'' {
				p.lit.WriteByte('\'')
				i++
				continue
			}
			inQuote = !inQuote
		case inQuote:
			p.lit.WriteByte(c)
		case c == '{':
			end, err := p.placeholder(i)
			if err != nil {
				return err
			}
			i = end
		default:
			p.lit.WriteByte(c)
		}
	}
	p.flush()
	return nil
}

func (p *parser) flush() {
	if p.lit.Len() > 0 {
		p.segments = append(p.segments, segment{literal: p.lit.String()})
		p.lit.Reset()
	}
}

// placeholder parses a placeholder opening at start and returns the offset
// of its closing brace.
func (p *parser) placeholder(start int) (int, error) {
	var parts [3]strings.Builder
	part, depth := 0, 0
	inQuote := false
	for i := start + 1; i < len(p.src); i++ {
		c := p.src[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			parts[part].WriteByte(c)
		case inQuote:
			parts[part].WriteByte(c)
		case c == ',' && part < 2:
			part++
		case c == '{':
			depth++
			parts[part].WriteByte(c)
		case c == '}' && depth > 0:
			depth--
			parts[part].WriteByte(c)
		case c == '}':
			ph, err := p.compilePlaceholder(start, parts[0].String(), parts[1].String(), parts[2].String(), part)
			if err != nil {
				return 0, err
			}
			p.flush()
			p.segments = append(p.segments, segment{arg: ph})
			return i, nil
		default:
			parts[part].WriteByte(c)
		}
	}
	return 0, p.errorf(start, "unmatched brace")
}

func (p *parser) compilePlaceholder(at int, index, kind, style string, parts int) (*placeholder, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(index))
	if err != nil || idx < 0 {
		return nil, p.errorf(at, "invalid argument index "+strconv.Quote(index))
	}
	ph := &placeholder{index: idx}
	if parts == 0 {
		return ph, nil
	}
	style = strings.TrimSpace(style)
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "number":
		ph.kind = kindNumber
		ph.style = strings.ToLower(style)
		switch ph.style {
		case "", "integer", "percent":
		default:
			return nil, p.errorf(at, "unsupported number style "+strconv.Quote(style))
		}
	case "date", "time":
		ph.kind = kindDate
		if strings.EqualFold(strings.TrimSpace(kind), "time") {
			ph.kind = kindTime
		}
		ph.style = style
		if _, named := parseStyle(style); !named {
			tokens, err := compileDatePattern(style)
			if err != nil {
				return nil, p.errorf(at, err.Error())
			}
			ph.pattern = tokens
		}
	default:
		return nil, p.errorf(at, "unknown format type "+strconv.Quote(kind))
	}
	return ph, nil
}

func (p *parser) errorf(at int, reason string) error {
	return &SyntaxError{Template: p.src, Offset: at, Reason: reason}
}
