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
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// argFormatter renders single arguments for one locale and zone.
type argFormatter struct {
	printer *message.Printer
	tr      locales.Translator
	loc     *time.Location
}

func newArgFormatter(tag language.Tag, loc *time.Location) *argFormatter {
	return &argFormatter{
		printer: message.NewPrinter(tag),
		tr:      translatorFor(tag),
		loc:     loc,
	}
}

func (f *argFormatter) format(ph *placeholder, arg any) (string, error) {
	switch ph.kind {
	case kindNumber:
		if !isNumber(arg) {
			return "", fmt.Errorf("%w: argument %d is %T, not a number", ErrArgument, ph.index, arg)
		}
		return f.number(arg, ph.style), nil
	case kindDate, kindTime:
		t, ok := asTime(arg)
		if !ok {
			return "", fmt.Errorf("%w: argument %d is %T, not a time", ErrArgument, ph.index, arg)
		}
		return f.date(t, ph), nil
	default:
		return f.plain(arg), nil
	}
}

// plain formats an argument without an explicit type.
func (f *argFormatter) plain(arg any) string {
	if arg == nil {
		return "<nil>"
	}
	if isNumber(arg) {
		return f.number(arg, "")
	}
	if t, ok := asTime(arg); ok {
		t = t.In(f.loc)
		return f.tr.FmtDateShort(t) + ", " + f.tr.FmtTimeShort(t)
	}
	switch v := arg.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	}
	return fmt.Sprint(arg)
}

func (f *argFormatter) number(arg any, style string) string {
	switch style {
	case "integer":
		return f.printer.Sprint(number.Decimal(arg, number.MaxFractionDigits(0)))
	case "percent":
		return f.printer.Sprint(number.Percent(arg))
	default:
		return f.printer.Sprint(number.Decimal(arg))
	}
}

func (f *argFormatter) date(t time.Time, ph *placeholder) string {
	t = t.In(f.loc)
	if ph.pattern != nil {
		return formatDate(t, ph.pattern, f.tr)
	}
	st, _ := parseStyle(ph.style)
	if ph.kind == kindTime {
		switch st {
		case styleShort:
			return f.tr.FmtTimeShort(t)
		case styleLong:
			return f.tr.FmtTimeLong(t)
		case styleFull:
			return f.tr.FmtTimeFull(t)
		}
		return f.tr.FmtTimeMedium(t)
	}
	switch st {
	case styleShort:
		return f.tr.FmtDateShort(t)
	case styleLong:
		return f.tr.FmtDateLong(t)
	case styleFull:
		return f.tr.FmtDateFull(t)
	}
	return f.tr.FmtDateMedium(t)
}

func isNumber(arg any) bool {
	switch arg.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

func asTime(arg any) (time.Time, bool) {
	switch v := arg.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v != nil {
			return *v, true
		}
	}
	return time.Time{}, false
}

// style is a predefined date/time length.
type style int

const (
	styleShort style = iota
	styleMedium
	styleLong
	styleFull
)

// parseStyle maps a style name to a style. Unknown names report false and
// are treated as custom patterns. The empty style is medium.
func parseStyle(s string) (style, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "medium":
		return styleMedium, true
	case "short":
		return styleShort, true
	case "long":
		return styleLong, true
	case "full":
		return styleFull, true
	}
	return styleMedium, false
}
