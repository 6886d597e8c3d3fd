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

package msgfmt_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"dirpx.dev/eid/utils/msgfmt"
)

var (
	// epochPlus is 1970-01-01 00:17:04 UTC.
	epochPlus = time.UnixMilli(1024000)
	// evening is Tuesday 2015-11-17 19:22:11 UTC.
	evening = time.Date(2015, 11, 17, 19, 22, 11, 0, time.UTC)
)

func TestFormat_Plain(t *testing.T) {
	cases := []struct {
		name     string
		template string
		args     []any
		want     string
	}{
		{"int", "Files: {0}", []any{18}, "Files: 18"},
		{"grouping", "{0} rows", []any{1234567}, "1,234,567 rows"},
		{"string", "user {0} not found", []any{"joe"}, "user joe not found"},
		{"reorder", "{1} before {0}", []any{"a", "b"}, "b before a"},
		{"repeat", "{0}{0}", []any{"x"}, "xx"},
		{"error arg", "cause: {0}", []any{errors.New("io")}, "cause: io"},
		{"nil", "value {0}", []any{nil}, "value <nil>"},
		{"quotes", "It''s '{0}' {0}", []any{"x"}, "It's {0} x"},
		{"stray close", "a } b", nil, "a } b"},
		{"utf8", "zażółć {0}", []any{"gęślą"}, "zażółć gęślą"},
		{"no args", "plain text", nil, "plain text"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := msgfmt.Format(language.AmericanEnglish, time.UTC, tc.template, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormat_NumberStyles(t *testing.T) {
	got, err := msgfmt.Format(language.AmericanEnglish, time.UTC, "{0,number} {0,number,integer} {1,number,percent}", 1234.25, 0.25)
	require.NoError(t, err)
	assert.Equal(t, "1,234.25 1,234 25%", got)

	got, err = msgfmt.Format(language.German, time.UTC, "{0,number}", 1234.5)
	require.NoError(t, err)
	assert.Equal(t, "1.234,5", got)
}

func TestFormat_DateAndTime(t *testing.T) {
	got, err := msgfmt.Format(language.AmericanEnglish, time.UTC, "An example message with {0,date} {0,time}", evening)
	require.NoError(t, err)
	assert.Equal(t, "An example message with Nov 17, 2015 7:22:11 pm", got)

	got, err = msgfmt.Format(language.AmericanEnglish, time.UTC, "{0,date,full}", evening)
	require.NoError(t, err)
	assert.Equal(t, "Tuesday, November 17, 2015", got)

	got, err = msgfmt.Format(language.AmericanEnglish, time.UTC, "{0}", evening)
	require.NoError(t, err)
	assert.Equal(t, "11/17/15, 7:22 pm", got)
}

func TestFormat_LocaleSensitiveDates(t *testing.T) {
	en, err := msgfmt.Format(language.AmericanEnglish, time.UTC, "{0,date,short}", epochPlus)
	require.NoError(t, err)
	de, err := msgfmt.Format(language.German, time.UTC, "{0,date,short}", epochPlus)
	require.NoError(t, err)
	pl, err := msgfmt.Format(language.Polish, time.UTC, "{0,date,long}", epochPlus)
	require.NoError(t, err)
	gb, err := msgfmt.Format(language.BritishEnglish, time.UTC, "{0,date,short}", epochPlus)
	require.NoError(t, err)

	assert.Equal(t, "1/1/70", en)
	assert.Equal(t, "01.01.70", de)
	assert.Equal(t, "1 stycznia 1970", pl)
	assert.Equal(t, "01/01/1970", gb)
	assert.NotEqual(t, en, de)
}

func TestFormat_DatesFollowNumberLocale(t *testing.T) {
	cases := []struct {
		tag  language.Tag
		want string
	}{
		{language.Italian, "17 novembre 2015 | 1.234,5"},
		{language.Dutch, "17 november 2015 | 1.234,5"},
		{language.Japanese, "2015年11月17日 | 1,234.5"},
	}
	for _, tc := range cases {
		t.Run(tc.tag.String(), func(t *testing.T) {
			got, err := msgfmt.Format(tc.tag, time.UTC, "{0,date,long} | {1}", evening, 1234.5)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormat_UnknownLocaleFallsBackToLanguage(t *testing.T) {
	got, err := msgfmt.Format(language.MustParse("it-CH"), time.UTC, "{0,date,long}", evening)
	require.NoError(t, err)
	assert.Equal(t, "17 novembre 2015", got)

	got, err = msgfmt.Format(language.Swahili, time.UTC, "{0,date,long}", evening)
	require.NoError(t, err)
	assert.Equal(t, "November 17, 2015", got)
}

func TestFormat_TimeZoneIsForced(t *testing.T) {
	zone := time.FixedZone("CET", 3600)

	got, err := msgfmt.Format(language.German, zone, "{0,time,long}", epochPlus)
	require.NoError(t, err)
	assert.Equal(t, "01:17:04 CET", got)

	got, err = msgfmt.Format(language.German, time.UTC, "{0,time,long}", epochPlus)
	require.NoError(t, err)
	assert.Equal(t, "00:17:04 UTC", got)
}

func TestFormat_CustomDatePattern(t *testing.T) {
	got, err := msgfmt.Format(language.AmericanEnglish, time.UTC, "{0,date,yyyy-MM-dd'T'HH:mm:ss.SSS}", epochPlus)
	require.NoError(t, err)
	assert.Equal(t, "1970-01-01T00:17:04.000", got)

	at := time.Date(2015, 11, 17, 19, 22, 11, 4*int(time.Millisecond), time.UTC)
	got, err = msgfmt.Format(language.AmericanEnglish, time.UTC, "{0,date,ss.SS|ss.S|ss.SSS}", at)
	require.NoError(t, err)
	assert.Equal(t, "11.04|11.4|11.004", got)

	got, err = msgfmt.Format(language.German, time.UTC, "{0,date,EEEE d. MMMM y, h:mm a}", evening)
	require.NoError(t, err)
	assert.Equal(t, "Dienstag 17. November 2015, 7:22 PM", got)

	got, err = msgfmt.Format(language.Italian, time.UTC, "{0,date,EEE d MMM}", evening)
	require.NoError(t, err)
	assert.Equal(t, "mar 17 nov", got)
}

func TestFormat_SyntaxErrors(t *testing.T) {
	for _, tpl := range []string{
		"Files: {0",
		"{a}",
		"{-1}",
		"{0,choice,0#none|1#one}",
		"{0,number,#.##}",
		"{0,date,yyyy-QQ}",
	} {
		t.Run(tpl, func(t *testing.T) {
			got, err := msgfmt.Format(language.AmericanEnglish, time.UTC, tpl, 1)
			var se *msgfmt.SyntaxError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tpl, se.Template)
			assert.Empty(t, got)
		})
	}
}

func TestFormat_ArgumentErrors(t *testing.T) {
	got, err := msgfmt.Format(language.AmericanEnglish, time.UTC, "{0} and {1}", "only one")
	require.ErrorIs(t, err, msgfmt.ErrArgument)
	assert.Empty(t, got)

	_, err = msgfmt.Format(language.AmericanEnglish, time.UTC, "{0,number}", "seven")
	require.ErrorIs(t, err, msgfmt.ErrArgument)

	_, err = msgfmt.Format(language.AmericanEnglish, time.UTC, "{0,date}", 7)
	require.ErrorIs(t, err, msgfmt.ErrArgument)
}

func TestCompile_Reusable(t *testing.T) {
	tpl := msgfmt.MustCompile("Files: {0}")
	assert.Equal(t, "Files: {0}", tpl.String())

	a, err := tpl.Execute(language.AmericanEnglish, nil, 1)
	require.NoError(t, err)
	b, err := tpl.Execute(language.AmericanEnglish, nil, 2)
	require.NoError(t, err)
	assert.Equal(t, "Files: 1", a)
	assert.Equal(t, "Files: 2", b)
}

func TestParseLocale(t *testing.T) {
	cases := map[string]language.Tag{
		"pl_PL.UTF-8":    language.MustParse("pl-PL"),
		"de-DE":          language.MustParse("de-DE"),
		"C":              language.AmericanEnglish,
		"POSIX":          language.AmericanEnglish,
		"en_US@calendar": language.AmericanEnglish,
		"!!":             language.AmericanEnglish,
	}
	for in, want := range cases {
		assert.Equal(t, want, msgfmt.ParseLocale(in), in)
	}
}

func TestDefaultLocale_ReadsEnvironmentAtCallTime(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "de_DE.UTF-8")
	assert.Equal(t, language.MustParse("de-DE"), msgfmt.DefaultLocale())

	t.Setenv("LC_ALL", "fr_FR")
	assert.Equal(t, language.MustParse("fr-FR"), msgfmt.DefaultLocale())
}
