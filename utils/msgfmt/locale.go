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
	"os"
	"strings"

	"golang.org/x/text/language"
)

// fallbackLocale is used when the platform does not name a usable locale.
var fallbackLocale = language.AmericanEnglish

// DefaultLocale returns the platform locale as named by LC_ALL, LC_MESSAGES
// or LANG, in that order. It is evaluated on every call so a process that
// changes its environment sees the change.
func DefaultLocale() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return ParseLocale(v)
		}
	}
	return fallbackLocale
}

// ParseLocale converts a POSIX ("pl_PL.UTF-8") or BCP 47 ("pl-PL") locale
// name to a tag. Unparseable names and "C"/"POSIX" yield American English.
func ParseLocale(name string) language.Tag {
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	if name == "" || name == "C" || name == "POSIX" {
		return fallbackLocale
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return fallbackLocale
	}
	return tag
}
