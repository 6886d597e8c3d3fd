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
	"strings"
	"sync"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/af"
	"github.com/go-playground/locales/ar"
	"github.com/go-playground/locales/bg"
	"github.com/go-playground/locales/ca"
	"github.com/go-playground/locales/cs"
	"github.com/go-playground/locales/da"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/de_AT"
	"github.com/go-playground/locales/de_CH"
	"github.com/go-playground/locales/el"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_AU"
	"github.com/go-playground/locales/en_CA"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_IE"
	"github.com/go-playground/locales/en_IN"
	"github.com/go-playground/locales/en_NZ"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/es_AR"
	"github.com/go-playground/locales/es_MX"
	"github.com/go-playground/locales/et"
	"github.com/go-playground/locales/fa"
	"github.com/go-playground/locales/fi"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/fr_CA"
	"github.com/go-playground/locales/fr_CH"
	"github.com/go-playground/locales/he"
	"github.com/go-playground/locales/hi"
	"github.com/go-playground/locales/hr"
	"github.com/go-playground/locales/hu"
	"github.com/go-playground/locales/id"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/ko"
	"github.com/go-playground/locales/lt"
	"github.com/go-playground/locales/lv"
	"github.com/go-playground/locales/nb"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/pl"
	"github.com/go-playground/locales/pt"
	"github.com/go-playground/locales/pt_BR"
	"github.com/go-playground/locales/pt_PT"
	"github.com/go-playground/locales/ro"
	"github.com/go-playground/locales/ru"
	"github.com/go-playground/locales/sk"
	"github.com/go-playground/locales/sl"
	"github.com/go-playground/locales/sr"
	"github.com/go-playground/locales/sv"
	"github.com/go-playground/locales/th"
	"github.com/go-playground/locales/tr"
	"github.com/go-playground/locales/uk"
	"github.com/go-playground/locales/vi"
	"github.com/go-playground/locales/zh"
	"github.com/go-playground/locales/zh_Hant"
	"golang.org/x/text/language"
)

// translators maps CLDR locale names to their go-playground translators.
// Names not listed here fall back to their language, then to en_US.
var translators = map[string]func() locales.Translator{
	"af":      af.New,
	"ar":      ar.New,
	"bg":      bg.New,
	"ca":      ca.New,
	"cs":      cs.New,
	"da":      da.New,
	"de":      de.New,
	"de_AT":   de_AT.New,
	"de_CH":   de_CH.New,
	"el":      el.New,
	"en":      en.New,
	"en_AU":   en_AU.New,
	"en_CA":   en_CA.New,
	"en_GB":   en_GB.New,
	"en_IE":   en_IE.New,
	"en_IN":   en_IN.New,
	"en_NZ":   en_NZ.New,
	"en_US":   en_US.New,
	"es":      es.New,
	"es_AR":   es_AR.New,
	"es_MX":   es_MX.New,
	"et":      et.New,
	"fa":      fa.New,
	"fi":      fi.New,
	"fr":      fr.New,
	"fr_CA":   fr_CA.New,
	"fr_CH":   fr_CH.New,
	"he":      he.New,
	"hi":      hi.New,
	"hr":      hr.New,
	"hu":      hu.New,
	"id":      id.New,
	"it":      it.New,
	"ja":      ja.New,
	"ko":      ko.New,
	"lt":      lt.New,
	"lv":      lv.New,
	"nb":      nb.New,
	"nl":      nl.New,
	"pl":      pl.New,
	"pt":      pt.New,
	"pt_BR":   pt_BR.New,
	"pt_PT":   pt_PT.New,
	"ro":      ro.New,
	"ru":      ru.New,
	"sk":      sk.New,
	"sl":      sl.New,
	"sr":      sr.New,
	"sv":      sv.New,
	"th":      th.New,
	"tr":      tr.New,
	"uk":      uk.New,
	"vi":      vi.New,
	"zh":      zh.New,
	"zh_Hant": zh_Hant.New,
}

// translatorCache holds one translator per CLDR name. Translators are
// read-only after construction.
var translatorCache sync.Map

// translatorFor picks the closest translator for tag: the full tag, then
// language and region, then language alone.
func translatorFor(tag language.Tag) locales.Translator {
	base, _ := tag.Base()
	region, conf := tag.Region()
	candidates := []string{strings.ReplaceAll(tag.String(), "-", "_")}
	if conf != language.No {
		candidates = append(candidates, base.String()+"_"+region.String())
	}
	candidates = append(candidates, base.String(), "en_US")
	for _, name := range candidates {
		if cached, ok := translatorCache.Load(name); ok {
			return cached.(locales.Translator)
		}
		if newTranslator, ok := translators[name]; ok {
			cached, _ := translatorCache.LoadOrStore(name, newTranslator())
			return cached.(locales.Translator)
		}
	}
	return en_US.New()
}
