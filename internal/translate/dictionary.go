// Package translate resolves display text for questions: a phrase
// dictionary with pattern fallbacks, and the per-question source cascade.
package translate

import (
	"sort"
	"strings"

	"github.com/lidtrain/lidtrain/internal/model"
)

// phraseTable maps German source phrases to per-language translations.
// Keys may be substrings of each other; lookup order is by descending
// key length so longer phrases win.
var phraseTable = map[string]map[string]string{
	"Bundesrepublik Deutschland": {
		"en": "Federal Republic of Germany",
		"tr": "Almanya Federal Cumhuriyeti",
		"ru": "Федеративная Республика Германия",
	},
	"Grundgesetz": {
		"en": "Basic Law",
		"tr": "Anayasa",
		"ru": "Основной закон",
	},
	"Bundestag": {
		"en": "Federal Parliament",
		"tr": "Federal Meclis",
		"ru": "Бундестаг",
	},
	"Bundesrat": {
		"en": "Federal Council",
		"tr": "Federal Konsey",
		"ru": "Бундесрат",
	},
	"Bundesland": {
		"en": "federal state",
		"tr": "eyalet",
		"ru": "федеральная земля",
	},
	"Bundesländer": {
		"en": "federal states",
		"tr": "eyaletler",
		"ru": "федеральные земли",
	},
	"Meinungsfreiheit": {
		"en": "freedom of expression",
		"tr": "ifade özgürlüğü",
		"ru": "свобода слова",
	},
	"Religionsfreiheit": {
		"en": "freedom of religion",
		"tr": "din özgürlüğü",
		"ru": "свобода вероисповедания",
	},
	"Menschenwürde": {
		"en": "human dignity",
		"tr": "insan onuru",
		"ru": "человеческое достоинство",
	},
	"Wahlrecht": {
		"en": "right to vote",
		"tr": "oy hakkı",
		"ru": "избирательное право",
	},
	"Verfassung": {
		"en": "constitution",
		"tr": "anayasa",
		"ru": "конституция",
	},
	"Gesetz": {
		"en": "law",
		"tr": "yasa",
		"ru": "закон",
	},
	"Regierung": {
		"en": "government",
		"tr": "hükümet",
		"ru": "правительство",
	},
	"Bundeskanzler": {
		"en": "Federal Chancellor",
		"tr": "Federal Şansölye",
		"ru": "федеральный канцлер",
	},
	"Bundespräsident": {
		"en": "Federal President",
		"tr": "Cumhurbaşkanı",
		"ru": "федеральный президент",
	},
	"Deutschland": {
		"en": "Germany",
		"tr": "Almanya",
		"ru": "Германия",
	},
	"Demokratie": {
		"en": "democracy",
		"tr": "demokrasi",
		"ru": "демократия",
	},
	"Rechtsstaat": {
		"en": "rule of law",
		"tr": "hukuk devleti",
		"ru": "правовое государство",
	},
	"Europäische Union": {
		"en": "European Union",
		"tr": "Avrupa Birliği",
		"ru": "Европейский союз",
	},
	"Landtag": {
		"en": "state parliament",
		"tr": "eyalet meclisi",
		"ru": "ландтаг",
	},
	"Hauptstadt": {
		"en": "capital city",
		"tr": "başkent",
		"ru": "столица",
	},
	"Wappen": {
		"en": "coat of arms",
		"tr": "arma",
		"ru": "герб",
	},
	"Nationalsozialismus": {
		"en": "National Socialism",
		"tr": "Nasyonal Sosyalizm",
		"ru": "национал-социализм",
	},
	"Zweiter Weltkrieg": {
		"en": "Second World War",
		"tr": "İkinci Dünya Savaşı",
		"ru": "Вторая мировая война",
	},
}

// starterRewrites are weak prefix fallbacks for common German question
// openers, applied only for the default language.
var starterRewrites = []struct {
	prefix  string
	rewrite string
}{
	{"Was ist ", "What is "},
	{"Was bedeutet ", "What does it mean: "},
	{"Wie viele ", "How many "},
	{"Wie heißt ", "What is the name of "},
	{"Wer wählt ", "Who elects "},
	{"Wer ", "Who "},
	{"Welches ", "Which "},
	{"Welche ", "Which "},
	{"Wann ", "When "},
	{"Warum ", "Why "},
	{"Wo ", "Where "},
}

// Dictionary is a bounded German-source phrase translator.
type Dictionary struct {
	phrasesByLen []string
}

// NewDictionary builds a dictionary over the built-in phrase table.
func NewDictionary() *Dictionary {
	phrases := make([]string, 0, len(phraseTable))
	for p := range phraseTable {
		phrases = append(phrases, p)
	}
	sort.Slice(phrases, func(i, j int) bool {
		if len(phrases[i]) == len(phrases[j]) {
			return phrases[i] < phrases[j]
		}
		return len(phrases[i]) > len(phrases[j])
	})
	return &Dictionary{phrasesByLen: phrases}
}

// Translate renders text in lang. It tries an exact phrase hit, then
// substring substitution, then question-starter rewrites for the
// default language, and finally a bracketed language tag so degraded
// output is always visible.
func (d *Dictionary) Translate(text, lang string) string {
	if lang == model.SourceLang || text == "" {
		return text
	}
	if entry, ok := phraseTable[text]; ok {
		if out, ok := entry[lang]; ok {
			return out
		}
	}

	result := text
	substituted := false
	for _, phrase := range d.phrasesByLen {
		repl, ok := phraseTable[phrase][lang]
		if !ok {
			continue
		}
		next, fired := replaceAllFold(result, phrase, repl)
		if fired {
			result = next
			substituted = true
		}
	}
	if substituted {
		return result
	}

	if lang == model.DefaultLang && strings.HasSuffix(text, "?") {
		for _, sr := range starterRewrites {
			if strings.HasPrefix(text, sr.prefix) {
				return sr.rewrite + text[len(sr.prefix):]
			}
		}
	}

	return "[" + strings.ToUpper(lang) + "] " + text
}

// replaceAllFold replaces every case-insensitive occurrence of old with
// new, keeping new as-is. It reports whether any replacement happened.
func replaceAllFold(s, old, new string) (string, bool) {
	if old == "" {
		return s, false
	}
	lower := strings.ToLower(s)
	oldLower := strings.ToLower(old)
	var b strings.Builder
	fired := false
	i := 0
	for {
		j := strings.Index(lower[i:], oldLower)
		if j < 0 {
			b.WriteString(s[i:])
			break
		}
		j += i
		b.WriteString(s[i:j])
		b.WriteString(new)
		fired = true
		i = j + len(old)
	}
	if !fired {
		return s, false
	}
	return b.String(), true
}
