package translate

import (
	"strings"
	"unicode"

	"github.com/lidtrain/lidtrain/internal/model"
)

// germanMarkers are common short German function words. A precomputed
// translation containing any of them as a whole word is treated as
// untranslated source text leaking through.
var germanMarkers = []string{
	"der", "die", "das", "und", "ist", "sind", "nicht",
	"ein", "eine", "für", "mit", "von", "wird", "oder",
}

// Resolver picks the display text for a question in a target language,
// cascading over region translations, embedded translations and the
// dictionary fallback.
type Resolver struct {
	dict *Dictionary
}

// NewResolver builds a resolver around the given dictionary.
func NewResolver(dict *Dictionary) *Resolver {
	return &Resolver{dict: dict}
}

// Resolve returns the display text for q in lang. The result depends
// only on (q, lang, bank), so repeated calls are identical.
func (r *Resolver) Resolve(q model.Question, lang string, bank *model.Bank) model.DisplayText {
	if lang == model.SourceLang {
		return model.DisplayText{
			Prompt:      q.Prompt,
			Options:     append([]string(nil), q.Options...),
			Explanation: q.Explanation,
		}
	}

	pre, havePre := r.precomputed(q, lang, bank)

	out := model.DisplayText{Options: make([]string, len(q.Options))}

	if havePre && pre.Prompt != "" && !LooksLikeSource(pre.Prompt) {
		out.Prompt = pre.Prompt
	} else {
		out.Prompt = r.dict.Translate(q.Prompt, lang)
	}

	usePreOptions := havePre && len(pre.Options) == len(q.Options)
	for i, opt := range q.Options {
		if usePreOptions && pre.Options[i] != "" && !LooksLikeSource(pre.Options[i]) {
			out.Options[i] = pre.Options[i]
			continue
		}
		out.Options[i] = r.dict.Translate(opt, lang)
	}

	switch {
	case !havePre || pre.Explanation == "":
		out.Explanation = r.dict.Translate(q.Explanation, lang)
	case pre.Explanation == q.Explanation:
		// Precomputed entry carried the source explanation verbatim.
		out.Explanation = r.dict.Translate(q.Explanation, lang)
	case LooksLikeSource(pre.Explanation):
		out.Explanation = r.dict.Translate(q.Explanation, lang)
	default:
		out.Explanation = pre.Explanation
	}

	return out
}

// precomputed finds the highest-priority stored translation: the
// question's entry in its own region list wins over the embedded map.
func (r *Resolver) precomputed(q model.Question, lang string, bank *model.Bank) (model.Translation, bool) {
	if bank != nil && q.Region != "" {
		for _, rq := range bank.RegionQuestions(q.Region) {
			if rq.ID != q.ID {
				continue
			}
			if tr, ok := rq.Translations[lang]; ok {
				return tr, true
			}
			break
		}
	}
	if tr, ok := q.Translations[lang]; ok {
		return tr, true
	}
	return model.Translation{}, false
}

// LooksLikeSource reports whether text reads as untranslated German,
// based on whole-word matches of common function words.
func LooksLikeSource(text string) bool {
	if text == "" {
		return false
	}
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, w := range words {
		for _, marker := range germanMarkers {
			if w == marker {
				return true
			}
		}
	}
	return false
}
