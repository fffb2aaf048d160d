// Package model defines shared data structures.
package model

// SourceLang is the language the question bank is authored in.
const SourceLang = "de"

// DefaultLang is the fallback display language.
const DefaultLang = "en"

// Translation holds translated display fields for one language.
type Translation struct {
	Prompt      string
	Options     []string
	Explanation string
}

// Question is one immutable entry of the question bank.
type Question struct {
	ID           string
	Category     string
	Prompt       string
	Options      []string
	AnswerIndex  int
	Explanation  string
	Image        string
	Region       string
	Translations map[string]Translation
}

// RegionBank is an ordered region-specific question list.
type RegionBank struct {
	Region    string
	Questions []Question
}

// Bank is the loaded question data: the global list plus region lists
// in load order.
type Bank struct {
	Questions []Question
	Regions   []RegionBank
}

// RegionQuestions returns the question list for a region, or nil.
func (b *Bank) RegionQuestions(region string) []Question {
	for _, rb := range b.Regions {
		if rb.Region == region {
			return rb.Questions
		}
	}
	return nil
}

// Status identifies an answer-status facet value.
type Status string

// Status facet values.
const (
	StatusFlagged   Status = "flagged"
	StatusIncorrect Status = "incorrect"
	StatusCorrect   Status = "correct"
)

// FilterSelection holds the three independent filter facets. An empty
// facet means "no filter", never "exclude all".
type FilterSelection struct {
	Regions    map[string]struct{}
	Categories map[string]struct{}
	Statuses   map[Status]struct{}
}

// NewFilterSelection returns an empty selection with allocated sets.
func NewFilterSelection() FilterSelection {
	return FilterSelection{
		Regions:    map[string]struct{}{},
		Categories: map[string]struct{}{},
		Statuses:   map[Status]struct{}{},
	}
}

// HasStatus reports whether the status facet contains s.
func (f FilterSelection) HasStatus(s Status) bool {
	_, ok := f.Statuses[s]
	return ok
}

// OnlyStatus reports whether the status facet is exactly {s}.
func (f FilterSelection) OnlyStatus(s Status) bool {
	return len(f.Statuses) == 1 && f.HasStatus(s)
}

// UserProgress is the mutable, persisted practice state.
type UserProgress struct {
	XP        int
	Streak    int
	MaxStreak int
	Answered  int
	Correct   int
	Completed map[string]struct{}
	Incorrect map[string]struct{}
	Flagged   map[string]struct{}
	Badges    map[string]struct{}
}

// NewUserProgress returns empty progress with allocated sets.
func NewUserProgress() *UserProgress {
	return &UserProgress{
		Completed: map[string]struct{}{},
		Incorrect: map[string]struct{}{},
		Flagged:   map[string]struct{}{},
		Badges:    map[string]struct{}{},
	}
}

// IsCompleted reports whether the question was answered at least once.
func (p *UserProgress) IsCompleted(id string) bool {
	_, ok := p.Completed[id]
	return ok
}

// IsIncorrect reports whether the most recent answer was wrong.
func (p *UserProgress) IsIncorrect(id string) bool {
	_, ok := p.Incorrect[id]
	return ok
}

// IsCorrect reports whether the question counts as correctly answered.
// Correct means completed and not currently marked incorrect.
func (p *UserProgress) IsCorrect(id string) bool {
	return p.IsCompleted(id) && !p.IsIncorrect(id)
}

// IsFlagged reports whether the question is flagged.
func (p *UserProgress) IsFlagged(id string) bool {
	_, ok := p.Flagged[id]
	return ok
}

// AnswerRecord captures the revealed answer of the current question.
type AnswerRecord struct {
	OptionIndex int
	Correct     bool
}

// DisplayText is the resolved per-language rendering of a question.
type DisplayText struct {
	Prompt      string
	Options     []string
	Explanation string
}
