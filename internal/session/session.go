// Package session drives the practice state machine: the filtered view,
// the cursor, answer reveal and the deferred removal transition.
package session

import (
	"time"

	"github.com/lidtrain/lidtrain/internal/filter"
	"github.com/lidtrain/lidtrain/internal/model"
	"github.com/lidtrain/lidtrain/internal/progress"
)

// Config holds timing and mode settings for a session.
type Config struct {
	Auto        bool
	AutoDelay   time.Duration
	RemoveDelay time.Duration
}

// Outcome describes what an answer event triggered. The caller is
// responsible for scheduling the delayed transition when Delay > 0.
type Outcome struct {
	Ignored bool
	Correct bool
	Removal bool
	Advance bool
	Delay   time.Duration
	Badges  []string
}

type pendingRemoval struct {
	wasLast bool
}

// Session is the single-writer practice state. It is not safe for
// concurrent use; the event loop is the only caller.
type Session struct {
	bank *model.Bank
	sel  model.FilterSelection
	prog *model.UserProgress
	cfg  Config

	view    filter.View
	cursor  int
	display *model.Question

	last            *model.AnswerRecord
	showTranslation bool
	removal         *pendingRemoval
}

// New builds a session over the bank with an initial selection.
func New(bank *model.Bank, sel model.FilterSelection, prog *model.UserProgress, cfg Config) *Session {
	s := &Session{bank: bank, sel: sel, prog: prog, cfg: cfg}
	s.refresh()
	s.syncDisplay()
	return s
}

// View returns the current filtered view.
func (s *Session) View() filter.View { return s.view }

// Cursor returns the current cursor index.
func (s *Session) Cursor() int { return s.cursor }

// Selection returns the active filter selection.
func (s *Session) Selection() model.FilterSelection { return s.sel }

// Progress returns the session's progress state.
func (s *Session) Progress() *model.UserProgress { return s.prog }

// Auto reports whether auto-advance is enabled.
func (s *Session) Auto() bool { return s.cfg.Auto }

// ToggleAuto flips auto-advance mode.
func (s *Session) ToggleAuto() { s.cfg.Auto = !s.cfg.Auto }

// Revealed reports whether an answer is currently revealed.
func (s *Session) Revealed() bool { return s.last != nil }

// LastAnswer returns the revealed answer record, or nil.
func (s *Session) LastAnswer() *model.AnswerRecord { return s.last }

// TranslationShown reports the translation-reveal flag.
func (s *Session) TranslationShown() bool { return s.showTranslation }

// ToggleTranslation flips the translation-reveal flag.
func (s *Session) ToggleTranslation() { s.showTranslation = !s.showTranslation }

// Current returns the display question. It lags the cursor while an
// answer is revealed so feedback never jumps to another question.
func (s *Session) Current() (model.Question, bool) {
	if s.display == nil {
		return model.Question{}, false
	}
	return *s.display, true
}

// Empty reports whether the filtered view has no questions.
func (s *Session) Empty() bool { return len(s.view.Questions) == 0 }

// SetRegions replaces the region facet and resets the cursor.
func (s *Session) SetRegions(regions map[string]struct{}) {
	s.sel.Regions = regions
	s.resetAfterFacetChange()
}

// SetCategories replaces the category facet and resets the cursor.
func (s *Session) SetCategories(categories map[string]struct{}) {
	s.sel.Categories = categories
	s.resetAfterFacetChange()
}

// ToggleStatus flips one status facet value. The cursor is kept where
// possible and clamped otherwise.
func (s *Session) ToggleStatus(st model.Status) {
	if s.sel.HasStatus(st) {
		delete(s.sel.Statuses, st)
	} else {
		s.sel.Statuses[st] = struct{}{}
	}
	s.clearReveal()
	s.refresh()
	s.clampCursor()
	s.syncDisplay()
}

// ClearFilters empties all three facets.
func (s *Session) ClearFilters() {
	s.sel = model.NewFilterSelection()
	s.resetAfterFacetChange()
}

// Answer reveals the given option for the display question, records it
// against progress and detects whether the question is about to leave
// the filtered view. Repeated answers while revealed are ignored.
func (s *Session) Answer(optionIndex int) Outcome {
	if s.last != nil || s.display == nil {
		return Outcome{Ignored: true}
	}
	q := *s.display
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return Outcome{Ignored: true}
	}

	correct := optionIndex == q.AnswerIndex
	s.last = &model.AnswerRecord{OptionIndex: optionIndex, Correct: correct}

	removal := (s.sel.OnlyStatus(model.StatusIncorrect) && correct) ||
		(s.sel.OnlyStatus(model.StatusCorrect) && !correct)
	wasLast := s.cursor == len(s.view.Questions)-1

	badges := progress.ApplyAnswer(s.prog, q.ID, correct)

	// Counts refresh immediately; the display question stays latched
	// and cursor repair waits for the removal transition.
	s.refresh()

	out := Outcome{Correct: correct, Badges: badges}
	if removal {
		s.removal = &pendingRemoval{wasLast: wasLast}
		out.Removal = true
		out.Delay = s.cfg.RemoveDelay
		if s.cfg.Auto {
			out.Delay = s.cfg.AutoDelay
		}
		return out
	}
	if s.cfg.Auto {
		out.Advance = true
		out.Delay = s.cfg.AutoDelay
	}
	return out
}

// CompleteRemoval finishes the deferred transition after an answered
// question dropped out of the view: feedback clears first, then the
// cursor is repaired, then the display question refreshes.
func (s *Session) CompleteRemoval() {
	if s.removal == nil {
		return
	}
	wasLast := s.removal.wasLast
	s.removal = nil
	s.clearReveal()
	if wasLast {
		s.cursor = 0
	}
	s.clampCursor()
	s.syncDisplay()
}

// Advance moves to the next question, wrapping at the end.
func (s *Session) Advance() {
	s.navigateTo(s.cursor + 1)
}

// Previous moves to the previous question, wrapping at the start.
func (s *Session) Previous() {
	s.navigateTo(s.cursor - 1)
}

// JumpTo moves the cursor to a 0-based index in the view.
func (s *Session) JumpTo(index int) {
	s.navigateTo(index)
}

// JumpToPage moves to a 1-based page as produced by Pages.
func (s *Session) JumpToPage(page int) {
	s.navigateTo(page - 1)
}

// ToggleFlagCurrent flips the flag of the display question and reports
// the new state.
func (s *Session) ToggleFlagCurrent() bool {
	if s.display == nil {
		return false
	}
	flagged := progress.ToggleFlag(s.prog, s.display.ID)
	s.refresh()
	if s.last == nil {
		s.clampCursor()
		s.syncDisplay()
	}
	return flagged
}

// PageItems returns the compact pagination listing for the view with
// the cursor as the current page.
func (s *Session) PageItems() []PageItem {
	return Pages(len(s.view.Questions), s.cursor+1)
}

func (s *Session) navigateTo(index int) {
	s.removal = nil
	s.clearReveal()
	n := len(s.view.Questions)
	if n == 0 {
		s.cursor = 0
		s.syncDisplay()
		return
	}
	switch {
	case index >= n:
		index = 0
	case index < 0:
		index = n - 1
	}
	s.cursor = index
	s.syncDisplay()
}

func (s *Session) resetAfterFacetChange() {
	s.removal = nil
	s.clearReveal()
	s.cursor = 0
	s.refresh()
	s.syncDisplay()
}

func (s *Session) clearReveal() {
	s.last = nil
	s.showTranslation = false
}

func (s *Session) refresh() {
	s.view = filter.Compute(s.bank, s.sel, s.prog)
}

// clampCursor restores the cursor invariant: any out-of-range index
// falls back to 0 rather than failing.
func (s *Session) clampCursor() {
	if s.cursor < 0 || s.cursor >= len(s.view.Questions) {
		s.cursor = 0
	}
}

func (s *Session) syncDisplay() {
	if s.last != nil {
		return
	}
	if len(s.view.Questions) == 0 {
		s.display = nil
		return
	}
	q := s.view.Questions[s.cursor]
	s.display = &q
}
