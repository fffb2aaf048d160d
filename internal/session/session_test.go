package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/lidtrain/lidtrain/internal/model"
)

func sessionBank(n int) *model.Bank {
	questions := make([]model.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, model.Question{
			ID:          fmt.Sprintf("q%d", i),
			Category:    "politics",
			Prompt:      fmt.Sprintf("Frage %d", i),
			Options:     []string{"a", "b", "c", "d"},
			AnswerIndex: 0,
		})
	}
	return &model.Bank{Questions: questions}
}

func newTestSession(bank *model.Bank, sel model.FilterSelection, prog *model.UserProgress) *Session {
	return New(bank, sel, prog, Config{
		AutoDelay:   2 * time.Second,
		RemoveDelay: 500 * time.Millisecond,
	})
}

func TestAnswerRevealsAndRecords(t *testing.T) {
	prog := model.NewUserProgress()
	s := newTestSession(sessionBank(5), model.NewFilterSelection(), prog)

	out := s.Answer(0)
	if out.Ignored || !out.Correct {
		t.Fatalf("unexpected outcome: %+v", out)
	}
	if !s.Revealed() {
		t.Fatalf("expected revealed state")
	}
	if !prog.IsCorrect("q0") {
		t.Fatalf("answer not recorded")
	}
}

func TestAnswerIgnoredWhileRevealed(t *testing.T) {
	s := newTestSession(sessionBank(5), model.NewFilterSelection(), model.NewUserProgress())
	s.Answer(1)
	out := s.Answer(0)
	if !out.Ignored {
		t.Fatalf("second answer must be ignored while revealed")
	}
}

func TestNavigationResetsReveal(t *testing.T) {
	s := newTestSession(sessionBank(5), model.NewFilterSelection(), model.NewUserProgress())
	s.Answer(2)
	s.ToggleTranslation()
	s.Advance()
	if s.Revealed() || s.TranslationShown() {
		t.Fatalf("navigation must clear reveal state")
	}
	if s.Cursor() != 1 {
		t.Fatalf("expected cursor 1, got %d", s.Cursor())
	}
}

func TestAdvanceWraps(t *testing.T) {
	s := newTestSession(sessionBank(3), model.NewFilterSelection(), model.NewUserProgress())
	s.JumpTo(2)
	s.Advance()
	if s.Cursor() != 0 {
		t.Fatalf("expected wrap to 0, got %d", s.Cursor())
	}
	s.Previous()
	if s.Cursor() != 2 {
		t.Fatalf("expected wrap to end, got %d", s.Cursor())
	}
}

func TestFacetChangeResetsCursor(t *testing.T) {
	s := newTestSession(sessionBank(5), model.NewFilterSelection(), model.NewUserProgress())
	s.JumpTo(3)
	s.SetCategories(map[string]struct{}{"politics": {}})
	if s.Cursor() != 0 {
		t.Fatalf("category change must reset cursor, got %d", s.Cursor())
	}
}

func TestRemovalTransitionOnCorrectingIncorrect(t *testing.T) {
	prog := model.NewUserProgress()
	prog.Completed["q1"] = struct{}{}
	prog.Incorrect["q1"] = struct{}{}
	prog.Completed["q3"] = struct{}{}
	prog.Incorrect["q3"] = struct{}{}

	sel := model.NewFilterSelection()
	sel.Statuses[model.StatusIncorrect] = struct{}{}
	s := newTestSession(sessionBank(5), sel, prog)
	if len(s.View().Questions) != 2 {
		t.Fatalf("expected 2 incorrect questions, got %d", len(s.View().Questions))
	}

	// Move to the last remaining item and answer it correctly.
	s.JumpTo(1)
	cur, ok := s.Current()
	if !ok || cur.ID != "q3" {
		t.Fatalf("unexpected current question: %+v", cur)
	}
	out := s.Answer(0)
	if !out.Removal {
		t.Fatalf("expected removal transition: %+v", out)
	}
	if out.Delay != 500*time.Millisecond {
		t.Fatalf("expected short manual removal delay, got %v", out.Delay)
	}

	// Feedback stays on the answered question until the transition
	// completes, even though the view already shrank.
	if cur, _ := s.Current(); cur.ID != "q3" {
		t.Fatalf("display question jumped mid-feedback to %s", cur.ID)
	}
	if len(s.View().Questions) != 1 {
		t.Fatalf("counts/view must refresh immediately, got %d", len(s.View().Questions))
	}

	s.CompleteRemoval()
	if s.Revealed() {
		t.Fatalf("removal completion must clear the answer record")
	}
	if s.Cursor() != 0 {
		t.Fatalf("cursor must snap to 0 from the last position, got %d", s.Cursor())
	}
	if cur, _ := s.Current(); cur.ID != "q1" {
		t.Fatalf("expected display on q1, got %s", cur.ID)
	}
}

func TestRemovalDelayLongerInAutoMode(t *testing.T) {
	prog := model.NewUserProgress()
	prog.Completed["q0"] = struct{}{}
	prog.Incorrect["q0"] = struct{}{}
	sel := model.NewFilterSelection()
	sel.Statuses[model.StatusIncorrect] = struct{}{}
	s := New(sessionBank(3), sel, prog, Config{
		Auto:        true,
		AutoDelay:   2 * time.Second,
		RemoveDelay: 500 * time.Millisecond,
	})
	out := s.Answer(0)
	if !out.Removal || out.Delay != 2*time.Second {
		t.Fatalf("expected auto-mode removal delay, got %+v", out)
	}
}

func TestNoRemovalWithMixedStatusSelection(t *testing.T) {
	prog := model.NewUserProgress()
	prog.Completed["q0"] = struct{}{}
	prog.Incorrect["q0"] = struct{}{}
	sel := model.NewFilterSelection()
	sel.Statuses[model.StatusIncorrect] = struct{}{}
	sel.Statuses[model.StatusFlagged] = struct{}{}
	s := newTestSession(sessionBank(3), sel, prog)
	out := s.Answer(0)
	if out.Removal {
		t.Fatalf("removal applies only to an exact single-status facet")
	}
}

func TestAutoAdvanceOutcome(t *testing.T) {
	s := New(sessionBank(3), model.NewFilterSelection(), model.NewUserProgress(), Config{
		Auto:      true,
		AutoDelay: time.Second,
	})
	out := s.Answer(0)
	if !out.Advance || out.Delay != time.Second {
		t.Fatalf("expected auto-advance outcome, got %+v", out)
	}
}

func TestCursorInvariantUnderChurn(t *testing.T) {
	prog := model.NewUserProgress()
	s := newTestSession(sessionBank(6), model.NewFilterSelection(), prog)

	steps := []func(){
		func() { s.JumpTo(5) },
		func() { s.Answer(1); s.Advance() },
		func() { s.ToggleStatus(model.StatusIncorrect) },
		func() { s.Answer(0); s.CompleteRemoval() },
		func() { s.ToggleStatus(model.StatusIncorrect) },
		func() { s.ToggleStatus(model.StatusCorrect) },
		func() { s.Previous() },
		func() { s.ClearFilters() },
	}
	for i, step := range steps {
		step()
		n := len(s.View().Questions)
		if n == 0 {
			continue
		}
		if s.Cursor() < 0 || s.Cursor() >= n {
			t.Fatalf("step %d: cursor %d out of range [0,%d)", i, s.Cursor(), n)
		}
	}
}

func TestEmptyViewIsFirstClassState(t *testing.T) {
	sel := model.NewFilterSelection()
	sel.Statuses[model.StatusFlagged] = struct{}{}
	s := newTestSession(sessionBank(4), sel, model.NewUserProgress())
	if !s.Empty() {
		t.Fatalf("expected empty view")
	}
	if _, ok := s.Current(); ok {
		t.Fatalf("no display question expected for empty view")
	}
	out := s.Answer(0)
	if !out.Ignored {
		t.Fatalf("answers on empty view must be ignored")
	}
	s.ClearFilters()
	if s.Empty() {
		t.Fatalf("clearing filters must restore the bank")
	}
}

func TestToggleFlagCurrent(t *testing.T) {
	s := newTestSession(sessionBank(4), model.NewFilterSelection(), model.NewUserProgress())
	if !s.ToggleFlagCurrent() {
		t.Fatalf("expected flag set")
	}
	if s.View().Counts.Flagged != 1 {
		t.Fatalf("flag count must refresh, got %d", s.View().Counts.Flagged)
	}
}
