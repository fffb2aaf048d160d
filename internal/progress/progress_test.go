package progress

import (
	"testing"

	"github.com/lidtrain/lidtrain/internal/model"
)

func TestApplyAnswerCorrect(t *testing.T) {
	p := model.NewUserProgress()
	ApplyAnswer(p, "q1", true)
	if p.Answered != 1 || p.Correct != 1 {
		t.Fatalf("unexpected counters: answered=%d correct=%d", p.Answered, p.Correct)
	}
	if p.XP != XPPerCorrect {
		t.Fatalf("unexpected xp: %d", p.XP)
	}
	if p.Streak != 1 || p.MaxStreak != 1 {
		t.Fatalf("unexpected streak: %d/%d", p.Streak, p.MaxStreak)
	}
	if !p.IsCompleted("q1") || !p.IsCorrect("q1") {
		t.Fatalf("expected q1 completed and correct")
	}
}

func TestApplyAnswerIncorrectResetsStreak(t *testing.T) {
	p := model.NewUserProgress()
	ApplyAnswer(p, "q1", true)
	ApplyAnswer(p, "q2", true)
	ApplyAnswer(p, "q3", false)
	if p.Streak != 0 {
		t.Fatalf("streak must reset on incorrect, got %d", p.Streak)
	}
	if p.MaxStreak != 2 {
		t.Fatalf("max streak must survive reset, got %d", p.MaxStreak)
	}
	if !p.IsIncorrect("q3") {
		t.Fatalf("expected q3 in incorrect set")
	}
}

func TestApplyAnswerCorrectsPreviousMistake(t *testing.T) {
	p := model.NewUserProgress()
	ApplyAnswer(p, "q1", false)
	if p.IsCorrect("q1") {
		t.Fatalf("q1 must not be correct after wrong answer")
	}
	ApplyAnswer(p, "q1", true)
	if p.IsIncorrect("q1") {
		t.Fatalf("incorrect membership must track the most recent answer")
	}
	if !p.IsCorrect("q1") {
		t.Fatalf("expected q1 correct after correction")
	}
}

func TestStreakBadges(t *testing.T) {
	p := model.NewUserProgress()
	var granted []string
	for i := 0; i < 10; i++ {
		granted = ApplyAnswer(p, "q", true)
	}
	if _, ok := p.Badges[BadgeStreak5]; !ok {
		t.Fatalf("expected streak-5 badge")
	}
	if len(granted) == 0 || granted[0] != BadgeStreak10 {
		t.Fatalf("expected streak-10 on tenth answer, got %v", granted)
	}
}

func TestXPBadgeGrantedOnceAtCrossing(t *testing.T) {
	p := model.NewUserProgress()
	p.XP = 90
	granted := ApplyAnswer(p, "q1", true)
	found := false
	for _, b := range granted {
		if b == BadgeXP100 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected xp-100 at crossing, got %v", granted)
	}
	// Further answers past the threshold must not re-grant.
	for i := 0; i < 5; i++ {
		for _, b := range ApplyAnswer(p, "q1", true) {
			if b == BadgeXP100 {
				t.Fatalf("xp-100 granted twice")
			}
		}
	}
}

func TestToggleFlag(t *testing.T) {
	p := model.NewUserProgress()
	if !ToggleFlag(p, "q1") {
		t.Fatalf("expected flag on")
	}
	if ToggleFlag(p, "q1") {
		t.Fatalf("expected flag off")
	}
	if p.IsFlagged("q1") {
		t.Fatalf("flag not cleared")
	}
}
