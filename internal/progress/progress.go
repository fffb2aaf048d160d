// Package progress applies answer and flag events to user progress.
package progress

import "github.com/lidtrain/lidtrain/internal/model"

// XPPerCorrect is the experience gain for a correct answer.
const XPPerCorrect = 10

// Badge identifiers, each granted at most once per progress lifetime.
const (
	BadgeStreak5  = "streak-5"
	BadgeStreak10 = "streak-10"
	BadgeXP100    = "xp-100"
	BadgeXP500    = "xp-500"
)

// ApplyAnswer records one answered question and returns any badges
// granted by the crossing thresholds. Incorrect answers reset the
// streak; membership in the incorrect set always reflects the most
// recent answer.
func ApplyAnswer(p *model.UserProgress, questionID string, correct bool) []string {
	p.Answered++
	p.Completed[questionID] = struct{}{}
	if correct {
		p.Correct++
		p.XP += XPPerCorrect
		p.Streak++
		if p.Streak > p.MaxStreak {
			p.MaxStreak = p.Streak
		}
		delete(p.Incorrect, questionID)
	} else {
		p.Streak = 0
		p.Incorrect[questionID] = struct{}{}
	}
	return grantBadges(p)
}

// ToggleFlag flips the flagged state of a question and reports the new
// state.
func ToggleFlag(p *model.UserProgress, questionID string) bool {
	if p.IsFlagged(questionID) {
		delete(p.Flagged, questionID)
		return false
	}
	p.Flagged[questionID] = struct{}{}
	return true
}

func grantBadges(p *model.UserProgress) []string {
	var granted []string
	check := func(badge string, earned bool) {
		if !earned {
			return
		}
		if _, ok := p.Badges[badge]; ok {
			return
		}
		p.Badges[badge] = struct{}{}
		granted = append(granted, badge)
	}
	check(BadgeStreak5, p.Streak >= 5)
	check(BadgeStreak10, p.Streak >= 10)
	check(BadgeXP100, p.XP >= 100)
	check(BadgeXP500, p.XP >= 500)
	return granted
}
