// Package stats contains progress summary calculations and reporting.
package stats

import (
	"sort"

	"github.com/lidtrain/lidtrain/internal/model"
)

// CategoryStat summarizes progress within one category.
type CategoryStat struct {
	Category  string
	Total     int
	Completed int
	Correct   int
	Incorrect int
	Flagged   int
}

// Summary is the precomputed data for the stats report.
type Summary struct {
	TotalQuestions int
	Answered       int
	Correct        int
	Accuracy       float64
	XP             int
	Streak         int
	MaxStreak      int
	Badges         []string
	Categories     []CategoryStat
}

// BuildSummary aggregates progress against the global bank. Category
// rows keep the bank's first-seen category order.
func BuildSummary(bank *model.Bank, prog *model.UserProgress) Summary {
	s := Summary{
		TotalQuestions: len(bank.Questions),
		Answered:       prog.Answered,
		Correct:        prog.Correct,
		XP:             prog.XP,
		Streak:         prog.Streak,
		MaxStreak:      prog.MaxStreak,
	}
	if prog.Answered > 0 {
		s.Accuracy = float64(prog.Correct) / float64(prog.Answered)
	}

	for badge := range prog.Badges {
		s.Badges = append(s.Badges, badge)
	}
	sort.Strings(s.Badges)

	index := map[string]int{}
	for _, q := range bank.Questions {
		cat := q.Category
		if cat == "" {
			cat = "uncategorized"
		}
		i, ok := index[cat]
		if !ok {
			i = len(s.Categories)
			index[cat] = i
			s.Categories = append(s.Categories, CategoryStat{Category: cat})
		}
		cs := &s.Categories[i]
		cs.Total++
		if prog.IsCompleted(q.ID) {
			cs.Completed++
		}
		if prog.IsCorrect(q.ID) {
			cs.Correct++
		}
		if prog.IsIncorrect(q.ID) {
			cs.Incorrect++
		}
		if prog.IsFlagged(q.ID) {
			cs.Flagged++
		}
	}
	return s
}
