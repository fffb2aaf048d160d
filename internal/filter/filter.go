// Package filter computes the active question subset from the three
// independent facets: region, category and answer status.
package filter

import "github.com/lidtrain/lidtrain/internal/model"

// Counts holds live status-facet counts, derived from the candidate set
// before the status facet applies so toggling one status never changes
// the counts of the others.
type Counts struct {
	Flagged   int
	Incorrect int
	Correct   int
}

// View is the filtered question sequence plus its facet counts.
type View struct {
	Questions []model.Question
	Counts    Counts
}

// Compute evaluates the facets against the bank in fixed order:
// region, then category, then status. Output keeps the candidate
// set's natural order.
func Compute(bank *model.Bank, sel model.FilterSelection, prog *model.UserProgress) View {
	candidates := regionCandidates(bank, sel)

	if len(sel.Categories) > 0 {
		kept := make([]model.Question, 0, len(candidates))
		for _, q := range candidates {
			if _, ok := sel.Categories[q.Category]; ok {
				kept = append(kept, q)
			}
		}
		candidates = kept
	}

	counts := countStatuses(candidates, prog)

	if len(sel.Statuses) > 0 {
		kept := make([]model.Question, 0, len(candidates))
		for _, q := range candidates {
			if matchesAnyStatus(q.ID, sel, prog) {
				kept = append(kept, q)
			}
		}
		candidates = kept
	}

	return View{Questions: candidates, Counts: counts}
}

func regionCandidates(bank *model.Bank, sel model.FilterSelection) []model.Question {
	if len(sel.Regions) == 0 {
		return append([]model.Question(nil), bank.Questions...)
	}
	var out []model.Question
	for _, rb := range bank.Regions {
		if _, ok := sel.Regions[rb.Region]; ok {
			out = append(out, rb.Questions...)
		}
	}
	return out
}

func countStatuses(candidates []model.Question, prog *model.UserProgress) Counts {
	var c Counts
	for _, q := range candidates {
		if prog.IsFlagged(q.ID) {
			c.Flagged++
		}
		if prog.IsIncorrect(q.ID) {
			c.Incorrect++
		}
		if prog.IsCorrect(q.ID) {
			c.Correct++
		}
	}
	return c
}

func matchesAnyStatus(id string, sel model.FilterSelection, prog *model.UserProgress) bool {
	if sel.HasStatus(model.StatusFlagged) && prog.IsFlagged(id) {
		return true
	}
	if sel.HasStatus(model.StatusIncorrect) && prog.IsIncorrect(id) {
		return true
	}
	if sel.HasStatus(model.StatusCorrect) && prog.IsCorrect(id) {
		return true
	}
	return false
}
