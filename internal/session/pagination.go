package session

// PageItem is one entry of the compact pagination listing. Ellipsis
// entries carry the jump target between their numeric neighbors.
type PageItem struct {
	Page     int
	Ellipsis bool
	Target   int
}

// maxPlainPages is the largest page count listed without ellipsis.
const maxPlainPages = 7

// Pages computes the windowed page listing for a 1-based current page.
// Small totals list every page; larger totals keep the first and last
// page, a window around the current page, and ellipsis jumps for the
// gaps.
func Pages(total, current int) []PageItem {
	if total <= 0 {
		return nil
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}
	if total <= maxPlainPages {
		items := make([]PageItem, 0, total)
		for p := 1; p <= total; p++ {
			items = append(items, PageItem{Page: p})
		}
		return items
	}

	lo := current - 2
	if lo < 2 {
		lo = 2
	}
	hi := current + 2
	if hi > total-1 {
		hi = total - 1
	}

	items := make([]PageItem, 0, hi-lo+5)
	items = append(items, PageItem{Page: 1})
	if lo > 2 {
		items = append(items, PageItem{Ellipsis: true, Target: (1 + lo) / 2})
	}
	for p := lo; p <= hi; p++ {
		items = append(items, PageItem{Page: p})
	}
	if hi < total-1 {
		items = append(items, PageItem{Ellipsis: true, Target: (hi + total) / 2})
	}
	items = append(items, PageItem{Page: total})
	return items
}
