package session

import "testing"

func pageNums(items []PageItem) []int {
	out := make([]int, len(items))
	for i, it := range items {
		if it.Ellipsis {
			out[i] = -1
		} else {
			out[i] = it.Page
		}
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPagesSmallTotalListsAll(t *testing.T) {
	items := Pages(7, 3)
	want := []int{1, 2, 3, 4, 5, 6, 7}
	if !equalInts(pageNums(items), want) {
		t.Fatalf("unexpected pages: %v", pageNums(items))
	}
}

func TestPagesScenarioTotal20Current10(t *testing.T) {
	items := Pages(20, 10)
	want := []int{1, -1, 8, 9, 10, 11, 12, -1, 20}
	if !equalInts(pageNums(items), want) {
		t.Fatalf("unexpected pages: %v", pageNums(items))
	}
}

func TestPagesWindowAtStart(t *testing.T) {
	items := Pages(20, 1)
	want := []int{1, 2, 3, -1, 20}
	if !equalInts(pageNums(items), want) {
		t.Fatalf("unexpected pages: %v", pageNums(items))
	}
}

func TestPagesWindowAtEnd(t *testing.T) {
	items := Pages(20, 20)
	want := []int{1, -1, 18, 19, 20}
	if !equalInts(pageNums(items), want) {
		t.Fatalf("unexpected pages: %v", pageNums(items))
	}
}

func TestPagesNoEllipsisWhenWindowTouchesEdge(t *testing.T) {
	// current=6: window 4..7 reaches total-1, so only the left gap
	// gets an ellipsis.
	items := Pages(8, 6)
	want := []int{1, -1, 4, 5, 6, 7, 8}
	if !equalInts(pageNums(items), want) {
		t.Fatalf("unexpected pages: %v", pageNums(items))
	}
}

func TestPagesEllipsisTargets(t *testing.T) {
	items := Pages(20, 10)
	if !items[1].Ellipsis || items[1].Target != 4 {
		t.Fatalf("left ellipsis target = %d, want 4", items[1].Target)
	}
	if !items[7].Ellipsis || items[7].Target != 16 {
		t.Fatalf("right ellipsis target = %d, want 16", items[7].Target)
	}
}

func TestPagesClampsCurrent(t *testing.T) {
	items := Pages(20, 99)
	last := items[len(items)-1]
	if last.Page != 20 {
		t.Fatalf("expected final page 20, got %d", last.Page)
	}
	if items[0].Page != 1 {
		t.Fatalf("expected first page 1, got %d", items[0].Page)
	}
}

func TestPagesZeroTotal(t *testing.T) {
	if items := Pages(0, 1); items != nil {
		t.Fatalf("expected nil for empty total, got %v", items)
	}
}
