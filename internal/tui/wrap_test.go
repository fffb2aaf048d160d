package tui

import (
	"strings"
	"testing"
)

func TestWrapTextShortLineUntouched(t *testing.T) {
	if got := wrapText("kurzer Satz", 40); got != "kurzer Satz" {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func TestWrapTextBreaksAtWords(t *testing.T) {
	got := wrapText("Was ist die Hauptstadt von Deutschland", 15)
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 15 {
			t.Fatalf("line too wide: %q", line)
		}
	}
	if strings.Contains(got, "Hauptst\nadt") {
		t.Fatalf("word broken unnecessarily: %q", got)
	}
}

func TestWrapTextHardBreaksOverlongWord(t *testing.T) {
	got := wrapText("Donaudampfschifffahrtsgesellschaft", 10)
	lines := strings.Split(got, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected hard breaks, got %q", got)
	}
}

func TestWrapTextZeroWidth(t *testing.T) {
	if got := wrapText("unverändert", 0); got != "unverändert" {
		t.Fatalf("zero width must pass through: %q", got)
	}
}
