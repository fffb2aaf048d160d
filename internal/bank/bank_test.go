package bank

import (
	"os"
	"path/filepath"
	"testing"
)

const questionsJSON = `[
	{
		"id": "1",
		"category": "politics",
		"question": "Was ist das Grundgesetz?",
		"answers": ["Gesetz", "Verfassung", "Wappen", "Vertrag"],
		"correct": 1,
		"explanation": "Das Grundgesetz ist die Verfassung.",
		"translations": {
			"en": {
				"question": "What is the Basic Law?",
				"answers": ["law", "constitution", "coat of arms", "treaty"],
				"explanation": "The Basic Law is the constitution."
			},
			"tr": {
				"prompt": "Anayasa nedir?",
				"choices": ["yasa", "anayasa", "arma", "anlasma"]
			}
		}
	},
	{
		"id": "2",
		"category": "history",
		"question": "Wann endete der Zweite Weltkrieg?",
		"options": ["1943", "1945", "1949"],
		"correct": 1
	}
]`

const regionsJSON = `{
	"by": [
		{
			"id": "by-1",
			"category": "region",
			"question": "Welches Wappen hat Bayern?",
			"options": ["a", "b", "c", "d"],
			"correct": 0
		}
	]
}`

func writeBank(t *testing.T, questions, regions string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, QuestionsFile), []byte(questions), 0o644); err != nil {
		t.Fatalf("failed to write questions: %v", err)
	}
	if regions != "" {
		if err := os.WriteFile(filepath.Join(dir, RegionsFile), []byte(regions), 0o644); err != nil {
			t.Fatalf("failed to write regions: %v", err)
		}
	}
	return dir
}

func TestLoadNormalizesFieldSynonyms(t *testing.T) {
	dir := writeBank(t, questionsJSON, "")
	b, err := Load(dir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(b.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(b.Questions))
	}

	q := b.Questions[0]
	if len(q.Options) != 4 || q.Options[1] != "Verfassung" {
		t.Fatalf("answers synonym not normalized: %v", q.Options)
	}
	en := q.Translations["en"]
	if en.Prompt != "What is the Basic Law?" {
		t.Fatalf("translation question synonym not normalized: %q", en.Prompt)
	}
	if len(en.Options) != 4 || en.Options[1] != "constitution" {
		t.Fatalf("translation answers synonym not normalized: %v", en.Options)
	}
	tr := q.Translations["tr"]
	if tr.Prompt != "Anayasa nedir?" {
		t.Fatalf("prompt synonym not normalized: %q", tr.Prompt)
	}
	if len(tr.Options) != 4 || tr.Options[1] != "anayasa" {
		t.Fatalf("choices synonym not normalized: %v", tr.Options)
	}
}

func TestLoadRegions(t *testing.T) {
	dir := writeBank(t, questionsJSON, regionsJSON)
	b, err := Load(dir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(b.Regions) != 1 || b.Regions[0].Region != "by" {
		t.Fatalf("unexpected regions: %+v", b.Regions)
	}
	q := b.Regions[0].Questions[0]
	if q.Region != "by" {
		t.Fatalf("region tag not backfilled: %q", q.Region)
	}
	if got := b.RegionQuestions("by"); len(got) != 1 || got[0].ID != "by-1" {
		t.Fatalf("region lookup failed: %v", got)
	}
}

func TestLoadMissingRegionsIsFine(t *testing.T) {
	dir := writeBank(t, questionsJSON, "")
	b, err := Load(dir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(b.Regions) != 0 {
		t.Fatalf("expected no regions, got %d", len(b.Regions))
	}
}

func TestLoadRejectsOutOfRangeAnswerIndex(t *testing.T) {
	bad := `[{"id": "1", "question": "Frage?", "options": ["a", "b"], "correct": 5}]`
	dir := writeBank(t, bad, "")
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected error for out-of-range answer index")
	}
}

func TestLoadRejectsInvalidSchema(t *testing.T) {
	bad := `[{"question": "Frage?", "options": ["a", "b"], "correct": 0}]`
	dir := writeBank(t, bad, "")
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected schema error for missing id")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatalf("expected error for missing question bank")
	}
}

func TestCategories(t *testing.T) {
	dir := writeBank(t, questionsJSON, "")
	b, err := Load(dir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	got := Categories(b)
	if len(got) != 2 || got[0] != "politics" || got[1] != "history" {
		t.Fatalf("unexpected categories: %v", got)
	}
}
