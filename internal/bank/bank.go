// Package bank loads the question bank from JSON files and normalizes
// it into the canonical model shape.
package bank

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/lidtrain/lidtrain/internal/model"
)

// File names expected inside the bank directory.
const (
	QuestionsFile = "questions.json"
	RegionsFile   = "regions.json"
)

// rawTranslation tolerates the field-name synonyms found in the wild:
// prompts as "question" or "prompt", options as "options", "answers"
// or "choices". Normalization happens once, here.
type rawTranslation struct {
	Question    string   `json:"question"`
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	Answers     []string `json:"answers"`
	Choices     []string `json:"choices"`
	Explanation string   `json:"explanation"`
}

type rawQuestion struct {
	ID           string                    `json:"id"`
	Category     string                    `json:"category"`
	Question     string                    `json:"question"`
	Options      []string                  `json:"options"`
	Answers      []string                  `json:"answers"`
	Correct      int                       `json:"correct"`
	Explanation  string                    `json:"explanation"`
	Image        string                    `json:"image"`
	Region       string                    `json:"region"`
	Translations map[string]rawTranslation `json:"translations"`
}

// Load reads and validates the bank directory: questions.json (global
// list, required) and regions.json (region id to question list,
// optional).
func Load(dir string) (*model.Bank, error) {
	questions, err := loadQuestionFile(filepath.Join(dir, QuestionsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to load question bank: %w", err)
	}

	bank := &model.Bank{Questions: questions}

	regionPath := filepath.Join(dir, RegionsFile)
	data, err := os.ReadFile(regionPath)
	if err != nil {
		if os.IsNotExist(err) {
			return bank, nil
		}
		return nil, fmt.Errorf("failed to read region bank: %w", err)
	}
	if err := validateRegions(data); err != nil {
		return nil, fmt.Errorf("invalid region bank: %w", err)
	}
	var rawRegions map[string][]rawQuestion
	if err := json.Unmarshal(data, &rawRegions); err != nil {
		return nil, fmt.Errorf("failed to decode region bank: %w", err)
	}
	regionIDs := make([]string, 0, len(rawRegions))
	for id := range rawRegions {
		regionIDs = append(regionIDs, id)
	}
	sort.Strings(regionIDs)
	for _, id := range regionIDs {
		rb := model.RegionBank{Region: id}
		for i, rq := range rawRegions[id] {
			q, err := normalizeQuestion(rq)
			if err != nil {
				return nil, fmt.Errorf("region %s question %d: %w", id, i, err)
			}
			if q.Region == "" {
				q.Region = id
			}
			rb.Questions = append(rb.Questions, q)
		}
		bank.Regions = append(bank.Regions, rb)
	}
	return bank, nil
}

func loadQuestionFile(path string) ([]model.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := validateQuestions(data); err != nil {
		return nil, err
	}
	var raw []rawQuestion
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	questions := make([]model.Question, 0, len(raw))
	for i, rq := range raw {
		q, err := normalizeQuestion(rq)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func normalizeQuestion(rq rawQuestion) (model.Question, error) {
	options := rq.Options
	if len(options) == 0 {
		options = rq.Answers
	}
	if rq.ID == "" {
		return model.Question{}, fmt.Errorf("missing id")
	}
	if len(options) < 2 {
		return model.Question{}, fmt.Errorf("needs at least 2 options, got %d", len(options))
	}
	if rq.Correct < 0 || rq.Correct >= len(options) {
		return model.Question{}, fmt.Errorf("answer index %d out of range", rq.Correct)
	}

	q := model.Question{
		ID:          rq.ID,
		Category:    rq.Category,
		Prompt:      rq.Question,
		Options:     options,
		AnswerIndex: rq.Correct,
		Explanation: rq.Explanation,
		Image:       rq.Image,
		Region:      rq.Region,
	}
	if len(rq.Translations) > 0 {
		q.Translations = make(map[string]model.Translation, len(rq.Translations))
		for lang, rt := range rq.Translations {
			q.Translations[lang] = normalizeTranslation(rt)
		}
	}
	return q, nil
}

func normalizeTranslation(rt rawTranslation) model.Translation {
	tr := model.Translation{Explanation: rt.Explanation}
	tr.Prompt = rt.Question
	if tr.Prompt == "" {
		tr.Prompt = rt.Prompt
	}
	switch {
	case len(rt.Options) > 0:
		tr.Options = rt.Options
	case len(rt.Answers) > 0:
		tr.Options = rt.Answers
	case len(rt.Choices) > 0:
		tr.Options = rt.Choices
	}
	return tr
}

// Categories returns the distinct categories of the global bank in
// first-seen order.
func Categories(b *model.Bank) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, q := range b.Questions {
		if q.Category == "" {
			continue
		}
		if _, ok := seen[q.Category]; ok {
			continue
		}
		seen[q.Category] = struct{}{}
		out = append(out, q.Category)
	}
	return out
}
