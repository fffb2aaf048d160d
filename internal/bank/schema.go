package bank

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const translationSchema = `{
	"type": "object",
	"properties": {
		"question": {"type": "string"},
		"prompt": {"type": "string"},
		"options": {"type": "array", "items": {"type": "string"}},
		"answers": {"type": "array", "items": {"type": "string"}},
		"choices": {"type": "array", "items": {"type": "string"}},
		"explanation": {"type": "string"}
	}
}`

var questionSchema = fmt.Sprintf(`{
	"type": "object",
	"required": ["id", "question", "correct"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"category": {"type": "string"},
		"question": {"type": "string", "minLength": 1},
		"options": {"type": "array", "items": {"type": "string"}, "minItems": 2},
		"answers": {"type": "array", "items": {"type": "string"}, "minItems": 2},
		"correct": {"type": "integer", "minimum": 0},
		"explanation": {"type": "string"},
		"image": {"type": "string"},
		"region": {"type": "string"},
		"translations": {
			"type": "object",
			"additionalProperties": %s
		}
	}
}`, translationSchema)

var questionsSchema = fmt.Sprintf(`{
	"type": "array",
	"items": %s
}`, questionSchema)

var regionsSchema = fmt.Sprintf(`{
	"type": "object",
	"additionalProperties": {
		"type": "array",
		"items": %s
	}
}`, questionSchema)

func validateQuestions(data []byte) error {
	return validate(data, questionsSchema)
}

func validateRegions(data []byte) error {
	return validate(data, regionsSchema)
}

func validate(data []byte, schema string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return fmt.Errorf("schema violations: %s", strings.Join(msgs, "; "))
}
