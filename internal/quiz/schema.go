package quiz

import "github.com/abhisek/kanjizen/internal/llm"

// QuestionSchema defines the JSON schema for quiz generation responses.
var QuestionSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "A single JLPT N5 style multiple choice question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"kanji": map[string]any{
				"type":        "string",
				"description": "The kanji being tested",
			},
			"question": map[string]any{
				"type":        "string",
				"description": "The question text, e.g. 'Select the correct reading for this character' or 'Fill in the blank'",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    4,
				"maxItems":    4,
				"description": "Exactly 4 answer options",
			},
			"correctAnswer": map[string]any{
				"type":        "string",
				"description": "The correct option string, verbatim from options",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Brief explanation of the answer and why others are wrong",
			},
		},
		"required":             []any{"kanji", "question", "options", "correctAnswer", "explanation"},
		"additionalProperties": false,
	},
}
