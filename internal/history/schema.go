package history

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// sessionsSchema constrains the persisted GameSessions payload. Anything an
// old or corrupted build wrote that no longer fits loads as empty history
// rather than crashing or half-loading.
const sessionsSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "date", "difficulty", "score", "questionsAnswered", "duration"],
		"properties": {
			"id":                {"type": "string"},
			"date":              {"type": "string"},
			"difficulty":        {"type": "string"},
			"score":             {"type": "integer", "minimum": 0},
			"questionsAnswered": {"type": "integer", "minimum": 0},
			"duration":          {"type": "number", "minimum": 0},
			"details": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["questionText", "correctAnswer", "timeTaken", "attempts", "isCorrect"],
					"properties": {
						"questionText":  {"type": "string"},
						"correctAnswer": {"type": "string"},
						"timeTaken":     {"type": "number", "minimum": 0},
						"attempts":      {"type": "integer", "minimum": 1},
						"isCorrect":     {"type": "boolean"}
					}
				}
			}
		}
	}
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateSessions checks raw against the GameSessions schema.
func validateSessions(raw []byte) error {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(sessionsSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://game-sessions.json", def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://game-sessions.json")
	})
	if compileErr != nil {
		return compileErr
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
