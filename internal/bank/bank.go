// Package bank reads and writes quiz banks: JSON files holding many
// question/answer pairs for bulk import and export.
package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/quizzer/internal/quiz"
)

const schemaURL = "schema://quizzer/bank.json"

const schemaDefinition = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["quizzes"],
  "additionalProperties": false,
  "properties": {
    "quizzes": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["question", "answer"],
        "additionalProperties": false,
        "properties": {
          "question": {"type": "string", "minLength": 1},
          "answer":   {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`

// Entry is one quiz in a bank file.
type Entry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Bank is the on-disk document.
type Bank struct {
	Quizzes []Entry `json:"quizzes"`
}

// Skipped is an entry the repository rejected during import.
type Skipped struct {
	Entry      Entry
	Violations []string
}

// Result summarizes an import.
type Result struct {
	Imported int
	Skipped  []Skipped
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func bankSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(schemaDefinition))
		if err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// Parse reads a bank document and validates it against the bank schema.
func Parse(r io.Reader) (*Bank, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read bank: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	sch, err := bankSchema()
	if err != nil {
		return nil, err
	}
	if err := sch.Validate(inst); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var b Bank
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}
	return &b, nil
}

// Import creates every entry of b in repo. Entries rejected with a
// validation error are skipped and reported; any other error stops the
// import.
func Import(ctx context.Context, repo quiz.Repository, b *Bank) (Result, error) {
	var res Result
	for _, e := range b.Quizzes {
		_, err := repo.Create(ctx, strings.TrimSpace(e.Question), strings.TrimSpace(e.Answer))
		var verr *quiz.ValidationError
		switch {
		case errors.As(err, &verr):
			res.Skipped = append(res.Skipped, Skipped{Entry: e, Violations: verr.Violations})
		case err != nil:
			return res, fmt.Errorf("import %q: %w", e.Question, err)
		default:
			res.Imported++
		}
	}
	return res, nil
}

// Export writes every quiz in repo as an indented bank document.
func Export(ctx context.Context, repo quiz.Repository, w io.Writer) (int, error) {
	all, err := repo.FindAll(ctx)
	if err != nil {
		return 0, err
	}

	b := Bank{Quizzes: make([]Entry, 0, len(all))}
	for _, q := range all {
		b.Quizzes = append(b.Quizzes, Entry{Question: q.Question, Answer: q.Answer})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return 0, fmt.Errorf("encode bank: %w", err)
	}
	return len(b.Quizzes), nil
}
