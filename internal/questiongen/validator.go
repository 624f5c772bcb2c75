package questiongen

import (
	"fmt"
	"strings"

	"github.com/memoriaviva/memoria/internal/quiz"
)

// Validator checks one generated question. Implementations are stateless.
type Validator interface {
	Name() string
	Validate(q quiz.Question) *ValidationError
}

// ValidationError describes why a question was dropped.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator rejects questions the quiz cannot render or score.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q quiz.Question) *ValidationError {
	if err := q.Validate(); err != nil {
		return &ValidationError{Validator: v.Name(), Message: err.Error()}
	}
	return nil
}

// DistinctOptionsValidator rejects questions with repeated alternatives,
// which would make more than one option look correct.
type DistinctOptionsValidator struct{}

func (v *DistinctOptionsValidator) Name() string { return "distinct-options" }

func (v *DistinctOptionsValidator) Validate(q quiz.Question) *ValidationError {
	seen := make(map[string]int, len(q.Options))
	for i, o := range q.Options {
		key := strings.ToLower(strings.TrimSpace(o))
		if j, dup := seen[key]; dup {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("options %d and %d are both %q", j, i, o),
			}
		}
		seen[key] = i
	}
	return nil
}
