package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// NumOptions is the fixed number of answer options per question.
const NumOptions = 4

// Question is a single multiple-choice item.
type Question struct {
	ID           string             `json:"id"`
	Level        Level              `json:"level"`
	Text         string             `json:"text"`
	Options      [NumOptions]string `json:"options"`
	CorrectIndex int                `json:"correctAnswer"`
	Explanation  string             `json:"explanation"`
}

// IsCorrect reports whether index is the correct option.
func (q Question) IsCorrect(index int) bool {
	return index == q.CorrectIndex
}

// Validate checks that the question is renderable and answerable.
func (q Question) Validate() error {
	var errs []error
	if strings.TrimSpace(q.ID) == "" {
		errs = append(errs, errors.New("empty id"))
	}
	if strings.TrimSpace(q.Text) == "" {
		errs = append(errs, errors.New("empty text"))
	}
	for i, o := range q.Options {
		if strings.TrimSpace(o) == "" {
			errs = append(errs, fmt.Errorf("option %d is empty", i))
		}
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= NumOptions {
		errs = append(errs, fmt.Errorf("correct index %d out of range", q.CorrectIndex))
	}
	if !q.Level.Valid() {
		errs = append(errs, fmt.Errorf("invalid level %d", int(q.Level)))
	}
	return errors.Join(errs...)
}

// OptionLabel returns the letter shown next to option i ("A".."D").
func OptionLabel(i int) string {
	return string(rune('A' + i))
}
