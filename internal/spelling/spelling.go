// Package spelling implements the spell-check service: it delegates
// correction to an external capability and reports which words changed.
package spelling

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/client9/misspell"
)

// Result holds the outcome of one spell-check pass over a block of text.
type Result struct {
	Original   string   `json:"original_text"`
	Corrected  string   `json:"corrected_text"`
	Misspelled []string `json:"misspelled_words"`
}

// HasCorrections reports whether any word was flagged.
func (r *Result) HasCorrections() bool {
	return len(r.Misspelled) > 0
}

// Error wraps a failure of the underlying correction capability. Callers
// treat it as non-fatal and fall back to the original text.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("spell check error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("spell check error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Checker is the external spelling-correction capability. Implementations
// return a best-guess corrected version of the input text.
type Checker interface {
	Correct(text string) (string, error)
}

// misspellChecker backs Checker with the misspell replacer and its dictionary
// of commonly misspelled English words.
type misspellChecker struct {
	replacer *misspell.Replacer
}

// NewChecker returns the default misspell-backed Checker.
func NewChecker() Checker {
	return &misspellChecker{replacer: misspell.New()}
}

func (c *misspellChecker) Correct(text string) (string, error) {
	corrected, _ := c.replacer.Replace(text)
	return corrected, nil
}

// Service exposes the correction contract over a Checker.
type Service struct {
	checker Checker
}

// NewService creates a spell-check service around the given Checker.
func NewService(checker Checker) *Service {
	return &Service{checker: checker}
}

// Check corrects the text and computes the misspelled words by positional
// comparison of the original and corrected tokenizations. Empty or
// whitespace-only input is returned unchanged with no words flagged.
//
// Known limitation, preserved on purpose: when correction changes the token
// count, positions beyond the shorter tokenization are not compared, so
// trailing differences go unreported.
func (s *Service) Check(text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return &Result{Original: text, Corrected: text, Misspelled: []string{}}, nil
	}

	corrected, err := s.checker.Correct(text)
	if err != nil {
		return nil, &Error{Message: "correction failed", Cause: err}
	}

	originalWords := tokenize(text)
	correctedWords := tokenize(corrected)

	n := len(originalWords)
	if len(correctedWords) < n {
		n = len(correctedWords)
	}

	misspelled := []string{}
	for i := 0; i < n; i++ {
		if originalWords[i] != correctedWords[i] {
			misspelled = append(misspelled, originalWords[i])
		}
	}

	return &Result{
		Original:   text,
		Corrected:  corrected,
		Misspelled: misspelled,
	}, nil
}

// tokenize splits text into words, dropping punctuation but keeping in-word
// apostrophes.
func tokenize(text string) []string {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	})
	for i, w := range words {
		words[i] = strings.Trim(w, "'")
	}
	return words
}
