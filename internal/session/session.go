// Package session holds the transient state of one interactive form session:
// the resume record being edited, cached spell-check results, and generated
// text. Nothing here survives the session.
package session

import (
	"errors"
	"fmt"

	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/spelling"
)

// TargetKind enumerates the fields spell checking may be applied to.
type TargetKind int

const (
	TargetSummary TargetKind = iota
	TargetSkills
	TargetExperienceDescription
)

// Target identifies one correctable field. Index is the experience entry
// index and is only meaningful for TargetExperienceDescription.
type Target struct {
	Kind  TargetKind
	Index int
}

// String returns the user-facing label for the target.
func (t Target) String() string {
	switch t.Kind {
	case TargetSummary:
		return "summary"
	case TargetSkills:
		return "technical skills"
	case TargetExperienceDescription:
		return fmt.Sprintf("experience #%d description", t.Index+1)
	default:
		return "unknown field"
	}
}

// Session is the explicit state owned by the interactive form controller.
type Session struct {
	Record    *resume.Record
	Generated string

	corrections map[Target]spelling.Result
}

// New starts an empty session with placeholder entries.
func New() *Session {
	return &Session{
		Record:      resume.NewRecord(),
		corrections: make(map[Target]spelling.Result),
	}
}

// Targets lists every correctable target in the current record, in display
// order.
func (s *Session) Targets() []Target {
	targets := []Target{
		{Kind: TargetSummary},
		{Kind: TargetSkills},
	}
	for i := range s.Record.Experience {
		targets = append(targets, Target{Kind: TargetExperienceDescription, Index: i})
	}
	return targets
}

// Value returns the current text of a correctable target. Out-of-range
// experience indexes return the empty string.
func (s *Session) Value(t Target) string {
	switch t.Kind {
	case TargetSummary:
		return s.Record.Summary
	case TargetSkills:
		return s.Record.Skills.Technical
	case TargetExperienceDescription:
		if t.Index < 0 || t.Index >= len(s.Record.Experience) {
			return ""
		}
		return s.Record.Experience[t.Index].Description
	default:
		return ""
	}
}

// SetValue overwrites the text of a correctable target.
func (s *Session) SetValue(t Target, value string) {
	switch t.Kind {
	case TargetSummary:
		s.Record.Summary = value
	case TargetSkills:
		s.Record.Skills.Technical = value
	case TargetExperienceDescription:
		if t.Index >= 0 && t.Index < len(s.Record.Experience) {
			s.Record.Experience[t.Index].Description = value
		}
	}
}

// CheckSpelling runs the correction service over every non-empty correctable
// target and caches the results that flagged words. A failure on one target
// never blocks the others; failures are joined into the returned error.
// Flagged targets are returned in display order.
func (s *Session) CheckSpelling(svc *spelling.Service) ([]Target, error) {
	var flagged []Target
	var errs []error

	for _, target := range s.Targets() {
		text := s.Value(target)
		if text == "" {
			continue
		}
		result, err := svc.Check(text)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", target, err))
			continue
		}
		if result.HasCorrections() {
			s.corrections[target] = *result
			flagged = append(flagged, target)
		}
	}
	return flagged, errors.Join(errs...)
}

// Correction returns the cached result for a target, if any.
func (s *Session) Correction(t Target) (spelling.Result, bool) {
	result, ok := s.corrections[t]
	return result, ok
}

// ApplyCorrection overwrites the target's field with its cached corrected
// text and drops the cache entry, as one atomic update. It reports whether a
// cached correction existed.
func (s *Session) ApplyCorrection(t Target) bool {
	result, ok := s.corrections[t]
	if !ok {
		return false
	}
	s.SetValue(t, result.Corrected)
	delete(s.corrections, t)
	return true
}

// ClearCorrections discards every cached result.
func (s *Session) ClearCorrections() {
	s.corrections = make(map[Target]spelling.Result)
}

// CorrectionCount returns the number of cached results.
func (s *Session) CorrectionCount() int {
	return len(s.corrections)
}
