// Package resume defines the structured resume record shared by the
// interactive form and the REST API, along with its assembly and
// normalization rules.
package resume

import (
	"strings"
)

// EducationEntry is a single education item. All fields are free text; year
// ranges and GPA formats are not validated.
type EducationEntry struct {
	Degree       string `json:"degree"`
	School       string `json:"school"`
	Year         string `json:"year"`
	Achievements string `json:"achievements,omitempty"`
	GPA          string `json:"gpa,omitempty"`
}

// ExperienceEntry is a single work experience item.
type ExperienceEntry struct {
	Role         string `json:"role"`
	Company      string `json:"company"`
	Years        string `json:"years"`
	Months       int    `json:"months"` // 0-11, clamped on normalization
	Location     string `json:"location,omitempty"`
	Description  string `json:"description,omitempty"`
	Achievements string `json:"achievements,omitempty"`
}

// Skills groups the free-text skill fields.
type Skills struct {
	Technical string `json:"technical,omitempty"`
	Soft      string `json:"soft,omitempty"`
}

// Additional holds the optional free-text sections.
type Additional struct {
	Projects       string `json:"projects,omitempty"`
	Certifications string `json:"certifications,omitempty"`
	Languages      string `json:"languages,omitempty"`
	Publications   string `json:"publications,omitempty"`
	Volunteer      string `json:"volunteer,omitempty"`
}

// Record is the complete structured data for one resume.
type Record struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Summary   string `json:"summary" validate:"required"`

	Skills     Skills            `json:"skills"`
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
	Additional Additional        `json:"additional"`
}

// NewRecord returns an empty record seeded with one placeholder education and
// experience entry each, matching the initial state of the interactive form.
func NewRecord() *Record {
	return &Record{
		Education:  []EducationEntry{{}},
		Experience: []ExperienceEntry{{}},
	}
}

// AddEducation appends an empty education entry.
func (r *Record) AddEducation() {
	r.Education = append(r.Education, EducationEntry{})
}

// AddExperience appends an empty experience entry.
func (r *Record) AddExperience() {
	r.Experience = append(r.Experience, ExperienceEntry{})
}

// RemoveEducation drops the last education entry. A section never goes empty:
// removal is refused when only one entry remains.
func (r *Record) RemoveEducation() bool {
	if len(r.Education) <= 1 {
		return false
	}
	r.Education = r.Education[:len(r.Education)-1]
	return true
}

// RemoveExperience drops the last experience entry, refusing when only one
// entry remains.
func (r *Record) RemoveExperience() bool {
	if len(r.Experience) <= 1 {
		return false
	}
	r.Experience = r.Experience[:len(r.Experience)-1]
	return true
}

// Normalize trims whitespace on the required fields and clamps experience
// months into the 0-11 range. Called before validation and rendering.
func (r *Record) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Summary = strings.TrimSpace(r.Summary)
	for i := range r.Experience {
		if r.Experience[i].Months < 0 {
			r.Experience[i].Months = 0
		}
		if r.Experience[i].Months > 11 {
			r.Experience[i].Months = 11
		}
	}
}

// ContactLine builds the centered contact line for the rendered resume,
// joining the non-empty parts of email, phone and address.
func (r *Record) ContactLine() string {
	return JoinParts(r.Email, r.Phone, r.Address)
}

// JoinParts joins non-empty strings with the " | " separator used by the
// resume template's header lines.
func JoinParts(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " | ")
}

// PDFFileName derives the download filename for a rendered resume,
// replacing spaces in the candidate name with underscores.
func PDFFileName(name string) string {
	sanitized := strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	return sanitized + "_Resume.pdf"
}

// Simple is the flattened resume payload accepted by the REST API. It is a
// looser schema than the interactive record: experiences, education and
// skills are plain lists of free-text lines.
type Simple struct {
	Name        string   `json:"name" validate:"required"`
	Summary     string   `json:"summary" validate:"required"`
	Experiences []string `json:"experiences"`
	Education   []string `json:"education"`
	Skills      []string `json:"skills"`
}

// FromSimple assembles a Record from the flattened payload. Each experience
// line becomes an entry carrying only a description, each education line an
// entry carrying only a degree, and skill lines join into the technical
// skills block.
func FromSimple(s Simple) *Record {
	rec := &Record{
		Name:    s.Name,
		Summary: s.Summary,
	}
	for _, exp := range s.Experiences {
		rec.Experience = append(rec.Experience, ExperienceEntry{Description: exp})
	}
	for _, edu := range s.Education {
		rec.Education = append(rec.Education, EducationEntry{Degree: edu})
	}
	if len(rec.Experience) == 0 {
		rec.Experience = []ExperienceEntry{{}}
	}
	if len(rec.Education) == 0 {
		rec.Education = []EducationEntry{{}}
	}
	rec.Skills.Technical = strings.Join(s.Skills, ", ")
	rec.Normalize()
	return rec
}
