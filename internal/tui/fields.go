package tui

import (
	"fmt"
	"strconv"

	"github.com/jonathan/resume-builder/internal/session"
)

// entrySection marks which entry sequence a field belongs to, so the
// add/remove keys know what to act on.
type entrySection int

const (
	sectionNone entrySection = iota
	sectionEducation
	sectionExperience
)

// field describes one editable slot in the form. Accessors close over the
// session so the list only needs rebuilding when entries are added or
// removed.
type field struct {
	section string // section header printed before this field, if any
	label   string
	multi   bool
	entry   entrySection
	target  *session.Target // non-nil when the field is spell-checkable
	get     func(s *session.Session) string
	set     func(s *session.Session, v string)
}

// buildFields lays out the full form in display order.
func buildFields(s *session.Session) []field {
	fields := []field{
		{section: "Personal Details", label: "Full Name",
			get: func(s *session.Session) string { return s.Record.Name },
			set: func(s *session.Session, v string) { s.Record.Name = v }},
		{label: "Email",
			get: func(s *session.Session) string { return s.Record.Email },
			set: func(s *session.Session, v string) { s.Record.Email = v }},
		{label: "Phone",
			get: func(s *session.Session) string { return s.Record.Phone },
			set: func(s *session.Session, v string) { s.Record.Phone = v }},
		{label: "LinkedIn URL",
			get: func(s *session.Session) string { return s.Record.LinkedIn },
			set: func(s *session.Session, v string) { s.Record.LinkedIn = v }},
		{label: "GitHub URL",
			get: func(s *session.Session) string { return s.Record.GitHub },
			set: func(s *session.Session, v string) { s.Record.GitHub = v }},
		{label: "Portfolio URL",
			get: func(s *session.Session) string { return s.Record.Portfolio },
			set: func(s *session.Session, v string) { s.Record.Portfolio = v }},
		{label: "Address",
			get: func(s *session.Session) string { return s.Record.Address },
			set: func(s *session.Session, v string) { s.Record.Address = v }},

		{section: "Career Summary", label: "Professional Summary", multi: true,
			target: &session.Target{Kind: session.TargetSummary},
			get:    func(s *session.Session) string { return s.Record.Summary },
			set:    func(s *session.Session, v string) { s.Record.Summary = v }},

		{section: "Skills", label: "Technical Skills", multi: true,
			target: &session.Target{Kind: session.TargetSkills},
			get:    func(s *session.Session) string { return s.Record.Skills.Technical },
			set:    func(s *session.Session, v string) { s.Record.Skills.Technical = v }},
		{label: "Soft Skills", multi: true,
			get: func(s *session.Session) string { return s.Record.Skills.Soft },
			set: func(s *session.Session, v string) { s.Record.Skills.Soft = v }},
	}

	for i := range s.Record.Education {
		fields = append(fields, educationFields(i)...)
	}
	for i := range s.Record.Experience {
		fields = append(fields, experienceFields(i)...)
	}

	fields = append(fields,
		field{section: "Additional Information", label: "Projects", multi: true,
			get: func(s *session.Session) string { return s.Record.Additional.Projects },
			set: func(s *session.Session, v string) { s.Record.Additional.Projects = v }},
		field{label: "Certifications", multi: true,
			get: func(s *session.Session) string { return s.Record.Additional.Certifications },
			set: func(s *session.Session, v string) { s.Record.Additional.Certifications = v }},
		field{label: "Languages",
			get: func(s *session.Session) string { return s.Record.Additional.Languages },
			set: func(s *session.Session, v string) { s.Record.Additional.Languages = v }},
		field{label: "Publications", multi: true,
			get: func(s *session.Session) string { return s.Record.Additional.Publications },
			set: func(s *session.Session, v string) { s.Record.Additional.Publications = v }},
		field{label: "Volunteer Experience", multi: true,
			get: func(s *session.Session) string { return s.Record.Additional.Volunteer },
			set: func(s *session.Session, v string) { s.Record.Additional.Volunteer = v }},
	)

	return fields
}

func educationFields(i int) []field {
	return []field{
		{section: fmt.Sprintf("Education #%d", i+1), label: "Degree", entry: sectionEducation,
			get: func(s *session.Session) string { return s.Record.Education[i].Degree },
			set: func(s *session.Session, v string) { s.Record.Education[i].Degree = v }},
		{label: "Institution", entry: sectionEducation,
			get: func(s *session.Session) string { return s.Record.Education[i].School },
			set: func(s *session.Session, v string) { s.Record.Education[i].School = v }},
		{label: "Year", entry: sectionEducation,
			get: func(s *session.Session) string { return s.Record.Education[i].Year },
			set: func(s *session.Session, v string) { s.Record.Education[i].Year = v }},
		{label: "GPA", entry: sectionEducation,
			get: func(s *session.Session) string { return s.Record.Education[i].GPA },
			set: func(s *session.Session, v string) { s.Record.Education[i].GPA = v }},
		{label: "Notable Achievements", multi: true, entry: sectionEducation,
			get: func(s *session.Session) string { return s.Record.Education[i].Achievements },
			set: func(s *session.Session, v string) { s.Record.Education[i].Achievements = v }},
	}
}

func experienceFields(i int) []field {
	return []field{
		{section: fmt.Sprintf("Experience #%d", i+1), label: "Job Title", entry: sectionExperience,
			get: func(s *session.Session) string { return s.Record.Experience[i].Role },
			set: func(s *session.Session, v string) { s.Record.Experience[i].Role = v }},
		{label: "Company", entry: sectionExperience,
			get: func(s *session.Session) string { return s.Record.Experience[i].Company },
			set: func(s *session.Session, v string) { s.Record.Experience[i].Company = v }},
		{label: "Duration (Years)", entry: sectionExperience,
			get: func(s *session.Session) string { return s.Record.Experience[i].Years },
			set: func(s *session.Session, v string) { s.Record.Experience[i].Years = v }},
		{label: "Duration (Months)", entry: sectionExperience,
			get: func(s *session.Session) string { return strconv.Itoa(s.Record.Experience[i].Months) },
			set: func(s *session.Session, v string) {
				months, err := strconv.Atoi(v)
				if err != nil {
					return
				}
				if months < 0 {
					months = 0
				}
				if months > 11 {
					months = 11
				}
				s.Record.Experience[i].Months = months
			}},
		{label: "Location", entry: sectionExperience,
			get: func(s *session.Session) string { return s.Record.Experience[i].Location },
			set: func(s *session.Session, v string) { s.Record.Experience[i].Location = v }},
		{label: "Responsibilities", multi: true, entry: sectionExperience,
			target: &session.Target{Kind: session.TargetExperienceDescription, Index: i},
			get:    func(s *session.Session) string { return s.Record.Experience[i].Description },
			set:    func(s *session.Session, v string) { s.Record.Experience[i].Description = v }},
		{label: "Key Achievements", multi: true, entry: sectionExperience,
			get: func(s *session.Session) string { return s.Record.Experience[i].Achievements },
			set: func(s *session.Session, v string) { s.Record.Experience[i].Achievements = v }},
	}
}
