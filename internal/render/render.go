// Package render produces the fixed single-page PDF template from a resume
// record. Layout runs top to bottom: centered name and contact line, the
// professional summary, then one block per section with a bold heading.
package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/jonathan/resume-builder/internal/resume"
)

// Cell heights in the document unit (millimeters).
const (
	lineHeight = 10.0
	entryGap   = 5.0
	sectionGap = 10.0
)

// Renderer converts resume records to PDF bytes.
type Renderer struct {
	font      string
	fontSize  float64
	titleSize float64
}

// New creates a renderer with the given body font family/size and title size.
func New(font string, fontSize, titleSize float64) *Renderer {
	return &Renderer{font: font, fontSize: fontSize, titleSize: titleSize}
}

// Render draws the record into a single-page PDF and returns its bytes.
// Every string in the record must be representable in the renderer's
// single-byte codec (Latin-1); anything else fails with an *EncodeError
// before layout starts. Partial output is never returned.
func (r *Renderer) Render(rec *resume.Record) ([]byte, error) {
	if err := checkEncodable(rec); err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("") // UTF-8 to the cp1252 core-font codec
	pdf.AddPage()

	// Header: centered name at title size, centered contact line below.
	pdf.SetFont(r.font, "", r.titleSize)
	pdf.CellFormat(0, lineHeight, tr(rec.Name), "", 1, "C", false, 0, "")
	pdf.SetFontSize(r.fontSize)
	pdf.CellFormat(0, lineHeight, tr(rec.ContactLine()), "", 1, "C", false, 0, "")
	pdf.Ln(sectionGap)

	r.heading(pdf, "Professional Summary")
	pdf.MultiCell(0, lineHeight, tr(rec.Summary), "", "L", false)
	pdf.Ln(sectionGap)

	r.heading(pdf, "Education")
	for _, entry := range rec.Education {
		line := resume.JoinParts(entry.Degree, entry.School, entry.Year)
		if entry.GPA != "" {
			line = resume.JoinParts(line, "GPA: "+entry.GPA)
		}
		if line != "" {
			pdf.MultiCell(0, lineHeight, tr(line), "", "L", false)
		}
		if entry.Achievements != "" {
			pdf.MultiCell(0, lineHeight, tr(entry.Achievements), "", "L", false)
		}
		pdf.Ln(entryGap)
	}

	r.heading(pdf, "Experience")
	for _, entry := range rec.Experience {
		years := entry.Years
		if years != "" {
			years += " years"
		}
		line := resume.JoinParts(entry.Role, entry.Company, years, entry.Location)
		if line != "" {
			pdf.MultiCell(0, lineHeight, tr(line), "", "L", false)
		}
		if entry.Description != "" {
			pdf.MultiCell(0, lineHeight, tr(entry.Description), "", "L", false)
		}
		if entry.Achievements != "" {
			pdf.MultiCell(0, lineHeight, tr("Achievements: "+entry.Achievements), "", "L", false)
		}
		pdf.Ln(entryGap)
	}

	if rec.Skills.Technical != "" || rec.Skills.Soft != "" {
		r.heading(pdf, "Skills")
		if rec.Skills.Technical != "" {
			pdf.MultiCell(0, lineHeight, tr("Technical: "+rec.Skills.Technical), "", "L", false)
		}
		if rec.Skills.Soft != "" {
			pdf.MultiCell(0, lineHeight, tr("Soft: "+rec.Skills.Soft), "", "L", false)
		}
		pdf.Ln(entryGap)
	}

	r.additional(pdf, tr, rec.Additional)

	if pdf.Err() {
		return nil, &Error{Cause: pdf.Error()}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &Error{Cause: err}
	}
	return buf.Bytes(), nil
}

// heading draws a bold section title and restores the regular style.
func (r *Renderer) heading(pdf *fpdf.Fpdf, title string) {
	pdf.SetFontStyle("B")
	pdf.CellFormat(0, lineHeight, title, "", 1, "L", false, 0, "")
	pdf.SetFontStyle("")
}

// additional draws the optional free-text sections, skipping empty ones.
func (r *Renderer) additional(pdf *fpdf.Fpdf, tr func(string) string, add resume.Additional) {
	items := []struct {
		label string
		text  string
	}{
		{"Projects", add.Projects},
		{"Certifications", add.Certifications},
		{"Languages", add.Languages},
		{"Publications", add.Publications},
		{"Volunteer Experience", add.Volunteer},
	}

	any := false
	for _, item := range items {
		if item.text != "" {
			any = true
			break
		}
	}
	if !any {
		return
	}

	r.heading(pdf, "Additional Information")
	for _, item := range items {
		if item.text == "" {
			continue
		}
		pdf.MultiCell(0, lineHeight, tr(fmt.Sprintf("%s: %s", item.label, item.text)), "", "L", false)
	}
}

// checkEncodable verifies that every string in the record fits the
// single-byte codec used by the PDF core fonts.
func checkEncodable(rec *resume.Record) error {
	for _, text := range recordStrings(rec) {
		for _, r := range text {
			if r > 0xFF {
				return &EncodeError{Rune: r, Text: text}
			}
		}
	}
	return nil
}

// recordStrings flattens every text field of the record.
func recordStrings(rec *resume.Record) []string {
	out := []string{
		rec.Name, rec.Email, rec.Phone, rec.Address,
		rec.LinkedIn, rec.GitHub, rec.Portfolio, rec.Summary,
		rec.Skills.Technical, rec.Skills.Soft,
		rec.Additional.Projects, rec.Additional.Certifications,
		rec.Additional.Languages, rec.Additional.Publications,
		rec.Additional.Volunteer,
	}
	for _, e := range rec.Education {
		out = append(out, e.Degree, e.School, e.Year, e.Achievements, e.GPA)
	}
	for _, e := range rec.Experience {
		out = append(out, e.Role, e.Company, e.Years, e.Location, e.Description, e.Achievements)
	}
	return out
}
