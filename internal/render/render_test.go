package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/resume"
)

func testRenderer() *Renderer {
	return New("Arial", 12, 24)
}

func fullRecord() *resume.Record {
	rec := resume.NewRecord()
	rec.Name = "Jane Doe"
	rec.Email = "j@x.com"
	rec.Phone = "555-0100"
	rec.Address = "Berlin, Germany"
	rec.Summary = "Backend engineer with eight years of experience."
	rec.Skills.Technical = "Go, PostgreSQL, Kubernetes"
	rec.Skills.Soft = "Mentoring, communication"
	rec.Education[0] = resume.EducationEntry{
		Degree:       "B.S. in Computer Science",
		School:       "University of Somewhere",
		Year:         "2012-2016",
		GPA:          "3.8/4.0",
		Achievements: "Graduated with honors",
	}
	rec.Experience[0] = resume.ExperienceEntry{
		Role:         "Senior Engineer",
		Company:      "Acme Corp",
		Years:        "4",
		Months:       6,
		Location:     "Remote",
		Description:  "Owned the billing platform.",
		Achievements: "Cut invoice latency by 70%",
	}
	rec.Additional.Projects = "Open-source contributor to a PDF library"
	rec.Additional.Languages = "English (fluent), German (intermediate)"
	return rec
}

func TestRender_FullRecord(t *testing.T) {
	out, err := testRenderer().Render(fullRecord())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRender_MinimalRecordWithPlaceholders(t *testing.T) {
	// Required fields only; education/experience are empty placeholders.
	rec := resume.NewRecord()
	rec.Name = "Jane Doe"
	rec.Email = "j@x.com"
	rec.Summary = "Engineer."

	out, err := testRenderer().Render(rec)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestRender_FlattenedPayload(t *testing.T) {
	rec := resume.FromSimple(resume.Simple{
		Name:        "Jane Doe",
		Summary:     "Engineer.",
		Experiences: []string{"Built data pipelines at Acme"},
		Education:   []string{"B.S. in Computer Science, 2019"},
		Skills:      []string{"Go", "SQL"},
	})

	out, err := testRenderer().Render(rec)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestRender_NonLatin1Fails(t *testing.T) {
	rec := resume.NewRecord()
	rec.Name = "Jane Doe"
	rec.Email = "j@x.com"
	rec.Summary = "日本語のサマリー"

	out, err := testRenderer().Render(rec)
	assert.Nil(t, out)

	var eerr *EncodeError
	require.ErrorAs(t, err, &eerr)
}

func TestRender_Latin1AccentsAllowed(t *testing.T) {
	rec := resume.NewRecord()
	rec.Name = "Renée Müller"
	rec.Email = "r@x.com"
	rec.Summary = "Ingénieure à Zürich."

	out, err := testRenderer().Render(rec)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestRender_DeterministicSizeGrowsWithContent(t *testing.T) {
	small := resume.NewRecord()
	small.Name = "Jane Doe"
	small.Email = "j@x.com"
	small.Summary = "Engineer."

	smallOut, err := testRenderer().Render(small)
	require.NoError(t, err)
	fullOut, err := testRenderer().Render(fullRecord())
	require.NoError(t, err)

	assert.Greater(t, len(fullOut), len(smallOut))
}
