package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/spelling"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	return New(spelling.NewService(spelling.NewChecker()), nil, nil)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	require.True(t, ok)
	return got
}

func TestNavigation(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, 0, m.cursor)

	m = update(t, m, keyMsg("up"))
	assert.Equal(t, 0, m.cursor, "cursor stays at the first field")

	m = update(t, m, keyMsg("down"))
	m = update(t, m, keyMsg("down"))
	assert.Equal(t, 2, m.cursor)

	m = update(t, m, keyMsg("up"))
	assert.Equal(t, 1, m.cursor)
}

func TestEditSingleLineField(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyMsg("enter"))
	assert.Equal(t, modeEdit, m.mode)

	for _, r := range "Jane Doe" {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m = update(t, m, keyMsg("enter"))

	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "Jane Doe", m.session.Record.Name)
}

func TestEditEscapeDiscards(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyMsg("enter"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m = update(t, m, keyMsg("esc"))

	assert.Equal(t, modeBrowse, m.mode)
	assert.Empty(t, m.session.Record.Name)
}

func TestAddAndRemoveExperienceEntries(t *testing.T) {
	m := newTestModel(t)

	// Move onto an experience field.
	for i, f := range m.fields {
		if f.entry == sectionExperience {
			m.cursor = i
			break
		}
	}
	before := len(m.fields)

	m = update(t, m, keyMsg("+"))
	assert.Len(t, m.session.Record.Experience, 2)
	assert.Greater(t, len(m.fields), before, "field list rebuilt with new entry")

	m = update(t, m, keyMsg("-"))
	assert.Len(t, m.session.Record.Experience, 1)

	m = update(t, m, keyMsg("-"))
	assert.Len(t, m.session.Record.Experience, 1, "last entry cannot be removed")
	assert.True(t, m.statusErr)
}

func TestApplyCorrectionWithoutTarget(t *testing.T) {
	m := newTestModel(t)

	// Field 0 is the name field, which is not spell-checkable.
	m = update(t, m, keyMsg("ctrl+a"))
	assert.True(t, m.statusErr)
}

func TestSpellCheckedMessageUpdatesStatus(t *testing.T) {
	m := newTestModel(t)
	m.busy = true

	m = update(t, m, spellCheckedMsg{flagged: []session.Target{{Kind: session.TargetSummary}}})
	assert.False(t, m.busy)
	assert.False(t, m.statusErr)
	assert.Contains(t, m.status, "summary")

	m = update(t, m, spellCheckedMsg{err: errors.New("boom")})
	assert.True(t, m.statusErr)
}

func TestRenderBlockedByValidation(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = next.(Model)

	assert.Nil(t, cmd, "no render command issued for an invalid record")
	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "required")
}

func TestGeneratedMessageStoresText(t *testing.T) {
	m := newTestModel(t)
	m.busy = true

	m = update(t, m, generatedMsg{text: "A seasoned engineer."})
	assert.False(t, m.busy)
	assert.Equal(t, "A seasoned engineer.", m.session.Generated)
	assert.Contains(t, m.View(), "A seasoned engineer.")
}
