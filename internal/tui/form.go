// Package tui implements the interactive resume form: a single-session
// bubbletea program that drives the resume record through edits, on-demand
// spell checking and text generation, and a final PDF render.
package tui

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jonathan/resume-builder/internal/generation"
	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/spelling"
)

// Generator is the text-generation capability used by the form.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts *generation.Options) (string, error)
}

// Renderer converts the assembled record to PDF bytes.
type Renderer interface {
	Render(rec *resume.Record) ([]byte, error)
}

// mode tracks what the keyboard is currently driving.
type mode int

const (
	modeBrowse mode = iota
	modeEdit
	modePrompt
)

// Messages carrying the outcome of one outbound call back into Update.
type (
	spellCheckedMsg struct {
		flagged []session.Target
		err     error
	}
	generatedMsg struct {
		text string
		err  error
	}
	renderedMsg struct {
		path string
		err  error
	}
)

// Model is the interactive form controller. All state lives for the span of
// one session and is discarded on exit.
type Model struct {
	session   *session.Session
	speller   *spelling.Service
	generator Generator
	renderer  Renderer

	fields []field
	cursor int
	mode   mode
	busy   bool

	input        textinput.Model
	editor       textarea.Model
	promptEditor textarea.Model
	maxLenInput  textinput.Model
	tempInput    textinput.Model
	promptFocus  int

	status    string
	statusErr bool

	styles Styles
	width  int
	height int
}

// New creates the form model with an empty session.
func New(speller *spelling.Service, generator Generator, renderer Renderer) Model {
	sess := session.New()

	input := textinput.New()
	input.CharLimit = 256

	editor := textarea.New()
	editor.CharLimit = 4000

	promptEditor := textarea.New()
	promptEditor.Placeholder = "e.g., Write a professional summary for a data scientist with 5 years experience..."
	promptEditor.CharLimit = 2000

	maxLenInput := textinput.New()
	maxLenInput.Placeholder = "max length (default)"
	maxLenInput.CharLimit = 6

	tempInput := textinput.New()
	tempInput.Placeholder = "creativity 0.0-1.0 (default)"
	tempInput.CharLimit = 4

	return Model{
		session:      sess,
		speller:      speller,
		generator:    generator,
		renderer:     renderer,
		fields:       buildFields(sess),
		input:        input,
		editor:       editor,
		promptEditor: promptEditor,
		maxLenInput:  maxLenInput,
		tempInput:    tempInput,
		styles:       DefaultStyles(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spellCheckedMsg:
		m.busy = false
		switch {
		case msg.err != nil:
			m.setError(fmt.Sprintf("Spell check error: %v", msg.err))
		case len(msg.flagged) == 0:
			m.setStatus("No spelling errors found!")
		default:
			labels := make([]string, len(msg.flagged))
			for i, t := range msg.flagged {
				labels[i] = t.String()
			}
			m.setStatus(fmt.Sprintf("Spelling errors found in: %s (ctrl+a on the field applies the fix)",
				strings.Join(labels, ", ")))
		}
		return m, nil

	case generatedMsg:
		m.busy = false
		if msg.err != nil {
			m.setError(fmt.Sprintf("Text generation error: %v", msg.err))
			return m, nil
		}
		m.session.Generated = msg.text
		m.setStatus("Text generated. Copy it into any field.")
		return m, nil

	case renderedMsg:
		m.busy = false
		if msg.err != nil {
			m.setError(fmt.Sprintf("Failed to generate PDF: %v", msg.err))
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Resume saved to %s", msg.path))
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeEdit:
			return m.updateEdit(msg)
		case modePrompt:
			return m.updatePrompt(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		// One action, one outbound call; ignore keys until it returns.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
		return m, nil

	case "enter":
		return m.startEdit()

	case "+":
		return m.addEntry()

	case "-":
		return m.removeEntry()

	case "ctrl+s":
		m.busy = true
		m.setStatus("Checking spelling...")
		return m, m.checkSpellingCmd()

	case "ctrl+a":
		return m.applyCorrection()

	case "ctrl+g":
		m.mode = modePrompt
		m.promptFocus = 0
		m.promptEditor.Focus()
		m.maxLenInput.Blur()
		m.tempInput.Blur()
		return m, nil

	case "ctrl+r":
		if err := m.session.Record.Validate(); err != nil {
			m.setError(err.Error())
			return m, nil
		}
		m.busy = true
		m.setStatus("Generating your resume...")
		return m, m.renderCmd()
	}

	return m, nil
}

func (m Model) startEdit() (tea.Model, tea.Cmd) {
	f := m.fields[m.cursor]
	m.mode = modeEdit
	m.status = ""
	if f.multi {
		m.editor.SetValue(f.get(m.session))
		return m, m.editor.Focus()
	}
	m.input.SetValue(f.get(m.session))
	return m, m.input.Focus()
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.fields[m.cursor]

	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		m.editor.Blur()
		return m, nil

	case "enter":
		if !f.multi {
			f.set(m.session, m.input.Value())
			m.mode = modeBrowse
			m.input.Blur()
			return m, nil
		}

	case "ctrl+d":
		if f.multi {
			f.set(m.session, m.editor.Value())
			m.mode = modeBrowse
			m.editor.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if f.multi {
		m.editor, cmd = m.editor.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.promptEditor.Blur()
		m.maxLenInput.Blur()
		m.tempInput.Blur()
		return m, nil

	case "tab", "shift+tab":
		if msg.String() == "tab" {
			m.promptFocus = (m.promptFocus + 1) % 3
		} else {
			m.promptFocus = (m.promptFocus + 2) % 3
		}
		m.promptEditor.Blur()
		m.maxLenInput.Blur()
		m.tempInput.Blur()
		switch m.promptFocus {
		case 0:
			return m, m.promptEditor.Focus()
		case 1:
			return m, m.maxLenInput.Focus()
		default:
			return m, m.tempInput.Focus()
		}

	case "ctrl+g":
		return m.submitPrompt()
	}

	var cmd tea.Cmd
	switch m.promptFocus {
	case 0:
		m.promptEditor, cmd = m.promptEditor.Update(msg)
	case 1:
		m.maxLenInput, cmd = m.maxLenInput.Update(msg)
	default:
		m.tempInput, cmd = m.tempInput.Update(msg)
	}
	return m, cmd
}

func (m Model) submitPrompt() (tea.Model, tea.Cmd) {
	prompt := strings.TrimSpace(m.promptEditor.Value())
	if prompt == "" {
		m.setError("Enter a prompt first")
		return m, nil
	}

	opts := &generation.Options{}
	if v := strings.TrimSpace(m.maxLenInput.Value()); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			m.setError("Max length must be a positive number")
			return m, nil
		}
		opts.MaxLength = n
	}
	if v := strings.TrimSpace(m.tempInput.Value()); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 || f > 1 {
			m.setError("Creativity must be between 0.0 and 1.0")
			return m, nil
		}
		opts.Temperature = f
	}

	m.mode = modeBrowse
	m.promptEditor.Blur()
	m.maxLenInput.Blur()
	m.tempInput.Blur()
	m.busy = true
	m.setStatus("Generating text...")
	return m, m.generateCmd(prompt, opts)
}

func (m Model) addEntry() (tea.Model, tea.Cmd) {
	switch m.fields[m.cursor].entry {
	case sectionEducation:
		m.session.Record.AddEducation()
		m.setStatus("Education entry added")
	case sectionExperience:
		m.session.Record.AddExperience()
		m.setStatus("Experience entry added")
	default:
		return m, nil
	}
	m.fields = buildFields(m.session)
	return m, nil
}

func (m Model) removeEntry() (tea.Model, tea.Cmd) {
	switch m.fields[m.cursor].entry {
	case sectionEducation:
		if !m.session.Record.RemoveEducation() {
			m.setError("At least one education entry is required")
			return m, nil
		}
		m.setStatus("Last education entry removed")
	case sectionExperience:
		if !m.session.Record.RemoveExperience() {
			m.setError("At least one experience entry is required")
			return m, nil
		}
		m.setStatus("Last experience entry removed")
	default:
		return m, nil
	}
	m.fields = buildFields(m.session)
	if m.cursor >= len(m.fields) {
		m.cursor = len(m.fields) - 1
	}
	return m, nil
}

func (m Model) applyCorrection() (tea.Model, tea.Cmd) {
	f := m.fields[m.cursor]
	if f.target == nil {
		m.setError("This field has no spelling suggestions")
		return m, nil
	}
	if !m.session.ApplyCorrection(*f.target) {
		m.setError("No pending correction for this field")
		return m, nil
	}
	m.setStatus("Corrections applied!")
	return m, nil
}

func (m *Model) checkSpellingCmd() tea.Cmd {
	sess, speller := m.session, m.speller
	return func() tea.Msg {
		flagged, err := sess.CheckSpelling(speller)
		return spellCheckedMsg{flagged: flagged, err: err}
	}
}

func (m *Model) generateCmd(prompt string, opts *generation.Options) tea.Cmd {
	gen := m.generator
	return func() tea.Msg {
		text, err := gen.Generate(context.Background(), prompt, opts)
		return generatedMsg{text: text, err: err}
	}
}

func (m *Model) renderCmd() tea.Cmd {
	rec, renderer := m.session.Record, m.renderer
	return func() tea.Msg {
		pdfBytes, err := renderer.Render(rec)
		if err != nil {
			return renderedMsg{err: err}
		}
		path := resume.PDFFileName(rec.Name)
		if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
			return renderedMsg{err: err}
		}
		return renderedMsg{path: path}
	}
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}
