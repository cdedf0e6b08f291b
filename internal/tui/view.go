package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Resume Builder"))
	b.WriteString("\n")

	if m.mode == modePrompt {
		b.WriteString(m.viewPrompt())
		b.WriteString(m.viewStatus())
		return b.String()
	}

	for i, f := range m.fields {
		if f.section != "" {
			b.WriteString(m.styles.Section.Render(f.section))
			b.WriteString("\n")
		}

		cursor := "  "
		label := m.styles.Label.Render(f.label)
		if i == m.cursor {
			cursor = m.styles.Selected.Render("> ")
			label = m.styles.Selected.Render(f.label)
		}

		if m.mode == modeEdit && i == m.cursor {
			b.WriteString(cursor)
			b.WriteString(label)
			b.WriteString(":\n")
			if f.multi {
				b.WriteString(m.editor.View())
				b.WriteString("\n")
				b.WriteString(m.styles.Muted.Render("    ctrl+d save, esc cancel"))
			} else {
				b.WriteString("    ")
				b.WriteString(m.input.View())
			}
			b.WriteString("\n")
			continue
		}

		b.WriteString(cursor)
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(m.styles.Value.Render(preview(f.get(m.session))))
		b.WriteString("\n")

		if f.target != nil {
			if res, ok := m.session.Correction(*f.target); ok {
				b.WriteString(m.styles.Annotation.Render(
					fmt.Sprintf("misspelled: %s (ctrl+a to apply)", strings.Join(res.Misspelled, ", "))))
				b.WriteString("\n")
			}
		}
	}

	if m.session.Generated != "" {
		b.WriteString(m.styles.Section.Render("Generated Text"))
		b.WriteString("\n")
		b.WriteString(m.styles.Box.Render(m.session.Generated))
		b.WriteString("\n")
	}

	b.WriteString(m.viewStatus())
	b.WriteString(m.styles.Help.Render(
		"up/down move | enter edit | +/- add/remove entry | ctrl+s spell check | ctrl+g generate | ctrl+r save PDF | q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewPrompt() string {
	var b strings.Builder

	b.WriteString(m.styles.Section.Render("Generate Text"))
	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render("Describe what you want written:"))
	b.WriteString("\n")
	b.WriteString(m.promptEditor.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render("Max length: "))
	b.WriteString(m.maxLenInput.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render("Creativity: "))
	b.WriteString(m.tempInput.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("tab switch field | ctrl+g submit | esc cancel"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewStatus() string {
	if m.status == "" {
		return "\n"
	}
	style := m.styles.Success
	if m.statusErr {
		style = m.styles.Error
	}
	return "\n" + style.Render(m.status) + "\n"
}

// preview collapses a value to a single short line for the field list.
func preview(v string) string {
	v = strings.ReplaceAll(v, "\n", " ")
	if len(v) > 60 {
		return v[:57] + "..."
	}
	return v
}
