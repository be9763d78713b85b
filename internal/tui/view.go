package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("To-Do List") + "\n\n")

	b.WriteString(m.fieldLabel("Task", focusText) + " " + m.textInput.View() + "\n")
	b.WriteString(m.fieldLabel("Due ", focusDate) + " " + m.dateInput.View() + "\n\n")

	b.WriteString(labelStyle.Render("Filter: ") + filterStyle.Render(m.view.Filter.Label()))
	b.WriteString(labelStyle.Render(fmt.Sprintf("  (%d of %d shown)", m.view.Visible, m.view.Total)) + "\n\n")

	b.WriteString(m.table.View() + "\n")
	if p := m.view.Placeholder; p != nil {
		b.WriteString(placeholderStyle.Width(tableWidth()).Render(p.Message) + "\n")
	}
	if done := m.completedCount(); done > 0 {
		b.WriteString(completedStyle.Render(fmt.Sprintf("%d completed", done)) + "\n")
	}

	if m.notice != "" {
		b.WriteString("\n" + noticeStyle.Render(m.notice+"\n\n(press enter to dismiss)") + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m *Model) fieldLabel(label string, f focus) string {
	if m.focus == f {
		return focusedLabelStyle.Render(label)
	}
	return labelStyle.Render(label)
}

func (m *Model) completedCount() int {
	n := 0
	for _, r := range m.view.Rows {
		if r.Completed {
			n++
		}
	}
	return n
}

// Notice returns the pending validation notice, if any.
func (m *Model) Notice() string {
	return m.notice
}
