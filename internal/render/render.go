// Package render projects a task list view into Markdown and terminal text.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/metalagman/todolist/internal/todo"
)

// Options controls terminal rendering.
type Options struct {
	// Style is a glamour standard style name, or "auto".
	Style string
	// Width is the word wrap width; 0 disables wrapping.
	Width int
}

// Markdown renders the visible rows of v as a Markdown document.
func Markdown(v todo.View) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Tasks (%s)\n\n", v.Filter.Label())

	if v.Placeholder != nil {
		fmt.Fprintf(&b, "_%s_\n", escape(v.Placeholder.Message))
		return b.String()
	}

	b.WriteString("| ID | Task | Due Date | Status |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, r := range v.VisibleRows() {
		text := escape(r.Text)
		if r.Completed {
			text = "~~" + text + "~~"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", r.ID, text, r.Due, r.Status)
	}
	fmt.Fprintf(&b, "\n%d of %d tasks shown\n", v.Visible, v.Total)
	return b.String()
}

// Terminal renders the Markdown form of v for a terminal with glamour.
func Terminal(v todo.View, opts Options) (string, error) {
	styleOpt := glamour.WithAutoStyle()
	if opts.Style != "" && opts.Style != "auto" {
		styleOpt = glamour.WithStandardStyle(opts.Style)
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(opts.Width))
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(Markdown(v))
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// Plain renders v as a bordered text table, placeholder row included.
func Plain(v todo.View) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Task", "Due Date", "Status")
	for _, r := range v.VisibleRows() {
		t.Row(r.ID.String(), r.Text, r.Due, r.Status)
	}
	if v.Placeholder != nil {
		t.Row("", v.Placeholder.Message, "", "")
	}
	return fmt.Sprintf("Filter: %s\n%s\n", v.Filter.Label(), t.Render())
}

var cellEscaper = strings.NewReplacer(
	"|", `\|`,
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

// escape keeps text inside a single Markdown table cell or line.
func escape(s string) string {
	return cellEscaper.Replace(s)
}
