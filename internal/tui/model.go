package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/metalagman/todolist/internal/todo"
)

type focus int

const (
	focusText focus = iota
	focusDate
	focusList
)

const deleteLabel = "[d] delete"

var columns = []table.Column{
	{Title: todo.Columns[0], Width: 32},
	{Title: todo.Columns[1], Width: 12},
	{Title: todo.Columns[2], Width: 12},
	{Title: todo.Columns[3], Width: len(deleteLabel)},
}

// tableWidth is the rendered width of all columns including cell padding.
func tableWidth() int {
	w := 0
	for _, c := range columns {
		w += c.Width + 2
	}
	return w
}

// Model is the Bubble Tea model of the task list widget.
// It renders whatever the controller pushes to it and holds no task state of its own.
type Model struct {
	ctrl      *todo.Controller
	view      todo.View
	rowIDs    []todo.TaskID
	cursor    int
	textInput textinput.Model
	dateInput textinput.Model
	table     table.Model
	help      help.Model
	keys      KeyMap
	focus     focus
	notice    string
	width     int
}

// New creates the model and its controller. Extra controller options, such as the
// initial filter, are applied before the model attaches itself as renderer and notifier.
func New(opts ...todo.Option) *Model {
	text := textinput.New()
	text.Placeholder = "What needs to be done?"
	text.CharLimit = 200
	text.Width = 40
	text.Focus()

	date := textinput.New()
	date.Placeholder = "YYYY-MM-DD (optional)"
	date.CharLimit = 12
	date.Width = 22

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(10),
	)
	styles := table.DefaultStyles()
	styles.Selected = styles.Selected.Foreground(colorText).Background(colorAccent)
	t.SetStyles(styles)

	m := &Model{
		textInput: text,
		dateInput: date,
		table:     t,
		help:      help.New(),
		keys:      DefaultKeyMap(),
		focus:     focusText,
	}
	opts = append(opts, todo.WithRenderer(m), todo.WithNotifier(m))
	m.ctrl = todo.NewController(opts...)
	return m
}

// Controller returns the controller driven by the model.
func (m *Model) Controller() *todo.Controller {
	return m.ctrl
}

// Render implements todo.Renderer.
func (m *Model) Render(v todo.View) {
	m.view = v
	rows := make([]table.Row, 0, v.Visible)
	m.rowIDs = m.rowIDs[:0]
	for _, r := range v.VisibleRows() {
		rows = append(rows, table.Row{r.Text, r.Due, r.Status, deleteLabel})
		m.rowIDs = append(m.rowIDs, r.ID)
	}
	m.table.SetRows(rows)
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if len(rows) > 0 {
		m.table.SetCursor(m.cursor)
	}
}

// Notify implements todo.Notifier. The notice blocks input until dismissed.
func (m *Model) Notify(message string) {
	m.notice = message
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.notice != "" {
			if key.Matches(msg, m.keys.Dismiss) {
				m.notice = ""
			}
			return m, nil
		}
		if m.focus == focusList {
			return m.updateList(msg)
		}
		return m.updateForm(msg)
	}
	return m, m.updateInput(msg)
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextField):
		return m, m.setFocus(m.focus + 1)
	case key.Matches(msg, m.keys.PrevField):
		if m.focus == focusText {
			return m, m.setFocus(focusList)
		}
		return m, m.setFocus(m.focus - 1)
	case key.Matches(msg, m.keys.List):
		return m, m.setFocus(focusList)
	case key.Matches(msg, m.keys.Submit):
		return m, m.submit()
	}
	return m, m.updateInput(msg)
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Toggle):
		if id, ok := m.selected(); ok {
			m.ctrl.ToggleCompletion(id)
		}
	case key.Matches(msg, m.keys.Delete):
		if id, ok := m.selected(); ok {
			m.ctrl.DeleteTask(id)
		}
	case key.Matches(msg, m.keys.DeleteAll):
		m.ctrl.DeleteAllTasks()
	case key.Matches(msg, m.keys.CycleFilter):
		m.ctrl.SetFilter(m.ctrl.Filter().Next())
	case key.Matches(msg, m.keys.FilterAll):
		m.ctrl.SetFilter(todo.FilterAll)
	case key.Matches(msg, m.keys.FilterDone):
		m.ctrl.SetFilter(todo.FilterCompleted)
	case key.Matches(msg, m.keys.FilterProgress):
		m.ctrl.SetFilter(todo.FilterInProgress)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.NextField):
		return m, m.setFocus(focusText)
	case key.Matches(msg, m.keys.PrevField):
		return m, m.setFocus(focusDate)
	}
	return m, nil
}

func (m *Model) submit() tea.Cmd {
	if _, err := m.ctrl.AddTask(m.textInput.Value(), m.dateInput.Value()); err != nil {
		log.Debug().Err(err).Msg("tui: add rejected")
		return nil
	}
	m.textInput.Reset()
	m.dateInput.Reset()
	return m.setFocus(focusText)
}

func (m *Model) setFocus(f focus) tea.Cmd {
	if f > focusList {
		f = focusText
	}
	m.focus = f
	m.textInput.Blur()
	m.dateInput.Blur()
	m.table.Blur()
	switch f {
	case focusText:
		return m.textInput.Focus()
	case focusDate:
		return m.dateInput.Focus()
	default:
		m.table.Focus()
		return nil
	}
}

func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusText:
		m.textInput, cmd = m.textInput.Update(msg)
	case focusDate:
		m.dateInput, cmd = m.dateInput.Update(msg)
	}
	return cmd
}

func (m *Model) moveCursor(delta int) {
	if len(m.rowIDs) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.rowIDs) {
		m.cursor = len(m.rowIDs) - 1
	}
	m.table.SetCursor(m.cursor)
}

func (m *Model) selected() (todo.TaskID, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rowIDs) {
		return 0, false
	}
	return m.rowIDs[m.cursor], true
}
