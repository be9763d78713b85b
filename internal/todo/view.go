package todo

// Placeholder messages.
const (
	MsgNoTasks       = "No task found"
	MsgNoFilterMatch = "No tasks match filter"
)

// Columns are the table columns every adapter renders, in order.
var Columns = []string{"Task", "Due Date", "Status", "Action"}

// Placeholder is the single synthetic row shown when no task is visible.
type Placeholder struct {
	Message string `json:"message"`
	Colspan int    `json:"colspan"`
}

// Row is the rendered projection of one task.
type Row struct {
	ID        TaskID `json:"id"`
	Text      string `json:"text"`
	Due       string `json:"due"`
	Status    string `json:"status"`
	Completed bool   `json:"completed"`
	Visible   bool   `json:"visible"`
}

// View is a snapshot of the list as adapters render it.
type View struct {
	Filter      Filter       `json:"filter"`
	Rows        []Row        `json:"rows"`
	Visible     int          `json:"visible"`
	Total       int          `json:"total"`
	Placeholder *Placeholder `json:"placeholder,omitempty"`
}

// VisibleRows returns the rows that are not hidden by the filter.
func (v View) VisibleRows() []Row {
	out := make([]Row, 0, v.Visible)
	for _, r := range v.Rows {
		if r.Visible {
			out = append(out, r)
		}
	}
	return out
}

// Renderer receives the view after every operation that changed the list.
type Renderer interface {
	Render(View)
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(View)

// Render calls f(v).
func (f RenderFunc) Render(v View) {
	f(v)
}

// Notifier is the blocking notice channel for rejected input.
type Notifier interface {
	Notify(message string)
}

// NotifyFunc adapts a function to Notifier.
type NotifyFunc func(string)

// Notify calls f(message).
func (f NotifyFunc) Notify(message string) {
	f(message)
}
