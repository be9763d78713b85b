package todo

import (
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

type entry struct {
	task    Task
	visible bool
}

// Controller owns the task collection and the active filter.
// It is not safe for concurrent use; adapters serialize events.
type Controller struct {
	entries     []entry
	filter      Filter
	nextID      TaskID
	placeholder *Placeholder
	renderer    Renderer
	notifier    Notifier
}

// Option configures a Controller.
type Option func(*Controller)

// WithRenderer sets the renderer that receives the view after each change.
func WithRenderer(r Renderer) Option {
	return func(c *Controller) {
		c.renderer = r
	}
}

// WithNotifier sets the channel for validation notices.
func WithNotifier(n Notifier) Option {
	return func(c *Controller) {
		c.notifier = n
	}
}

// WithFilter sets the initial filter.
func WithFilter(f Filter) Option {
	return func(c *Controller) {
		c.filter = f
	}
}

// NewController creates an empty list and renders its initial empty state.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		filter: FilterAll,
		nextID: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.RefreshEmptyState()
	c.render()
	return c
}

// AddTask appends a task and applies the current filter to it.
// Empty text is reported to the notifier and changes nothing. The due date is kept as
// entered and only reformatted for display.
func (c *Controller) AddTask(text, dueDateRaw string) (TaskID, error) {
	if strings.TrimSpace(text) == "" {
		return 0, c.reject(&ValidationError{Field: "text", Message: MsgEmptyText})
	}

	id := c.nextID
	c.nextID++
	c.entries = append(c.entries, entry{task: Task{ID: id, Text: text, DueDate: strings.TrimSpace(dueDateRaw)}})
	log.Debug().Stringer("task_id", id).Msg("task added")

	c.applyFilter()
	c.render()
	return id, nil
}

// ToggleCompletion flips the completed flag of a task and reapplies the filter.
// It reports whether the task exists; a missing task is left alone.
func (c *Controller) ToggleCompletion(id TaskID) bool {
	i := c.index(id)
	if i < 0 {
		log.Debug().Stringer("task_id", id).Msg("toggle: no such task")
		return false
	}
	c.entries[i].task.Completed = !c.entries[i].task.Completed
	log.Debug().Stringer("task_id", id).Bool("completed", c.entries[i].task.Completed).Msg("task toggled")

	c.applyFilter()
	c.render()
	return true
}

// DeleteTask removes a task. It reports whether the task existed.
func (c *Controller) DeleteTask(id TaskID) bool {
	i := c.index(id)
	if i < 0 {
		log.Debug().Stringer("task_id", id).Msg("delete: no such task")
		return false
	}
	c.entries = slices.Delete(c.entries, i, i+1)
	log.Debug().Stringer("task_id", id).Msg("task deleted")

	c.RefreshEmptyState()
	c.render()
	return true
}

// DeleteAllTasks clears the collection. Ids are not reused afterwards.
func (c *Controller) DeleteAllTasks() {
	c.entries = nil
	log.Debug().Msg("all tasks deleted")

	c.RefreshEmptyState()
	c.render()
}

// SetFilter changes the active filter and recomputes visibility of every task.
// An unrecognized filter hides everything.
func (c *Controller) SetFilter(f Filter) {
	c.filter = f
	log.Debug().Str("filter", string(f)).Bool("recognized", f.Valid()).Msg("filter changed")

	c.applyFilter()
	c.render()
}

// RefreshEmptyState recomputes the placeholder from the current visibility flags.
// Any previous placeholder is dropped first, so repeated calls never duplicate it.
func (c *Controller) RefreshEmptyState() {
	c.placeholder = nil

	visible := 0
	for _, e := range c.entries {
		if e.visible {
			visible++
		}
	}
	if visible > 0 {
		return
	}

	message := MsgNoTasks
	if len(c.entries) > 0 {
		message = MsgNoFilterMatch
	}
	c.placeholder = &Placeholder{Message: message, Colspan: len(Columns)}
}

// View returns a snapshot of the list.
func (c *Controller) View() View {
	v := View{
		Filter: c.filter,
		Rows:   make([]Row, 0, len(c.entries)),
		Total:  len(c.entries),
	}
	for _, e := range c.entries {
		v.Rows = append(v.Rows, Row{
			ID:        e.task.ID,
			Text:      e.task.Text,
			Due:       e.task.Due(),
			Status:    e.task.Status(),
			Completed: e.task.Completed,
			Visible:   e.visible,
		})
		if e.visible {
			v.Visible++
		}
	}
	if c.placeholder != nil {
		p := *c.placeholder
		v.Placeholder = &p
	}
	return v
}

// Filter returns the active filter.
func (c *Controller) Filter() Filter {
	return c.filter
}

// Task returns a copy of the task with the given id.
func (c *Controller) Task(id TaskID) (Task, bool) {
	i := c.index(id)
	if i < 0 {
		return Task{}, false
	}
	return c.entries[i].task, true
}

// Tasks returns copies of all tasks in display order.
func (c *Controller) Tasks() []Task {
	out := make([]Task, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e.task)
	}
	return out
}

// Visible reports whether the task with the given id is currently shown.
func (c *Controller) Visible(id TaskID) bool {
	i := c.index(id)
	return i >= 0 && c.entries[i].visible
}

func (c *Controller) applyFilter() {
	for i := range c.entries {
		c.entries[i].visible = c.filter.Shows(c.entries[i].task.Completed)
	}
	c.RefreshEmptyState()
}

func (c *Controller) index(id TaskID) int {
	return slices.IndexFunc(c.entries, func(e entry) bool {
		return e.task.ID == id
	})
}

func (c *Controller) reject(err error) error {
	log.Debug().Err(err).Msg("task rejected")
	if c.notifier != nil {
		c.notifier.Notify(err.Error())
	}
	return err
}

func (c *Controller) render() {
	if c.renderer != nil {
		c.renderer.Render(c.View())
	}
}
