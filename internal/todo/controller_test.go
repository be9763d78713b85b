package todo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	views   []View
	notices []string
}

func (r *recorder) Render(v View)         { r.views = append(r.views, v) }
func (r *recorder) Notify(message string) { r.notices = append(r.notices, message) }

func (r *recorder) last() View {
	return r.views[len(r.views)-1]
}

func newRecorded(t *testing.T, opts ...Option) (*Controller, *recorder) {
	t.Helper()
	rec := &recorder{}
	opts = append([]Option{WithRenderer(rec), WithNotifier(rec)}, opts...)
	return NewController(opts...), rec
}

// checkInvariant asserts that the placeholder is present exactly when nothing is visible.
func checkInvariant(t *testing.T, c *Controller) {
	t.Helper()
	v := c.View()
	visible := 0
	for _, r := range v.Rows {
		assert.Equal(t, v.Filter.Shows(r.Completed), r.Visible, "row %s visibility", r.ID)
		if r.Visible {
			visible++
		}
	}
	assert.Equal(t, visible, v.Visible)
	if visible == 0 {
		require.NotNil(t, v.Placeholder, "placeholder must be shown when nothing is visible")
	} else {
		assert.Nil(t, v.Placeholder, "placeholder must be absent when rows are visible")
	}
}

func TestNewController_ShowsNoTaskFound(t *testing.T) {
	t.Parallel()

	c, rec := newRecorded(t)

	require.Len(t, rec.views, 1)
	v := c.View()
	require.NotNil(t, v.Placeholder)
	assert.Equal(t, MsgNoTasks, v.Placeholder.Message)
	assert.Equal(t, 4, v.Placeholder.Colspan)
	assert.Equal(t, FilterAll, v.Filter)
}

func TestAddTask_EmptyTextIsRejected(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "   ", "\t\n"} {
		c, rec := newRecorded(t)

		id, err := c.AddTask(text, "2024-03-05")
		require.Error(t, err)
		assert.Zero(t, id)
		assert.True(t, errors.Is(err, ErrValidation))

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "text", verr.Field)
		assert.Equal(t, MsgEmptyText, err.Error())

		assert.Empty(t, c.Tasks())
		assert.Equal(t, []string{MsgEmptyText}, rec.notices)
		assert.Len(t, rec.views, 1, "rejected add must not render")
	}
}

func TestAddTask_FormatsDueDate(t *testing.T) {
	t.Parallel()

	c, _ := newRecorded(t)

	id, err := c.AddTask("Buy milk", "2024-03-05")
	require.NoError(t, err)

	task, ok := c.Task(id)
	require.True(t, ok)
	assert.Equal(t, "03/05/2024", task.Due())
	assert.False(t, task.Completed)
	assert.Equal(t, StatusInProgress, task.Status())
}

func TestAddTask_WithoutDueDate(t *testing.T) {
	t.Parallel()

	c, _ := newRecorded(t)

	id, err := c.AddTask("Buy milk", "")
	require.NoError(t, err)

	task, ok := c.Task(id)
	require.True(t, ok)
	assert.Empty(t, task.DueDate)
	assert.Equal(t, NoDueDate, task.Due())
}

func TestAddTask_DueDateIsReformattedNotValidated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
	}{
		{raw: "2024-02-30", want: "02/30/2024"},
		{raw: "2023-02-29", want: "02/29/2023"},
		{raw: "12024-03-05", want: "03/05/12024"},
		{raw: " 2024-12-31 ", want: "12/31/2024"},
		{raw: "03/05/2024", want: "03/05/2024"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			c, rec := newRecorded(t)

			id, err := c.AddTask("Buy milk", tt.raw)
			require.NoError(t, err)
			task, ok := c.Task(id)
			require.True(t, ok)
			assert.Equal(t, tt.want, task.Due())
			assert.Empty(t, rec.notices)
		})
	}
}

func TestAddTask_HiddenUnderCompletedFilter(t *testing.T) {
	t.Parallel()

	c, rec := newRecorded(t, WithFilter(FilterCompleted))

	id, err := c.AddTask("Write report", "")
	require.NoError(t, err)

	assert.False(t, c.Visible(id))
	v := rec.last()
	assert.Equal(t, 0, v.Visible)
	require.NotNil(t, v.Placeholder)
	assert.Equal(t, MsgNoFilterMatch, v.Placeholder.Message)
	checkInvariant(t, c)
}

func TestAddTask_PreservesInsertionOrderAndUniqueIDs(t *testing.T) {
	t.Parallel()

	c, _ := newRecorded(t)

	a, err := c.AddTask("a", "")
	require.NoError(t, err)
	b, err := c.AddTask("a", "")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	c.DeleteAllTasks()
	d, err := c.AddTask("c", "")
	require.NoError(t, err)
	assert.Greater(t, d, b, "ids are not reused after delete-all")

	tasks := c.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "c", tasks[0].Text)
}

func TestToggleCompletion_TwiceRestoresState(t *testing.T) {
	t.Parallel()

	for _, f := range []Filter{FilterAll, FilterCompleted, FilterInProgress} {
		c, _ := newRecorded(t)
		id, err := c.AddTask("Buy milk", "")
		require.NoError(t, err)
		c.SetFilter(f)
		before := c.Visible(id)

		require.True(t, c.ToggleCompletion(id))
		checkInvariant(t, c)
		require.True(t, c.ToggleCompletion(id))
		checkInvariant(t, c)

		task, _ := c.Task(id)
		assert.False(t, task.Completed, "filter %s", f)
		assert.Equal(t, before, c.Visible(id), "filter %s", f)
	}
}

func TestToggleCompletion_MissingTaskIsNoop(t *testing.T) {
	t.Parallel()

	c, rec := newRecorded(t)
	_, err := c.AddTask("Buy milk", "")
	require.NoError(t, err)
	renders := len(rec.views)

	assert.False(t, c.ToggleCompletion(42))
	assert.Len(t, rec.views, renders)
	assert.False(t, c.Tasks()[0].Completed)
}

func TestSetFilter_CompletedShowsOnlyCompleted(t *testing.T) {
	t.Parallel()

	c, _ := newRecorded(t)
	done, err := c.AddTask("done", "")
	require.NoError(t, err)
	_, err = c.AddTask("open", "")
	require.NoError(t, err)
	c.ToggleCompletion(done)

	c.SetFilter(FilterCompleted)

	v := c.View()
	assert.Equal(t, 1, v.Visible)
	assert.Nil(t, v.Placeholder)
	rows := v.VisibleRows()
	require.Len(t, rows, 1)
	assert.Equal(t, done, rows[0].ID)
	assert.Equal(t, StatusCompleted, rows[0].Status)
}

func TestSetFilter_InProgressWithAllCompleted(t *testing.T) {
	t.Parallel()

	c, _ := newRecorded(t)
	for _, text := range []string{"one", "two"} {
		id, err := c.AddTask(text, "")
		require.NoError(t, err)
		c.ToggleCompletion(id)
	}

	c.SetFilter(FilterInProgress)

	v := c.View()
	assert.Equal(t, 0, v.Visible)
	require.NotNil(t, v.Placeholder)
	assert.Equal(t, MsgNoFilterMatch, v.Placeholder.Message)
}

func TestSetFilter_UnrecognizedHidesEverything(t *testing.T) {
	t.Parallel()

	c, _ := newRecorded(t)
	_, err := c.AddTask("one", "")
	require.NoError(t, err)

	c.SetFilter(Filter("archived"))

	v := c.View()
	assert.Equal(t, Filter("archived"), v.Filter)
	assert.Equal(t, 0, v.Visible)
	require.NotNil(t, v.Placeholder)
	assert.Equal(t, MsgNoFilterMatch, v.Placeholder.Message)
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()

	c, rec := newRecorded(t)
	a, err := c.AddTask("a", "")
	require.NoError(t, err)
	b, err := c.AddTask("b", "")
	require.NoError(t, err)

	assert.True(t, c.DeleteTask(a))
	checkInvariant(t, c)
	assert.False(t, c.DeleteTask(a), "second delete is a no-op")

	tasks := c.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, b, tasks[0].ID)

	assert.True(t, c.DeleteTask(b))
	v := rec.last()
	require.NotNil(t, v.Placeholder)
	assert.Equal(t, MsgNoTasks, v.Placeholder.Message)
}

func TestDeleteTask_LastVisibleUnderFilter(t *testing.T) {
	t.Parallel()

	c, _ := newRecorded(t)
	done, err := c.AddTask("done", "")
	require.NoError(t, err)
	_, err = c.AddTask("open", "")
	require.NoError(t, err)
	c.ToggleCompletion(done)
	c.SetFilter(FilterCompleted)

	c.DeleteTask(done)

	v := c.View()
	require.NotNil(t, v.Placeholder)
	assert.Equal(t, MsgNoFilterMatch, v.Placeholder.Message)
	assert.Equal(t, 1, v.Total)
}

func TestDeleteAllTasks(t *testing.T) {
	t.Parallel()

	c, rec := newRecorded(t, WithFilter(FilterInProgress))
	for _, text := range []string{"a", "b", "c"} {
		_, err := c.AddTask(text, "2025-01-31")
		require.NoError(t, err)
	}

	c.DeleteAllTasks()

	v := rec.last()
	assert.Equal(t, 0, v.Total)
	assert.Equal(t, 0, v.Visible)
	require.NotNil(t, v.Placeholder)
	assert.Equal(t, MsgNoTasks, v.Placeholder.Message)
	assert.Equal(t, FilterInProgress, v.Filter, "delete-all keeps the filter")
}

func TestRefreshEmptyState_Idempotent(t *testing.T) {
	t.Parallel()

	c, _ := newRecorded(t)
	id, err := c.AddTask("a", "")
	require.NoError(t, err)
	c.ToggleCompletion(id)
	c.SetFilter(FilterInProgress)

	c.RefreshEmptyState()
	first := c.View()
	c.RefreshEmptyState()
	second := c.View()

	assert.Equal(t, first, second)
	require.NotNil(t, second.Placeholder)
	assert.Equal(t, MsgNoFilterMatch, second.Placeholder.Message)
}

func TestController_InvariantHoldsAcrossSequence(t *testing.T) {
	t.Parallel()

	c, rec := newRecorded(t)
	steps := []func(){
		func() { _, _ = c.AddTask("a", "") },
		func() { _, _ = c.AddTask("b", "2024-12-01") },
		func() { c.SetFilter(FilterCompleted) },
		func() { c.ToggleCompletion(1) },
		func() { c.SetFilter(FilterInProgress) },
		func() { _, _ = c.AddTask("", "") },
		func() { c.DeleteTask(2) },
		func() { c.SetFilter(Filter("bogus")) },
		func() { c.SetFilter(FilterAll) },
		func() { c.ToggleCompletion(1) },
		func() { c.DeleteAllTasks() },
		func() { c.RefreshEmptyState() },
	}
	for _, step := range steps {
		step()
		checkInvariant(t, c)
	}
	for _, v := range rec.views {
		if v.Visible == 0 {
			assert.NotNil(t, v.Placeholder)
		} else {
			assert.Nil(t, v.Placeholder)
		}
	}
}

func TestController_ReturnsCopies(t *testing.T) {
	t.Parallel()

	c, _ := newRecorded(t)
	id, err := c.AddTask("a", "2024-03-05")
	require.NoError(t, err)

	task, _ := c.Task(id)
	task.Text = "changed"
	task.DueDate = "2025-01-01"
	tasks := c.Tasks()
	tasks[0].Completed = true

	again, _ := c.Task(id)
	assert.Equal(t, "a", again.Text)
	assert.Equal(t, "03/05/2024", again.Due())
	assert.False(t, again.Completed)
}
