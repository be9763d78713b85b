// Package todo implements the task list controller: the ordered task collection,
// the active filter, and the derived visibility and empty-state of the list.
package todo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// TaskID identifies a task for the lifetime of a controller.
type TaskID int64

// String returns the decimal form of the id.
func (id TaskID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseTaskID parses a decimal task id.
func ParseTaskID(raw string) (TaskID, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse task id %q: %w", raw, err)
	}
	return TaskID(n), nil
}

// Status labels shown for a task.
const (
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// NoDueDate is displayed for tasks created without a due date.
const NoDueDate = "No due date"

// Task describes a task record.
type Task struct {
	ID   TaskID
	Text string
	// DueDate is the raw YYYY-MM-DD input; empty means no due date.
	DueDate   string
	Completed bool
}

// Status returns the status label of the task.
func (t Task) Status() string {
	if t.Completed {
		return StatusCompleted
	}
	return StatusInProgress
}

// Due returns the display form of the due date.
func (t Task) Due() string {
	return FormatDueDate(t.DueDate)
}

// FormatDueDate reorders a YYYY-MM-DD value into MM/DD/YYYY by its dash-separated parts.
// The date itself is not checked. An empty value yields NoDueDate; a value without
// three parts is shown as entered.
func FormatDueDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return NoDueDate
	}
	parts := strings.SplitN(raw, "-", 3)
	if len(parts) < 3 {
		return raw
	}
	return parts[1] + "/" + parts[2] + "/" + parts[0]
}

// Validation messages.
const (
	MsgEmptyText = "Task description cannot be empty"
)

// ErrValidation is matched by every ValidationError.
var ErrValidation = errors.New("validation failed")

// ValidationError reports rejected task input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is reports ErrValidation as a match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
