// Package script replays a recorded sequence of list events against a controller.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/metalagman/todolist/internal/todo"
)

// Op names an event kind.
type Op string

const (
	OpAdd       Op = "add"
	OpToggle    Op = "toggle"
	OpDelete    Op = "delete"
	OpDeleteAll Op = "delete_all"
	OpFilter    Op = "filter"
	OpRefresh   Op = "refresh"
)

// Event is one user input.
type Event struct {
	Op     Op          `yaml:"op"`
	Text   string      `yaml:"text,omitempty"`
	Due    string      `yaml:"due,omitempty"`
	ID     todo.TaskID `yaml:"id,omitempty"`
	Filter string      `yaml:"filter,omitempty"`
}

// Script is an ordered list of events.
type Script struct {
	Events []Event `yaml:"events"`
}

// Notice is a validation message raised while replaying.
type Notice struct {
	Step    int    `json:"step"`
	Message string `json:"message"`
}

// Decode reads a YAML script.
func Decode(r io.Reader) (Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Script{}, nil
		}
		return Script{}, fmt.Errorf("decode script: %w", err)
	}
	return s, nil
}

// Load reads a YAML script from path.
func Load(path string) (Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return Script{}, fmt.Errorf("open script: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Decode(f)
}

// Run applies the events to ctrl in order. Rejected input does not stop the replay;
// it is returned as notices. An unknown op aborts with an error naming its step (1-based).
func Run(ctrl *todo.Controller, s Script) ([]Notice, error) {
	var notices []Notice
	for i, ev := range s.Events {
		step := i + 1
		switch ev.Op {
		case OpAdd:
			if _, err := ctrl.AddTask(ev.Text, ev.Due); err != nil {
				var verr *todo.ValidationError
				if !errors.As(err, &verr) {
					return notices, fmt.Errorf("step %d: %w", step, err)
				}
				notices = append(notices, Notice{Step: step, Message: verr.Message})
			}
		case OpToggle:
			ctrl.ToggleCompletion(ev.ID)
		case OpDelete:
			ctrl.DeleteTask(ev.ID)
		case OpDeleteAll:
			ctrl.DeleteAllTasks()
		case OpFilter:
			f, _ := todo.ParseFilter(ev.Filter)
			ctrl.SetFilter(f)
		case OpRefresh:
			ctrl.RefreshEmptyState()
		default:
			return notices, fmt.Errorf("step %d: unknown op %q", step, ev.Op)
		}
		log.Debug().Int("step", step).Str("op", string(ev.Op)).Msg("script: event applied")
	}
	return notices, nil
}
