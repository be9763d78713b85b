// Package mcpserver exposes the task list as Model Context Protocol tools.
package mcpserver

import (
	"context"
	"fmt"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"

	"github.com/metalagman/todolist/internal/todo"
)

const serverName = "todolist"

// AddTaskInput is the input of the add_task tool.
type AddTaskInput struct {
	Text    string `json:"text" jsonschema:"task description, must not be blank"`
	DueDate string `json:"due_date,omitempty" jsonschema:"optional due date in YYYY-MM-DD form"`
}

// TaskInput selects a task by id.
type TaskInput struct {
	ID int64 `json:"id" jsonschema:"task id as shown by list_tasks"`
}

// FilterInput is the input of the set_filter tool.
type FilterInput struct {
	Filter string `json:"filter" jsonschema:"one of all, completed, in-progress"`
}

// EmptyInput is used by tools that take no arguments.
type EmptyInput struct{}

// ViewOutput is returned by every tool.
type ViewOutput struct {
	View todo.View `json:"view"`
	// Found is set by toggle_task and delete_task.
	Found *bool `json:"found,omitempty"`
}

// Server serves one task list to MCP clients. Tool calls are serialized.
type Server struct {
	mu   sync.Mutex
	ctrl *todo.Controller
	mcp  *mcp.Server
}

// New creates the server with an empty list and registers its tools.
func New(version string, opts ...todo.Option) *Server {
	s := &Server{ctrl: todo.NewController(opts...)}
	s.mcp = mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "add_task",
		Description: "Add a task to the list. Returns the updated list view.",
	}, s.addTask)
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "toggle_task",
		Description: "Flip a task between in progress and completed.",
	}, s.toggleTask)
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "delete_task",
		Description: "Remove a task by id.",
	}, s.deleteTask)
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "delete_all_tasks",
		Description: "Remove every task.",
	}, s.deleteAllTasks)
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "set_filter",
		Description: "Change which tasks are visible: all, completed or in-progress.",
	}, s.setFilter)
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "list_tasks",
		Description: "Return the current list view.",
	}, s.listTasks)

	return s
}

// MCP returns the underlying protocol server.
func (s *Server) MCP() *mcp.Server {
	return s.mcp
}

// Run serves over stdin/stdout until the client disconnects or ctx is done.
func (s *Server) Run(ctx context.Context) error {
	log.Debug().Msg("mcp: serving on stdio")
	if err := s.mcp.Run(ctx, &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("run mcp server: %w", err)
	}
	return nil
}

func (s *Server) addTask(_ context.Context, _ *mcp.CallToolRequest, in AddTaskInput) (*mcp.CallToolResult, ViewOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.ctrl.AddTask(in.Text, in.DueDate); err != nil {
		return nil, ViewOutput{}, err
	}
	return nil, ViewOutput{View: s.ctrl.View()}, nil
}

func (s *Server) toggleTask(_ context.Context, _ *mcp.CallToolRequest, in TaskInput) (*mcp.CallToolResult, ViewOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := s.ctrl.ToggleCompletion(todo.TaskID(in.ID))
	return nil, ViewOutput{View: s.ctrl.View(), Found: &found}, nil
}

func (s *Server) deleteTask(_ context.Context, _ *mcp.CallToolRequest, in TaskInput) (*mcp.CallToolResult, ViewOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := s.ctrl.DeleteTask(todo.TaskID(in.ID))
	return nil, ViewOutput{View: s.ctrl.View(), Found: &found}, nil
}

func (s *Server) deleteAllTasks(_ context.Context, _ *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, ViewOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctrl.DeleteAllTasks()
	return nil, ViewOutput{View: s.ctrl.View()}, nil
}

func (s *Server) setFilter(_ context.Context, _ *mcp.CallToolRequest, in FilterInput) (*mcp.CallToolResult, ViewOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := todo.ParseFilter(in.Filter)
	if !ok {
		log.Debug().Str("filter", in.Filter).Msg("mcp: unrecognized filter")
	}
	s.ctrl.SetFilter(f)
	return nil, ViewOutput{View: s.ctrl.View()}, nil
}

func (s *Server) listTasks(_ context.Context, _ *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, ViewOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return nil, ViewOutput{View: s.ctrl.View()}, nil
}
