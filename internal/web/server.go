// Package web provides the HTML rendering of the task list.
package web

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/metalagman/todolist/internal/config"
	"github.com/metalagman/todolist/internal/todo"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server provides the web UI handlers and the list they drive.
// Every controller call happens under mu, so requests are applied one at a time.
type Server struct {
	mu     sync.Mutex
	ctrl   *todo.Controller
	notice string
	tmpl   *template.Template
}

type page struct {
	View    todo.View
	Columns []string
	Filters []filterOption
	Notice  string
}

type filterOption struct {
	Value    todo.Filter
	Label    string
	Selected bool
}

// NewServer creates a web server with an empty list using the configured default filter.
func NewServer(cfg config.Config) (*Server, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/index.html")
	if err != nil {
		return nil, err
	}
	s := &Server{tmpl: tmpl}
	s.ctrl = todo.NewController(
		todo.WithFilter(cfg.DefaultFilter),
		todo.WithNotifier(todo.NotifyFunc(func(message string) {
			s.notice = message
		})),
	)
	return s, nil
}

// Routes returns the router for the web UI.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api/view", s.handleView)
	mux.HandleFunc("POST /tasks", s.handleAdd)
	mux.HandleFunc("POST /tasks/delete-all", s.handleDeleteAll)
	mux.HandleFunc("POST /tasks/{id}/toggle", s.handleToggle)
	mux.HandleFunc("POST /tasks/{id}/delete", s.handleDelete)
	mux.HandleFunc("POST /filter", s.handleFilter)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	v := s.ctrl.View()
	s.mu.Unlock()

	s.renderPage(w, http.StatusOK, v, "")
}

func (s *Server) handleView(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	v := s.ctrl.View()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("web: encode view")
	}
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	_, err := s.ctrl.AddTask(r.PostForm.Get("text"), r.PostForm.Get("due_date"))
	notice := s.notice
	s.notice = ""
	v := s.ctrl.View()
	s.mu.Unlock()

	if err != nil {
		if !errors.Is(err, todo.ErrValidation) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		s.renderPage(w, http.StatusUnprocessableEntity, v, notice)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	s.withTask(w, r, s.ctrl.ToggleCompletion)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	s.withTask(w, r, s.ctrl.DeleteTask)
}

func (s *Server) withTask(w http.ResponseWriter, r *http.Request, op func(todo.TaskID) bool) {
	id, err := todo.ParseTaskID(r.PathValue("id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	found := op(id)
	s.mu.Unlock()

	if !found {
		log.Debug().Stringer("task_id", id).Msg("web: no such task")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleDeleteAll(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.ctrl.DeleteAllTasks()
	s.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	f, ok := todo.ParseFilter(r.PostForm.Get("filter"))
	if !ok {
		log.Debug().Str("filter", string(f)).Msg("web: unrecognized filter")
	}

	s.mu.Lock()
	s.ctrl.SetFilter(f)
	s.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) renderPage(w http.ResponseWriter, status int, v todo.View, notice string) {
	p := page{
		View:    v,
		Columns: todo.Columns,
		Notice:  notice,
	}
	for _, f := range todo.Filters {
		p.Filters = append(p.Filters, filterOption{Value: f, Label: f.Label(), Selected: f == v.Filter})
	}
	if !v.Filter.Valid() {
		p.Filters = append(p.Filters, filterOption{
			Value:    v.Filter,
			Label:    fmt.Sprintf("Unknown (%s)", v.Filter),
			Selected: true,
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.Execute(w, p); err != nil {
		log.Error().Err(err).Msg("web: render page")
	}
}
