package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// mountDemos exposes the demo registry read-only.
func (s *Server) mountDemos(r chi.Router) {
	r.Get("/demos", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string][]string{"demos": s.demos.Names()})
	})
	r.Post("/demos/{name}", s.handleRunDemo)
}

type demoRes struct {
	Name   string `json:"name"`
	Output string `json:"output"`
}

// handleRunDemo runs one demo and returns what it printed.
func (s *Server) handleRunDemo(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	action, ok := s.demos.Lookup(name)
	if !ok {
		writeError(w, http.StatusNotFound, "Unknown demo: "+name)
		return
	}
	var buf bytes.Buffer
	action(&buf)
	_ = json.NewEncoder(w).Encode(demoRes{Name: name, Output: buf.String()})
}
