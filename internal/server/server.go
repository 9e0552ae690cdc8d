// Package server exposes a read-only HTTP view of a region collection.
//
// The model is single-threaded by design, so the server serves a collection
// loaded once at startup and never mutates it; concurrent reads of the
// immutable snapshot are safe without locking.
package server

import (
	"encoding/json"
	"net/http"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/apiregions/regions/pkg/region"
	"github.com/apiregions/regions/pkg/regionjson"
)

// Server serves region queries over HTTP.
type Server struct {
	regions *region.Collection
	logger  *log.Logger
}

// New creates a server around an already-loaded collection.
func New(regions *region.Collection, logger *log.Logger) *Server {
	return &Server{regions: regions, logger: logger}
}

// Handler returns the HTTP handler with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)

	r.Get("/regions", s.handleList)
	r.Get("/regions/{name}", s.handleGet)
	r.Get("/regions/{name}/contains", s.handleContains)

	return r
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := regionjson.Write(s.regions, w); err != nil {
		s.logger.Error("serialize regions", "err", err)
	}
}

// regionDetail is the response body for a single region lookup. Effective
// is the full inherited membership, sorted; Exports is own entries only.
type regionDetail struct {
	Name      string   `json:"name"`
	Parent    string   `json:"parent,omitempty"`
	Exports   []string `json:"exports"`
	Effective []string `json:"effective"`
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	reg, ok := s.regions.ByName(chi.URLParam(r, "name"))
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "no such region")
		return
	}

	detail := regionDetail{
		Name:      reg.Name(),
		Exports:   reg.Exports(),
		Effective: slices.Sorted(reg.All()),
	}
	if p := reg.Parent(); p != nil {
		detail.Parent = p.Name()
	}
	if detail.Effective == nil {
		detail.Effective = []string{}
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleContains(w http.ResponseWriter, r *http.Request) {
	reg, ok := s.regions.ByName(chi.URLParam(r, "name"))
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "no such region")
		return
	}

	pkg := r.URL.Query().Get("pkg")
	if pkg == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "missing pkg query parameter")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"package":   pkg,
		"contained": reg.Contains(pkg),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the JSON error envelope used by every endpoint:
// {"error": <code>, "error_description": <detail>}.
func writeError(w http.ResponseWriter, status int, code, description string) {
	writeJSON(w, status, map[string]string{
		"error":             code,
		"error_description": description,
	})
}
