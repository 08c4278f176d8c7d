package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"

	"github.com/umn-libraries/drumcurate/bitstream"
	"github.com/umn-libraries/drumcurate/format"
	"github.com/umn-libraries/drumcurate/helpers"
	"github.com/umn-libraries/drumcurate/metadata"
)

// maxBody bounds render request bodies.
const maxBody = 32 << 20

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	var routes = []struct {
		method  string
		route   string
		handler httprouter.Handle
	}{
		{"POST", "/render/:format", s.RenderHandler},
		{"GET", "/formats", FormatsHandler},
		{"GET", "/", WelcomeHandler},
	}

	r := httprouter.New()
	for _, route := range routes {
		r.Handle(route.method, route.route, logWrapper(route.handler))
	}
	return r
}

// RenderRequest is the body of POST /render/:format. Metadata and
// bitstreams use the DSpace REST field names.
type RenderRequest struct {
	Metadata   []metadata.Record `json:"metadata"`
	Bitstreams []bitstream.Entry `json:"bitstreams"`

	// Date and Year override the server clock
	Date string `json:"date,omitempty"`
	Year string `json:"year,omitempty"`
}

// RenderHandler renders the posted item in the format named in the path.
func (s *Server) RenderHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	renderer, err := format.GetRenderer(ps.ByName("format"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	var req RenderRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decoding request: %w", err))
		return
	}

	doc, err := format.NewDocument(req.Metadata, req.Bitstreams)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, helpers.ErrInvalidSize) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}

	opts := format.NewRenderOptions(s.now())
	if req.Date != "" {
		opts.GeneratedDate = req.Date
	}
	if req.Year != "" {
		opts.Year = req.Year
	}
	if s.Publisher != "" {
		opts.Publisher = s.Publisher
	}

	// render into a buffer so a failure can still set the status
	var buf bytes.Buffer
	if err := renderer.Render(&buf, doc, opts); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", renderer.MediaType())
	w.Write(buf.Bytes())
}

// FormatInfo describes one renderer in the GET /formats listing.
type FormatInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Extension   string `json:"extension"`
	MediaType   string `json:"mediaType"`
}

// FormatsHandler lists the registered renderers as JSON.
func FormatsHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var out []FormatInfo
	for _, name := range format.List() {
		f, _ := format.Get(name)
		out = append(out, FormatInfo{
			Name:        f.Name(),
			Description: f.Description(),
			Extension:   f.Extension(),
			MediaType:   f.MediaType(),
		})
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	json.NewEncoder(w).Encode(out)
}

// WelcomeHandler answers liveness checks.
func WelcomeHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	fmt.Fprintln(w, "drumcurate render service")
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprintln(w, err.Error())
}

// logWrapper takes a handler and returns a handler which does the same thing,
// after first logging the request. Each request is tagged with an id that
// is echoed in the X-Request-Id response header.
func logWrapper(handler httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		slog.Info("request", "id", id, "method", r.Method, "url", r.URL.String())
		handler(w, r, ps)
	}
}
