// Package web serves the dashboard as HTML page. Every request runs one
// render pass with the widget values taken from the query string.
package web

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/Melanie472/f1laps/log"
	"github.com/Melanie472/f1laps/pkg/chart"
	"github.com/Melanie472/f1laps/pkg/dashboard"
)

//go:embed page.html.tmpl
var pageTemplate string

var page = template.Must(template.New("page").Parse(pageTemplate))

// Renderer runs a render pass. *dashboard.Dashboard implements it.
type Renderer interface {
	Render(ctx context.Context, s dashboard.Surface) (*dashboard.State, error)
}

type (
	Option func(*Server)
	Server struct {
		dash   Renderer
		title  string
		router *mux.Router
		l      *log.Logger
	}
	pageData struct {
		Title  string
		Blocks []*block
	}
)

func WithLogger(arg *log.Logger) Option {
	return func(s *Server) {
		s.l = arg
	}
}

func WithTitle(arg string) Option {
	return func(s *Server) {
		s.title = arg
	}
}

func New(dash Renderer, opts ...Option) *Server {
	s := &Server{
		dash:   dash,
		title:  "F1 lap times",
		router: mux.NewRouter(),
		l:      log.Default().Named("web"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	s.router.HandleFunc("/", s.handlePage).Methods(http.MethodGet)
	s.router.HandleFunc("/chart.{format:png|svg}", s.handleChart).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	surface := newQuerySurface(r.URL.Query())
	if _, err := s.dash.Render(r.Context(), surface); err != nil {
		s.l.Error("render failed", log.String("url", r.URL.String()), log.ErrorField(err))
		http.Error(w, "could not load data: "+err.Error(), http.StatusBadGateway)
		return
	}
	for _, b := range surface.blocks {
		if b.Kind != kindChart {
			continue
		}
		var buf bytes.Buffer
		if err := chart.Render(&buf, b.Spec, chart.FormatSVG); err != nil {
			s.l.Error("chart rendering failed", log.ErrorField(err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		//nolint:gosec // svg is produced by our chart renderer
		b.SVG = template.HTML(buf.String())
	}
	var buf bytes.Buffer
	if err := page.Execute(&buf, pageData{Title: s.title, Blocks: surface.blocks}); err != nil {
		s.l.Error("template failed", log.ErrorField(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	format, err := chart.ParseFormat(mux.Vars(r)["format"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	surface := newQuerySurface(r.URL.Query())
	if _, err = s.dash.Render(r.Context(), surface); err != nil {
		s.l.Error("render failed", log.String("url", r.URL.String()), log.ErrorField(err))
		http.Error(w, "could not load data: "+err.Error(), http.StatusBadGateway)
		return
	}
	spec := surface.chartSpec()
	if spec == nil {
		http.Error(w, strings.Join(surface.warnings(), "\n"), http.StatusNotFound)
		return
	}
	var buf bytes.Buffer
	if err := chart.Render(&buf, spec, format); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, chart.ErrNothingToRender) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	_, _ = w.Write(buf.Bytes())
}
