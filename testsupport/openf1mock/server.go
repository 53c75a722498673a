// Package openf1mock serves canned OpenF1 responses for tests.
package openf1mock

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/ohler55/ojg/oj"

	"github.com/Melanie472/f1laps/testsupport/basedata"
)

type (
	Option func(*Server)
	Server struct {
		*httptest.Server
		sessions []map[string]any
		drivers  []map[string]any
		laps     func(sessionKey int) []map[string]any
		failures map[string]int
		mu       sync.Mutex
		hits     map[string]int
	}
)

// WithFailure lets the endpoint (sessions, drivers, laps) answer with status.
func WithFailure(endpoint string, status int) Option {
	return func(s *Server) {
		s.failures[endpoint] = status
	}
}

func WithSessions(arg []map[string]any) Option {
	return func(s *Server) {
		s.sessions = arg
	}
}

func WithDrivers(arg []map[string]any) Option {
	return func(s *Server) {
		s.drivers = arg
	}
}

func WithLaps(arg func(sessionKey int) []map[string]any) Option {
	return func(s *Server) {
		s.laps = arg
	}
}

// New starts a server backed by basedata. It is closed on test cleanup.
func New(t testing.TB, opts ...Option) *Server {
	t.Helper()
	s := &Server{
		sessions: basedata.RawSessions(),
		drivers:  basedata.RawDrivers(),
		laps:     basedata.RawLaps,
		failures: map[string]int{},
		hits:     map[string]int{},
	}
	for _, opt := range opts {
		opt(s)
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/sessions", s.handle("sessions", func(r *http.Request) any {
		return filterSessions(s.sessions, r)
	}))
	mux.HandleFunc("/v1/drivers", s.handle("drivers", func(r *http.Request) any {
		return s.drivers
	}))
	mux.HandleFunc("/v1/laps", s.handle("laps", func(r *http.Request) any {
		sk, _ := strconv.Atoi(r.URL.Query().Get("session_key"))
		return s.laps(sk)
	}))
	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

// BaseURL is the value to pass to openf1.WithBaseURL.
func (s *Server) BaseURL() string {
	return s.URL + "/v1"
}

// Hits returns the number of requests received for endpoint.
func (s *Server) Hits(endpoint string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[endpoint]
}

func (s *Server) handle(endpoint string, data func(r *http.Request) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.hits[endpoint]++
		s.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		if status, ok := s.failures[endpoint]; ok {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(oj.JSON(map[string]any{"detail": "mock failure"})))
			return
		}
		_, _ = w.Write([]byte(oj.JSON(toList(data(r)))))
	}
}

// toList converts typed row slices into the generic form ojg writes natively
func toList(v any) any {
	rows, ok := v.([]map[string]any)
	if !ok {
		return v
	}
	ret := make([]any, 0, len(rows))
	for _, r := range rows {
		ret = append(ret, r)
	}
	return ret
}

func filterSessions(sessions []map[string]any, r *http.Request) []map[string]any {
	q := r.URL.Query()
	ret := []map[string]any{}
	for _, s := range sessions {
		if name := q.Get("session_name"); name != "" && s["session_name"] != name {
			continue
		}
		if year := q.Get("year"); year != "" && strconv.Itoa(s["year"].(int)) != year {
			continue
		}
		ret = append(ret, s)
	}
	return ret
}
