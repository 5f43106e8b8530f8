// Package discordtest provides a fake Discord API and CDN for tests.
package discordtest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"

	"github.com/gorilla/mux"
)

// Server serves the invites endpoint under /api/v10 and CDN assets at the root
type Server struct {
	*httptest.Server
	Token string

	mu       sync.Mutex
	invites  map[string]string
	statuses map[string]int
	assets   map[string]bool
	probes   []string
	requests []*http.Request
}

// NewServer starts a fake that accepts token as its bot token
func NewServer(token string) *Server {
	s := &Server{
		Token:    token,
		invites:  make(map[string]string),
		statuses: make(map[string]int),
		assets:   make(map[string]bool),
	}
	s.Server = httptest.NewServer(s.router())
	return s
}

func (s *Server) router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v10/invites/{code}", s.inviteHandler).Methods(http.MethodGet)
	r.PathPrefix("/").HandlerFunc(s.assetHandler).Methods(http.MethodHead, http.MethodGet)
	return r
}

// APIURL is the base URL to configure as DISCORD_API_URL
func (s *Server) APIURL() string {
	return s.URL + "/api/v10"
}

// CDNURL is the base URL to configure as DISCORD_CDN_URL
func (s *Server) CDNURL() string {
	return s.URL
}

// AddInvite serves body for code
func (s *Server) AddInvite(code, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invites[code] = body
}

// SetStatus makes the invites endpoint answer code with status and a
// Discord style error body
func (s *Server) SetStatus(code string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[code] = status
}

// AddAsset makes path (for example "/avatars/1/a_x.gif") exist on the CDN
func (s *Server) AddAsset(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assets[path] = true
}

// Probes returns the CDN paths requested so far, sorted
func (s *Server) Probes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]string(nil), s.probes...)
	sort.Strings(out)
	return out
}

// InviteRequests returns the invite requests received so far
func (s *Server) InviteRequests() []*http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*http.Request(nil), s.requests...)
}

func (s *Server) inviteHandler(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	s.mu.Lock()
	s.requests = append(s.requests, r)
	body, found := s.invites[code]
	status, forced := s.statuses[code]
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Header.Get("Authorization") != "Bot "+s.Token:
		writeError(w, http.StatusUnauthorized, "401: Unauthorized", 0)
	case r.URL.Query().Get("with_counts") != "true":
		writeError(w, http.StatusBadRequest, "with_counts is required", 50035)
	case forced:
		writeError(w, status, http.StatusText(status), 0)
	case !found:
		writeError(w, http.StatusNotFound, "Unknown Invite", 10006)
	default:
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, body)
	}
}

func (s *Server) assetHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.probes = append(s.probes, r.URL.Path)
	exists := s.assets[r.URL.Path]
	s.mu.Unlock()

	if !exists {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/gif")
	w.WriteHeader(http.StatusOK)
}

func writeError(w http.ResponseWriter, status int, message string, code int) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{"message": message, "code": code})
}
