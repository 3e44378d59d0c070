// Package sstest provides an in-process fake of the ScreenScraper API for
// tests. It speaks the same wire format as the real service, including
// its quirks: stringified numbers and booleans, [{}] for empty lists,
// French error phrases and textual media status replies.
//
//	srv := sstest.NewServer(t)
//	srv.AddGame(sstest.Game{ID: 3, PlatformID: 1, Name: "Sonic 2", RomName: "sonic2.md"})
//	c := srv.Client(t)
package sstest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/adamwoolhether/screenscraper/client"
)

// Upstream phrases the fake replies with.
const (
	PhraseBadDevCredentials = "Erreur de login : Vérifier vos identifiants développeur !"
	PhraseMissingFields     = "Il manque des champs obligatoires dans l'url"
	PhraseNotFound          = "Erreur : Jeu non trouvée ! / Erreur : Rom/Iso/Dossier non trouvée !"
	PhraseMembersOnly       = "API fermé pour les non membres ou les membres inactifs"
)

// Default credentials accepted by a new Server.
const (
	SoftwareName = "sstest"
	DevID        = "dev"
	DevPassword  = "devpass"
	UserName     = "player"
	UserPassword = "playerpass"
)

// Server is a fake ScreenScraper API backed by httptest.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	games     []Game
	platforms []Platform
	media     []Media
	overrides map[string]http.HandlerFunc
	queries   []Query
}

// Query is a request the server received, credentials included.
type Query struct {
	Path   string
	Values url.Values
	Raw    string
}

// NewServer starts a fake server that is closed when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := NewUnmanagedServer()
	t.Cleanup(s.Close)

	return s
}

// NewUnmanagedServer starts a fake server the caller must Close. It
// serves examples and other code without a testing.TB.
func NewUnmanagedServer() *Server {
	s := &Server{overrides: make(map[string]http.HandlerFunc)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))

	return s
}

// Credentials returns credentials the server accepts.
func (s *Server) Credentials() client.Credentials {
	return client.Credentials{
		SoftwareName: SoftwareName,
		DevID:        DevID,
		DevPassword:  DevPassword,
		UserName:     UserName,
		UserPassword: UserPassword,
	}
}

// Client builds a client pointed at the server.
func (s *Server) Client(t testing.TB, opts ...client.Option) *client.Client {
	t.Helper()

	opts = append([]client.Option{client.WithBaseURL(s.URL)}, opts...)

	c, err := client.Build(s.Credentials(), opts...)
	if err != nil {
		t.Fatalf("building client: %v", err)
	}

	return c
}

// Handle overrides the handler of an endpoint, e.g. "jeuInfos.php".
// The override runs after the developer credentials are checked.
func (s *Server) Handle(path string, h http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.overrides[path] = h
}

// Queries returns the requests received so far.
func (s *Server) Queries() []Query {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Query, len(s.queries))
	copy(out, s.queries)

	return out
}

// LastQuery returns the most recent request.
func (s *Server) LastQuery() (Query, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queries) == 0 {
		return Query{}, false
	}

	return s.queries[len(s.queries)-1], true
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	path, ok := strings.CutPrefix(r.URL.Path, "/"+client.APIVersion)
	if !ok {
		http.NotFound(w, r)
		return
	}

	q := r.URL.Query()

	s.mu.Lock()
	s.queries = append(s.queries, Query{Path: path, Values: q, Raw: r.URL.RawQuery})
	override := s.overrides[path]
	s.mu.Unlock()

	if q.Get("devid") != DevID || q.Get("devpassword") != DevPassword || q.Get("softname") == "" {
		WriteText(w, http.StatusForbidden, PhraseBadDevCredentials)
		return
	}

	if override != nil {
		override(w, r)
		return
	}

	if h, ok := s.routes()[path]; ok {
		h(w, r)
		return
	}

	WriteText(w, http.StatusBadRequest, "problème avec l'url")
}

// WriteEnvelope writes a successful envelope around response.
func WriteEnvelope(w http.ResponseWriter, response any) {
	writeJSON(w, http.StatusOK, map[string]any{
		"header": map[string]any{
			"APIversion": "2.0",
			"success":    "true",
			"error":      "",
		},
		"response": response,
	})
}

// WriteFailure writes an envelope with success=false and msg as the error.
func WriteFailure(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"header": map[string]any{
			"success": "false",
			"error":   msg,
		},
	})
}

// WriteText writes a plain error phrase, the way the API rejects requests.
func WriteText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}
