package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fcavalcantirj/solvr-ui/pkg/api"
)

// Call records one request the fake server received.
type Call struct {
	Method string
	Path   string
}

// voteRecord is the server-side vote state for one post.
type voteRecord struct {
	UserVote api.Direction
	Score    int
}

// failure is one injected failure, consumed by the first matching request.
type failure struct {
	method string
	prefix string
	status int
	code   string
}

// Server is an in-memory Solvr API.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	follows   map[api.Identity]bool
	votes     map[string]*voteRecord
	bookmarks []string
	calls     []Call
	failures  []failure
}

// New starts a fake API server. The caller must Close it.
func New() *Server {
	s := &Server{
		follows: make(map[api.Identity]bool),
		votes:   make(map[string]*voteRecord),
	}

	r := chi.NewRouter()
	r.Use(s.record)
	r.Use(s.auth)

	r.Post("/v1/follow", s.handleFollow)
	r.Delete("/v1/follow", s.handleUnfollow)
	r.Get("/v1/follow/status", s.handleFollowStatus)
	r.Post("/v1/posts/{postID}/vote", s.handleVote)
	r.Get("/v1/posts/{postID}/vote", s.handleVoteStatus)
	r.Get("/v1/users/me/bookmarks", s.handleListBookmarks)
	r.Post("/v1/users/me/bookmarks", s.handleAddBookmark)
	r.Delete("/v1/users/me/bookmarks/{postID}", s.handleRemoveBookmark)

	s.Server = httptest.NewServer(r)
	return s
}

// Client returns an API client pointed at this server.
func (s *Server) Client(opts ...api.ClientOption) *api.Client {
	opts = append([]api.ClientOption{api.WithBaseURL(s.URL)}, opts...)
	return api.NewClient("test-key", opts...)
}

// Calls returns every request received so far, in order.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// CallCount returns how many requests matched the method and path prefix.
func (s *Server) CallCount(method, prefix string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		if c.Method == method && strings.HasPrefix(c.Path, prefix) {
			n++
		}
	}
	return n
}

// FailNext makes the next request matching method and path prefix fail
// with the given status and error code. Injections are consumed in order.
func (s *Server) FailNext(method, prefix string, status int, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, failure{method: method, prefix: prefix, status: status, code: code})
}

// SeedFollow marks the target as already followed.
func (s *Server) SeedFollow(target api.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.follows[target] = true
}

// SeedVote sets the caller's vote and the post's score.
func (s *Server) SeedVote(postID string, direction api.Direction, score int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.votes[postID] = &voteRecord{UserVote: direction, Score: score}
}

// SeedBookmarks marks posts as already bookmarked, in order.
func (s *Server) SeedBookmarks(postIDs ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookmarks = append(s.bookmarks, postIDs...)
}

// Following reports the server-side follow state for a target.
func (s *Server) Following(target api.Identity) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.follows[target]
}

// VoteState returns the server-side vote state for a post.
func (s *Server) VoteState(postID string) (api.Direction, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.votes[postID]
	if !ok {
		return api.DirectionNone, 0
	}
	return rec.UserVote, rec.Score
}

// HasBookmark reports the server-side bookmark state for a post.
func (s *Server) HasBookmark(postID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookmarkIndex(postID) >= 0
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.calls = append(s.calls, Call{Method: r.Method, Path: r.URL.Path})
		var injected *failure
		for i, f := range s.failures {
			if f.method == r.Method && strings.HasPrefix(r.URL.Path, f.prefix) {
				injected = &f
				s.failures = append(s.failures[:i], s.failures[i+1:]...)
				break
			}
		}
		s.mu.Unlock()

		if injected != nil {
			writeError(w, injected.status, injected.code, "injected failure")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" || token == r.Header.Get("Authorization") {
			writeError(w, http.StatusUnauthorized, api.CodeUnauthorized, "missing bearer token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleFollow(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TargetType string `json:"target_type"`
		TargetID   string `json:"target_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid body")
		return
	}

	s.mu.Lock()
	s.follows[api.Identity{Type: req.TargetType, ID: req.TargetID}] = true
	s.mu.Unlock()

	writeData(w, http.StatusCreated, map[string]bool{"following": true})
}

func (s *Server) handleUnfollow(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TargetType string `json:"target_type"`
		TargetID   string `json:"target_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid body")
		return
	}

	s.mu.Lock()
	delete(s.follows, api.Identity{Type: req.TargetType, ID: req.TargetID})
	s.mu.Unlock()

	writeData(w, http.StatusOK, map[string]bool{"following": false})
}

func (s *Server) handleFollowStatus(w http.ResponseWriter, r *http.Request) {
	target := api.Identity{
		Type: r.URL.Query().Get("target_type"),
		ID:   r.URL.Query().Get("target_id"),
	}

	s.mu.Lock()
	following := s.follows[target]
	s.mu.Unlock()

	writeData(w, http.StatusOK, api.FollowStatus{Following: following})
}

func (s *Server) handleVote(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	var req struct {
		Direction api.Direction `json:"direction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.Direction.Valid() {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid direction")
		return
	}

	s.mu.Lock()
	rec, ok := s.votes[postID]
	if !ok {
		rec = &voteRecord{UserVote: api.DirectionNone}
		s.votes[postID] = rec
	}
	applyVote(rec, req.Direction)
	resp := api.VoteStatus{UserVote: rec.UserVote, VoteScore: rec.Score}
	s.mu.Unlock()

	writeData(w, http.StatusOK, resp)
}

// applyVote mirrors the platform's vote arithmetic.
func applyVote(rec *voteRecord, direction api.Direction) {
	if rec.UserVote == direction {
		return
	}

	// Remove the existing vote's contribution.
	switch rec.UserVote {
	case api.DirectionUp:
		rec.Score--
	case api.DirectionDown:
		rec.Score++
	}

	// Add the new one's.
	switch direction {
	case api.DirectionUp:
		rec.Score++
	case api.DirectionDown:
		rec.Score--
	}

	rec.UserVote = direction
}

func (s *Server) handleVoteStatus(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	s.mu.Lock()
	resp := api.VoteStatus{UserVote: api.DirectionNone}
	if rec, ok := s.votes[postID]; ok {
		resp = api.VoteStatus{UserVote: rec.UserVote, VoteScore: rec.Score}
	}
	s.mu.Unlock()

	writeData(w, http.StatusOK, resp)
}

func (s *Server) handleListBookmarks(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	if perPage < 1 {
		perPage = 20
	}

	s.mu.Lock()
	total := len(s.bookmarks)
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	data := make([]api.Bookmark, 0, end-start)
	for _, id := range s.bookmarks[start:end] {
		data = append(data, api.Bookmark{PostID: id, CreatedAt: time.Now()})
	}
	s.mu.Unlock()

	resp := api.BookmarksResponse{
		Data: data,
		Meta: api.Meta{Total: total, Page: page, PerPage: perPage, HasMore: end < total},
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddBookmark(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PostID string `json:"post_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PostID == "" {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bookmarkIndex(req.PostID) >= 0 {
		writeError(w, http.StatusConflict, api.CodeBookmarkDup, "already bookmarked")
		return
	}
	s.bookmarks = append(s.bookmarks, req.PostID)

	writeData(w, http.StatusCreated, api.Bookmark{PostID: req.PostID, CreatedAt: time.Now()})
}

func (s *Server) handleRemoveBookmark(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.bookmarkIndex(postID)
	if i < 0 {
		writeError(w, http.StatusNotFound, api.CodeNotFound, "bookmark not found")
		return
	}
	s.bookmarks = append(s.bookmarks[:i], s.bookmarks[i+1:]...)

	w.WriteHeader(http.StatusNoContent)
}

// bookmarkIndex must be called with s.mu held.
func (s *Server) bookmarkIndex(postID string) int {
	for i, id := range s.bookmarks {
		if id == postID {
			return i
		}
	}
	return -1
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, status int, v any) {
	writeJSON(w, status, map[string]any{"data": v})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, api.ErrorResponse{Error: api.APIError{Code: code, Message: message}})
}
