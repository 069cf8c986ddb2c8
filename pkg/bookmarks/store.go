package bookmarks

import (
	"context"
	"log/slog"
	"sync"

	"github.com/fcavalcantirj/solvr-ui/pkg/api"
	"github.com/fcavalcantirj/solvr-ui/pkg/reactive"
	"github.com/fcavalcantirj/solvr-ui/pkg/toggle"
)

// listPageSize is the page size Sync uses when walking the bookmark list.
const listPageSize = 100

// Store is the session-wide bookmark state.
type Store struct {
	client *api.Client
	logger *slog.Logger

	mu      sync.RWMutex
	entries map[string]*entry
	synced  bool
}

// entry pairs the observable signal with whether its value is
// authoritative (loaded from the server) or merely a default.
type entry struct {
	sig   *reactive.Signal[bool]
	known bool
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store's logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates an empty bookmark store backed by the given client.
func NewStore(client *api.Client, opts ...Option) *Store {
	s := &Store{
		client:  client,
		entries: make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Signal returns the shared bookmarked signal for a post, creating it on
// first use. Views subscribe here rather than to an individual
// controller, so a toggle in one view updates every other.
func (s *Store) Signal(postID string) *reactive.Signal[bool] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entryLocked(postID).sig
}

// Bookmarked returns the stored value for a post and whether that value
// is authoritative.
func (s *Store) Bookmarked(postID string) (bookmarked, known bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[postID]
	if !ok {
		// After a full sync, absence is authoritative.
		return false, s.synced
	}
	if !e.known {
		return false, false
	}
	return e.sig.Get(), true
}

// Synced reports whether a full list sync has completed.
func (s *Store) Synced() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.synced
}

// Sync replaces the store's contents with the server's bookmark list,
// walking every page. Posts previously marked bookmarked that no longer
// appear are flipped to false.
func (s *Store) Sync(ctx context.Context) error {
	listed := make(map[string]bool)
	page := 1
	for {
		resp, err := s.client.ListBookmarks(ctx, page, listPageSize)
		if err != nil {
			s.logger.Debug("bookmark sync failed", "page", page, "error", err)
			return err
		}
		for _, b := range resp.Data {
			listed[b.PostID] = true
		}
		if !resp.Meta.HasMore {
			break
		}
		page++
	}

	s.mu.Lock()
	for postID := range listed {
		e := s.entryLocked(postID)
		e.known = true
		e.sig.Set(true)
	}
	for postID, e := range s.entries {
		if !listed[postID] {
			e.known = true
			e.sig.Set(false)
		}
	}
	s.synced = true
	s.mu.Unlock()

	s.logger.Debug("bookmark sync complete", "count", len(listed))
	return nil
}

// Controller builds a bookmark toggle controller wired to the store: its
// initial read is served from the store when the value is already known,
// and its visible state is mirrored back into the shared signal.
func (s *Store) Controller(ctx toggle.Ctx, postID string, opts toggle.Options) *toggle.Binary {
	if opts.FailureNotice == "" {
		opts.FailureNotice = "Could not update bookmark, please try again"
	}

	remote := func(ctx context.Context, bookmarked bool) error {
		if bookmarked {
			return s.client.RemoveBookmark(ctx, postID)
		}
		return s.client.AddBookmark(ctx, postID)
	}

	read := func(ctx context.Context) (bool, error) {
		if v, known := s.Bookmarked(postID); known {
			return v, nil
		}
		v, err := s.client.IsBookmarked(ctx, postID)
		if err != nil {
			return false, err
		}
		s.set(postID, v)
		return v, nil
	}

	c := toggle.NewBinary(ctx, "bookmark", remote, read, opts)

	stop := c.StateSignal().Watch(func(st toggle.State[bool]) {
		if st.Kind == toggle.KindReady {
			s.set(postID, st.Value)
		}
	})
	if opts.Owner != nil {
		opts.Owner.OnCleanup(stop)
	}

	return c
}

// set records an authoritative value for a post.
func (s *Store) set(postID string, bookmarked bool) {
	s.mu.Lock()
	e := s.entryLocked(postID)
	e.known = true
	s.mu.Unlock()

	// Signal notification runs outside the store lock; watchers may call
	// back into the store.
	e.sig.Set(bookmarked)
}

func (s *Store) entryLocked(postID string) *entry {
	e, ok := s.entries[postID]
	if !ok {
		// After a full sync, absence from the list means not bookmarked,
		// so a fresh entry is already authoritative.
		e = &entry{sig: reactive.NewSignal(false), known: s.synced}
		s.entries[postID] = e
	}
	return e
}
