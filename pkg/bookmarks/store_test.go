package bookmarks

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/fcavalcantirj/solvr-ui/pkg/apitest"
	"github.com/fcavalcantirj/solvr-ui/pkg/eventloop"
	"github.com/fcavalcantirj/solvr-ui/pkg/toggle"
)

func waitFor(t *testing.T, desc string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", desc)
}

func TestSignalIsSharedPerPost(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	s := NewStore(srv.Client())

	a := s.Signal("post-1")
	b := s.Signal("post-1")
	if a != b {
		t.Error("two lookups for one post returned different signals")
	}
	if s.Signal("post-2") == a {
		t.Error("different posts share a signal")
	}
}

func TestSyncLoadsAuthoritativeList(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	srv.SeedBookmarks("post-1", "post-2")

	s := NewStore(srv.Client())

	if _, known := s.Bookmarked("post-1"); known {
		t.Error("value known before any sync")
	}

	if err := s.Sync(context.Background()); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if !s.Synced() {
		t.Error("Synced() = false after a successful sync")
	}

	for _, id := range []string{"post-1", "post-2"} {
		v, known := s.Bookmarked(id)
		if !known || !v {
			t.Errorf("Bookmarked(%q) = %v/%v, want true/known", id, v, known)
		}
	}

	// Absence after a full sync is authoritative.
	v, known := s.Bookmarked("post-3")
	if !known || v {
		t.Errorf("Bookmarked(post-3) = %v/%v, want false/known", v, known)
	}
}

func TestSyncFlipsRemovedBookmarks(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	srv.SeedBookmarks("post-2")

	s := NewStore(srv.Client())
	s.set("post-1", true) // stale local state

	if err := s.Sync(context.Background()); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	if v, _ := s.Bookmarked("post-1"); v {
		t.Error("post-1 still bookmarked after a sync that does not list it")
	}
	if v, _ := s.Bookmarked("post-2"); !v {
		t.Error("post-2 not bookmarked after sync")
	}
}

func TestSyncWalksEveryPage(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()

	ids := make([]string, 0, 250)
	for i := 0; i < 250; i++ {
		ids = append(ids, "post-"+string(rune('a'+i/100))+string(rune('0'+(i/10)%10))+string(rune('0'+i%10)))
	}
	srv.SeedBookmarks(ids...)

	s := NewStore(srv.Client())
	if err := s.Sync(context.Background()); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	if v, known := s.Bookmarked(ids[len(ids)-1]); !known || !v {
		t.Error("last page's bookmarks missing after sync")
	}
	if n := srv.CallCount(http.MethodGet, "/v1/users/me/bookmarks"); n < 3 {
		t.Errorf("list calls = %d, want at least 3 pages", n)
	}
}

func TestControllerMirrorsIntoStore(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()

	l := eventloop.New()
	defer l.Close()

	s := NewStore(srv.Client())
	c := s.Controller(l, "post-1", toggle.Options{})
	waitFor(t, "initial read", func() bool { return c.Current().Kind == toggle.KindReady })

	c.Toggle()
	waitFor(t, "store signal update", func() bool { return s.Signal("post-1").Get() })
	waitFor(t, "server write", func() bool { return srv.HasBookmark("post-1") })
}

func TestControllerReadServedFromStore(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()

	l := eventloop.New()
	defer l.Close()

	s := NewStore(srv.Client())
	if err := s.Sync(context.Background()); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	before := srv.CallCount(http.MethodGet, "/v1/users/me/bookmarks")

	c := s.Controller(l, "post-1", toggle.Options{})
	waitFor(t, "initial read", func() bool { return c.Current().Kind == toggle.KindReady })

	if after := srv.CallCount(http.MethodGet, "/v1/users/me/bookmarks"); after != before {
		t.Errorf("controller read hit the server (%d extra calls) despite a synced store", after-before)
	}
}

func TestFailedToggleRevertsStore(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	srv.FailNext(http.MethodPost, "/v1/users/me/bookmarks", http.StatusInternalServerError, "HTTP_500")

	l := eventloop.New()
	defer l.Close()

	s := NewStore(srv.Client())
	c := s.Controller(l, "post-1", toggle.Options{})
	waitFor(t, "initial read", func() bool { return c.Current().Kind == toggle.KindReady })

	c.Toggle()
	waitFor(t, "write attempt", func() bool {
		return srv.CallCount(http.MethodPost, "/v1/users/me/bookmarks") >= 1
	})
	waitFor(t, "settle", func() bool { return !c.IsBusy() })

	if s.Signal("post-1").Get() {
		t.Error("store still bookmarked after the failed toggle")
	}

	if srv.HasBookmark("post-1") {
		t.Error("server recorded the bookmark despite the injected failure")
	}
}

func TestSignalAfterSyncIsAuthoritative(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	srv.SeedBookmarks("post-1")

	s := NewStore(srv.Client())
	if err := s.Sync(context.Background()); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	// A signal looked up only after the sync must agree with Bookmarked:
	// the post was absent from the full list, so it is not bookmarked.
	sig := s.Signal("post-9")
	if sig.Get() {
		t.Error("post absent from the synced list reads as bookmarked")
	}
	v, known := s.Bookmarked("post-9")
	if v || !known {
		t.Errorf("Bookmarked = (%v, %v), want (false, true) after full sync", v, known)
	}
}
