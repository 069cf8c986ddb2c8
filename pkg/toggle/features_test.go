package toggle_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/fcavalcantirj/solvr-ui/pkg/api"
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

func TestFollowAgentEndToEnd(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()

	l := eventloop.New()
	defer l.Close()

	actor := api.Identity{Type: api.EntityHuman, ID: "human-1"}
	target := api.Identity{Type: api.EntityAgent, ID: "agent-1"}

	c := toggle.NewFollow(l, srv.Client(), actor, target, toggle.Options{})
	waitFor(t, "initial read", func() bool { return c.Current().Kind == toggle.KindReady })

	if c.Current().Value {
		t.Fatal("following before any toggle")
	}

	c.Toggle()
	waitFor(t, "server follow", func() bool { return srv.Following(target) })
	waitFor(t, "settle", func() bool { return !c.IsBusy() })

	if !c.Current().Value {
		t.Error("not following after a successful toggle")
	}
	if n := srv.CallCount(http.MethodPost, "/v1/follow"); n != 1 {
		t.Errorf("POST /v1/follow calls = %d, want 1", n)
	}
	if n := srv.CallCount(http.MethodDelete, "/v1/follow"); n != 0 {
		t.Errorf("DELETE /v1/follow calls = %d, want 0", n)
	}

	// Toggling back unfollows.
	c.Toggle()
	waitFor(t, "server unfollow", func() bool { return !srv.Following(target) })
	waitFor(t, "settle", func() bool { return !c.IsBusy() })
	if c.Current().Value {
		t.Error("still following after the second toggle")
	}
}

func TestFollowRejectionReverts(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	srv.FailNext(http.MethodPost, "/v1/follow", http.StatusForbidden, api.CodeForbidden)

	l := eventloop.New()
	defer l.Close()

	actor := api.Identity{Type: api.EntityHuman, ID: "human-1"}
	target := api.Identity{Type: api.EntityAgent, ID: "agent-1"}

	c := toggle.NewFollow(l, srv.Client(), actor, target, toggle.Options{})
	waitFor(t, "initial read", func() bool { return c.Current().Kind == toggle.KindReady })

	c.Toggle()
	waitFor(t, "write attempt", func() bool {
		return srv.CallCount(http.MethodPost, "/v1/follow") >= 1
	})
	waitFor(t, "settle", func() bool { return !c.IsBusy() })

	if c.Current().Value {
		t.Error("still following after the rejected toggle")
	}
	if srv.Following(target) {
		t.Error("server recorded the rejected follow")
	}
}

func TestSelfFollowIsInert(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()

	l := eventloop.New()
	defer l.Close()

	self := api.Identity{Type: api.EntityAgent, ID: "agent-1"}

	c := toggle.NewFollow(l, srv.Client(), self, self, toggle.Options{})
	l.Sync(func() {})

	if got := c.Current().Kind; got != toggle.KindInert {
		t.Fatalf("Current().Kind = %v, want inert", got)
	}

	c.Toggle()
	l.Sync(func() {})
	time.Sleep(20 * time.Millisecond)

	if n := len(srv.Calls()); n != 0 {
		t.Errorf("inert controller reached the server (%d calls)", n)
	}
}

func TestVoteEndToEnd(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	srv.SeedVote("post-1", api.DirectionNone, 10)

	l := eventloop.New()
	defer l.Close()

	actor := api.Identity{Type: api.EntityHuman, ID: "human-1"}
	author := api.Identity{Type: api.EntityAgent, ID: "agent-9"}

	c := toggle.NewVote(l, srv.Client(), "post-1", actor, author, toggle.Options{})
	waitFor(t, "initial read", func() bool { return c.Current().Kind == toggle.KindReady })

	if got := c.Current().Value; got.Direction != api.DirectionNone || got.Score != 10 {
		t.Fatalf("initial value = %+v, want none/10", got)
	}

	c.Upvote()
	waitFor(t, "settle", func() bool {
		dir, _ := srv.VoteState("post-1")
		return dir == api.DirectionUp && !c.IsBusy()
	})

	if got := c.Current().Value; got.Direction != api.DirectionUp || got.Score != 11 {
		t.Errorf("value after upvote = %+v, want up/11", got)
	}
	if dir, score := srv.VoteState("post-1"); dir != api.DirectionUp || score != 11 {
		t.Errorf("server state = %q/%d, want up/11", dir, score)
	}

	// Re-clicking retracts: the wire carries direction none.
	c.Upvote()
	waitFor(t, "retract settle", func() bool {
		dir, _ := srv.VoteState("post-1")
		return dir == api.DirectionNone && !c.IsBusy()
	})

	if got := c.Current().Value; got.Direction != api.DirectionNone || got.Score != 10 {
		t.Errorf("value after retract = %+v, want none/10", got)
	}
}

func TestVoteOwnContentIsInert(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()

	l := eventloop.New()
	defer l.Close()

	self := api.Identity{Type: api.EntityAgent, ID: "agent-1"}

	c := toggle.NewVote(l, srv.Client(), "post-1", self, self, toggle.Options{})
	l.Sync(func() {})

	if got := c.Current().Kind; got != toggle.KindInert {
		t.Fatalf("Current().Kind = %v, want inert", got)
	}

	c.Upvote()
	c.Downvote()
	l.Sync(func() {})
	time.Sleep(20 * time.Millisecond)

	if n := len(srv.Calls()); n != 0 {
		t.Errorf("inert controller reached the server (%d calls)", n)
	}
}

func TestBookmarkEndToEnd(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()

	l := eventloop.New()
	defer l.Close()

	c := toggle.NewBookmark(l, srv.Client(), "post-1", toggle.Options{})
	waitFor(t, "initial read", func() bool { return c.Current().Kind == toggle.KindReady })

	c.Toggle()
	waitFor(t, "server write", func() bool { return srv.HasBookmark("post-1") })
	waitFor(t, "settle", func() bool { return !c.IsBusy() })

	if !c.Current().Value {
		t.Error("not bookmarked after a successful toggle")
	}
}
