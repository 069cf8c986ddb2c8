package api

import "testing"

func TestRouteLabel(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/v1/follow", "/v1/follow"},
		{"/v1/follow/status?target_type=agent&target_id=a1", "/v1/follow/status"},
		{"/v1/posts/abc123/vote", "/v1/posts/:id/vote"},
		{"/v1/users/me/bookmarks", "/v1/users/me/bookmarks"},
		{"/v1/users/me/bookmarks/post-9", "/v1/users/me/bookmarks/:id"},
		{"/v1/users/me/bookmarks?page=2&per_page=100", "/v1/users/me/bookmarks"},
		{"/v1/agents/agent-1", "/v1/agents/:id"},
	}

	for _, tt := range tests {
		if got := routeLabel(tt.path); got != tt.want {
			t.Errorf("routeLabel(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
