package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Follow creates a follow relationship from the authenticated caller to
// the target entity.
func (c *Client) Follow(ctx context.Context, target Identity) error {
	req := followRequest{TargetType: target.Type, TargetID: target.ID}
	return c.doRequest(ctx, http.MethodPost, "/v1/follow", req, nil)
}

// Unfollow removes a follow relationship.
func (c *Client) Unfollow(ctx context.Context, target Identity) error {
	req := followRequest{TargetType: target.Type, TargetID: target.ID}
	return c.doRequest(ctx, http.MethodDelete, "/v1/follow", req, nil)
}

// IsFollowing reports whether the authenticated caller follows the target.
// Idempotent, side-effect-free; this is the follow controller's initial read.
func (c *Client) IsFollowing(ctx context.Context, target Identity) (bool, error) {
	params := url.Values{}
	params.Set("target_type", target.Type)
	params.Set("target_id", target.ID)

	var resp struct {
		Data FollowStatus `json:"data"`
	}
	err := c.doRequest(ctx, http.MethodGet, "/v1/follow/status?"+params.Encode(), nil, &resp)
	if err != nil {
		return false, err
	}
	return resp.Data.Following, nil
}

// Vote votes on a post. DirectionNone retracts the caller's current vote.
// The response payload is deliberately not consumed: the controller trusts
// its own optimistic computation unless the call fails.
func (c *Client) Vote(ctx context.Context, postID string, direction Direction) error {
	if !direction.Valid() {
		return fmt.Errorf("invalid vote direction %q", direction)
	}
	req := voteRequest{Direction: direction}
	return c.doRequest(ctx, http.MethodPost, "/v1/posts/"+postID+"/vote", req, nil)
}

// UserVote returns the caller's current vote on a post and the post's
// score. This is the vote controller's initial read.
func (c *Client) UserVote(ctx context.Context, postID string) (VoteStatus, error) {
	var resp struct {
		Data VoteStatus `json:"data"`
	}
	err := c.doRequest(ctx, http.MethodGet, "/v1/posts/"+postID+"/vote", nil, &resp)
	if err != nil {
		return VoteStatus{}, err
	}
	if resp.Data.UserVote == "" {
		resp.Data.UserVote = DirectionNone
	}
	if !resp.Data.UserVote.Valid() {
		// A malformed read is a failed read; the controller stays unknown.
		return VoteStatus{}, fmt.Errorf("malformed vote status %q", resp.Data.UserVote)
	}
	return resp.Data, nil
}

// AddBookmark saves a post to the caller's bookmarks.
func (c *Client) AddBookmark(ctx context.Context, postID string) error {
	req := bookmarkRequest{PostID: postID}
	return c.doRequest(ctx, http.MethodPost, "/v1/users/me/bookmarks", req, nil)
}

// RemoveBookmark removes a post from the caller's bookmarks.
func (c *Client) RemoveBookmark(ctx context.Context, postID string) error {
	return c.doRequest(ctx, http.MethodDelete, "/v1/users/me/bookmarks/"+postID, nil, nil)
}

// ListBookmarks returns one page of the caller's bookmarks.
func (c *Client) ListBookmarks(ctx context.Context, page, perPage int) (*BookmarksResponse, error) {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		params.Set("per_page", strconv.Itoa(perPage))
	}

	path := "/v1/users/me/bookmarks"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var resp BookmarksResponse
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// IsBookmarked reports whether the caller has bookmarked a post.
// Pages through the bookmark list; the bookmark controller's initial read.
func (c *Client) IsBookmarked(ctx context.Context, postID string) (bool, error) {
	page := 1
	for {
		resp, err := c.ListBookmarks(ctx, page, 100)
		if err != nil {
			return false, err
		}
		for _, b := range resp.Data {
			if b.PostID == postID {
				return true, nil
			}
		}
		if !resp.Meta.HasMore {
			return false, nil
		}
		page++
	}
}
