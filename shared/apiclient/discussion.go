package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Dharshana-KM/student-spark/shared/api"
	"github.com/Dharshana-KM/student-spark/shared/domain"
)

// ListPosts returns every post, newest first.
func (c *Client) ListPosts(ctx context.Context) ([]domain.Post, error) {
	var out api.PostsResponse
	if err := c.call(ctx, "list posts", http.MethodGet, "/v1/posts", nil, nil, &out); err != nil {
		return nil, err
	}
	return nonNil(out.Posts), nil
}

// ListComments returns the flat, unordered comments of postIds.
func (c *Client) ListComments(ctx context.Context, postIds []domain.PostId) ([]domain.Comment, error) {
	if len(postIds) == 0 {
		return []domain.Comment{}, nil
	}
	var out api.CommentsResponse
	query := url.Values{"post_id": postIds}
	if err := c.call(ctx, "list comments", http.MethodGet, "/v1/comments", query, nil, &out); err != nil {
		return nil, err
	}
	return nonNil(out.Comments), nil
}

// ResolveAuthors returns display names for the ids that have one.
func (c *Client) ResolveAuthors(ctx context.Context, ids []domain.UserId) (domain.AuthorDirectory, error) {
	if len(ids) == 0 {
		return domain.AuthorDirectory{}, nil
	}
	var out api.AuthorsResponse
	if err := c.call(ctx, "resolve authors", http.MethodGet, "/v1/authors", url.Values{"id": ids}, nil, &out); err != nil {
		return nil, err
	}
	if out.Authors == nil {
		out.Authors = domain.AuthorDirectory{}
	}
	return out.Authors, nil
}

// Discussion returns the feed assembled by the server.
func (c *Client) Discussion(ctx context.Context, filter domain.PostFilter) ([]domain.PostView, error) {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.Query != "" {
		query.Set("q", filter.Query)
	}
	var out api.DiscussionResponse
	if err := c.call(ctx, "discussion", http.MethodGet, "/v1/discussion", query, nil, &out); err != nil {
		return nil, err
	}
	return nonNil(out.Posts), nil
}

// CreatePost returns the id of the new post.
func (c *Client) CreatePost(ctx context.Context, req api.CreatePostRequest) (domain.PostId, error) {
	var out api.CreatedResponse
	if err := c.call(ctx, "create post", http.MethodPost, "/v1/posts", nil, req, &out); err != nil {
		return "", err
	}
	return out.Id, nil
}

// CreateComment returns the id of the new comment.
func (c *Client) CreateComment(ctx context.Context, postId domain.PostId, req api.CreateCommentRequest) (domain.CommentId, error) {
	var out api.CreatedResponse
	path := "/v1/posts/" + url.PathEscape(postId) + "/comments"
	if err := c.call(ctx, "create comment", http.MethodPost, path, nil, req, &out); err != nil {
		return "", err
	}
	return out.Id, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
