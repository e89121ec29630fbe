package domain

import "time"

// Post is a top-level impact board discussion topic.
type Post struct {
	Id        PostId    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Category  *string   `json:"category,omitempty"`
	AuthorId  UserId    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment replies to a post (ParentId == nil) or to another comment of the same post.
type Comment struct {
	Id        CommentId  `json:"id"`
	PostId    PostId     `json:"post_id"`
	ParentId  *CommentId `json:"parent_id,omitempty"`
	Body      string     `json:"body"`
	AuthorId  UserId     `json:"author_id"`
	CreatedAt time.Time  `json:"created_at"`
}

func (c *Comment) IsRoot() bool {
	return c.ParentId == nil
}

// to iterate thru layers: handler -> service -> storage
type PostCreationData struct {
	Title    string
	Body     string
	Category *string
	Author   User
}

type CommentCreationData struct {
	PostId   PostId
	ParentId *CommentId
	Body     string
	Author   User
}

// CommentNode is a comment in an assembled discussion tree.
// Replies is never nil; only roots ever have entries in it.
type CommentNode struct {
	Comment
	AuthorName string         `json:"author_name"`
	BodyHTML   string         `json:"body_html,omitempty"`
	Replies    []*CommentNode `json:"replies"`
}

// PostView is a post with its author name and assembled comment tree.
type PostView struct {
	Post
	AuthorName string         `json:"author_name"`
	BodyHTML   string         `json:"body_html,omitempty"`
	Comments   []*CommentNode `json:"comments"`
}

// PostFilter narrows the discussion feed. Empty fields match everything.
type PostFilter struct {
	Category string
	Query    string
}
