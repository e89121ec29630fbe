package api

import "github.com/Dharshana-KM/student-spark/shared/domain"

// Request DTOs

type CreatePostRequest struct {
	Title    string  `json:"title" validate:"required,max=200"`
	Body     string  `json:"body" validate:"required,max=10000"`
	Category *string `json:"category,omitempty" validate:"omitempty,max=50"`
}

type CreateCommentRequest struct {
	Body     string  `json:"body" validate:"required,max=5000"`
	ParentId *string `json:"parent_id,omitempty" validate:"omitempty,uuid"`
}

// Response DTOs

type PostsResponse struct {
	Posts []domain.Post `json:"posts"`
}

type CommentsResponse struct {
	Comments []domain.Comment `json:"comments"`
}

type AuthorsResponse struct {
	Authors domain.AuthorDirectory `json:"authors"`
}

// DiscussionResponse is the server-assembled feed.
type DiscussionResponse struct {
	Posts []domain.PostView `json:"posts"`
}

type CreatedResponse struct {
	Id string `json:"id"`
}
