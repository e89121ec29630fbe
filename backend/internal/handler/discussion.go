package handler

import (
	"net/http"

	backend_utils "github.com/Dharshana-KM/student-spark/backend/internal/utils"
	"github.com/Dharshana-KM/student-spark/shared/api"
	"github.com/Dharshana-KM/student-spark/shared/domain"
	"github.com/Dharshana-KM/student-spark/shared/utils"
)

// Discussion serves the assembled impact board feed.
func (h *Handler) Discussion(w http.ResponseWriter, r *http.Request) {
	filter := domain.PostFilter{
		Category: r.URL.Query().Get("category"),
		Query:    r.URL.Query().Get("q"),
	}
	views, err := h.discussion.Feed(r.Context(), filter)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.DiscussionResponse{Posts: views})
}

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.discussion.ListPosts(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.PostsResponse{Posts: posts})
}

// ListComments returns the comments of every post_id given.
func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	postIds := queryList(r, "post_id")
	for _, id := range postIds {
		if err := backend_utils.Id(id, "Post"); err != nil {
			utils.WriteErrorAndStatusCode(w, err)
			return
		}
	}
	comments, err := h.discussion.ListComments(r.Context(), postIds)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.CommentsResponse{Comments: comments})
}

// ResolveAuthors maps the given user ids to display names. Unknown ids are left out.
func (h *Handler) ResolveAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.discussion.ResolveAuthors(r.Context(), queryList(r, "id"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.AuthorsResponse{Authors: authors})
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	var body api.CreatePostRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	post, err := h.discussion.CreatePost(r.Context(), domain.PostCreationData{
		Title:    body.Title,
		Body:     body.Body,
		Category: body.Category,
		Author:   user,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, api.CreatedResponse{Id: post.Id})
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	postId, ok := pathId(w, r, "post", "Post")
	if !ok {
		return
	}
	var body api.CreateCommentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	comment, err := h.discussion.CreateComment(r.Context(), domain.CommentCreationData{
		PostId:   postId,
		ParentId: body.ParentId,
		Body:     body.Body,
		Author:   user,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, api.CreatedResponse{Id: comment.Id})
}
