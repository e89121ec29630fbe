package service

import (
	"context"
	"strings"

	"github.com/Dharshana-KM/student-spark/shared/domain"
	"github.com/Dharshana-KM/student-spark/shared/thread"
)

type DiscussionService interface {
	Feed(ctx context.Context, filter domain.PostFilter) ([]domain.PostView, error)
	ListPosts(ctx context.Context) ([]domain.Post, error)
	ListComments(ctx context.Context, postIds []domain.PostId) ([]domain.Comment, error)
	ResolveAuthors(ctx context.Context, userIds []domain.UserId) (domain.AuthorDirectory, error)
	CreatePost(ctx context.Context, data domain.PostCreationData) (domain.Post, error)
	CreateComment(ctx context.Context, data domain.CommentCreationData) (domain.Comment, error)
}

type Discussion struct {
	storage   DiscussionStorage
	validator DiscussionValidator
	renderer  Renderer
}

type DiscussionStorage interface {
	ListPosts(ctx context.Context) ([]domain.Post, error)
	ListComments(ctx context.Context, postIds []domain.PostId) ([]domain.Comment, error)
	ResolveAuthors(ctx context.Context, userIds []domain.UserId) (domain.AuthorDirectory, error)
	CreatePost(ctx context.Context, data domain.PostCreationData) (domain.Post, error)
	CreateComment(ctx context.Context, data domain.CommentCreationData) (domain.Comment, error)
}

type DiscussionValidator interface {
	Title(title string) error
	PostBody(body string) error
	Category(category *string) error
	CommentBody(body string) error
}

// Renderer turns user-written markdown into safe HTML.
type Renderer interface {
	Render(text string) string
}

func NewDiscussion(storage DiscussionStorage, validator DiscussionValidator, renderer Renderer) DiscussionService {
	return &Discussion{storage: storage, validator: validator, renderer: renderer}
}

// Feed fetches posts, their comments and the authors of both, and assembles
// them into per-post comment trees with rendered bodies.
func (d *Discussion) Feed(ctx context.Context, filter domain.PostFilter) ([]domain.PostView, error) {
	posts, err := d.storage.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	matched := posts[:0:0]
	for _, p := range posts {
		if filter.Match(p) {
			matched = append(matched, p)
		}
	}
	if len(matched) == 0 {
		return []domain.PostView{}, nil
	}

	comments, err := d.storage.ListComments(ctx, thread.PostIds(matched))
	if err != nil {
		return nil, err
	}
	authors, err := d.storage.ResolveAuthors(ctx, thread.AuthorIds(matched, comments))
	if err != nil {
		return nil, err
	}

	views := thread.Assemble(matched, comments, authors)
	if d.renderer != nil {
		for i := range views {
			views[i].BodyHTML = d.renderer.Render(views[i].Body)
			for _, root := range views[i].Comments {
				root.BodyHTML = d.renderer.Render(root.Body)
				for _, r := range root.Replies {
					r.BodyHTML = d.renderer.Render(r.Body)
				}
			}
		}
	}
	return views, nil
}

func (d *Discussion) ListPosts(ctx context.Context) ([]domain.Post, error) {
	return d.storage.ListPosts(ctx)
}

func (d *Discussion) ListComments(ctx context.Context, postIds []domain.PostId) ([]domain.Comment, error) {
	if len(postIds) == 0 {
		return []domain.Comment{}, nil
	}
	return d.storage.ListComments(ctx, postIds)
}

func (d *Discussion) ResolveAuthors(ctx context.Context, userIds []domain.UserId) (domain.AuthorDirectory, error) {
	if len(userIds) == 0 {
		return domain.AuthorDirectory{}, nil
	}
	return d.storage.ResolveAuthors(ctx, userIds)
}

func (d *Discussion) CreatePost(ctx context.Context, data domain.PostCreationData) (domain.Post, error) {
	data.Title = strings.TrimSpace(data.Title)
	data.Body = strings.TrimSpace(data.Body)
	if data.Category != nil {
		category := strings.TrimSpace(*data.Category)
		data.Category = &category
		if category == "" || category == domain.AllCategories {
			data.Category = nil
		}
	}

	if err := d.validator.Title(data.Title); err != nil {
		return domain.Post{}, err
	}
	if err := d.validator.PostBody(data.Body); err != nil {
		return domain.Post{}, err
	}
	if err := d.validator.Category(data.Category); err != nil {
		return domain.Post{}, err
	}
	return d.storage.CreatePost(ctx, data)
}

func (d *Discussion) CreateComment(ctx context.Context, data domain.CommentCreationData) (domain.Comment, error) {
	data.Body = strings.TrimSpace(data.Body)
	if err := d.validator.CommentBody(data.Body); err != nil {
		return domain.Comment{}, err
	}
	return d.storage.CreateComment(ctx, data)
}
