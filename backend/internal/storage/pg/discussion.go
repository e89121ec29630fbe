package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dharshana-KM/student-spark/shared/domain"
	internal_errors "github.com/Dharshana-KM/student-spark/shared/errors"
	"github.com/lib/pq"
)

const postColumns = "id, title, body, category, author_id, created_at"
const commentColumns = "id, post_id, parent_id, body, author_id, created_at"

func scanPost(row scanner) (domain.Post, error) {
	var p domain.Post
	err := row.Scan(&p.Id, &p.Title, &p.Body, &p.Category, &p.AuthorId, &p.CreatedAt)
	return p, err
}

func scanComment(row scanner) (domain.Comment, error) {
	var c domain.Comment
	err := row.Scan(&c.Id, &c.PostId, &c.ParentId, &c.Body, &c.AuthorId, &c.CreatedAt)
	return c, err
}

// ListPosts returns every post, newest first.
func (s *Storage) ListPosts(ctx context.Context) ([]domain.Post, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+postColumns+` FROM impact_posts ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, classify("list posts", err)
	}
	posts, err := collect(rows, scanPost)
	return posts, classify("list posts", err)
}

// ListComments returns the comments of the given posts in no particular order.
func (s *Storage) ListComments(ctx context.Context, postIds []domain.PostId) ([]domain.Comment, error) {
	if len(postIds) == 0 {
		return []domain.Comment{}, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+commentColumns+` FROM impact_comments WHERE post_id = ANY($1::uuid[])`,
		pq.Array(postIds))
	if err != nil {
		return nil, classify("list comments", err)
	}
	comments, err := collect(rows, scanComment)
	return comments, classify("list comments", err)
}

// ResolveAuthors maps the given user ids to profile names. Ids without a
// profile or with a blank name are absent from the result.
func (s *Storage) ResolveAuthors(ctx context.Context, userIds []domain.UserId) (domain.AuthorDirectory, error) {
	authors := make(domain.AuthorDirectory, len(userIds))
	if len(userIds) == 0 {
		return authors, nil
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT user_id, btrim(full_name)
        FROM profiles
        WHERE user_id = ANY($1::uuid[]) AND btrim(full_name) <> ''
    `, pq.Array(userIds))
	if err != nil {
		return nil, classify("resolve authors", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, classify("resolve authors", err)
		}
		authors[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, classify("resolve authors", err)
	}
	return authors, nil
}

func (s *Storage) CreatePost(ctx context.Context, data domain.PostCreationData) (domain.Post, error) {
	post, err := scanPost(s.db.QueryRowContext(ctx, `
        INSERT INTO impact_posts (title, body, category, author_id)
        VALUES ($1, $2, $3, $4)
        RETURNING `+postColumns,
		data.Title, data.Body, data.Category, data.Author.Id,
	))
	return post, classify("create post", err)
}

// CreateComment inserts a comment. A parent must exist and belong to the same post.
func (s *Storage) CreateComment(ctx context.Context, data domain.CommentCreationData) (domain.Comment, error) {
	var comment domain.Comment
	err := s.withTx(ctx, "create comment", func(tx *sql.Tx) error {
		var exists bool
		err := tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM impact_posts WHERE id = $1)`, data.PostId,
		).Scan(&exists)
		if err != nil {
			return classify("create comment", err)
		}
		if !exists {
			return internal_errors.NotFound("Post not found")
		}

		if data.ParentId != nil {
			var parentPost domain.PostId
			err := tx.QueryRowContext(ctx,
				`SELECT post_id FROM impact_comments WHERE id = $1`, *data.ParentId,
			).Scan(&parentPost)
			if errors.Is(err, sql.ErrNoRows) {
				return internal_errors.Invalid("Parent comment not found")
			}
			if err != nil {
				return classify("create comment", err)
			}
			if parentPost != data.PostId {
				return internal_errors.Invalid("Parent comment belongs to another post")
			}
		}

		comment, err = scanComment(tx.QueryRowContext(ctx, `
            INSERT INTO impact_comments (post_id, parent_id, body, author_id)
            VALUES ($1, $2, $3, $4)
            RETURNING `+commentColumns,
			data.PostId, data.ParentId, data.Body, data.Author.Id,
		))
		return classify("create comment", err)
	})
	return comment, err
}
