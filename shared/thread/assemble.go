// Package thread turns flat, already-fetched discussion and chat rows into the
// nested, author-annotated shapes clients render.
//
// Everything here is pure: no I/O, no shared state. Callers re-run the assembly
// on every fetch or change notification instead of patching previous results.
package thread

import (
	"slices"

	"github.com/Dharshana-KM/student-spark/shared/domain"
)

// Assemble builds, for each post, the two-level comment tree: root comments in
// creation order, each with its replies in creation order.
//
// Posts keep their input order. A reply is attached to the root its parent
// chain leads to, so replies of replies are flattened under that root. Replies
// whose chain does not reach a root of the same post are omitted, as are
// comments of posts missing from posts. Unknown authors get the placeholder name.
func Assemble(posts []domain.Post, comments []domain.Comment, authors domain.AuthorDirectory) []domain.PostView {
	views := make([]domain.PostView, len(posts))
	byPost := make(map[domain.PostId]*domain.PostView, len(posts))
	for i, p := range posts {
		views[i] = domain.PostView{
			Post:       p,
			AuthorName: domain.DisplayName(authors, p.AuthorId),
			Comments:   []*domain.CommentNode{},
		}
		byPost[p.Id] = &views[i]
	}

	byId := make(map[domain.CommentId]*domain.Comment, len(comments))
	for i := range comments {
		byId[comments[i].Id] = &comments[i]
	}

	roots := make(map[domain.CommentId]*domain.CommentNode)
	for i := range comments {
		c := &comments[i]
		if !c.IsRoot() {
			continue
		}
		view, ok := byPost[c.PostId]
		if !ok {
			continue
		}
		node := newNode(*c, authors)
		view.Comments = append(view.Comments, node)
		roots[c.Id] = node
	}

	for i := range comments {
		c := &comments[i]
		if c.IsRoot() {
			continue
		}
		root, ok := findRoot(c, byId, roots)
		if !ok {
			continue
		}
		root.Replies = append(root.Replies, newNode(*c, authors))
	}

	for i := range views {
		sortByCreation(views[i].Comments)
		for _, root := range views[i].Comments {
			sortByCreation(root.Replies)
		}
	}
	return views
}

func newNode(c domain.Comment, authors domain.AuthorDirectory) *domain.CommentNode {
	return &domain.CommentNode{
		Comment:    c,
		AuthorName: domain.DisplayName(authors, c.AuthorId),
		Replies:    []*domain.CommentNode{},
	}
}

// findRoot walks the parent chain of reply up to a known root of the same post.
func findRoot(
	reply *domain.Comment,
	byId map[domain.CommentId]*domain.Comment,
	roots map[domain.CommentId]*domain.CommentNode,
) (*domain.CommentNode, bool) {
	seen := make(map[domain.CommentId]struct{})
	parent := reply.ParentId
	for parent != nil {
		if root, ok := roots[*parent]; ok {
			return root, root.PostId == reply.PostId
		}
		if _, loop := seen[*parent]; loop {
			return nil, false
		}
		seen[*parent] = struct{}{}

		next, ok := byId[*parent]
		if !ok {
			return nil, false
		}
		parent = next.ParentId
	}
	return nil, false
}

func sortByCreation(nodes []*domain.CommentNode) {
	slices.SortStableFunc(nodes, func(a, b *domain.CommentNode) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
}

// AuthorIds returns the distinct authors of posts and comments in first-seen order.
func AuthorIds(posts []domain.Post, comments []domain.Comment) []domain.UserId {
	ids := make([]domain.UserId, 0, len(posts)+len(comments))
	for _, p := range posts {
		ids = append(ids, p.AuthorId)
	}
	for _, c := range comments {
		ids = append(ids, c.AuthorId)
	}
	return distinct(ids)
}

// PostIds returns the ids of posts in order.
func PostIds(posts []domain.Post) []domain.PostId {
	ids := make([]domain.PostId, len(posts))
	for i, p := range posts {
		ids[i] = p.Id
	}
	return ids
}

func distinct(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
