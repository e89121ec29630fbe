package apiclient

import (
	"context"
	"sync"

	"github.com/Dharshana-KM/student-spark/shared/domain"
	"github.com/Dharshana-KM/student-spark/shared/errors"
	"github.com/Dharshana-KM/student-spark/shared/logger"
	"github.com/Dharshana-KM/student-spark/shared/thread"
)

// Source is the read side of the API a Feed assembles from.
type Source interface {
	ListPosts(ctx context.Context) ([]domain.Post, error)
	ListComments(ctx context.Context, postIds []domain.PostId) ([]domain.Comment, error)
	ResolveAuthors(ctx context.Context, ids []domain.UserId) (domain.AuthorDirectory, error)
}

// Subscriber opens change streams.
type Subscriber interface {
	Subscribe(ctx context.Context, channels ...string) (<-chan domain.ChangeEvent, error)
}

// Feed keeps the assembled discussion on the client side. Every refresh
// replaces the whole snapshot; a failed refresh keeps the previous one.
type Feed struct {
	source Source

	refreshMu sync.Mutex // one refresh at a time, the later one wins

	mu       sync.RWMutex
	snapshot []domain.PostView
	loaded   bool
}

func NewFeed(source Source) *Feed {
	return &Feed{source: source, snapshot: []domain.PostView{}}
}

// Refresh fetches posts, their comments and their authors, then assembles them.
func (f *Feed) Refresh(ctx context.Context) error {
	f.refreshMu.Lock()
	defer f.refreshMu.Unlock()

	posts, err := f.source.ListPosts(ctx)
	if err != nil {
		return err
	}
	comments, err := f.source.ListComments(ctx, thread.PostIds(posts))
	if err != nil {
		return err
	}
	authors, err := f.source.ResolveAuthors(ctx, thread.AuthorIds(posts, comments))
	if err != nil {
		return err
	}

	views := thread.Assemble(posts, comments, authors)

	f.mu.Lock()
	f.snapshot = views
	f.loaded = true
	f.mu.Unlock()
	return nil
}

// Snapshot returns the last assembled feed and whether any refresh succeeded yet.
// The returned slice must not be modified.
func (f *Feed) Snapshot() ([]domain.PostView, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.snapshot, f.loaded
}

// Watch refreshes once, then again on every post or comment change until ctx
// is done or the stream drops. onChange, if set, gets each new snapshot.
func (f *Feed) Watch(ctx context.Context, sub Subscriber, onChange func([]domain.PostView)) error {
	events, err := sub.Subscribe(ctx, domain.ChannelPosts, domain.ChannelComments)
	if err != nil {
		return err
	}

	refresh := func() {
		if err := f.Refresh(ctx); err != nil {
			logger.Log.Warn("feed refresh failed", "component", "apiclient", "error", err)
			return
		}
		if onChange != nil {
			views, _ := f.Snapshot()
			onChange(views)
		}
	}

	refresh()
	for range events {
		refresh()
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return &errors.TransportError{Op: "watch feed"}
}
