package thread

import (
	"slices"

	"github.com/Dharshana-KM/student-spark/shared/domain"
)

// Transcript orders team chat messages oldest first and annotates each with
// its sender's display name.
func Transcript(messages []domain.TeamMessage, authors domain.AuthorDirectory) []domain.TeamMessageView {
	out := make([]domain.TeamMessageView, 0, len(messages))
	for _, m := range messages {
		out = append(out, domain.TeamMessageView{
			TeamMessage: m,
			SenderName:  domain.DisplayName(authors, m.UserId),
		})
	}
	slices.SortStableFunc(out, func(a, b domain.TeamMessageView) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out
}

// SenderIds returns the distinct senders of messages in first-seen order.
func SenderIds(messages []domain.TeamMessage) []domain.UserId {
	ids := make([]domain.UserId, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.UserId)
	}
	return distinct(ids)
}
