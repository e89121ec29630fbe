package service

import (
	"context"
	"strings"

	"github.com/Dharshana-KM/student-spark/shared/domain"
	"github.com/Dharshana-KM/student-spark/shared/thread"
)

type ChatService interface {
	Messages(ctx context.Context, user domain.User, teamId domain.TeamId) ([]domain.TeamMessageView, error)
	Send(ctx context.Context, user domain.User, teamId domain.TeamId, text string) (domain.TeamMessage, error)
}

type Chat struct {
	storage   ChatStorage
	validator ChatValidator
}

type ChatStorage interface {
	MembershipStorage
	ListTeamMessages(ctx context.Context, teamId domain.TeamId) ([]domain.TeamMessage, error)
	CreateTeamMessage(ctx context.Context, teamId domain.TeamId, userId domain.UserId, text string) (domain.TeamMessage, error)
	ResolveAuthors(ctx context.Context, userIds []domain.UserId) (domain.AuthorDirectory, error)
}

type ChatValidator interface {
	Message(text string) error
}

func NewChat(storage ChatStorage, validator ChatValidator) ChatService {
	return &Chat{storage, validator}
}

func (c *Chat) Messages(ctx context.Context, user domain.User, teamId domain.TeamId) ([]domain.TeamMessageView, error) {
	if err := requireMember(ctx, c.storage, teamId, user.Id); err != nil {
		return nil, err
	}
	messages, err := c.storage.ListTeamMessages(ctx, teamId)
	if err != nil {
		return nil, err
	}
	authors := domain.AuthorDirectory{}
	if senders := thread.SenderIds(messages); len(senders) > 0 {
		authors, err = c.storage.ResolveAuthors(ctx, senders)
		if err != nil {
			return nil, err
		}
	}
	return thread.Transcript(messages, authors), nil
}

func (c *Chat) Send(ctx context.Context, user domain.User, teamId domain.TeamId, text string) (domain.TeamMessage, error) {
	text = strings.TrimSpace(text)
	if err := c.validator.Message(text); err != nil {
		return domain.TeamMessage{}, err
	}
	if err := requireMember(ctx, c.storage, teamId, user.Id); err != nil {
		return domain.TeamMessage{}, err
	}
	return c.storage.CreateTeamMessage(ctx, teamId, user.Id, text)
}
