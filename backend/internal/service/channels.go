package service

import (
	"context"

	"github.com/Dharshana-KM/student-spark/shared/domain"
	"github.com/Dharshana-KM/student-spark/shared/errors"
)

// ChannelAccess decides who may follow a change-notification channel.
// Public channels are open to everyone; per-team channels need membership.
type ChannelAccess struct {
	storage MembershipStorage
}

func NewChannelAccess(storage MembershipStorage) *ChannelAccess {
	return &ChannelAccess{storage}
}

func (a *ChannelAccess) CanSubscribe(ctx context.Context, user *domain.User, channel string) error {
	if !domain.ValidChannel(channel) {
		return errors.NotFound("Unknown channel " + channel)
	}
	team, ok := domain.ParseTeamChannel(channel)
	if !ok {
		return nil
	}
	if user == nil {
		return errors.ErrAuthRequired
	}
	_, member, err := a.storage.MemberRole(ctx, team, user.Id)
	if err != nil {
		return err
	}
	if !member {
		return errors.Forbidden("Only team members can follow " + channel)
	}
	return nil
}
