package service

import (
	"context"
	"strings"

	"github.com/Dharshana-KM/student-spark/shared/domain"
	"github.com/Dharshana-KM/student-spark/shared/errors"
)

type TeamsService interface {
	Create(ctx context.Context, data domain.TeamCreationData) (domain.Team, error)
	Overview(ctx context.Context, user *domain.User, filter domain.TeamFilter) (domain.TeamsOverview, error)
	RequestToJoin(ctx context.Context, user domain.User, teamId domain.TeamId) (domain.JoinRequest, error)
	PendingRequests(ctx context.Context, user domain.User) ([]domain.TeamId, error)
	TeamRequests(ctx context.Context, user domain.User, teamId domain.TeamId) ([]domain.JoinRequestView, error)
	Respond(ctx context.Context, user domain.User, teamId domain.TeamId, requestId domain.RequestId, accept bool) error
	Members(ctx context.Context, teamId domain.TeamId) ([]domain.TeamMember, error)
}

type Teams struct {
	storage   TeamsStorage
	validator TeamsValidator
}

type TeamsStorage interface {
	MembershipStorage
	CreateTeam(ctx context.Context, data domain.TeamCreationData) (domain.Team, error)
	ListTeams(ctx context.Context) ([]domain.Team, error)
	GetTeam(ctx context.Context, id domain.TeamId) (domain.Team, error)
	ListMemberships(ctx context.Context, userId domain.UserId) ([]domain.TeamId, error)
	ListMembers(ctx context.Context, teamId domain.TeamId) ([]domain.TeamMember, error)
	CreateJoinRequest(ctx context.Context, teamId domain.TeamId, userId domain.UserId) (domain.JoinRequest, error)
	ListPendingRequestTeamIds(ctx context.Context, userId domain.UserId) ([]domain.TeamId, error)
	ListTeamRequests(ctx context.Context, teamId domain.TeamId) ([]domain.JoinRequestView, error)
	GetJoinRequest(ctx context.Context, id domain.RequestId) (domain.JoinRequest, error)
	AcceptJoinRequest(ctx context.Context, id domain.RequestId) error
	RejectJoinRequest(ctx context.Context, id domain.RequestId) error
}

// MembershipStorage answers whether a user belongs to a team and with which role.
type MembershipStorage interface {
	MemberRole(ctx context.Context, teamId domain.TeamId, userId domain.UserId) (domain.TeamRole, bool, error)
}

type TeamsValidator interface {
	Name(name string) error
	Description(description *string) error
	Interests(interests []string) error
}

func NewTeams(storage TeamsStorage, validator TeamsValidator) TeamsService {
	return &Teams{storage, validator}
}

func (t *Teams) Create(ctx context.Context, data domain.TeamCreationData) (domain.Team, error) {
	data.Name = strings.TrimSpace(data.Name)
	if data.Description != nil {
		description := strings.TrimSpace(*data.Description)
		data.Description = &description
		if description == "" {
			data.Description = nil
		}
	}
	interests := make([]string, 0, len(data.Interests))
	for _, i := range data.Interests {
		interests = append(interests, strings.TrimSpace(i))
	}
	data.Interests = interests

	if err := t.validator.Name(data.Name); err != nil {
		return domain.Team{}, err
	}
	if err := t.validator.Description(data.Description); err != nil {
		return domain.Team{}, err
	}
	if err := t.validator.Interests(data.Interests); err != nil {
		return domain.Team{}, err
	}
	return t.storage.CreateTeam(ctx, data)
}

// Overview splits teams into the ones user belongs to (or created) and the
// open ones user could join. The filter narrows only the open teams.
func (t *Teams) Overview(ctx context.Context, user *domain.User, filter domain.TeamFilter) (domain.TeamsOverview, error) {
	teams, err := t.storage.ListTeams(ctx)
	if err != nil {
		return domain.TeamsOverview{}, err
	}

	mine := make(map[domain.TeamId]struct{})
	if user != nil {
		ids, err := t.storage.ListMemberships(ctx, user.Id)
		if err != nil {
			return domain.TeamsOverview{}, err
		}
		for _, id := range ids {
			mine[id] = struct{}{}
		}
	}

	overview := domain.TeamsOverview{MyTeams: []domain.Team{}, OpenTeams: []domain.Team{}}
	for _, team := range teams {
		_, member := mine[team.Id]
		if user != nil && (member || team.CreatedBy == user.Id) {
			overview.MyTeams = append(overview.MyTeams, team)
			continue
		}
		if team.IsOpen && filter.Match(team) {
			overview.OpenTeams = append(overview.OpenTeams, team)
		}
	}
	return overview, nil
}

func (t *Teams) RequestToJoin(ctx context.Context, user domain.User, teamId domain.TeamId) (domain.JoinRequest, error) {
	team, err := t.storage.GetTeam(ctx, teamId)
	if err != nil {
		return domain.JoinRequest{}, err
	}
	_, member, err := t.storage.MemberRole(ctx, teamId, user.Id)
	if err != nil {
		return domain.JoinRequest{}, err
	}
	if member {
		return domain.JoinRequest{}, errors.Duplicate("You have already joined this team")
	}
	if !team.IsOpen {
		return domain.JoinRequest{}, errors.Forbidden("Team is not accepting new members")
	}
	return t.storage.CreateJoinRequest(ctx, teamId, user.Id)
}

func (t *Teams) PendingRequests(ctx context.Context, user domain.User) ([]domain.TeamId, error) {
	return t.storage.ListPendingRequestTeamIds(ctx, user.Id)
}

func (t *Teams) TeamRequests(ctx context.Context, user domain.User, teamId domain.TeamId) ([]domain.JoinRequestView, error) {
	if err := requireLeader(ctx, t.storage, teamId, user.Id); err != nil {
		return nil, err
	}
	requests, err := t.storage.ListTeamRequests(ctx, teamId)
	if err != nil {
		return nil, err
	}
	for i := range requests {
		if requests[i].UserName == "" {
			requests[i].UserName = domain.PlaceholderAuthorName
		}
	}
	return requests, nil
}

func (t *Teams) Respond(ctx context.Context, user domain.User, teamId domain.TeamId, requestId domain.RequestId, accept bool) error {
	if err := requireLeader(ctx, t.storage, teamId, user.Id); err != nil {
		return err
	}
	request, err := t.storage.GetJoinRequest(ctx, requestId)
	if err != nil {
		return err
	}
	if request.TeamId != teamId {
		return errors.NotFound("Join request not found")
	}
	if accept {
		return t.storage.AcceptJoinRequest(ctx, requestId)
	}
	return t.storage.RejectJoinRequest(ctx, requestId)
}

func (t *Teams) Members(ctx context.Context, teamId domain.TeamId) ([]domain.TeamMember, error) {
	if _, err := t.storage.GetTeam(ctx, teamId); err != nil {
		return nil, err
	}
	members, err := t.storage.ListMembers(ctx, teamId)
	if err != nil {
		return nil, err
	}
	for i := range members {
		if members[i].Name == "" {
			members[i].Name = domain.PlaceholderAuthorName
		}
	}
	return members, nil
}

func requireLeader(ctx context.Context, storage MembershipStorage, teamId domain.TeamId, userId domain.UserId) error {
	role, member, err := storage.MemberRole(ctx, teamId, userId)
	if err != nil {
		return err
	}
	if !member || role != domain.RoleLeader {
		return errors.Forbidden("Only the team leader can manage join requests")
	}
	return nil
}

func requireMember(ctx context.Context, storage MembershipStorage, teamId domain.TeamId, userId domain.UserId) error {
	_, member, err := storage.MemberRole(ctx, teamId, userId)
	if err != nil {
		return err
	}
	if !member {
		return errors.Forbidden("Only team members can access the team chat")
	}
	return nil
}
