//go:build integration

package pg

import (
	"context"
	"net/http"
	"testing"

	"github.com/Dharshana-KM/student-spark/shared/domain"
	internal_errors "github.com/Dharshana-KM/student-spark/shared/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTeam(t *testing.T, leader domain.User) domain.Team {
	t.Helper()
	team, err := storage.CreateTeam(context.Background(), domain.TeamCreationData{
		Name:        "Green Coders",
		Description: ptr("Sustainability hackers"),
		Interests:   []string{"Climate", "AI"},
		Creator:     leader,
	})
	require.NoError(t, err)
	return team
}

func TestCreateTeam(t *testing.T) {
	ctx := context.Background()
	leader := namedUser(t, "Lead")
	team := createTeam(t, leader)

	assert.Equal(t, []string{"Climate", "AI"}, team.Interests)
	assert.True(t, team.IsOpen)

	got, err := storage.GetTeam(ctx, team.Id)
	require.NoError(t, err)
	assert.Equal(t, team.Name, got.Name)

	role, ok, err := storage.MemberRole(ctx, team.Id, leader.Id)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.RoleLeader, role)

	members, err := storage.ListMembers(ctx, team.Id)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Lead", members[0].Name)

	memberships, err := storage.ListMemberships(ctx, leader.Id)
	require.NoError(t, err)
	assert.Contains(t, memberships, team.Id)

	_, err = storage.GetTeam(ctx, uuid.NewString())
	assert.Equal(t, http.StatusNotFound, internal_errors.StatusCode(err))
}

func TestJoinRequests(t *testing.T) {
	ctx := context.Background()
	leader := newUser()
	team := createTeam(t, leader)
	applicant := namedUser(t, "Applicant")
	other := newUser()

	req, err := storage.CreateJoinRequest(ctx, team.Id, applicant.Id)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestPending, req.Status)

	_, err = storage.CreateJoinRequest(ctx, team.Id, applicant.Id)
	assert.Equal(t, http.StatusConflict, internal_errors.StatusCode(err))
	assert.Equal(t, "You have already requested to join this team", internal_errors.PublicMessage(err))

	_, err = storage.CreateJoinRequest(ctx, uuid.NewString(), applicant.Id)
	assert.Equal(t, http.StatusNotFound, internal_errors.StatusCode(err))

	pending, err := storage.ListPendingRequestTeamIds(ctx, applicant.Id)
	require.NoError(t, err)
	assert.Equal(t, []domain.TeamId{team.Id}, pending)

	otherReq, err := storage.CreateJoinRequest(ctx, team.Id, other.Id)
	require.NoError(t, err)

	views, err := storage.ListTeamRequests(ctx, team.Id)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Applicant", views[0].UserName)
	assert.Equal(t, "", views[1].UserName)

	require.NoError(t, storage.AcceptJoinRequest(ctx, req.Id))
	role, ok, err := storage.MemberRole(ctx, team.Id, applicant.Id)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.RoleMember, role)

	err = storage.AcceptJoinRequest(ctx, req.Id)
	assert.Equal(t, http.StatusBadRequest, internal_errors.StatusCode(err), "already handled")

	require.NoError(t, storage.RejectJoinRequest(ctx, otherReq.Id))
	got, err := storage.GetJoinRequest(ctx, otherReq.Id)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestRejected, got.Status)
	_, ok, err = storage.MemberRole(ctx, team.Id, other.Id)
	require.NoError(t, err)
	assert.False(t, ok)

	views, err = storage.ListTeamRequests(ctx, team.Id)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestTeamMessages(t *testing.T) {
	ctx := context.Background()
	leader := newUser()
	team := createTeam(t, leader)

	_, err := storage.CreateTeamMessage(ctx, team.Id, leader.Id, "first")
	require.NoError(t, err)
	_, err = storage.CreateTeamMessage(ctx, team.Id, leader.Id, "second")
	require.NoError(t, err)

	messages, err := storage.ListTeamMessages(ctx, team.Id)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "first", messages[0].Message)
	assert.Equal(t, "second", messages[1].Message)

	_, err = storage.CreateTeamMessage(ctx, team.Id, leader.Id, "   ")
	assert.Equal(t, http.StatusBadRequest, internal_errors.StatusCode(err))
}
