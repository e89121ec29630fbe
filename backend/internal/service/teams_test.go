package service

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/Dharshana-KM/student-spark/shared/domain"
	internal_errors "github.com/Dharshana-KM/student-spark/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

// MockTeamsStorage mocks the TeamsStorage interface.
type MockTeamsStorage struct {
	createTeamFunc                func(ctx context.Context, data domain.TeamCreationData) (domain.Team, error)
	listTeamsFunc                 func(ctx context.Context) ([]domain.Team, error)
	getTeamFunc                   func(ctx context.Context, id domain.TeamId) (domain.Team, error)
	listMembershipsFunc           func(ctx context.Context, userId domain.UserId) ([]domain.TeamId, error)
	listMembersFunc               func(ctx context.Context, teamId domain.TeamId) ([]domain.TeamMember, error)
	memberRoleFunc                func(ctx context.Context, teamId domain.TeamId, userId domain.UserId) (domain.TeamRole, bool, error)
	createJoinRequestFunc         func(ctx context.Context, teamId domain.TeamId, userId domain.UserId) (domain.JoinRequest, error)
	listPendingRequestTeamIdsFunc func(ctx context.Context, userId domain.UserId) ([]domain.TeamId, error)
	listTeamRequestsFunc          func(ctx context.Context, teamId domain.TeamId) ([]domain.JoinRequestView, error)
	getJoinRequestFunc            func(ctx context.Context, id domain.RequestId) (domain.JoinRequest, error)

	mu                      sync.Mutex
	createTeamCalled        bool
	listMembershipsCalled   bool
	createJoinRequestCalled bool
	listTeamRequestsCalled  bool
	acceptedIds             []domain.RequestId
	rejectedIds             []domain.RequestId
}

func (m *MockTeamsStorage) CreateTeam(ctx context.Context, data domain.TeamCreationData) (domain.Team, error) {
	m.mu.Lock()
	m.createTeamCalled = true
	m.mu.Unlock()

	if m.createTeamFunc != nil {
		return m.createTeamFunc(ctx, data)
	}
	return domain.Team{Id: "T-new", Name: data.Name, Interests: data.Interests, IsOpen: true, CreatedBy: data.Creator.Id}, nil
}

func (m *MockTeamsStorage) ListTeams(ctx context.Context) ([]domain.Team, error) {
	if m.listTeamsFunc != nil {
		return m.listTeamsFunc(ctx)
	}
	return []domain.Team{}, nil
}

func (m *MockTeamsStorage) GetTeam(ctx context.Context, id domain.TeamId) (domain.Team, error) {
	if m.getTeamFunc != nil {
		return m.getTeamFunc(ctx, id)
	}
	return domain.Team{Id: id, IsOpen: true}, nil
}

func (m *MockTeamsStorage) ListMemberships(ctx context.Context, userId domain.UserId) ([]domain.TeamId, error) {
	m.mu.Lock()
	m.listMembershipsCalled = true
	m.mu.Unlock()

	if m.listMembershipsFunc != nil {
		return m.listMembershipsFunc(ctx, userId)
	}
	return []domain.TeamId{}, nil
}

func (m *MockTeamsStorage) ListMembers(ctx context.Context, teamId domain.TeamId) ([]domain.TeamMember, error) {
	if m.listMembersFunc != nil {
		return m.listMembersFunc(ctx, teamId)
	}
	return []domain.TeamMember{}, nil
}

func (m *MockTeamsStorage) MemberRole(ctx context.Context, teamId domain.TeamId, userId domain.UserId) (domain.TeamRole, bool, error) {
	if m.memberRoleFunc != nil {
		return m.memberRoleFunc(ctx, teamId, userId)
	}
	return "", false, nil
}

func (m *MockTeamsStorage) CreateJoinRequest(ctx context.Context, teamId domain.TeamId, userId domain.UserId) (domain.JoinRequest, error) {
	m.mu.Lock()
	m.createJoinRequestCalled = true
	m.mu.Unlock()

	if m.createJoinRequestFunc != nil {
		return m.createJoinRequestFunc(ctx, teamId, userId)
	}
	return domain.JoinRequest{Id: "R-new", TeamId: teamId, UserId: userId, Status: domain.RequestPending}, nil
}

func (m *MockTeamsStorage) ListPendingRequestTeamIds(ctx context.Context, userId domain.UserId) ([]domain.TeamId, error) {
	if m.listPendingRequestTeamIdsFunc != nil {
		return m.listPendingRequestTeamIdsFunc(ctx, userId)
	}
	return []domain.TeamId{}, nil
}

func (m *MockTeamsStorage) ListTeamRequests(ctx context.Context, teamId domain.TeamId) ([]domain.JoinRequestView, error) {
	m.mu.Lock()
	m.listTeamRequestsCalled = true
	m.mu.Unlock()

	if m.listTeamRequestsFunc != nil {
		return m.listTeamRequestsFunc(ctx, teamId)
	}
	return []domain.JoinRequestView{}, nil
}

func (m *MockTeamsStorage) GetJoinRequest(ctx context.Context, id domain.RequestId) (domain.JoinRequest, error) {
	if m.getJoinRequestFunc != nil {
		return m.getJoinRequestFunc(ctx, id)
	}
	return domain.JoinRequest{}, internal_errors.NotFound("Join request not found")
}

func (m *MockTeamsStorage) AcceptJoinRequest(ctx context.Context, id domain.RequestId) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.acceptedIds = append(m.acceptedIds, id)
	return nil
}

func (m *MockTeamsStorage) RejectJoinRequest(ctx context.Context, id domain.RequestId) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejectedIds = append(m.rejectedIds, id)
	return nil
}

// MockTeamsValidator mocks the TeamsValidator interface.
type MockTeamsValidator struct {
	nameFunc func(name string) error
}

func (m *MockTeamsValidator) Name(name string) error {
	if m.nameFunc != nil {
		return m.nameFunc(name)
	}
	return nil
}

func (m *MockTeamsValidator) Description(description *string) error { return nil }
func (m *MockTeamsValidator) Interests(interests []string) error    { return nil }

// --- Helpers ---

// rolesFor answers MemberRole from a fixed table keyed by user id.
func rolesFor(roles map[domain.UserId]domain.TeamRole) func(context.Context, domain.TeamId, domain.UserId) (domain.TeamRole, bool, error) {
	return func(ctx context.Context, teamId domain.TeamId, userId domain.UserId) (domain.TeamRole, bool, error) {
		role, ok := roles[userId]
		return role, ok, nil
	}
}

// --- Tests ---

func TestTeamsCreate(t *testing.T) {
	t.Run("Normalises input and stores the team", func(t *testing.T) {
		storage := &MockTeamsStorage{}
		service := NewTeams(storage, &MockTeamsValidator{})

		storage.createTeamFunc = func(ctx context.Context, data domain.TeamCreationData) (domain.Team, error) {
			assert.Equal(t, "Solar Squad", data.Name)
			assert.Nil(t, data.Description, "blank description is dropped")
			assert.Equal(t, []string{"Energy", "IoT"}, data.Interests)
			assert.Equal(t, "u1", data.Creator.Id)
			return domain.Team{Id: "T1"}, nil
		}

		team, err := service.Create(context.Background(), domain.TeamCreationData{
			Name: " Solar Squad ", Description: strPtr("  "), Interests: []string{"Energy ", " IoT"}, Creator: domain.User{Id: "u1"},
		})

		require.NoError(t, err)
		assert.Equal(t, "T1", team.Id)
	})

	t.Run("Invalid name", func(t *testing.T) {
		storage := &MockTeamsStorage{}
		validator := &MockTeamsValidator{nameFunc: func(string) error { return internal_errors.Invalid("Team name is required") }}
		service := NewTeams(storage, validator)

		_, err := service.Create(context.Background(), domain.TeamCreationData{Creator: domain.User{Id: "u1"}})

		assert.EqualError(t, err, "Team name is required")
		storage.mu.Lock()
		assert.False(t, storage.createTeamCalled)
		storage.mu.Unlock()
	})
}

func TestTeamsOverview(t *testing.T) {
	desc := "Robots for farms"
	teams := []domain.Team{
		{Id: "T1", Name: "AgriBots", Description: &desc, Interests: []string{"Robotics"}, IsOpen: true, CreatedBy: "u9"},
		{Id: "T2", Name: "Code for Good", Interests: []string{"Web"}, IsOpen: true, CreatedBy: "u1"},
		{Id: "T3", Name: "Closed Circle", Interests: []string{"Web"}, IsOpen: false, CreatedBy: "u9"},
		{Id: "T4", Name: "Data Dreamers", Interests: []string{"AI"}, IsOpen: true, CreatedBy: "u9"},
	}

	t.Run("Splits my teams from open teams", func(t *testing.T) {
		storage := &MockTeamsStorage{}
		service := NewTeams(storage, &MockTeamsValidator{})
		storage.listTeamsFunc = func(ctx context.Context) ([]domain.Team, error) { return teams, nil }
		storage.listMembershipsFunc = func(ctx context.Context, userId domain.UserId) ([]domain.TeamId, error) {
			assert.Equal(t, "u1", userId)
			return []domain.TeamId{"T4"}, nil
		}

		overview, err := service.Overview(context.Background(), &domain.User{Id: "u1"}, domain.TeamFilter{})

		require.NoError(t, err)
		assert.Equal(t, []string{"T2", "T4"}, teamIds(overview.MyTeams))
		assert.Equal(t, []string{"T1"}, teamIds(overview.OpenTeams))
	})

	t.Run("Filter applies to open teams", func(t *testing.T) {
		storage := &MockTeamsStorage{}
		service := NewTeams(storage, &MockTeamsValidator{})
		storage.listTeamsFunc = func(ctx context.Context) ([]domain.Team, error) { return teams, nil }

		overview, err := service.Overview(context.Background(), nil, domain.TeamFilter{Query: "farms"})
		require.NoError(t, err)
		assert.Empty(t, overview.MyTeams)
		assert.Equal(t, []string{"T1"}, teamIds(overview.OpenTeams))

		overview, err = service.Overview(context.Background(), nil, domain.TeamFilter{Interest: "ai"})
		require.NoError(t, err)
		assert.Equal(t, []string{"T4"}, teamIds(overview.OpenTeams))

		overview, err = service.Overview(context.Background(), nil, domain.TeamFilter{Interest: "All"})
		require.NoError(t, err)
		assert.Equal(t, []string{"T1", "T2", "T4"}, teamIds(overview.OpenTeams))

		storage.mu.Lock()
		assert.False(t, storage.listMembershipsCalled, "anonymous callers have no memberships")
		storage.mu.Unlock()
	})
}

func teamIds(teams []domain.Team) []string {
	out := make([]string, len(teams))
	for i, t := range teams {
		out[i] = t.Id
	}
	return out
}

func TestTeamsRequestToJoin(t *testing.T) {
	user := domain.User{Id: "u2"}

	t.Run("Creates a pending request", func(t *testing.T) {
		storage := &MockTeamsStorage{}
		service := NewTeams(storage, &MockTeamsValidator{})

		req, err := service.RequestToJoin(context.Background(), user, "T1")

		require.NoError(t, err)
		assert.Equal(t, domain.RequestPending, req.Status)
		assert.Equal(t, "T1", req.TeamId)
	})

	t.Run("Members are told they already joined", func(t *testing.T) {
		storage := &MockTeamsStorage{memberRoleFunc: rolesFor(map[domain.UserId]domain.TeamRole{"u2": domain.RoleMember})}
		service := NewTeams(storage, &MockTeamsValidator{})

		_, err := service.RequestToJoin(context.Background(), user, "T1")

		assert.Equal(t, http.StatusConflict, internal_errors.StatusCode(err))
		assert.Equal(t, "You have already joined this team", internal_errors.PublicMessage(err))
		storage.mu.Lock()
		assert.False(t, storage.createJoinRequestCalled)
		storage.mu.Unlock()
	})

	t.Run("Duplicate request surfaces storage message", func(t *testing.T) {
		storage := &MockTeamsStorage{}
		storage.createJoinRequestFunc = func(ctx context.Context, teamId domain.TeamId, userId domain.UserId) (domain.JoinRequest, error) {
			return domain.JoinRequest{}, internal_errors.Duplicate("You have already requested to join this team")
		}
		service := NewTeams(storage, &MockTeamsValidator{})

		_, err := service.RequestToJoin(context.Background(), user, "T1")

		assert.Equal(t, http.StatusConflict, internal_errors.StatusCode(err))
	})

	t.Run("Closed team", func(t *testing.T) {
		storage := &MockTeamsStorage{}
		storage.getTeamFunc = func(ctx context.Context, id domain.TeamId) (domain.Team, error) {
			return domain.Team{Id: id, IsOpen: false}, nil
		}
		service := NewTeams(storage, &MockTeamsValidator{})

		_, err := service.RequestToJoin(context.Background(), user, "T1")

		assert.Equal(t, http.StatusForbidden, internal_errors.StatusCode(err))
	})

	t.Run("Unknown team", func(t *testing.T) {
		storage := &MockTeamsStorage{}
		storage.getTeamFunc = func(ctx context.Context, id domain.TeamId) (domain.Team, error) {
			return domain.Team{}, internal_errors.NotFound("Team not found")
		}
		service := NewTeams(storage, &MockTeamsValidator{})

		_, err := service.RequestToJoin(context.Background(), user, "T404")

		assert.True(t, internal_errors.IsNotFound(err))
	})
}

func TestTeamsTeamRequests(t *testing.T) {
	roles := rolesFor(map[domain.UserId]domain.TeamRole{"lead": domain.RoleLeader, "mem": domain.RoleMember})

	t.Run("Leader sees requests with display names", func(t *testing.T) {
		storage := &MockTeamsStorage{memberRoleFunc: roles}
		storage.listTeamRequestsFunc = func(ctx context.Context, teamId domain.TeamId) ([]domain.JoinRequestView, error) {
			return []domain.JoinRequestView{
				{JoinRequest: domain.JoinRequest{Id: "R1"}, UserName: "Bob"},
				{JoinRequest: domain.JoinRequest{Id: "R2"}},
			}, nil
		}
		service := NewTeams(storage, &MockTeamsValidator{})

		requests, err := service.TeamRequests(context.Background(), domain.User{Id: "lead"}, "T1")

		require.NoError(t, err)
		require.Len(t, requests, 2)
		assert.Equal(t, "Bob", requests[0].UserName)
		assert.Equal(t, domain.PlaceholderAuthorName, requests[1].UserName)
	})

	for _, userId := range []domain.UserId{"mem", "stranger"} {
		t.Run("Forbidden for "+userId, func(t *testing.T) {
			storage := &MockTeamsStorage{memberRoleFunc: roles}
			service := NewTeams(storage, &MockTeamsValidator{})

			_, err := service.TeamRequests(context.Background(), domain.User{Id: userId}, "T1")

			assert.Equal(t, http.StatusForbidden, internal_errors.StatusCode(err))
			storage.mu.Lock()
			assert.False(t, storage.listTeamRequestsCalled)
			storage.mu.Unlock()
		})
	}
}

func TestTeamsRespond(t *testing.T) {
	leader := domain.User{Id: "lead"}
	roles := rolesFor(map[domain.UserId]domain.TeamRole{"lead": domain.RoleLeader})
	pending := func(ctx context.Context, id domain.RequestId) (domain.JoinRequest, error) {
		return domain.JoinRequest{Id: id, TeamId: "T1", UserId: "u2", Status: domain.RequestPending}, nil
	}

	t.Run("Accept", func(t *testing.T) {
		storage := &MockTeamsStorage{memberRoleFunc: roles, getJoinRequestFunc: pending}
		service := NewTeams(storage, &MockTeamsValidator{})

		require.NoError(t, service.Respond(context.Background(), leader, "T1", "R1", true))

		storage.mu.Lock()
		assert.Equal(t, []domain.RequestId{"R1"}, storage.acceptedIds)
		assert.Empty(t, storage.rejectedIds)
		storage.mu.Unlock()
	})

	t.Run("Reject", func(t *testing.T) {
		storage := &MockTeamsStorage{memberRoleFunc: roles, getJoinRequestFunc: pending}
		service := NewTeams(storage, &MockTeamsValidator{})

		require.NoError(t, service.Respond(context.Background(), leader, "T1", "R1", false))

		storage.mu.Lock()
		assert.Equal(t, []domain.RequestId{"R1"}, storage.rejectedIds)
		assert.Empty(t, storage.acceptedIds)
		storage.mu.Unlock()
	})

	t.Run("Request of another team", func(t *testing.T) {
		storage := &MockTeamsStorage{memberRoleFunc: roles, getJoinRequestFunc: pending}
		service := NewTeams(storage, &MockTeamsValidator{})

		err := service.Respond(context.Background(), leader, "T2", "R1", true)

		assert.True(t, internal_errors.IsNotFound(err))
		storage.mu.Lock()
		assert.Empty(t, storage.acceptedIds)
		storage.mu.Unlock()
	})

	t.Run("Non-leader", func(t *testing.T) {
		storage := &MockTeamsStorage{memberRoleFunc: roles, getJoinRequestFunc: pending}
		service := NewTeams(storage, &MockTeamsValidator{})

		err := service.Respond(context.Background(), domain.User{Id: "u2"}, "T1", "R1", true)

		assert.Equal(t, http.StatusForbidden, internal_errors.StatusCode(err))
	})
}

func TestTeamsMembers(t *testing.T) {
	storage := &MockTeamsStorage{}
	storage.listMembersFunc = func(ctx context.Context, teamId domain.TeamId) ([]domain.TeamMember, error) {
		return []domain.TeamMember{
			{UserId: "u1", Role: domain.RoleLeader, Name: "Alice"},
			{UserId: "u2", Role: domain.RoleMember},
		}, nil
	}
	service := NewTeams(storage, &MockTeamsValidator{})

	members, err := service.Members(context.Background(), "T1")

	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "Alice", members[0].Name)
	assert.Equal(t, domain.PlaceholderAuthorName, members[1].Name)
}

func TestTeamsPendingRequests(t *testing.T) {
	storage := &MockTeamsStorage{}
	storage.listPendingRequestTeamIdsFunc = func(ctx context.Context, userId domain.UserId) ([]domain.TeamId, error) {
		assert.Equal(t, "u2", userId)
		return []domain.TeamId{"T1", "T3"}, nil
	}
	service := NewTeams(storage, &MockTeamsValidator{})

	ids, err := service.PendingRequests(context.Background(), domain.User{Id: "u2"})

	require.NoError(t, err)
	assert.Equal(t, []domain.TeamId{"T1", "T3"}, ids)
}
