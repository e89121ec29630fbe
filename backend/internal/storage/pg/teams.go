package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dharshana-KM/student-spark/shared/domain"
	"github.com/lib/pq"
)

const teamColumns = "id, name, description, interests, is_open, created_by, created_at"

func scanTeam(row scanner) (domain.Team, error) {
	var t domain.Team
	err := row.Scan(&t.Id, &t.Name, &t.Description, pq.Array(&t.Interests), &t.IsOpen, &t.CreatedBy, &t.CreatedAt)
	if t.Interests == nil {
		t.Interests = []string{}
	}
	return t, err
}

// CreateTeam inserts the team and makes its creator the leader in one transaction.
func (s *Storage) CreateTeam(ctx context.Context, data domain.TeamCreationData) (domain.Team, error) {
	var team domain.Team
	err := s.withTx(ctx, "create team", func(tx *sql.Tx) error {
		var err error
		team, err = scanTeam(tx.QueryRowContext(ctx, `
            INSERT INTO teams (name, description, interests, created_by)
            VALUES ($1, $2, $3, $4)
            RETURNING `+teamColumns,
			data.Name, data.Description, pq.Array(data.Interests), data.Creator.Id,
		))
		if err != nil {
			return classify("create team", err)
		}

		_, err = tx.ExecContext(ctx, `
            INSERT INTO team_members (team_id, user_id, role, skills)
            VALUES ($1, $2, $3, COALESCE((SELECT skills FROM profiles WHERE user_id = $2), '{}'))
        `, team.Id, data.Creator.Id, string(domain.RoleLeader))
		return classify("create team", err)
	})
	return team, err
}

// ListTeams returns every team, newest first.
func (s *Storage) ListTeams(ctx context.Context) ([]domain.Team, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+teamColumns+` FROM teams ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, classify("list teams", err)
	}
	teams, err := collect(rows, scanTeam)
	return teams, classify("list teams", err)
}

func (s *Storage) GetTeam(ctx context.Context, id domain.TeamId) (domain.Team, error) {
	team, err := scanTeam(s.db.QueryRowContext(ctx,
		`SELECT `+teamColumns+` FROM teams WHERE id = $1`, id))
	if err != nil {
		return domain.Team{}, notFound("get team", err, "Team not found")
	}
	return team, nil
}

// ListMemberships returns the ids of the teams user belongs to.
func (s *Storage) ListMemberships(ctx context.Context, userId domain.UserId) ([]domain.TeamId, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT team_id FROM team_members WHERE user_id = $1`, userId)
	if err != nil {
		return nil, classify("list memberships", err)
	}
	ids, err := collect(rows, func(row scanner) (domain.TeamId, error) {
		var id domain.TeamId
		return id, row.Scan(&id)
	})
	return ids, classify("list memberships", err)
}

// ListMembers returns the members of team in join order. Name is the raw
// profile name and may be empty.
func (s *Storage) ListMembers(ctx context.Context, teamId domain.TeamId) ([]domain.TeamMember, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT m.id, m.team_id, m.user_id, m.role, m.skills, m.joined_at, COALESCE(btrim(p.full_name), '')
        FROM team_members m
        LEFT JOIN profiles p ON p.user_id = m.user_id
        WHERE m.team_id = $1
        ORDER BY m.joined_at, m.id
    `, teamId)
	if err != nil {
		return nil, classify("list members", err)
	}
	members, err := collect(rows, func(row scanner) (domain.TeamMember, error) {
		var m domain.TeamMember
		err := row.Scan(&m.Id, &m.TeamId, &m.UserId, &m.Role, pq.Array(&m.Skills), &m.JoinedAt, &m.Name)
		if m.Skills == nil {
			m.Skills = []string{}
		}
		return m, err
	})
	return members, classify("list members", err)
}

// MemberRole returns user's role in team; ok is false for non-members.
func (s *Storage) MemberRole(ctx context.Context, teamId domain.TeamId, userId domain.UserId) (domain.TeamRole, bool, error) {
	var role domain.TeamRole
	err := s.db.QueryRowContext(ctx,
		`SELECT role FROM team_members WHERE team_id = $1 AND user_id = $2`, teamId, userId,
	).Scan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, classify("member role", err)
	}
	return role, true, nil
}
