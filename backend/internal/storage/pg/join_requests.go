package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dharshana-KM/student-spark/shared/domain"
	internal_errors "github.com/Dharshana-KM/student-spark/shared/errors"
	"github.com/lib/pq"
)

const joinRequestColumns = "id, team_id, user_id, status, created_at"

func scanJoinRequest(row scanner) (domain.JoinRequest, error) {
	var r domain.JoinRequest
	err := row.Scan(&r.Id, &r.TeamId, &r.UserId, &r.Status, &r.CreatedAt)
	return r, err
}

// CreateJoinRequest records a pending request. A second request by the same
// user for the same team is a duplicate ValidationError.
func (s *Storage) CreateJoinRequest(ctx context.Context, teamId domain.TeamId, userId domain.UserId) (domain.JoinRequest, error) {
	r, err := scanJoinRequest(s.db.QueryRowContext(ctx, `
        INSERT INTO team_join_requests (team_id, user_id)
        VALUES ($1, $2)
        RETURNING `+joinRequestColumns,
		teamId, userId,
	))
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
		return domain.JoinRequest{}, internal_errors.NotFound("Team not found")
	}
	if err != nil {
		return domain.JoinRequest{}, classify("create join request", err)
	}
	return r, nil
}

// ListPendingRequestTeamIds returns the teams user is waiting to join.
func (s *Storage) ListPendingRequestTeamIds(ctx context.Context, userId domain.UserId) ([]domain.TeamId, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT team_id FROM team_join_requests WHERE user_id = $1 AND status = 'pending' ORDER BY created_at`,
		userId)
	if err != nil {
		return nil, classify("list pending requests", err)
	}
	ids, err := collect(rows, func(row scanner) (domain.TeamId, error) {
		var id domain.TeamId
		return id, row.Scan(&id)
	})
	return ids, classify("list pending requests", err)
}

// ListTeamRequests returns the pending requests of team, oldest first, with
// the raw requester profile name.
func (s *Storage) ListTeamRequests(ctx context.Context, teamId domain.TeamId) ([]domain.JoinRequestView, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT r.id, r.team_id, r.user_id, r.status, r.created_at, COALESCE(btrim(p.full_name), '')
        FROM team_join_requests r
        LEFT JOIN profiles p ON p.user_id = r.user_id
        WHERE r.team_id = $1 AND r.status = 'pending'
        ORDER BY r.created_at, r.id
    `, teamId)
	if err != nil {
		return nil, classify("list team requests", err)
	}
	requests, err := collect(rows, func(row scanner) (domain.JoinRequestView, error) {
		var v domain.JoinRequestView
		err := row.Scan(&v.Id, &v.TeamId, &v.UserId, &v.Status, &v.CreatedAt, &v.UserName)
		return v, err
	})
	return requests, classify("list team requests", err)
}

func (s *Storage) GetJoinRequest(ctx context.Context, id domain.RequestId) (domain.JoinRequest, error) {
	r, err := scanJoinRequest(s.db.QueryRowContext(ctx,
		`SELECT `+joinRequestColumns+` FROM team_join_requests WHERE id = $1`, id))
	if err != nil {
		return domain.JoinRequest{}, notFound("get join request", err, "Join request not found")
	}
	return r, nil
}

// AcceptJoinRequest marks a pending request accepted and adds the requester
// to the team in one transaction.
func (s *Storage) AcceptJoinRequest(ctx context.Context, id domain.RequestId) error {
	return s.withTx(ctx, "accept join request", func(tx *sql.Tx) error {
		var teamId domain.TeamId
		var userId domain.UserId
		err := tx.QueryRowContext(ctx, `
            UPDATE team_join_requests SET status = 'accepted'
            WHERE id = $1 AND status = 'pending'
            RETURNING team_id, user_id
        `, id).Scan(&teamId, &userId)
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.Invalid("Join request is no longer pending")
		}
		if err != nil {
			return classify("accept join request", err)
		}

		_, err = tx.ExecContext(ctx, `
            INSERT INTO team_members (team_id, user_id, role, skills)
            VALUES ($1, $2, $3, COALESCE((SELECT skills FROM profiles WHERE user_id = $2), '{}'))
            ON CONFLICT ON CONSTRAINT team_members_unique DO NOTHING
        `, teamId, userId, string(domain.RoleMember))
		return classify("accept join request", err)
	})
}

func (s *Storage) RejectJoinRequest(ctx context.Context, id domain.RequestId) error {
	res, err := s.db.ExecContext(ctx, `
        UPDATE team_join_requests SET status = 'rejected'
        WHERE id = $1 AND status = 'pending'
    `, id)
	if err != nil {
		return classify("reject join request", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return classify("reject join request", err)
	}
	if n == 0 {
		return internal_errors.Invalid("Join request is no longer pending")
	}
	return nil
}
