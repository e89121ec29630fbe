package pg

import (
	"context"

	"github.com/Dharshana-KM/student-spark/shared/domain"
)

func (s *Storage) JoinProblem(ctx context.Context, userId domain.UserId, problemId domain.ProblemId) (domain.ProblemJoin, error) {
	var j domain.ProblemJoin
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO problem_joins (user_id, problem_id) VALUES ($1, $2)
        RETURNING id, user_id, problem_id, joined_at
    `, userId, problemId).Scan(&j.Id, &j.UserId, &j.ProblemId, &j.JoinedAt)
	return j, classify("join problem", err)
}

func (s *Storage) RegisterHackathon(ctx context.Context, userId domain.UserId, hackathonId domain.HackathonId) (domain.HackathonRegistration, error) {
	var r domain.HackathonRegistration
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO hackathon_registrations (user_id, hackathon_id) VALUES ($1, $2)
        RETURNING id, user_id, hackathon_id, registered_at
    `, userId, hackathonId).Scan(&r.Id, &r.UserId, &r.HackathonId, &r.RegisteredAt)
	return r, classify("register hackathon", err)
}

func (s *Storage) ListProblemJoins(ctx context.Context, userId domain.UserId) ([]domain.ProblemJoin, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, user_id, problem_id, joined_at
        FROM problem_joins WHERE user_id = $1
        ORDER BY joined_at DESC
    `, userId)
	if err != nil {
		return nil, classify("list problem joins", err)
	}
	joins, err := collect(rows, func(row scanner) (domain.ProblemJoin, error) {
		var j domain.ProblemJoin
		return j, row.Scan(&j.Id, &j.UserId, &j.ProblemId, &j.JoinedAt)
	})
	return joins, classify("list problem joins", err)
}

func (s *Storage) ListHackathonRegistrations(ctx context.Context, userId domain.UserId) ([]domain.HackathonRegistration, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, user_id, hackathon_id, registered_at
        FROM hackathon_registrations WHERE user_id = $1
        ORDER BY registered_at DESC
    `, userId)
	if err != nil {
		return nil, classify("list hackathon registrations", err)
	}
	regs, err := collect(rows, func(row scanner) (domain.HackathonRegistration, error) {
		var r domain.HackathonRegistration
		return r, row.Scan(&r.Id, &r.UserId, &r.HackathonId, &r.RegisteredAt)
	})
	return regs, classify("list hackathon registrations", err)
}
