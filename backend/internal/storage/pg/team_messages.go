package pg

import (
	"context"

	"github.com/Dharshana-KM/student-spark/shared/domain"
)

const teamMessageColumns = "id, team_id, user_id, message, created_at"

func scanTeamMessage(row scanner) (domain.TeamMessage, error) {
	var m domain.TeamMessage
	err := row.Scan(&m.Id, &m.TeamId, &m.UserId, &m.Message, &m.CreatedAt)
	return m, err
}

func (s *Storage) CreateTeamMessage(ctx context.Context, teamId domain.TeamId, userId domain.UserId, text string) (domain.TeamMessage, error) {
	m, err := scanTeamMessage(s.db.QueryRowContext(ctx, `
        INSERT INTO team_messages (team_id, user_id, message)
        VALUES ($1, $2, $3)
        RETURNING `+teamMessageColumns,
		teamId, userId, text,
	))
	return m, classify("create team message", err)
}

// ListTeamMessages returns the chat history of team, oldest first.
func (s *Storage) ListTeamMessages(ctx context.Context, teamId domain.TeamId) ([]domain.TeamMessage, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT `+teamMessageColumns+`
        FROM team_messages
        WHERE team_id = $1
        ORDER BY created_at, id
    `, teamId)
	if err != nil {
		return nil, classify("list team messages", err)
	}
	messages, err := collect(rows, scanTeamMessage)
	return messages, classify("list team messages", err)
}
