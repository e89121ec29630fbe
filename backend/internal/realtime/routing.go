package realtime

import (
	"encoding/json"
	"fmt"

	"github.com/Dharshana-KM/student-spark/shared/domain"
)

// OpResync is published when notifications may have been lost.
const OpResync = "RESYNC"

// notification is the payload written by the notify_change() trigger.
type notification struct {
	Table  string  `json:"table"`
	Op     string  `json:"op"`
	Id     string  `json:"id"`
	TeamId *string `json:"team_id"`
}

// ChannelsFor returns the logical channels a change of table is published on.
func ChannelsFor(table string, teamId domain.TeamId) []string {
	switch table {
	case "impact_posts":
		return []string{domain.ChannelPosts}
	case "impact_comments":
		return []string{domain.ChannelComments}
	case "teams", "team_members":
		return []string{domain.ChannelTeams}
	case "team_join_requests":
		if teamId == "" {
			return []string{domain.ChannelTeams}
		}
		return []string{domain.ChannelTeams, domain.TeamRequestsChannel(teamId)}
	case "team_messages":
		if teamId == "" {
			return nil
		}
		return []string{domain.TeamMessagesChannel(teamId)}
	}
	return nil
}

// Events decodes a trigger payload into one event per channel.
func Events(payload string) ([]domain.ChangeEvent, error) {
	var n notification
	if err := json.Unmarshal([]byte(payload), &n); err != nil {
		return nil, fmt.Errorf("decode notification: %w", err)
	}
	var teamId domain.TeamId
	if n.TeamId != nil {
		teamId = *n.TeamId
	}

	channels := ChannelsFor(n.Table, teamId)
	events := make([]domain.ChangeEvent, 0, len(channels))
	for _, c := range channels {
		events = append(events, domain.ChangeEvent{
			Channel: c,
			Table:   n.Table,
			Op:      n.Op,
			Id:      n.Id,
			TeamId:  teamId,
		})
	}
	return events, nil
}
