package domain

import "strings"

// Logical change-notification channels.
const (
	ChannelPosts    = "posts"
	ChannelComments = "comments"
	ChannelTeams    = "teams"
)

func TeamMessagesChannel(team TeamId) string {
	return "team:" + team + ":messages"
}

func TeamRequestsChannel(team TeamId) string {
	return "team:" + team + ":requests"
}

// ParseTeamChannel returns the team a per-team channel belongs to.
func ParseTeamChannel(channel string) (TeamId, bool) {
	rest, ok := strings.CutPrefix(channel, "team:")
	if !ok {
		return "", false
	}
	team, kind, ok := strings.Cut(rest, ":")
	if !ok || team == "" || (kind != "messages" && kind != "requests") {
		return "", false
	}
	return team, true
}

// ValidChannel reports whether channel is one clients may subscribe to.
func ValidChannel(channel string) bool {
	switch channel {
	case ChannelPosts, ChannelComments, ChannelTeams:
		return true
	}
	_, ok := ParseTeamChannel(channel)
	return ok
}

// ChangeEvent says that a row of Table changed. It carries no row data:
// subscribers refetch.
type ChangeEvent struct {
	Channel string `json:"channel"`
	Table   string `json:"table"`
	Op      string `json:"op"`
	Id      string `json:"id,omitempty"`
	TeamId  TeamId `json:"team_id,omitempty"`
}
