package domain

import "time"

type Team struct {
	Id          TeamId    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Interests   []string  `json:"interests"`
	IsOpen      bool      `json:"is_open"`
	CreatedBy   UserId    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type TeamCreationData struct {
	Name        string
	Description *string
	Interests   []string
	Creator     User
}

type TeamMember struct {
	Id       string    `json:"id"`
	TeamId   TeamId    `json:"team_id"`
	UserId   UserId    `json:"user_id"`
	Role     TeamRole  `json:"role"`
	Skills   []string  `json:"skills"`
	JoinedAt time.Time `json:"joined_at"`
	Name     string    `json:"name"`
}

type JoinRequest struct {
	Id        RequestId         `json:"id"`
	TeamId    TeamId            `json:"team_id"`
	UserId    UserId            `json:"user_id"`
	Status    JoinRequestStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

// JoinRequestView is a join request annotated with the requester's display name.
type JoinRequestView struct {
	JoinRequest
	UserName string `json:"user_name"`
}

type TeamMessage struct {
	Id        MessageId `json:"id"`
	TeamId    TeamId    `json:"team_id"`
	UserId    UserId    `json:"user_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// TeamMessageView is a chat message annotated with its sender's display name.
type TeamMessageView struct {
	TeamMessage
	SenderName string `json:"sender_name"`
}

// TeamFilter narrows the open teams list. Interest "All" or "" matches everything.
type TeamFilter struct {
	Query    string
	Interest string
}

// TeamsOverview splits teams into the ones a user belongs to and the ones open to join.
type TeamsOverview struct {
	MyTeams   []Team `json:"my_teams"`
	OpenTeams []Team `json:"open_teams"`
}
