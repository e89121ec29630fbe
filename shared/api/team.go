package api

import "github.com/Dharshana-KM/student-spark/shared/domain"

type CreateTeamRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	Interests   []string `json:"interests" validate:"max=10,dive,required,max=50"`
}

type SendMessageRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

type MembersResponse struct {
	Members []domain.TeamMember `json:"members"`
}

type JoinRequestsResponse struct {
	Requests []domain.JoinRequestView `json:"requests"`
}

// PendingRequestsResponse lists teams the caller has asked to join.
type PendingRequestsResponse struct {
	TeamIds []domain.TeamId `json:"team_ids"`
}

type MessagesResponse struct {
	Messages []domain.TeamMessageView `json:"messages"`
}
