package handler

import (
	"net/http"

	"github.com/Dharshana-KM/student-spark/shared/api"
	"github.com/Dharshana-KM/student-spark/shared/domain"
	mw "github.com/Dharshana-KM/student-spark/shared/middleware"
	"github.com/Dharshana-KM/student-spark/shared/utils"
)

// Teams returns the caller's teams and the open teams matching q and interest.
// Anonymous callers only get open teams.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	filter := domain.TeamFilter{
		Query:    r.URL.Query().Get("q"),
		Interest: r.URL.Query().Get("interest"),
	}
	overview, err := h.teams.Overview(r.Context(), mw.GetUserFromContext(r), filter)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, overview)
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	var body api.CreateTeamRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	team, err := h.teams.Create(r.Context(), domain.TeamCreationData{
		Name:        body.Name,
		Description: body.Description,
		Interests:   body.Interests,
		Creator:     user,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, api.CreatedResponse{Id: team.Id})
}

// MyJoinRequests lists the teams the caller is waiting to join.
func (h *Handler) MyJoinRequests(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	ids, err := h.teams.PendingRequests(r.Context(), user)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.PendingRequestsResponse{TeamIds: ids})
}

func (h *Handler) JoinTeam(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	teamId, ok := pathId(w, r, "team", "Team")
	if !ok {
		return
	}
	request, err := h.teams.RequestToJoin(r.Context(), user, teamId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, api.CreatedResponse{Id: request.Id})
}

func (h *Handler) TeamMembers(w http.ResponseWriter, r *http.Request) {
	teamId, ok := pathId(w, r, "team", "Team")
	if !ok {
		return
	}
	members, err := h.teams.Members(r.Context(), teamId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.MembersResponse{Members: members})
}

func (h *Handler) TeamJoinRequests(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	teamId, ok := pathId(w, r, "team", "Team")
	if !ok {
		return
	}
	requests, err := h.teams.TeamRequests(r.Context(), user, teamId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.JoinRequestsResponse{Requests: requests})
}

func (h *Handler) AcceptJoinRequest(w http.ResponseWriter, r *http.Request) {
	h.respondToJoinRequest(w, r, true)
}

func (h *Handler) RejectJoinRequest(w http.ResponseWriter, r *http.Request) {
	h.respondToJoinRequest(w, r, false)
}

func (h *Handler) respondToJoinRequest(w http.ResponseWriter, r *http.Request, accept bool) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	teamId, ok := pathId(w, r, "team", "Team")
	if !ok {
		return
	}
	requestId, ok := pathId(w, r, "request", "Join request")
	if !ok {
		return
	}
	if err := h.teams.Respond(r.Context(), user, teamId, requestId, accept); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) TeamMessages(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	teamId, ok := pathId(w, r, "team", "Team")
	if !ok {
		return
	}
	messages, err := h.chat.Messages(r.Context(), user, teamId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.MessagesResponse{Messages: messages})
}

func (h *Handler) SendTeamMessage(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	teamId, ok := pathId(w, r, "team", "Team")
	if !ok {
		return
	}
	var body api.SendMessageRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	msg, err := h.chat.Send(r.Context(), user, teamId, body.Message)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, api.CreatedResponse{Id: msg.Id})
}
