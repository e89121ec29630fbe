package handler

import (
	"net/http"

	"github.com/Dharshana-KM/student-spark/shared/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) JoinProblem(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	join, err := h.impact.JoinProblem(r.Context(), user, chi.URLParam(r, "problem"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, join)
}

func (h *Handler) RegisterHackathon(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	registration, err := h.impact.RegisterHackathon(r.Context(), user, chi.URLParam(r, "hackathon"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, registration)
}

// MyImpact lists the problems and hackathons the caller signed up for.
func (h *Handler) MyImpact(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	activity, err := h.impact.Mine(r.Context(), user)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, activity)
}
