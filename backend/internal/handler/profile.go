package handler

import (
	"net/http"

	"github.com/Dharshana-KM/student-spark/shared/api"
	"github.com/Dharshana-KM/student-spark/shared/domain"
	"github.com/Dharshana-KM/student-spark/shared/utils"
)

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	profile, err := h.profiles.Get(r.Context(), user)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	var body api.UpdateProfileRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	profile, err := h.profiles.Update(r.Context(), user, domain.ProfileUpdate{
		FullName:       body.FullName,
		College:        body.College,
		GraduationYear: body.GraduationYear,
		Location:       body.Location,
		Bio:            body.Bio,
		LinkedinURL:    body.LinkedinURL,
		GithubURL:      body.GithubURL,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	var body api.OnboardingRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	profile, err := h.profiles.CompleteOnboarding(r.Context(), user, domain.OnboardingData{
		Interests:      body.Interests,
		Skills:         body.Skills,
		CareerGoal:     body.CareerGoal,
		LinkedinURL:    body.LinkedinURL,
		GithubURL:      body.GithubURL,
		College:        body.College,
		GraduationYear: body.GraduationYear,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, profile)
}
