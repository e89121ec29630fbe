package handler

import (
	"net/http"

	"github.com/Dharshana-KM/student-spark/shared/api"
	"github.com/Dharshana-KM/student-spark/shared/domain"
	"github.com/Dharshana-KM/student-spark/shared/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) CourseDashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	dashboard, err := h.courses.Dashboard(r.Context(), user)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, dashboard)
}

func (h *Handler) CourseProgress(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	course, err := h.courses.Progress(r.Context(), user, chi.URLParam(r, "course"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, course)
}

func (h *Handler) StartCourse(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	course, err := h.courses.Start(r.Context(), user, chi.URLParam(r, "course"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, course)
}

func (h *Handler) UpdateCourseProgress(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	var body api.ProgressRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	course, err := h.courses.UpdateProgress(r.Context(), user, chi.URLParam(r, "course"), domain.ProgressUpdate{
		Progress:      *body.Progress,
		CurrentModule: body.CurrentModule,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, course)
}
