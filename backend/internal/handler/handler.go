package handler

import (
	"context"

	"github.com/Dharshana-KM/student-spark/backend/internal/service"
)

// HealthChecker reports whether the backing store answers.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	discussion service.DiscussionService
	teams      service.TeamsService
	chat       service.ChatService
	profiles   service.ProfilesService
	courses    service.CoursesService
	impact     service.ImpactService
	health     HealthChecker
}

// Services groups the domain services the HTTP layer talks to.
type Services struct {
	Discussion service.DiscussionService
	Teams      service.TeamsService
	Chat       service.ChatService
	Profiles   service.ProfilesService
	Courses    service.CoursesService
	Impact     service.ImpactService
}

func New(s Services, health HealthChecker) *Handler {
	return &Handler{
		discussion: s.Discussion,
		teams:      s.Teams,
		chat:       s.Chat,
		profiles:   s.Profiles,
		courses:    s.Courses,
		impact:     s.Impact,
		health:     health,
	}
}
