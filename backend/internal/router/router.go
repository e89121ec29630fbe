package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Dharshana-KM/student-spark/backend/internal/setup"
	mw "github.com/Dharshana-KM/student-spark/shared/middleware"
	"github.com/Dharshana-KM/student-spark/shared/middleware/metrics"
)

// New creates the chi router with all the routes.
// IMPORTANT! a rate limiter wrapping several routes shares its buckets between them
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(metrics.Middleware)

	// browser app origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.Public.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(mw.SecurityHeaders(deps.Config.Public.HTTPS))

	h := deps.Handler
	auth := deps.Auth
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(v1 chi.Router) {
		// readable without a session
		v1.Group(func(public chi.Router) {
			public.Use(auth.OptionalAuth())

			public.Get("/discussion", h.Discussion)
			public.Get("/posts", h.ListPosts)
			public.Get("/comments", h.ListComments)
			public.Get("/authors", h.ResolveAuthors)
			public.Get("/teams", h.Teams)
			public.Get("/teams/{team}/members", h.TeamMembers)
			public.Handle("/realtime", deps.Realtime)
		})

		v1.Group(func(user chi.Router) {
			user.Use(auth.NeedAuth())

			user.With(mw.RateLimit(deps.Limiters.Posts, mw.GetUserIDFromContext)).Post("/posts", h.CreatePost)
			user.With(mw.RateLimit(deps.Limiters.Comments, mw.GetUserIDFromContext)).Post("/posts/{post}/comments", h.CreateComment)

			user.Get("/profile", h.GetProfile)
			user.Put("/profile", h.UpdateProfile)
			user.Post("/profile/onboarding", h.CompleteOnboarding)

			user.Get("/courses", h.CourseDashboard)
			user.Get("/courses/{course}", h.CourseProgress)
			user.Post("/courses/{course}/start", h.StartCourse)
			user.Put("/courses/{course}/progress", h.UpdateCourseProgress)

			user.Post("/teams", h.CreateTeam)
			user.Get("/teams/requests", h.MyJoinRequests)
			user.With(mw.RateLimit(deps.Limiters.Joins, mw.GetUserIDFromContext)).Post("/teams/{team}/join", h.JoinTeam)
			user.Get("/teams/{team}/requests", h.TeamJoinRequests)
			user.Post("/teams/{team}/requests/{request}/accept", h.AcceptJoinRequest)
			user.Post("/teams/{team}/requests/{request}/reject", h.RejectJoinRequest)
			user.Get("/teams/{team}/messages", h.TeamMessages)
			user.With(mw.RateLimit(deps.Limiters.Messages, mw.GetUserIDFromContext)).Post("/teams/{team}/messages", h.SendTeamMessage)

			user.Post("/impact/problems/{problem}/join", h.JoinProblem)
			user.Post("/impact/hackathons/{hackathon}/register", h.RegisterHackathon)
			user.Get("/impact/mine", h.MyImpact)
		})
	})

	return r
}
