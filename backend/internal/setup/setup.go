package setup

import (
	"context"
	"time"

	"github.com/Dharshana-KM/student-spark/backend/internal/handler"
	"github.com/Dharshana-KM/student-spark/backend/internal/realtime"
	"github.com/Dharshana-KM/student-spark/backend/internal/service"
	"github.com/Dharshana-KM/student-spark/backend/internal/storage/pg"
	"github.com/Dharshana-KM/student-spark/backend/internal/utils"
	"github.com/Dharshana-KM/student-spark/shared/config"
	"github.com/Dharshana-KM/student-spark/shared/jwt"
	"github.com/Dharshana-KM/student-spark/shared/logger"
	"github.com/Dharshana-KM/student-spark/shared/markdown"
	mw "github.com/Dharshana-KM/student-spark/shared/middleware"
	rl "github.com/Dharshana-KM/student-spark/shared/middleware/ratelimiter"
)

// Limiters are the per-user rate limiters of write endpoints.
type Limiters struct {
	Posts    *rl.UserRateLimiter
	Comments *rl.UserRateLimiter
	Messages *rl.UserRateLimiter
	Joins    *rl.UserRateLimiter
}

func NewLimiters() Limiters {
	return Limiters{
		Posts:    rl.NewPostLimiter(),
		Comments: rl.NewCommentLimiter(),
		Messages: rl.NewMessageLimiter(),
		Joins:    rl.NewJoinLimiter(),
	}
}

// StartSweepers drops idle buckets of every limiter until ctx is done.
func (l Limiters) StartSweepers(ctx context.Context, interval time.Duration) {
	l.Posts.StartSweeper(ctx, "posts", interval)
	l.Comments.StartSweeper(ctx, "comments", interval)
	l.Messages.StartSweeper(ctx, "messages", interval)
	l.Joins.StartSweeper(ctx, "joins", interval)
}

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config   *config.Config
	Storage  *pg.Storage
	Handler  *handler.Handler
	Auth     *mw.Auth
	Jwt      jwt.JwtService
	Hub      *realtime.Hub
	Listener *realtime.Listener
	Realtime *realtime.Handler
	Stats    *service.Stats
	Limiters Limiters
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	rt := cfg.Public.Realtime
	hub := realtime.NewHub(rt.SubscriberBuffer)
	listener, err := realtime.NewListener(cfg.PgDSN(), rt.Channel, rt.MinReconnectInterval, rt.MaxReconnectInterval, hub)
	if err != nil {
		storage.Cleanup()
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	discussion := service.NewDiscussion(storage, &utils.DiscussionValidator{}, markdown.New())
	teams := service.NewTeams(storage, &utils.TeamValidator{})
	chat := service.NewChat(storage, &utils.TeamValidator{})
	profiles := service.NewProfiles(storage, &utils.ProfileValidator{})
	courses := service.NewCourses(storage, &utils.CatalogValidator{})
	impact := service.NewImpact(storage, &utils.CatalogValidator{})

	h := handler.New(handler.Services{
		Discussion: discussion,
		Teams:      teams,
		Chat:       chat,
		Profiles:   profiles,
		Courses:    courses,
		Impact:     impact,
	}, storage)

	logger.Log.Info("dependencies initialized", "allowed_origins", cfg.Public.AllowedOrigins)

	return &Dependencies{
		Config:   cfg,
		Storage:  storage,
		Handler:  h,
		Auth:     mw.NewAuth(jwtService),
		Jwt:      jwtService,
		Hub:      hub,
		Listener: listener,
		Realtime: realtime.NewHandler(hub, service.NewChannelAccess(storage), cfg.Public.AllowedOrigins),
		Stats:    service.NewStats(storage),
		Limiters: NewLimiters(),
	}, nil
}

// Close releases the listener and database connections.
func (d *Dependencies) Close() {
	if d.Listener != nil {
		if err := d.Listener.Close(); err != nil {
			logger.Log.Error("failed to close listener", "error", err)
		}
	}
	if d.Storage != nil {
		if err := d.Storage.Cleanup(); err != nil {
			logger.Log.Error("failed to close storage", "error", err)
		}
	}
}
