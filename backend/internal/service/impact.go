package service

import (
	"context"

	"github.com/Dharshana-KM/student-spark/shared/domain"
)

type ImpactService interface {
	JoinProblem(ctx context.Context, user domain.User, problemId domain.ProblemId) (domain.ProblemJoin, error)
	RegisterHackathon(ctx context.Context, user domain.User, hackathonId domain.HackathonId) (domain.HackathonRegistration, error)
	Mine(ctx context.Context, user domain.User) (domain.ImpactActivity, error)
}

type Impact struct {
	storage   ImpactStorage
	validator CatalogValidator
}

type ImpactStorage interface {
	JoinProblem(ctx context.Context, userId domain.UserId, problemId domain.ProblemId) (domain.ProblemJoin, error)
	RegisterHackathon(ctx context.Context, userId domain.UserId, hackathonId domain.HackathonId) (domain.HackathonRegistration, error)
	ListProblemJoins(ctx context.Context, userId domain.UserId) ([]domain.ProblemJoin, error)
	ListHackathonRegistrations(ctx context.Context, userId domain.UserId) ([]domain.HackathonRegistration, error)
}

func NewImpact(storage ImpactStorage, validator CatalogValidator) ImpactService {
	return &Impact{storage, validator}
}

func (i *Impact) JoinProblem(ctx context.Context, user domain.User, problemId domain.ProblemId) (domain.ProblemJoin, error) {
	if err := i.validator.CatalogId(problemId); err != nil {
		return domain.ProblemJoin{}, err
	}
	return i.storage.JoinProblem(ctx, user.Id, problemId)
}

func (i *Impact) RegisterHackathon(ctx context.Context, user domain.User, hackathonId domain.HackathonId) (domain.HackathonRegistration, error) {
	if err := i.validator.CatalogId(hackathonId); err != nil {
		return domain.HackathonRegistration{}, err
	}
	return i.storage.RegisterHackathon(ctx, user.Id, hackathonId)
}

func (i *Impact) Mine(ctx context.Context, user domain.User) (domain.ImpactActivity, error) {
	problems, err := i.storage.ListProblemJoins(ctx, user.Id)
	if err != nil {
		return domain.ImpactActivity{}, err
	}
	hackathons, err := i.storage.ListHackathonRegistrations(ctx, user.Id)
	if err != nil {
		return domain.ImpactActivity{}, err
	}
	return domain.ImpactActivity{Problems: problems, Hackathons: hackathons}, nil
}
