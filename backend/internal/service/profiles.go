package service

import (
	"context"
	"strings"

	"github.com/Dharshana-KM/student-spark/shared/domain"
)

type ProfilesService interface {
	Get(ctx context.Context, user domain.User) (domain.Profile, error)
	Update(ctx context.Context, user domain.User, update domain.ProfileUpdate) (domain.Profile, error)
	CompleteOnboarding(ctx context.Context, user domain.User, data domain.OnboardingData) (domain.Profile, error)
}

type Profiles struct {
	storage   ProfilesStorage
	validator ProfilesValidator
}

type ProfilesStorage interface {
	EnsureProfile(ctx context.Context, user domain.User) (domain.Profile, error)
	UpdateProfile(ctx context.Context, userId domain.UserId, update domain.ProfileUpdate) (domain.Profile, error)
	CompleteOnboarding(ctx context.Context, user domain.User, data domain.OnboardingData) (domain.Profile, error)
}

type ProfilesValidator interface {
	FullName(name *string) error
	URL(raw, field string) error
	Onboarding(interests, skills []string, careerGoal string) error
}

func NewProfiles(storage ProfilesStorage, validator ProfilesValidator) ProfilesService {
	return &Profiles{storage, validator}
}

// Get returns user's profile, creating an empty one on first access.
func (p *Profiles) Get(ctx context.Context, user domain.User) (domain.Profile, error) {
	return p.storage.EnsureProfile(ctx, user)
}

func (p *Profiles) Update(ctx context.Context, user domain.User, update domain.ProfileUpdate) (domain.Profile, error) {
	for _, field := range []**string{
		&update.FullName, &update.College, &update.GraduationYear, &update.Location,
		&update.Bio, &update.LinkedinURL, &update.GithubURL,
	} {
		*field = trimmed(*field)
	}

	if err := p.validator.FullName(update.FullName); err != nil {
		return domain.Profile{}, err
	}
	if update.LinkedinURL != nil {
		if err := p.validator.URL(*update.LinkedinURL, "LinkedIn URL"); err != nil {
			return domain.Profile{}, err
		}
	}
	if update.GithubURL != nil {
		if err := p.validator.URL(*update.GithubURL, "GitHub URL"); err != nil {
			return domain.Profile{}, err
		}
	}

	if _, err := p.storage.EnsureProfile(ctx, user); err != nil {
		return domain.Profile{}, err
	}
	return p.storage.UpdateProfile(ctx, user.Id, update)
}

func (p *Profiles) CompleteOnboarding(ctx context.Context, user domain.User, data domain.OnboardingData) (domain.Profile, error) {
	data.Interests = compact(data.Interests)
	data.Skills = compact(data.Skills)
	data.CareerGoal = strings.TrimSpace(data.CareerGoal)
	data.LinkedinURL = strings.TrimSpace(data.LinkedinURL)
	data.GithubURL = strings.TrimSpace(data.GithubURL)
	data.College = strings.TrimSpace(data.College)
	data.GraduationYear = strings.TrimSpace(data.GraduationYear)

	if err := p.validator.Onboarding(data.Interests, data.Skills, data.CareerGoal); err != nil {
		return domain.Profile{}, err
	}
	if err := p.validator.URL(data.LinkedinURL, "LinkedIn URL"); err != nil {
		return domain.Profile{}, err
	}
	if err := p.validator.URL(data.GithubURL, "GitHub URL"); err != nil {
		return domain.Profile{}, err
	}
	return p.storage.CompleteOnboarding(ctx, user, data)
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// compact trims entries and drops blank and repeated ones.
func compact(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
