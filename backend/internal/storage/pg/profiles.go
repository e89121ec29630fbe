package pg

import (
	"context"

	"github.com/Dharshana-KM/student-spark/shared/domain"
	"github.com/lib/pq"
)

const profileColumns = `user_id, full_name, email, avatar_url, bio, career_goal, college,
    graduation_year, location, linkedin_url, github_url, skills, interests, created_at, updated_at`

func scanProfile(row scanner) (domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.UserId, &p.FullName, &p.Email, &p.AvatarURL, &p.Bio, &p.CareerGoal, &p.College,
		&p.GraduationYear, &p.Location, &p.LinkedinURL, &p.GithubURL,
		pq.Array(&p.Skills), pq.Array(&p.Interests), &p.CreatedAt, &p.UpdatedAt,
	)
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Interests == nil {
		p.Interests = []string{}
	}
	return p, err
}

func (s *Storage) GetProfile(ctx context.Context, userId domain.UserId) (domain.Profile, error) {
	p, err := scanProfile(s.db.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userId))
	if err != nil {
		return domain.Profile{}, notFound("get profile", err, "Profile not found")
	}
	return p, nil
}

// EnsureProfile creates an empty profile for user unless one exists and returns it.
func (s *Storage) EnsureProfile(ctx context.Context, user domain.User) (domain.Profile, error) {
	var email *string
	if user.Email != "" {
		email = &user.Email
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO profiles (user_id, email) VALUES ($1, $2)
        ON CONFLICT (user_id) DO NOTHING
    `, user.Id, email)
	if err != nil {
		return domain.Profile{}, classify("ensure profile", err)
	}
	return s.GetProfile(ctx, user.Id)
}

// UpdateProfile overwrites the non-nil fields of update.
func (s *Storage) UpdateProfile(ctx context.Context, userId domain.UserId, update domain.ProfileUpdate) (domain.Profile, error) {
	p, err := scanProfile(s.db.QueryRowContext(ctx, `
        UPDATE profiles SET
            full_name       = COALESCE($2, full_name),
            college         = COALESCE($3, college),
            graduation_year = COALESCE($4, graduation_year),
            location        = COALESCE($5, location),
            bio             = COALESCE($6, bio),
            linkedin_url    = COALESCE($7, linkedin_url),
            github_url      = COALESCE($8, github_url),
            updated_at      = now()
        WHERE user_id = $1
        RETURNING `+profileColumns,
		userId, update.FullName, update.College, update.GraduationYear, update.Location,
		update.Bio, update.LinkedinURL, update.GithubURL,
	))
	if err != nil {
		return domain.Profile{}, notFound("update profile", err, "Profile not found")
	}
	return p, nil
}

// CompleteOnboarding stores the onboarding answers, creating the profile if needed.
// Empty optional answers keep the current values.
func (s *Storage) CompleteOnboarding(ctx context.Context, user domain.User, data domain.OnboardingData) (domain.Profile, error) {
	p, err := scanProfile(s.db.QueryRowContext(ctx, `
        INSERT INTO profiles (user_id, interests, skills, career_goal, linkedin_url, github_url, college, graduation_year)
        VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''))
        ON CONFLICT (user_id) DO UPDATE SET
            interests       = EXCLUDED.interests,
            skills          = EXCLUDED.skills,
            career_goal     = EXCLUDED.career_goal,
            linkedin_url    = COALESCE(EXCLUDED.linkedin_url, profiles.linkedin_url),
            github_url      = COALESCE(EXCLUDED.github_url, profiles.github_url),
            college         = COALESCE(EXCLUDED.college, profiles.college),
            graduation_year = COALESCE(EXCLUDED.graduation_year, profiles.graduation_year),
            updated_at      = now()
        RETURNING `+profileColumns,
		user.Id, pq.Array(data.Interests), pq.Array(data.Skills), data.CareerGoal,
		data.LinkedinURL, data.GithubURL, data.College, data.GraduationYear,
	))
	return p, classify("complete onboarding", err)
}
