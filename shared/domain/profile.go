package domain

import "time"

type Profile struct {
	UserId         UserId    `json:"user_id"`
	FullName       string    `json:"full_name"`
	Email          *string   `json:"email,omitempty"`
	AvatarURL      *string   `json:"avatar_url,omitempty"`
	Bio            *string   `json:"bio,omitempty"`
	CareerGoal     *string   `json:"career_goal,omitempty"`
	College        *string   `json:"college,omitempty"`
	GraduationYear *string   `json:"graduation_year,omitempty"`
	Location       *string   `json:"location,omitempty"`
	LinkedinURL    *string   `json:"linkedin_url,omitempty"`
	GithubURL      *string   `json:"github_url,omitempty"`
	Skills         []string  `json:"skills"`
	Interests      []string  `json:"interests"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Onboarded reports whether the onboarding flow has been completed.
func (p *Profile) Onboarded() bool {
	return len(p.Interests) > 0 && len(p.Skills) > 0 && p.CareerGoal != nil && *p.CareerGoal != ""
}

// ProfileUpdate holds the editable profile fields. Nil fields are left untouched.
type ProfileUpdate struct {
	FullName       *string
	College        *string
	GraduationYear *string
	Location       *string
	Bio            *string
	LinkedinURL    *string
	GithubURL      *string
}

type OnboardingData struct {
	Interests      []string
	Skills         []string
	CareerGoal     string
	LinkedinURL    string
	GithubURL      string
	College        string
	GraduationYear string
}
