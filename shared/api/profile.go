package api

type UpdateProfileRequest struct {
	FullName       *string `json:"full_name,omitempty" validate:"omitempty,max=100"`
	College        *string `json:"college,omitempty" validate:"omitempty,max=200"`
	GraduationYear *string `json:"graduation_year,omitempty" validate:"omitempty,numeric,len=4"`
	Location       *string `json:"location,omitempty" validate:"omitempty,max=100"`
	Bio            *string `json:"bio,omitempty" validate:"omitempty,max=1000"`
	LinkedinURL    *string `json:"linkedin_url,omitempty" validate:"omitempty,http_url"`
	GithubURL      *string `json:"github_url,omitempty" validate:"omitempty,http_url"`
}

type OnboardingRequest struct {
	Interests      []string `json:"interests" validate:"required,min=1,max=20,dive,required,max=50"`
	Skills         []string `json:"skills" validate:"required,min=1,max=30,dive,required,max=50"`
	CareerGoal     string   `json:"career_goal" validate:"required,max=200"`
	LinkedinURL    string   `json:"linkedin_url,omitempty" validate:"omitempty,http_url"`
	GithubURL      string   `json:"github_url,omitempty" validate:"omitempty,http_url"`
	College        string   `json:"college,omitempty" validate:"omitempty,max=200"`
	GraduationYear string   `json:"graduation_year,omitempty" validate:"omitempty,numeric,len=4"`
}
