package utils

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Dharshana-KM/student-spark/shared/errors"
	"github.com/google/uuid"
)

const (
	maxTitleLen       = 200
	maxPostBodyLen    = 10_000
	maxCommentLen     = 5_000
	maxCategoryLen    = 50
	maxTeamNameLen    = 100
	maxTeamDescLen    = 1_000
	maxInterests      = 10
	maxInterestLen    = 50
	maxMessageLen     = 2_000
	maxFullNameLen    = 100
	maxCareerGoalLen  = 200
	maxCatalogIdLen   = 100
)

var catalogIdPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

func requireText(value, field string, max int) error {
	if strings.TrimSpace(value) == "" {
		return errors.Invalid(field + " is required")
	}
	if utf8.RuneCountInString(value) > max {
		return errors.Invalid(field + " is too long")
	}
	return nil
}

func optionalText(value *string, field string, max int) error {
	if value == nil {
		return nil
	}
	if utf8.RuneCountInString(*value) > max {
		return errors.Invalid(field + " is too long")
	}
	return nil
}

// Id checks that id is a row id; anything else cannot exist.
func Id(id, what string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.NotFound(what + " not found")
	}
	return nil
}

type DiscussionValidator struct{}

func (v *DiscussionValidator) Title(title string) error {
	return requireText(title, "Title", maxTitleLen)
}

func (v *DiscussionValidator) PostBody(body string) error {
	return requireText(body, "Body", maxPostBodyLen)
}

func (v *DiscussionValidator) Category(category *string) error {
	return optionalText(category, "Category", maxCategoryLen)
}

func (v *DiscussionValidator) CommentBody(body string) error {
	return requireText(body, "Comment", maxCommentLen)
}

type TeamValidator struct{}

func (v *TeamValidator) Name(name string) error {
	return requireText(name, "Team name", maxTeamNameLen)
}

func (v *TeamValidator) Description(description *string) error {
	return optionalText(description, "Description", maxTeamDescLen)
}

func (v *TeamValidator) Interests(interests []string) error {
	if len(interests) > maxInterests {
		return errors.Invalid("Too many interests")
	}
	for _, i := range interests {
		if err := requireText(i, "Interest", maxInterestLen); err != nil {
			return err
		}
	}
	return nil
}

func (v *TeamValidator) Message(text string) error {
	return requireText(text, "Message", maxMessageLen)
}

type ProfileValidator struct{}

func (v *ProfileValidator) FullName(name *string) error {
	return optionalText(name, "Full name", maxFullNameLen)
}

// URL accepts empty values and absolute http(s) URLs.
func (v *ProfileValidator) URL(raw, field string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.Invalid(field + " must be a valid URL")
	}
	return nil
}

func (v *ProfileValidator) Onboarding(interests, skills []string, careerGoal string) error {
	if len(interests) == 0 {
		return errors.Invalid("Pick at least one interest")
	}
	if len(skills) == 0 {
		return errors.Invalid("Add at least one skill")
	}
	return requireText(careerGoal, "Career goal", maxCareerGoalLen)
}

type CatalogValidator struct{}

// CatalogId checks ids of static catalog entries (courses, problems, hackathons).
func (v *CatalogValidator) CatalogId(id string) error {
	if len(id) > maxCatalogIdLen || !catalogIdPattern.MatchString(id) {
		return errors.NotFound("Not found")
	}
	return nil
}

func (v *CatalogValidator) Progress(progress int) error {
	if progress < 0 || progress > 100 {
		return errors.Invalid("Progress must be between 0 and 100")
	}
	return nil
}
