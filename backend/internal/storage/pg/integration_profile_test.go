//go:build integration

package pg

import (
	"context"
	"net/http"
	"testing"

	"github.com/Dharshana-KM/student-spark/shared/domain"
	internal_errors "github.com/Dharshana-KM/student-spark/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfiles(t *testing.T) {
	ctx := context.Background()
	user := newUser()

	_, err := storage.GetProfile(ctx, user.Id)
	assert.Equal(t, http.StatusNotFound, internal_errors.StatusCode(err))

	p, err := storage.EnsureProfile(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, user.Id, p.UserId)
	assert.False(t, p.Onboarded())
	require.NotNil(t, p.Email)

	again, err := storage.EnsureProfile(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, p.CreatedAt, again.CreatedAt, "existing row is kept")

	updated, err := storage.UpdateProfile(ctx, user.Id, domain.ProfileUpdate{FullName: ptr("Priya"), Bio: ptr("CS student")})
	require.NoError(t, err)
	assert.Equal(t, "Priya", updated.FullName)
	require.NotNil(t, updated.Bio)
	assert.Nil(t, updated.College)

	onboarded, err := storage.CompleteOnboarding(ctx, user, domain.OnboardingData{
		Interests:  []string{"AI"},
		Skills:     []string{"Go", "SQL"},
		CareerGoal: "Backend engineer",
		GithubURL:  "https://github.com/priya",
	})
	require.NoError(t, err)
	assert.True(t, onboarded.Onboarded())
	assert.Equal(t, "Priya", onboarded.FullName)
	assert.Nil(t, onboarded.LinkedinURL)
	require.NotNil(t, onboarded.GithubURL)
}

func TestCompleteOnboarding_CreatesProfile(t *testing.T) {
	user := newUser()
	p, err := storage.CompleteOnboarding(context.Background(), user, domain.OnboardingData{
		Interests: []string{"Health"}, Skills: []string{"Design"}, CareerGoal: "UX",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Health"}, p.Interests)
}
