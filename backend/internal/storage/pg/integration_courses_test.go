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

func TestCourseProgress(t *testing.T) {
	ctx := context.Background()
	user := newUser()

	_, err := storage.GetUserCourse(ctx, user.Id, "go-basics")
	assert.Equal(t, http.StatusNotFound, internal_errors.StatusCode(err))

	c, err := storage.StartCourse(ctx, user.Id, "go-basics")
	require.NoError(t, err)
	assert.Equal(t, domain.CourseInProgress, c.Status)
	assert.Zero(t, c.Progress)

	c, err = storage.UpdateCourseProgress(ctx, user.Id, "go-basics", domain.ProgressUpdate{Progress: 40, CurrentModule: ptr("m2")})
	require.NoError(t, err)
	assert.Equal(t, 40, c.Progress)
	assert.Nil(t, c.CompletedAt)

	restarted, err := storage.StartCourse(ctx, user.Id, "go-basics")
	require.NoError(t, err)
	assert.Equal(t, 40, restarted.Progress, "restart keeps progress")

	c, err = storage.UpdateCourseProgress(ctx, user.Id, "go-basics", domain.ProgressUpdate{Progress: 100})
	require.NoError(t, err)
	assert.Equal(t, domain.CourseCompleted, c.Status)
	require.NotNil(t, c.CompletedAt)
	require.NotNil(t, c.CurrentModule)
	assert.Equal(t, "m2", *c.CurrentModule)

	_, err = storage.UpdateCourseProgress(ctx, user.Id, "never-started", domain.ProgressUpdate{Progress: 10})
	assert.Equal(t, http.StatusNotFound, internal_errors.StatusCode(err))

	_, err = storage.StartCourse(ctx, user.Id, "sql-101")
	require.NoError(t, err)
	courses, err := storage.ListUserCourses(ctx, user.Id)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "sql-101", courses[0].CourseId, "most recently accessed first")
}

func TestImpact(t *testing.T) {
	ctx := context.Background()
	user := newUser()

	_, err := storage.JoinProblem(ctx, user.Id, "clean-water")
	require.NoError(t, err)
	_, err = storage.JoinProblem(ctx, user.Id, "clean-water")
	assert.Equal(t, http.StatusConflict, internal_errors.StatusCode(err))

	_, err = storage.RegisterHackathon(ctx, user.Id, "hack-2025")
	require.NoError(t, err)
	_, err = storage.RegisterHackathon(ctx, user.Id, "hack-2025")
	assert.Equal(t, "You are already registered for this hackathon", internal_errors.PublicMessage(err))

	joins, err := storage.ListProblemJoins(ctx, user.Id)
	require.NoError(t, err)
	assert.Len(t, joins, 1)
	regs, err := storage.ListHackathonRegistrations(ctx, user.Id)
	require.NoError(t, err)
	assert.Len(t, regs, 1)

	counts, err := storage.CountRows(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, counts["problem_joins"], int64(1))
	assert.Len(t, counts, len(CountedTables))
}
