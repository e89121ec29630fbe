package service

import (
	"context"

	"github.com/Dharshana-KM/student-spark/shared/domain"
	"github.com/Dharshana-KM/student-spark/shared/errors"
)

type CoursesService interface {
	Start(ctx context.Context, user domain.User, courseId domain.CourseId) (domain.UserCourse, error)
	UpdateProgress(ctx context.Context, user domain.User, courseId domain.CourseId, update domain.ProgressUpdate) (domain.UserCourse, error)
	Progress(ctx context.Context, user domain.User, courseId domain.CourseId) (domain.UserCourse, error)
	Dashboard(ctx context.Context, user domain.User) (domain.CourseDashboard, error)
}

type Courses struct {
	storage   CoursesStorage
	validator CatalogValidator
}

type CoursesStorage interface {
	StartCourse(ctx context.Context, userId domain.UserId, courseId domain.CourseId) (domain.UserCourse, error)
	UpdateCourseProgress(ctx context.Context, userId domain.UserId, courseId domain.CourseId, update domain.ProgressUpdate) (domain.UserCourse, error)
	ListUserCourses(ctx context.Context, userId domain.UserId) ([]domain.UserCourse, error)
	GetUserCourse(ctx context.Context, userId domain.UserId, courseId domain.CourseId) (domain.UserCourse, error)
}

type CatalogValidator interface {
	CatalogId(id string) error
	Progress(progress int) error
}

func NewCourses(storage CoursesStorage, validator CatalogValidator) CoursesService {
	return &Courses{storage, validator}
}

func (c *Courses) Start(ctx context.Context, user domain.User, courseId domain.CourseId) (domain.UserCourse, error) {
	if err := c.validator.CatalogId(courseId); err != nil {
		return domain.UserCourse{}, err
	}
	return c.storage.StartCourse(ctx, user.Id, courseId)
}

func (c *Courses) UpdateProgress(ctx context.Context, user domain.User, courseId domain.CourseId, update domain.ProgressUpdate) (domain.UserCourse, error) {
	if err := c.validator.CatalogId(courseId); err != nil {
		return domain.UserCourse{}, err
	}
	if err := c.validator.Progress(update.Progress); err != nil {
		return domain.UserCourse{}, err
	}
	return c.storage.UpdateCourseProgress(ctx, user.Id, courseId, update)
}

// Progress returns user's record for course, or a not_started record when
// the course was never started.
func (c *Courses) Progress(ctx context.Context, user domain.User, courseId domain.CourseId) (domain.UserCourse, error) {
	if err := c.validator.CatalogId(courseId); err != nil {
		return domain.UserCourse{}, err
	}
	course, err := c.storage.GetUserCourse(ctx, user.Id, courseId)
	if errors.IsNotFound(err) {
		return domain.UserCourse{UserId: user.Id, CourseId: courseId, Status: domain.CourseNotStarted}, nil
	}
	return course, err
}

func (c *Courses) Dashboard(ctx context.Context, user domain.User) (domain.CourseDashboard, error) {
	courses, err := c.storage.ListUserCourses(ctx, user.Id)
	if err != nil {
		return domain.CourseDashboard{}, err
	}
	return domain.NewCourseDashboard(courses), nil
}
