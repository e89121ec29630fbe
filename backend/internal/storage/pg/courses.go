package pg

import (
	"context"

	"github.com/Dharshana-KM/student-spark/shared/domain"
)

const userCourseColumns = `id, user_id, course_id, status, progress, current_module,
    started_at, last_accessed_at, completed_at`

func scanUserCourse(row scanner) (domain.UserCourse, error) {
	var c domain.UserCourse
	err := row.Scan(&c.Id, &c.UserId, &c.CourseId, &c.Status, &c.Progress, &c.CurrentModule,
		&c.StartedAt, &c.LastAccessedAt, &c.CompletedAt)
	return c, err
}

// StartCourse enrolls user in course. Starting an already started course only
// touches last_accessed_at.
func (s *Storage) StartCourse(ctx context.Context, userId domain.UserId, courseId domain.CourseId) (domain.UserCourse, error) {
	c, err := scanUserCourse(s.db.QueryRowContext(ctx, `
        INSERT INTO user_courses (user_id, course_id, status, progress)
        VALUES ($1, $2, $3, 0)
        ON CONFLICT ON CONSTRAINT user_courses_unique DO UPDATE SET last_accessed_at = now()
        RETURNING `+userCourseColumns,
		userId, courseId, domain.CourseInProgress,
	))
	return c, classify("start course", err)
}

// UpdateCourseProgress sets progress; reaching 100 completes the course.
func (s *Storage) UpdateCourseProgress(ctx context.Context, userId domain.UserId, courseId domain.CourseId, update domain.ProgressUpdate) (domain.UserCourse, error) {
	c, err := scanUserCourse(s.db.QueryRowContext(ctx, `
        UPDATE user_courses SET
            progress         = $3,
            current_module   = COALESCE($4, current_module),
            status           = CASE WHEN $3 >= 100 THEN 'completed' ELSE 'in_progress' END,
            completed_at     = CASE WHEN $3 >= 100 THEN COALESCE(completed_at, now()) ELSE NULL END,
            last_accessed_at = now()
        WHERE user_id = $1 AND course_id = $2
        RETURNING `+userCourseColumns,
		userId, courseId, update.Progress, update.CurrentModule,
	))
	if err != nil {
		return domain.UserCourse{}, notFound("update course progress", err, "Course not started")
	}
	return c, nil
}

// ListUserCourses returns user's courses, most recently accessed first.
func (s *Storage) ListUserCourses(ctx context.Context, userId domain.UserId) ([]domain.UserCourse, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT `+userCourseColumns+`
        FROM user_courses
        WHERE user_id = $1
        ORDER BY last_accessed_at DESC, id
    `, userId)
	if err != nil {
		return nil, classify("list user courses", err)
	}
	courses, err := collect(rows, scanUserCourse)
	return courses, classify("list user courses", err)
}

func (s *Storage) GetUserCourse(ctx context.Context, userId domain.UserId, courseId domain.CourseId) (domain.UserCourse, error) {
	c, err := scanUserCourse(s.db.QueryRowContext(ctx,
		`SELECT `+userCourseColumns+` FROM user_courses WHERE user_id = $1 AND course_id = $2`,
		userId, courseId))
	if err != nil {
		return domain.UserCourse{}, notFound("get user course", err, "Course not started")
	}
	return c, nil
}
