package domain

import "time"

// UserCourse is a user's progress record for one catalog course.
type UserCourse struct {
	Id             string       `json:"id"`
	UserId         UserId       `json:"user_id"`
	CourseId       CourseId     `json:"course_id"`
	Status         CourseStatus `json:"status"`
	Progress       int          `json:"progress"`
	CurrentModule  *string      `json:"current_module,omitempty"`
	StartedAt      time.Time    `json:"started_at"`
	LastAccessedAt time.Time    `json:"last_accessed_at"`
	CompletedAt    *time.Time   `json:"completed_at,omitempty"`
}

type ProgressUpdate struct {
	Progress      int
	CurrentModule *string
}

type CourseDashboard struct {
	Courses    []UserCourse `json:"courses"`
	Started    int          `json:"started"`
	InProgress int          `json:"in_progress"`
	Completed  int          `json:"completed"`
}

// NewCourseDashboard counts courses per status. The list keeps its order.
func NewCourseDashboard(courses []UserCourse) CourseDashboard {
	d := CourseDashboard{Courses: courses, Started: len(courses)}
	if d.Courses == nil {
		d.Courses = []UserCourse{}
	}
	for _, c := range courses {
		switch c.Status {
		case CourseInProgress:
			d.InProgress++
		case CourseCompleted:
			d.Completed++
		case CourseNotStarted:
		}
	}
	return d
}

type ProblemJoin struct {
	Id        string    `json:"id"`
	UserId    UserId    `json:"user_id"`
	ProblemId ProblemId `json:"problem_id"`
	JoinedAt  time.Time `json:"joined_at"`
}

type HackathonRegistration struct {
	Id           string      `json:"id"`
	UserId       UserId      `json:"user_id"`
	HackathonId  HackathonId `json:"hackathon_id"`
	RegisteredAt time.Time   `json:"registered_at"`
}

type ImpactActivity struct {
	Problems   []ProblemJoin           `json:"problems"`
	Hackathons []HackathonRegistration `json:"hackathons"`
}
