package domain

import (
	"database/sql/driver"
	"fmt"
)

// CourseStatus is the closed set of states of a user's course enrollment.
type CourseStatus int

const (
	CourseNotStarted CourseStatus = iota
	CourseInProgress
	CourseCompleted
)

func (s CourseStatus) String() string {
	switch s {
	case CourseNotStarted:
		return "not_started"
	case CourseInProgress:
		return "in_progress"
	case CourseCompleted:
		return "completed"
	}
	return fmt.Sprintf("CourseStatus(%d)", int(s))
}

func ParseCourseStatus(s string) (CourseStatus, error) {
	switch s {
	case "not_started":
		return CourseNotStarted, nil
	case "in_progress":
		return CourseInProgress, nil
	case "completed":
		return CourseCompleted, nil
	}
	return 0, fmt.Errorf("unknown course status %q", s)
}

func (s CourseStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *CourseStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseCourseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s CourseStatus) Value() (driver.Value, error) {
	return s.String(), nil
}

func (s *CourseStatus) Scan(src any) error {
	return scanEnum(src, s.UnmarshalText)
}

// JoinRequestStatus is the closed set of states of a team join request.
type JoinRequestStatus int

const (
	RequestPending JoinRequestStatus = iota
	RequestAccepted
	RequestRejected
)

func (s JoinRequestStatus) String() string {
	switch s {
	case RequestPending:
		return "pending"
	case RequestAccepted:
		return "accepted"
	case RequestRejected:
		return "rejected"
	}
	return fmt.Sprintf("JoinRequestStatus(%d)", int(s))
}

func ParseJoinRequestStatus(s string) (JoinRequestStatus, error) {
	switch s {
	case "pending":
		return RequestPending, nil
	case "accepted":
		return RequestAccepted, nil
	case "rejected":
		return RequestRejected, nil
	}
	return 0, fmt.Errorf("unknown join request status %q", s)
}

func (s JoinRequestStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *JoinRequestStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseJoinRequestStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s JoinRequestStatus) Value() (driver.Value, error) {
	return s.String(), nil
}

func (s *JoinRequestStatus) Scan(src any) error {
	return scanEnum(src, s.UnmarshalText)
}

// TeamRole is the role of a member inside a team.
type TeamRole string

const (
	RoleLeader TeamRole = "leader"
	RoleMember TeamRole = "member"
)

func scanEnum(src any, unmarshal func([]byte) error) error {
	switch v := src.(type) {
	case string:
		return unmarshal([]byte(v))
	case []byte:
		return unmarshal(v)
	case nil:
		return fmt.Errorf("cannot scan NULL into enum")
	}
	return fmt.Errorf("cannot scan %T into enum", src)
}
