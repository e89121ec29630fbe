package pg

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"net"

	internal_errors "github.com/Dharshana-KM/student-spark/shared/errors"
	"github.com/lib/pq"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	notNullViolation    = "23502"
	checkViolation      = "23514"
	invalidTextRepr     = "22P02"
	connectionClass     = "08"
	adminShutdown       = "57P01"
	cannotConnectNow    = "57P03"
)

// duplicateMessages are user-facing texts for unique constraint violations.
var duplicateMessages = map[string]string{
	"team_members_unique":            "You are already a member of this team",
	"join_requests_unique":           "You have already requested to join this team",
	"problem_joins_unique":           "You have already joined this problem",
	"hackathon_registrations_unique": "You are already registered for this hackathon",
	"user_courses_unique":            "Course already started",
}

// classify maps a driver error onto the error taxonomy. Errors that already
// belong to it pass through unchanged.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var (
		withCode   *internal_errors.ErrorWithStatusCode
		validation *internal_errors.ValidationError
		transport  *internal_errors.TransportError
	)
	if errors.As(err, &withCode) || errors.As(err, &validation) || errors.As(err, &transport) {
		return err
	}

	if isTransport(err) {
		return &internal_errors.TransportError{Op: op, Err: err}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case uniqueViolation:
			if msg, ok := duplicateMessages[pqErr.Constraint]; ok {
				return internal_errors.Duplicate(msg)
			}
			return internal_errors.Duplicate("Already exists")
		case foreignKeyViolation:
			return internal_errors.NotFound("Referenced record not found")
		case checkViolation, notNullViolation, invalidTextRepr:
			return internal_errors.Invalid("Invalid input")
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isTransport(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, io.EOF) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)
		return pqErr.Code.Class() == connectionClass || code == adminShutdown || code == cannotConnectNow
	}
	return false
}

// notFound turns sql.ErrNoRows into a 404 with msg.
func notFound(op string, err error, msg string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return internal_errors.NotFound(msg)
	}
	return classify(op, err)
}
