package middleware

import (
	"net/http"

	"github.com/Dharshana-KM/student-spark/shared/errors"
	"github.com/Dharshana-KM/student-spark/shared/middleware/ratelimiter"
	"github.com/Dharshana-KM/student-spark/shared/utils"
)

// RateLimit rejects requests with 429 once identity's bucket is empty.
func RateLimit(rl *ratelimiter.UserRateLimiter, getIdentity func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := getIdentity(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			if !rl.Allow(identity) {
				utils.WriteErrorAndStatusCode(w, &errors.ErrorWithStatusCode{
					Message:    "Rate limit exceeded, try again later",
					StatusCode: http.StatusTooManyRequests,
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetUserIDFromContext identifies requests behind NeedAuth.
func GetUserIDFromContext(r *http.Request) (string, error) {
	user := GetUserFromContext(r)
	if user == nil {
		return "", errors.ErrAuthRequired
	}
	return "user_" + user.Id, nil
}

// GetIdentity uses the user id when signed in and the client ip otherwise.
func GetIdentity(r *http.Request) (string, error) {
	if id, err := GetUserIDFromContext(r); err == nil {
		return id, nil
	}
	ip, err := utils.GetIP(r)
	if err != nil {
		return "", errors.Invalid("Can't identify client")
	}
	return "ip_" + ip, nil
}
