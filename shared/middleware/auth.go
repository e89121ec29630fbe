package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Dharshana-KM/student-spark/shared/domain"
	"github.com/Dharshana-KM/student-spark/shared/errors"
	jwt_internal "github.com/Dharshana-KM/student-spark/shared/jwt"
	"github.com/Dharshana-KM/student-spark/shared/utils"
)

// Key to store the user in the request context
type key int

const UserClaimsKey key = 0

// AccessTokenCookie is the cookie the web app stores its session token in.
const AccessTokenCookie = "accessToken"

// Auth verifies access tokens issued by the auth provider.
type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth rejects requests without a valid token with 401.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.extractUser(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// OptionalAuth populates the user if the token is valid but never rejects.
func (a *Auth) OptionalAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user, _ := a.extractUser(r); user != nil {
				r = r.WithContext(WithUser(r.Context(), user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractUser reads the token from the cookie, the Authorization header or,
// for websocket upgrades that cannot set headers, the access_token query param.
func (a *Auth) extractUser(r *http.Request) (*domain.User, error) {
	var tokenString string
	if c, err := r.Cookie(AccessTokenCookie); err == nil {
		tokenString = c.Value
	} else if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		tokenString = token
	} else if isWebsocketUpgrade(r) {
		tokenString = r.URL.Query().Get("access_token")
	}

	if tokenString == "" {
		return nil, errors.ErrAuthRequired
	}
	return a.jwtService.DecodeToken(tokenString)
}

func isWebsocketUpgrade(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Upgrade"), "websocket")
}

func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, UserClaimsKey, user)
}

// GetUserFromContext returns the signed-in user or nil.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(UserClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
