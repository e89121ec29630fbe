package handler

import (
	"net/http"
	"strings"

	backend_utils "github.com/Dharshana-KM/student-spark/backend/internal/utils"
	"github.com/Dharshana-KM/student-spark/shared/domain"
	"github.com/Dharshana-KM/student-spark/shared/errors"
	mw "github.com/Dharshana-KM/student-spark/shared/middleware"
	"github.com/Dharshana-KM/student-spark/shared/utils"
	"github.com/go-chi/chi/v5"
)

// requireUser returns the authenticated caller or writes 401.
func requireUser(w http.ResponseWriter, r *http.Request) (domain.User, bool) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteErrorAndStatusCode(w, errors.ErrAuthRequired)
		return domain.User{}, false
	}
	return *user, true
}

// pathId reads a row id from the URL. Malformed ids cannot exist and get 404.
func pathId(w http.ResponseWriter, r *http.Request, param, what string) (string, bool) {
	id := chi.URLParam(r, param)
	if err := backend_utils.Id(id, what); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return "", false
	}
	return id, true
}

// queryList collects a repeated or comma separated query parameter.
func queryList(r *http.Request, key string) []string {
	var out []string
	for _, v := range r.URL.Query()[key] {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
