package jwt

import (
	"net/http"
	"testing"
	"time"

	"github.com/Dharshana-KM/student-spark/shared/domain"
	internal_errors "github.com/Dharshana-KM/student-spark/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secretKey = "testJwtKey"

var user = domain.User{Id: "6f1d2c9e-4b7a-4e43-9a51-0c2f3e8d1a77", Email: "student@college.edu"}

func TestDecodeTokenCorrect(t *testing.T) {
	j := New(secretKey, 10*time.Second)
	token, err := j.NewToken(user)
	require.NoError(t, err)

	decoded, err := j.DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, user, *decoded)
}

func TestDecodeTokenExpired(t *testing.T) {
	j := New(secretKey, -time.Minute)
	token, err := j.NewToken(user)
	require.NoError(t, err)

	_, err = j.DecodeToken(token)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, internal_errors.StatusCode(err))
}

func TestDecodeTokenInvalidSecretKey(t *testing.T) {
	token, err := New(secretKey, 10*time.Second).NewToken(user)
	require.NoError(t, err)

	_, err = New("invalidSecret", 10*time.Second).DecodeToken(token)
	assert.Error(t, err)
}

func TestDecodeTokenInvalidSubject(t *testing.T) {
	j := New(secretKey, 10*time.Second)
	token, err := j.NewToken(domain.User{Id: "not-a-uuid"})
	require.NoError(t, err)

	_, err = j.DecodeToken(token)
	assert.Error(t, err)
}

func TestDecodeTokenGarbage(t *testing.T) {
	_, err := New(secretKey, time.Second).DecodeToken("not.a.token")
	assert.Error(t, err)
}
