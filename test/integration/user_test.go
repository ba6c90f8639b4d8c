package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"workhubb_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeError(t *testing.T, body string) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	require.NoError(t, json.Unmarshal([]byte(body), &env), "body: %s", body)
	return env
}

func TestUserEndpoints(t *testing.T) {
	ts := GetTestServer(t)

	t.Run("register and fetch a user", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/users", map[string]interface{}{
			"id":    "u1",
			"name":  "Ana",
			"email": "a@b.c",
			"type":  "professional",
		})
		assert.Equal(t, http.StatusCreated, res.StatusCode, body)

		// Optional fields come back as explicit nulls, not absent keys.
		assert.Contains(t, body, `"bio":null`)
		assert.Contains(t, body, `"stack":null`)

		res, body = ts.SendRequest(t, http.MethodGet, "/api/users/u1", nil)
		assert.Equal(t, http.StatusOK, res.StatusCode)

		var user models.User
		require.NoError(t, json.Unmarshal([]byte(body), &user))
		assert.Equal(t, "Ana", user.Name)
		assert.Equal(t, "a@b.c", user.Email)
		assert.Nil(t, user.Bio)
	})

	t.Run("duplicate email returns a conflict", func(t *testing.T) {
		payload := map[string]interface{}{
			"id":    "dupA",
			"name":  "Ana",
			"email": "dup@b.c",
			"type":  "professional",
		}
		res, body := ts.SendRequest(t, http.MethodPost, "/api/users", payload)
		require.Equal(t, http.StatusCreated, res.StatusCode, body)

		payload["id"] = "dupB"
		payload["name"] = "Impostor"
		res, body = ts.SendRequest(t, http.MethodPost, "/api/users", payload)
		assert.Equal(t, http.StatusConflict, res.StatusCode)
		env := decodeError(t, body)
		assert.Equal(t, "EMAIL_ALREADY_EXISTS", env.Error.Code)
		assert.Equal(t, "This email is already registered", env.Error.Message)

		// The first registration is untouched.
		res, body = ts.SendRequest(t, http.MethodGet, "/api/users/email/dup@b.c", nil)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		var user models.User
		require.NoError(t, json.Unmarshal([]byte(body), &user))
		assert.Equal(t, "dupA", user.ID)
		assert.Equal(t, "Ana", user.Name)
	})

	t.Run("duplicate id returns its own conflict", func(t *testing.T) {
		payload := map[string]interface{}{
			"id":    "idclash",
			"name":  "First",
			"email": "first@b.c",
			"type":  "professional",
		}
		res, body := ts.SendRequest(t, http.MethodPost, "/api/users", payload)
		require.Equal(t, http.StatusCreated, res.StatusCode, body)

		payload["email"] = "second@b.c"
		res, body = ts.SendRequest(t, http.MethodPost, "/api/users", payload)
		assert.Equal(t, http.StatusConflict, res.StatusCode)
		env := decodeError(t, body)
		assert.Equal(t, "USER_ALREADY_EXISTS", env.Error.Code)
		assert.NotContains(t, env.Error.Message, "email")
	})

	t.Run("plus-addressed emails survive lookup", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/users", map[string]interface{}{
			"id":    "plus1",
			"name":  "Ana",
			"email": "ana+test@x.com",
			"type":  "professional",
		})
		require.Equal(t, http.StatusCreated, res.StatusCode, body)

		// Clients send encodeURIComponent output; the server must not
		// decode a second time and turn the + into a space.
		res, body = ts.SendRequest(t, http.MethodGet, "/api/users/email/ana%2Btest%40x.com", nil)
		assert.Equal(t, http.StatusOK, res.StatusCode, body)

		var user models.User
		require.NoError(t, json.Unmarshal([]byte(body), &user))
		assert.Equal(t, "plus1", user.ID)
		assert.Equal(t, "ana+test@x.com", user.Email)
	})

	t.Run("lookup by unknown email is a 404", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/users/email/ghost@b.c", nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Equal(t, "USER_NOT_FOUND", decodeError(t, body).Error.Code)
	})

	t.Run("lookup by unknown id is a 404", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodGet, "/api/users/missing", nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("invalid payloads are rejected", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/users", map[string]interface{}{
			"id":    "u9",
			"name":  "NoMail",
			"email": "not-an-email",
			"type":  "professional",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

		res, body = ts.SendRequest(t, http.MethodPost, "/api/users", map[string]interface{}{
			"id":    "u9",
			"name":  "BadType",
			"email": "bad@b.c",
			"type":  "wizard",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	})

	t.Run("partial update touches only the sent fields", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/users", map[string]interface{}{
			"id":    "u3",
			"name":  "Carla",
			"email": "c@b.c",
			"type":  "professional",
			"bio":   "keeps this",
		})
		require.Equal(t, http.StatusCreated, res.StatusCode, body)

		res, body = ts.SendRequest(t, http.MethodPut, "/api/users/u3", map[string]interface{}{
			"stack": "React, Go",
		})
		assert.Equal(t, http.StatusOK, res.StatusCode, body)

		var user models.User
		require.NoError(t, json.Unmarshal([]byte(body), &user))
		require.NotNil(t, user.Stack)
		assert.Equal(t, "React, Go", *user.Stack)
		require.NotNil(t, user.Bio)
		assert.Equal(t, "keeps this", *user.Bio)
	})

	t.Run("updating a missing user is a 404", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPut, "/api/users/missing", map[string]interface{}{
			"name": "Nobody",
		})
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})
}
