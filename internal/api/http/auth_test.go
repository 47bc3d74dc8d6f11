package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leerm14/restaurantmanagement/internal/domain"
)

func (e *testEnv) putJSON(t *testing.T, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func signUpBackend(createUserStatus int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPost && r.URL.Path == "/api/users" {
			if createUserStatus >= 400 {
				w.WriteHeader(createUserStatus)
				_, _ = w.Write([]byte(`{"message":"profile creation failed"}`))
				return
			}
			_, _ = w.Write([]byte(`{"id":1,"name":"T","email":"t@t.t","role":"user"}`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}
}

func TestSignUpEstablishesSession(t *testing.T) {
	env := newTestEnvWithBackend(t, domain.RoleUser, signUpBackend(0))

	resp := env.postJSON(t, "/auth/signup", fiber.Map{
		"name":     "T",
		"email":    "t@t.t",
		"password": "secret1",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, true, data["isAuthenticated"])
	assert.Equal(t, "user", data["role"])

	// The provider session and a verified email remain behind.
	cred := env.provider.Current()
	require.NotNil(t, cred)
	assert.Equal(t, "t@t.t", cred.Email)
	assert.True(t, cred.EmailVerified)
}

func TestSignUpBackendFailureRemovesCredential(t *testing.T) {
	env := newTestEnvWithBackend(t, domain.RoleUser, signUpBackend(http.StatusInternalServerError))

	resp := env.postJSON(t, "/auth/signup", fiber.Map{
		"name":     "T",
		"email":    "t@t.t",
		"password": "secret1",
	})
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	// No dangling login: the just-created credential was deleted again.
	assert.Nil(t, env.provider.Current())

	signin := env.postJSON(t, "/auth/signin", fiber.Map{"email": "t@t.t", "password": "secret1"})
	assert.Equal(t, fiber.StatusNotFound, signin.StatusCode)
}

func TestSignInWrongPassword(t *testing.T) {
	env := newTestEnvWithBackend(t, domain.RoleUser, signUpBackend(0))

	resp := env.postJSON(t, "/auth/signup", fiber.Map{
		"name":     "T",
		"email":    "t@t.t",
		"password": "secret1",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.Equal(t, fiber.StatusNoContent, env.postJSON(t, "/auth/signout", nil).StatusCode)

	signin := env.postJSON(t, "/auth/signin", fiber.Map{"email": "t@t.t", "password": "wrong"})
	assert.Equal(t, fiber.StatusUnauthorized, signin.StatusCode)

	body := decodeBody(t, signin)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "INVALID_CREDENTIAL", errObj["code"])
	assert.Equal(t, "auth.INVALID_CREDENTIAL", errObj["messageKey"])
}

func TestSignOutClearsSession(t *testing.T) {
	env := newTestEnv(t, domain.RoleUser)
	env.signIn(t)
	require.True(t, env.sessions.Snapshot().Authenticated)

	resp := env.postJSON(t, "/auth/signout", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	session := env.get(t, "/auth/session")
	body := decodeBody(t, session)
	data := body["data"].(map[string]any)
	assert.Equal(t, false, data["isAuthenticated"])
}

func TestSettingsUpdate(t *testing.T) {
	env := newTestEnv(t, domain.RoleUser)
	env.signIn(t)

	resp := env.putJSON(t, "/settings", fiber.Map{"theme": "light", "language": "en"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, "light", data["theme"])
	assert.Equal(t, "en", data["language"])

	bad := env.putJSON(t, "/settings", fiber.Map{"theme": "sepia"})
	assert.Equal(t, fiber.StatusBadRequest, bad.StatusCode)
}
