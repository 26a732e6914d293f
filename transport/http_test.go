package transport_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/muhammadheryan/fashion-directory/application/directory"
	"github.com/muhammadheryan/fashion-directory/application/session"
	"github.com/muhammadheryan/fashion-directory/cmd/config"
	"github.com/muhammadheryan/fashion-directory/constant"
	"github.com/muhammadheryan/fashion-directory/model"
	designerrepo "github.com/muhammadheryan/fashion-directory/repository/designer"
	resettokenrepo "github.com/muhammadheryan/fashion-directory/repository/resettoken"
	sessionrepo "github.com/muhammadheryan/fashion-directory/repository/session"
	"github.com/muhammadheryan/fashion-directory/repository/storage/storagetest"
	userrepo "github.com/muhammadheryan/fashion-directory/repository/user"
	"github.com/muhammadheryan/fashion-directory/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const internalKey = "internal-key"

type envelope struct {
	Success bool            `json:"success"`
	Code    string          `json:"code"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func newHandler(t *testing.T) http.Handler {
	t.Helper()
	s := storagetest.NewSQLite(t)
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:            "test-secret",
			JWTExpiration:        time.Hour,
			ResetTokenExpiration: time.Minute,
			SeedDemoUser:         true,
		},
	}

	sessionApp := session.NewSessionApp(cfg,
		userrepo.NewUserRepository(s),
		sessionrepo.NewSessionRepository(s),
		resettokenrepo.NewResetTokenRepository(s),
		nil, nil)
	require.NoError(t, sessionApp.Initialize(context.Background()))

	directoryApp := directory.NewDirectoryApp(cfg, designerrepo.NewDesignerRepository(s), nil)
	require.NoError(t, directoryApp.Initialize(context.Background()))

	return transport.NewTransport(sessionApp, directoryApp, internalKey)
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}, token string) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func decode(t *testing.T, env envelope, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func loginDemo(t *testing.T, h http.Handler) string {
	t.Helper()
	code, env := do(t, h, http.MethodPost, "/login", model.LoginRequest{
		Email:    constant.DemoUserEmail,
		Password: constant.DemoUserPassword,
	}, "")
	require.Equal(t, http.StatusOK, code, env.Error)

	var res model.AuthResponse
	decode(t, env, &res)
	require.NotEmpty(t, res.Token)
	return res.Token
}

func designerBody(name string) model.DesignerRequest {
	return model.DesignerRequest{
		Name:         name,
		Specialty:    "Children's Fashion",
		Location:     "Dormaa Ahenkro",
		Phone:        "+233 20 222 3333",
		Email:        "kids@example.com",
		Experience:   "6 years",
		Description:  "School uniforms and party wear.",
		Services:     []string{"Uniforms"},
		WorkingHours: "9am-5pm",
	}
}

func TestAuthFlow(t *testing.T) {
	h := newHandler(t)

	code, env := do(t, h, http.MethodGet, "/session", nil, "")
	require.Equal(t, http.StatusOK, code)
	var snap model.Session
	decode(t, env, &snap)
	assert.Equal(t, constant.SessionAnonymous, snap.State)

	code, env = do(t, h, http.MethodPost, "/login", model.LoginRequest{Email: constant.DemoUserEmail, Password: "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, env.Success)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrInvalidCredentials], env.Code)
	assert.Equal(t, "Invalid email or password", env.Error)

	_, env = do(t, h, http.MethodGet, "/session", nil, "")
	decode(t, env, &snap)
	assert.Equal(t, "Invalid email or password", snap.Error)

	_, env = do(t, h, http.MethodDelete, "/session/error", nil, "")
	decode(t, env, &snap)
	assert.Empty(t, snap.Error)

	token := loginDemo(t, h)
	_, env = do(t, h, http.MethodGet, "/session", nil, "")
	decode(t, env, &snap)
	assert.True(t, snap.IsAuthenticated)
	assert.Equal(t, constant.DemoUserEmail, snap.User.Email)

	code, _ = do(t, h, http.MethodPost, "/logout", nil, "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = do(t, h, http.MethodPost, "/logout", nil, token)
	assert.Equal(t, http.StatusOK, code)

	// the old token no longer belongs to the session
	code, _ = do(t, h, http.MethodPost, "/designers", designerBody("After Logout"), token)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestRegister(t *testing.T) {
	h := newHandler(t)
	body := model.RegisterRequest{
		FirstName: "Yaw",
		LastName:  "Boateng",
		Email:     "yaw@example.com",
		Phone:     "+233 24 000 1111",
		Password:  "Adinkra7",
	}

	code, env := do(t, h, http.MethodPost, "/register", body, "")
	require.Equal(t, http.StatusOK, code, env.Error)
	var res model.AuthResponse
	decode(t, env, &res)
	assert.Equal(t, "yaw@example.com", res.User.Email)
	assert.NotContains(t, string(env.Data), "password")

	code, env = do(t, h, http.MethodPost, "/register", body, "")
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Email already registered", env.Error)

	weak := body
	weak.Email = "weak@example.com"
	weak.Password = "abc"
	code, _ = do(t, h, http.MethodPost, "/register", weak, "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestDesignerCRUD(t *testing.T) {
	h := newHandler(t)
	token := loginDemo(t, h)

	code, _ := do(t, h, http.MethodPost, "/designers", designerBody("No Token"), "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, env := do(t, h, http.MethodPost, "/designers", designerBody("Little Stars"), token)
	require.Equal(t, http.StatusCreated, code, env.Error)
	var created model.Designer
	decode(t, env, &created)
	assert.Equal(t, 0.0, created.Rating)
	assert.Equal(t, constant.PlaceholderDesignerImage, created.Image)

	path := fmt.Sprintf("/designers/%d", created.ID)
	code, env = do(t, h, http.MethodGet, path, nil, "")
	require.Equal(t, http.StatusOK, code)
	var got model.Designer
	decode(t, env, &got)
	assert.Equal(t, "Little Stars", got.Name)

	got.Name = "Little Stars Studio"
	got.Rating = 4.2
	got.ID = 0 // path id wins
	code, env = do(t, h, http.MethodPut, path, got, token)
	require.Equal(t, http.StatusOK, code, env.Error)
	var updated model.Designer
	decode(t, env, &updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Little Stars Studio", updated.Name)

	code, _ = do(t, h, http.MethodPut, "/designers/999", got, token)
	assert.Equal(t, http.StatusNotFound, code)

	bad := got
	bad.Rating = 9
	code, _ = do(t, h, http.MethodPut, path, bad, token)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, h, http.MethodDelete, path, nil, token)
	assert.Equal(t, http.StatusOK, code)
	code, _ = do(t, h, http.MethodDelete, path, nil, token)
	assert.Equal(t, http.StatusOK, code)

	code, env = do(t, h, http.MethodGet, path, nil, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrNotFound], env.Code)
}

func TestDesignerFormValidation(t *testing.T) {
	h := newHandler(t)
	token := loginDemo(t, h)

	_, env := do(t, h, http.MethodGet, "/designers", nil, "")
	var list model.DesignerListResponse
	decode(t, env, &list)
	before := list.Total

	tests := []struct {
		name   string
		mutate func(r *model.DesignerRequest)
	}{
		{name: "blank services only", mutate: func(r *model.DesignerRequest) { r.Services = []string{" ", ""} }},
		{name: "no services", mutate: func(r *model.DesignerRequest) { r.Services = nil }},
		{name: "bad email", mutate: func(r *model.DesignerRequest) { r.Email = "not-an-email" }},
		{name: "blank name", mutate: func(r *model.DesignerRequest) { r.Name = "   " }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := designerBody("Invalid")
			tt.mutate(&body)
			code, env := do(t, h, http.MethodPost, "/designers", body, token)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, constant.ErrorTypeCode[constant.ErrInvalidRequest], env.Code)
		})
	}

	_, env = do(t, h, http.MethodGet, "/designers", nil, "")
	decode(t, env, &list)
	assert.Equal(t, before, list.Total)

	body := designerBody("Padded")
	body.Services = []string{"Uniforms", " "}
	code, env := do(t, h, http.MethodPost, "/designers", body, token)
	require.Equal(t, http.StatusCreated, code, env.Error)
	var created model.Designer
	decode(t, env, &created)
	assert.Equal(t, []string{"Uniforms"}, created.Services)

	created.Services = []string{"Uniforms", " ", "Alterations"}
	code, env = do(t, h, http.MethodPut, fmt.Sprintf("/designers/%d", created.ID), created, token)
	require.Equal(t, http.StatusOK, code, env.Error)
	var updated model.Designer
	decode(t, env, &updated)
	assert.Equal(t, []string{"Uniforms", "Alterations"}, updated.Services)
}

func TestDesignerSearch(t *testing.T) {
	h := newHandler(t)

	code, env := do(t, h, http.MethodGet, "/designers", nil, "")
	require.Equal(t, http.StatusOK, code)
	var list model.DesignerListResponse
	decode(t, env, &list)
	assert.Equal(t, 13, list.Total)
	assert.Equal(t, constant.SpecialtyAllLabel, list.Filters.SelectedSpecialty)

	code, env = do(t, h, http.MethodGet, "/designers?search=CULTURAL%20CENTER", nil, "")
	require.Equal(t, http.StatusOK, code)
	decode(t, env, &list)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "African Prints", list.Items[0].Name)

	assert.Equal(t, "CULTURAL CENTER", list.Filters.SearchTerm)

	// query parameters leave the stored criteria alone
	_, env = do(t, h, http.MethodGet, "/designers/filters", nil, "")
	var filters model.SearchFilters
	decode(t, env, &filters)
	assert.Empty(t, filters.SearchTerm)
	_, env = do(t, h, http.MethodGet, "/designers", nil, "")
	decode(t, env, &list)
	assert.Equal(t, 13, list.Total)

	code, env = do(t, h, http.MethodPut, "/designers/filters", model.SearchFilters{
		SelectedSpecialty: "WOMEN'S FASHION DESIGN",
	}, "")
	require.Equal(t, http.StatusOK, code)

	_, env = do(t, h, http.MethodGet, "/designers", nil, "")
	decode(t, env, &list)
	assert.Equal(t, 3, list.Total)
	for _, d := range list.Items {
		assert.Equal(t, "WOMEN'S FASHION DESIGN", d.Specialty)
	}

	code, env = do(t, h, http.MethodGet, "/specialties", nil, "")
	require.Equal(t, http.StatusOK, code)
	var specialties []string
	decode(t, env, &specialties)
	assert.Equal(t, constant.Specialties, specialties)
}

func TestInternalExpireResetToken(t *testing.T) {
	h := newHandler(t)

	code, _ := do(t, h, http.MethodPost, "/internal/v1/password-reset/abc/expire", nil, "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = do(t, h, http.MethodPost, "/internal/v1/password-reset/abc/expire", nil, "wrong")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, env := do(t, h, http.MethodPost, "/internal/v1/password-reset/abc/expire", nil, internalKey)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
}

func TestResetPasswordRejectsUnknownToken(t *testing.T) {
	h := newHandler(t)

	code, env := do(t, h, http.MethodPost, "/reset-password?token=forged", model.ResetPasswordRequest{Password: "Valid123"}, "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrInvalidResetToken], env.Code)

	code, _ = do(t, h, http.MethodPost, "/forgot-password", model.ForgotPasswordRequest{Email: "nobody@example.com"}, "")
	assert.Equal(t, http.StatusOK, code)
}
