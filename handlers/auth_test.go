package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/legalease/legalease-backend/internal/config"
	"github.com/legalease/legalease-backend/internal/models"
	"github.com/legalease/legalease-backend/internal/tokens"
	"github.com/legalease/legalease-backend/internal/users"
	"github.com/legalease/legalease-backend/pkg/middleware"
)

type memUserRepo struct {
	byEmail map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: make(map[string]*models.User)}
}

func (m *memUserRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	u.ID = primitive.NewObjectID()
	u.CreatedAt = time.Now().UTC()
	m.byEmail[u.Email] = u
	return u, nil
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.byEmail[email], nil
}

func (m *memUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range m.byEmail {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, nil
}

func newAuthRouter(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.JWT.Secret = "auth-handler-test-secret-32-byte"
	cfg.JWT.TokenTTL = 7 * 24 * time.Hour

	svc := users.NewService(newMemUserRepo())
	h := NewAuthHandler(cfg, svc)
	r := gin.New()
	h.Register(r.Group("/api"), middleware.RequireAuth(tokens.NewVerifier(cfg)))
	return r, cfg
}

func doJSON(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterLoginMe_Flow(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := doJSON(r, http.MethodPost, "/api/auth/register", "", `{"name":"Alice","email":"a@x.com","password":"pw1234"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var reg struct {
		Token string `json:"token"`
		User  struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))
	require.NotEmpty(t, reg.Token)
	require.Equal(t, "Alice", reg.User.Name)

	w = doJSON(r, http.MethodPost, "/api/auth/login", "", `{"email":"a@x.com","password":"pw1234"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	w = doJSON(r, http.MethodGet, "/api/auth/me", login.Token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var me struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	require.Equal(t, reg.User.ID, me.ID)
	require.Equal(t, "a@x.com", me.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := doJSON(r, http.MethodPost, "/api/auth/register", "", `{"name":"Alice","email":"a@x.com","password":"pw1234"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/register", "", `{"name":"Clone","email":"a@x.com","password":"other123"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "already registered")
}

func TestLogin_Failures(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := doJSON(r, http.MethodPost, "/api/auth/register", "", `{"name":"Alice","email":"a@x.com","password":"pw1234"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/login", "", `{"email":"missing@x.com","password":"pw1234"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/login", "", `{"email":"a@x.com","password":"wrongpw"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe_BadToken(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := doJSON(r, http.MethodGet, "/api/auth/me", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/api/auth/me", "not-a-real-token", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe_UserGone(t *testing.T) {
	r, cfg := newAuthRouter(t)

	// valid signature, but the user id does not exist in the store
	tok, err := tokens.GenerateToken(cfg, primitive.NewObjectID().Hex())
	require.NoError(t, err)

	w := doJSON(r, http.MethodGet, "/api/auth/me", tok, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
