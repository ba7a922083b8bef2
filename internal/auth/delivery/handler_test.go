package delivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	authdomain "healthtrack-backend/internal/auth/domain"
	"healthtrack-backend/internal/auth/repository"
	"healthtrack-backend/internal/auth/token"
	"healthtrack-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// authServer wires the full auth surface over the in-memory stores, the
// way main.go wires it without a database.
type authServer struct {
	router *gin.Engine
	tokens *token.Service
}

func newAuthServer() *authServer {
	tokens := token.NewService("test-secret", "healthtrack", 24*time.Hour, 7*24*time.Hour)
	users := repository.NewMemoryUserRepository()
	devices := repository.NewMemoryDeviceTokenRepository()
	handler := NewAuthHandler(usecase.NewAuthUsecase(users, tokens), devices)

	r := gin.New()
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", handler.Login)
		auth.POST("/refresh", handler.Refresh)
		auth.GET("/me", AuthMiddleware(tokens, users), handler.Me)
		auth.POST("/logout", AuthMiddleware(tokens, users), handler.Logout)
	}
	devicesGroup := r.Group("/api/devices", AuthMiddleware(tokens, users))
	{
		devicesGroup.POST("", handler.RegisterDevice)
		devicesGroup.DELETE("/:token", handler.UnregisterDevice)
	}

	return &authServer{router: r, tokens: tokens}
}

func (s *authServer) do(method, path, body, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

type tokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func register(t *testing.T, s *authServer, email, password string) tokenPair {
	t.Helper()
	w := s.do(http.MethodPost, "/api/auth/register",
		`{"email":"`+email+`","password":"`+password+`"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)
	var pair tokenPair
	decode(t, w, &pair)
	return pair
}

func TestRegisterThenFetchSelf(t *testing.T) {
	t.Parallel()

	s := newAuthServer()
	pair := register(t, s, "alice@example.com", "secret1")

	w := s.do(http.MethodGet, "/api/auth/me", "", pair.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		User struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	decode(t, w, &body)
	require.Equal(t, pair.User.ID, body.User.ID)
	require.Equal(t, "alice@example.com", body.User.Email)

	// The password hash never leaves the server
	require.NotContains(t, w.Body.String(), "password")
	require.NotContains(t, w.Body.String(), "hash")
}

func TestRegisterDuplicateEmailRejected(t *testing.T) {
	t.Parallel()

	s := newAuthServer()
	register(t, s, "alice@example.com", "secret1")

	w := s.do(http.MethodPost, "/api/auth/register",
		`{"email":"alice@example.com","password":"another1"}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	// First account still logs in with its original password
	w = s.do(http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"another1"}`, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestExpiredAccessTokenThenRefresh(t *testing.T) {
	t.Parallel()

	s := newAuthServer()
	pair := register(t, s, "alice@example.com", "secret1")

	// Mint an already-expired access token for the same account
	past := s.tokens.WithClock(func() time.Time {
		return time.Now().Add(-48 * time.Hour)
	})
	expired, err := past.IssueAccess(&authdomain.User{
		ID:    pair.User.ID,
		Email: pair.User.Email,
		Role:  authdomain.RoleUser,
	})
	require.NoError(t, err)

	w := s.do(http.MethodGet, "/api/auth/me", "", expired)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	var errBody map[string]string
	decode(t, w, &errBody)
	require.Equal(t, "token expired", errBody["error"])

	// The refresh token still works and the new access token is accepted
	w = s.do(http.MethodPost, "/api/auth/refresh", "", pair.RefreshToken)
	require.Equal(t, http.StatusOK, w.Code)

	var refreshed struct {
		AccessToken string `json:"access_token"`
	}
	decode(t, w, &refreshed)
	require.NotEmpty(t, refreshed.AccessToken)

	w = s.do(http.MethodGet, "/api/auth/me", "", refreshed.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRefreshRejectsAccessTokenAtEndpoint(t *testing.T) {
	t.Parallel()

	s := newAuthServer()
	pair := register(t, s, "alice@example.com", "secret1")

	w := s.do(http.MethodPost, "/api/auth/refresh", "", pair.AccessToken)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	var body map[string]string
	decode(t, w, &body)
	require.Equal(t, "wrong token type", body["error"])
}

func TestDeviceRegistration(t *testing.T) {
	t.Parallel()

	s := newAuthServer()
	pair := register(t, s, "alice@example.com", "secret1")

	w := s.do(http.MethodPost, "/api/devices",
		`{"token":"fcm-token-1","device_info":"pixel 9"}`, pair.AccessToken)
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(http.MethodDelete, "/api/devices/fcm-token-1", "", pair.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)

	// Unauthenticated device registration is rejected
	w = s.do(http.MethodPost, "/api/devices", `{"token":"fcm-token-2"}`, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
