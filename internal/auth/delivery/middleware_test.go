package delivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authdomain "healthtrack-backend/internal/auth/domain"
	"healthtrack-backend/internal/auth/repository"
	"healthtrack-backend/internal/auth/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthFixture(t *testing.T) (*gin.Engine, *token.Service, *authdomain.User) {
	t.Helper()

	tokens := token.NewService("test-secret", "healthtrack", 24*time.Hour, 7*24*time.Hour)
	users := repository.NewMemoryUserRepository()

	user := &authdomain.User{Email: "alice@example.com", Role: authdomain.RoleUser}
	require.NoError(t, users.Create(user))

	r := gin.New()
	r.GET("/protected", AuthMiddleware(tokens, users), func(c *gin.Context) {
		current, ok := CurrentUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": current.ID})
	})

	return r, tokens, user
}

func doGet(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorReason(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	t.Parallel()

	r, tokens, user := newAuthFixture(t)

	access, err := tokens.IssueAccess(user)
	require.NoError(t, err)

	w := doGet(r, "Bearer "+access)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, user.ID, body["user_id"])
}

func TestAuthMiddlewareHeaderParsing(t *testing.T) {
	t.Parallel()

	r, tokens, user := newAuthFixture(t)

	access, err := tokens.IssueAccess(user)
	require.NoError(t, err)

	for _, header := range []string{
		"",
		access,
		"Basic " + access,
		"Bearer",
		"Bearer ",
		"Bearer " + access + " extra",
	} {
		w := doGet(r, header)
		require.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		require.Equal(t, "invalid authorization header", errorReason(t, w))
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	t.Parallel()

	r, tokens, user := newAuthFixture(t)

	expired, err := tokens.WithClock(func() time.Time {
		return time.Now().Add(-48 * time.Hour)
	}).IssueAccess(user)
	require.NoError(t, err)

	w := doGet(r, "Bearer "+expired)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "token expired", errorReason(t, w))
}

func TestAuthMiddlewareRejectsRefreshToken(t *testing.T) {
	t.Parallel()

	r, tokens, user := newAuthFixture(t)

	refresh, err := tokens.IssueRefresh(user)
	require.NoError(t, err)

	w := doGet(r, "Bearer "+refresh)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "wrong token type", errorReason(t, w))
}

func TestAuthMiddlewareGarbageToken(t *testing.T) {
	t.Parallel()

	r, _, _ := newAuthFixture(t)

	w := doGet(r, "Bearer not-a-jwt")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "invalid token", errorReason(t, w))
}

func TestAuthMiddlewareDeletedUser(t *testing.T) {
	t.Parallel()

	r, tokens, _ := newAuthFixture(t)

	ghost := &authdomain.User{ID: "gone", Email: "gone@example.com", Role: authdomain.RoleUser}
	access, err := tokens.IssueAccess(ghost)
	require.NoError(t, err)

	w := doGet(r, "Bearer "+access)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "user not found", errorReason(t, w))
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	tokens := token.NewService("test-secret", "healthtrack", 24*time.Hour, 7*24*time.Hour)
	users := repository.NewMemoryUserRepository()

	member := &authdomain.User{Email: "member@example.com", Role: authdomain.RoleUser}
	pro := &authdomain.User{Email: "pro@example.com", Role: authdomain.RoleProfessional}
	require.NoError(t, users.Create(member))
	require.NoError(t, users.Create(pro))

	r := gin.New()
	r.GET("/pro-only",
		AuthMiddleware(tokens, users),
		RequireRole(authdomain.RoleProfessional, authdomain.RoleAdmin),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{}) })

	memberToken, err := tokens.IssueAccess(member)
	require.NoError(t, err)
	proToken, err := tokens.IssueAccess(pro)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/pro-only", nil)
	req.Header.Set("Authorization", "Bearer "+memberToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/pro-only", nil)
	req.Header.Set("Authorization", "Bearer "+proToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireOwner(t *testing.T) {
	t.Parallel()

	tokens := token.NewService("test-secret", "healthtrack", 24*time.Hour, 7*24*time.Hour)
	users := repository.NewMemoryUserRepository()

	alice := &authdomain.User{Email: "alice@example.com", Role: authdomain.RoleUser}
	bob := &authdomain.User{Email: "bob@example.com", Role: authdomain.RoleUser}
	require.NoError(t, users.Create(alice))
	require.NoError(t, users.Create(bob))

	// Fake resource store: id "res-1" belongs to alice.
	lookup := func(c *gin.Context) (string, error) {
		if c.Param("id") == "res-1" {
			return alice.ID, nil
		}
		return "", ErrOwnerNotFound
	}

	r := gin.New()
	r.DELETE("/things/:id",
		AuthMiddleware(tokens, users),
		RequireOwner(lookup),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{}) })

	do := func(user *authdomain.User, id string) *httptest.ResponseRecorder {
		access, err := tokens.IssueAccess(user)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodDelete, "/things/"+id, nil)
		req.Header.Set("Authorization", "Bearer "+access)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	require.Equal(t, http.StatusOK, do(alice, "res-1").Code)
	require.Equal(t, http.StatusForbidden, do(bob, "res-1").Code)
	require.Equal(t, http.StatusNotFound, do(alice, "missing").Code)
}
