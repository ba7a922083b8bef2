package token

import (
	"strings"
	"testing"
	"time"

	authdomain "healthtrack-backend/internal/auth/domain"

	"github.com/stretchr/testify/require"
)

func testUser() *authdomain.User {
	return &authdomain.User{
		ID:    "user-123",
		Email: "alice@example.com",
		Role:  authdomain.RoleUser,
	}
}

func testService() *Service {
	return NewService("test-secret", "healthtrack", 24*time.Hour, 7*24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc := testService()
	user := testUser()

	tok, err := svc.IssueAccess(user)
	require.NoError(t, err)

	claims, err := svc.Verify(tok, KindAccess)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, user.Email, claims.Email)
	require.Equal(t, user.Role, claims.Role)
	require.Equal(t, KindAccess, claims.Kind)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc := testService()

	tok, err := svc.IssueRefresh(testUser())
	require.NoError(t, err)

	claims, err := svc.Verify(tok, KindRefresh)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.UserID)
	require.Equal(t, KindRefresh, claims.Kind)
}

func TestIssuePairClaimsAgree(t *testing.T) {
	t.Parallel()

	svc := testService()

	pair, err := svc.IssuePair(testUser())
	require.NoError(t, err)

	access, err := svc.Verify(pair.AccessToken, KindAccess)
	require.NoError(t, err)
	refresh, err := svc.Verify(pair.RefreshToken, KindRefresh)
	require.NoError(t, err)

	require.Equal(t, access.UserID, refresh.UserID)
	require.Equal(t, access.Email, refresh.Email)
	require.Equal(t, access.Role, refresh.Role)
}

func TestExpiredTokenRejected(t *testing.T) {
	t.Parallel()

	svc := testService()

	// Mint in the past so the token is already expired
	past := svc.WithClock(func() time.Time { return time.Now().Add(-48 * time.Hour) })
	tok, err := past.IssueAccess(testUser())
	require.NoError(t, err)

	_, err = svc.Verify(tok, KindAccess)
	require.ErrorIs(t, err, ErrExpired)
}

func TestKindIsolation(t *testing.T) {
	t.Parallel()

	svc := testService()
	user := testUser()

	access, err := svc.IssueAccess(user)
	require.NoError(t, err)
	refresh, err := svc.IssueRefresh(user)
	require.NoError(t, err)

	// A refresh token must never pass where an access token is required
	_, err = svc.Verify(refresh, KindAccess)
	require.ErrorIs(t, err, ErrWrongKind)

	// And the other way around
	_, err = svc.Verify(access, KindRefresh)
	require.ErrorIs(t, err, ErrWrongKind)
}

func TestTamperedSignatureRejected(t *testing.T) {
	t.Parallel()

	svc := testService()

	tok, err := svc.IssueAccess(testUser())
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)

	// Flip one character in the signature segment
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.Verify(tampered, KindAccess)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestWrongSecretRejected(t *testing.T) {
	t.Parallel()

	tok, err := testService().IssueAccess(testUser())
	require.NoError(t, err)

	other := NewService("other-secret", "healthtrack", 24*time.Hour, 7*24*time.Hour)
	_, err = other.Verify(tok, KindAccess)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestWrongIssuerRejected(t *testing.T) {
	t.Parallel()

	other := NewService("test-secret", "someone-else", 24*time.Hour, 7*24*time.Hour)
	tok, err := other.IssueAccess(testUser())
	require.NoError(t, err)

	_, err = testService().Verify(tok, KindAccess)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestMalformedStringRejected(t *testing.T) {
	t.Parallel()

	_, err := testService().Verify("not.a.jwt", KindAccess)
	require.ErrorIs(t, err, ErrMalformed)
}
