package delivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	authdelivery "healthtrack-backend/internal/auth/delivery"
	authdomain "healthtrack-backend/internal/auth/domain"
	authrepository "healthtrack-backend/internal/auth/repository"
	"healthtrack-backend/internal/auth/token"
	"healthtrack-backend/internal/plan/domain"
	"healthtrack-backend/internal/plan/repository"
	"healthtrack-backend/internal/plan/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type planFixture struct {
	router *gin.Engine
	repo   repository.PlanRepository
	tokens *token.Service
	alice  *authdomain.User
	bob    *authdomain.User
}

// newPlanFixture wires the plan routes the way main.go does, including
// the auth middleware and the ownership guard on per-plan routes.
func newPlanFixture(t *testing.T) *planFixture {
	t.Helper()

	tokens := token.NewService("test-secret", "healthtrack", 24*time.Hour, 7*24*time.Hour)
	users := authrepository.NewMemoryUserRepository()

	alice := &authdomain.User{Email: "alice@example.com", Role: authdomain.RoleUser}
	bob := &authdomain.User{Email: "bob@example.com", Role: authdomain.RoleUser}
	require.NoError(t, users.Create(alice))
	require.NoError(t, users.Create(bob))

	repo := repository.NewMemoryPlanRepository()
	handler := NewPlanHandler(usecase.NewPlanUsecase(repo))
	requireOwner := authdelivery.RequireOwner(PlanOwner(repo))

	r := gin.New()
	plans := r.Group("/api/plans", authdelivery.AuthMiddleware(tokens, users))
	{
		plans.POST("", handler.CreatePlan)
		plans.GET("", handler.GetPlans)
		plans.GET("/:id", requireOwner, handler.GetPlanByID)
		plans.PUT("/:id", requireOwner, handler.UpdatePlan)
		plans.DELETE("/:id", requireOwner, handler.DeletePlan)
	}

	return &planFixture{router: r, repo: repo, tokens: tokens, alice: alice, bob: bob}
}

func (f *planFixture) do(t *testing.T, user *authdomain.User, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	access, err := f.tokens.IssueAccess(user)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+access)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *planFixture) createPlan(t *testing.T, user *authdomain.User, body string) domain.Plan {
	t.Helper()

	w := f.do(t, user, http.MethodPost, "/api/plans", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var plan domain.Plan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	return plan
}

func TestCreatePlanIgnoresClientOwner(t *testing.T) {
	t.Parallel()

	f := newPlanFixture(t)

	// The body claims bob as owner; alice is authenticated.
	plan := f.createPlan(t, f.alice,
		`{"title":"Run a 10k","user_id":"`+f.bob.ID+`","reminder_sent":true}`)

	require.Equal(t, f.alice.ID, plan.UserID)
	require.False(t, plan.ReminderSent)

	stored, err := f.repo.FindByID(plan.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, f.alice.ID, stored.UserID)
}

func TestPlanOwnershipGuard(t *testing.T) {
	t.Parallel()

	f := newPlanFixture(t)
	plan := f.createPlan(t, f.alice, `{"title":"Sleep 8 hours"}`)

	// Bob cannot read, update, or delete alice's plan.
	require.Equal(t, http.StatusForbidden,
		f.do(t, f.bob, http.MethodGet, "/api/plans/"+plan.ID, "").Code)
	require.Equal(t, http.StatusForbidden,
		f.do(t, f.bob, http.MethodPut, "/api/plans/"+plan.ID, `{"title":"hijacked"}`).Code)
	require.Equal(t, http.StatusForbidden,
		f.do(t, f.bob, http.MethodDelete, "/api/plans/"+plan.ID, "").Code)

	// The plan is untouched.
	stored, err := f.repo.FindByID(plan.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, "Sleep 8 hours", stored.Title)

	// Alice can.
	require.Equal(t, http.StatusOK,
		f.do(t, f.alice, http.MethodGet, "/api/plans/"+plan.ID, "").Code)
	require.Equal(t, http.StatusOK,
		f.do(t, f.alice, http.MethodDelete, "/api/plans/"+plan.ID, "").Code)

	stored, err = f.repo.FindByID(plan.ID)
	require.NoError(t, err)
	require.Nil(t, stored)
}

func TestPlanNotFoundIsDistinctFromForbidden(t *testing.T) {
	t.Parallel()

	f := newPlanFixture(t)

	w := f.do(t, f.alice, http.MethodGet, "/api/plans/no-such-plan", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPlansOnlyListsOwn(t *testing.T) {
	t.Parallel()

	f := newPlanFixture(t)
	f.createPlan(t, f.alice, `{"title":"Alice plan"}`)
	f.createPlan(t, f.bob, `{"title":"Bob plan"}`)

	w := f.do(t, f.alice, http.MethodGet, "/api/plans", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Plans []domain.Plan `json:"plans"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Plans, 1)
	require.Equal(t, "Alice plan", body.Plans[0].Title)
}

func TestUpdatePlanMergesAndResetsReminder(t *testing.T) {
	t.Parallel()

	f := newPlanFixture(t)
	plan := f.createPlan(t, f.alice, `{"title":"Lose weight","goal":"-5kg"}`)

	require.NoError(t, f.repo.MarkReminderSent(plan.ID))

	reminder := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
	w := f.do(t, f.alice, http.MethodPut, "/api/plans/"+plan.ID,
		`{"status":"completed","reminder_at":"`+reminder+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := f.repo.FindByID(plan.ID)
	require.NoError(t, err)
	require.Equal(t, domain.PlanStatusCompleted, stored.Status)
	require.Equal(t, "Lose weight", stored.Title)
	require.Equal(t, "-5kg", stored.Goal)
	require.NotNil(t, stored.ReminderAt)
	// Moving the reminder re-arms it
	require.False(t, stored.ReminderSent)
}
