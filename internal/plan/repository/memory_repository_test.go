package repository

import (
	"testing"
	"time"

	"healthtrack-backend/internal/plan/domain"

	"github.com/stretchr/testify/require"
)

func TestFindPendingReminders(t *testing.T) {
	t.Parallel()

	repo := NewMemoryPlanRepository()
	now := time.Now()

	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)

	due := &domain.Plan{UserID: "alice", Title: "due", ReminderAt: &past}
	notYet := &domain.Plan{UserID: "alice", Title: "not yet", ReminderAt: &future}
	noReminder := &domain.Plan{UserID: "alice", Title: "no reminder"}
	completed := &domain.Plan{
		UserID: "alice", Title: "completed",
		Status: domain.PlanStatusCompleted, ReminderAt: &past,
	}
	require.NoError(t, repo.Create(due))
	require.NoError(t, repo.Create(notYet))
	require.NoError(t, repo.Create(noReminder))
	require.NoError(t, repo.Create(completed))

	pending, err := repo.FindPendingReminders(now)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, due.ID, pending[0].ID)

	// Once marked, the reminder stops firing
	require.NoError(t, repo.MarkReminderSent(due.ID))
	pending, err = repo.FindPendingReminders(now)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestFindByUserIDStatusFilter(t *testing.T) {
	t.Parallel()

	repo := NewMemoryPlanRepository()

	active := &domain.Plan{UserID: "alice", Title: "active one"}
	done := &domain.Plan{UserID: "alice", Title: "done one", Status: domain.PlanStatusCompleted}
	require.NoError(t, repo.Create(active))
	require.NoError(t, repo.Create(done))

	all, err := repo.FindByUserID("alice", nil)
	require.NoError(t, err)
	require.Len(t, all, 2)

	status := domain.PlanStatusActive
	filtered, err := repo.FindByUserID("alice", &status)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	require.Equal(t, "active one", filtered[0].Title)
}
