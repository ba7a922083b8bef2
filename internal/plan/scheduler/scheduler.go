package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	authrepo "healthtrack-backend/internal/auth/repository"
	"healthtrack-backend/internal/plan/repository"
	"healthtrack-backend/pkg/fcm"
)

// ReminderScheduler pushes due plan reminders to the user's registered
// devices.
type ReminderScheduler struct {
	planRepo   repository.PlanRepository
	deviceRepo authrepo.DeviceTokenRepository
	fcmClient  *fcm.Client
	interval   time.Duration
	stopChan   chan struct{}
}

func NewReminderScheduler(
	planRepo repository.PlanRepository,
	deviceRepo authrepo.DeviceTokenRepository,
	fcmClient *fcm.Client,
) *ReminderScheduler {
	return &ReminderScheduler{
		planRepo:   planRepo,
		deviceRepo: deviceRepo,
		fcmClient:  fcmClient,
		interval:   1 * time.Minute,
		stopChan:   make(chan struct{}),
	}
}

// Start begins the polling loop.
func (s *ReminderScheduler) Start() {
	if s.fcmClient == nil {
		log.Println("[Scheduler] FCM client not available, plan reminders disabled")
		return
	}

	log.Printf("[Scheduler] Starting plan reminder scheduler (interval: %s)", s.interval)

	go func() {
		// Run immediately on start
		s.checkAndSendReminders()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.checkAndSendReminders()
			case <-s.stopChan:
				log.Println("[Scheduler] Stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the scheduler.
func (s *ReminderScheduler) Stop() {
	close(s.stopChan)
}

func (s *ReminderScheduler) checkAndSendReminders() {
	now := time.Now()

	plans, err := s.planRepo.FindPendingReminders(now)
	if err != nil {
		log.Printf("[Scheduler] Error finding pending reminders: %v", err)
		return
	}
	if len(plans) == 0 {
		return
	}

	log.Printf("[Scheduler] Found %d plans with pending reminders", len(plans))

	for _, plan := range plans {
		tokens, err := s.deviceRepo.GetTokensByUserID(plan.UserID)
		if err != nil {
			log.Printf("[Scheduler] Error loading device tokens for user %s: %v", plan.UserID, err)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		sent := 0
		for _, token := range tokens {
			notification := fcm.NotificationData{
				Title: "Health plan reminder",
				Body:  fmt.Sprintf("Time to check in on \"%s\"", plan.Title),
				Data: map[string]string{
					"plan_id": plan.ID,
					"type":    "plan_reminder",
				},
			}
			if err := s.fcmClient.SendToDevice(ctx, token.Token, notification); err != nil {
				log.Printf("[Scheduler] Failed to send reminder for plan %s: %v", plan.ID, err)
				continue
			}
			sent++
		}
		cancel()

		// Mark sent even with zero devices so the reminder does not
		// fire forever.
		if err := s.planRepo.MarkReminderSent(plan.ID); err != nil {
			log.Printf("[Scheduler] Failed to mark reminder sent for plan %s: %v", plan.ID, err)
			continue
		}

		if sent > 0 {
			log.Printf("[Scheduler] Sent reminder for plan %s to %d device(s)", plan.ID, sent)
		}
	}
}
