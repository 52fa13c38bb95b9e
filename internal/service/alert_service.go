package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"playprotect/internal/models"
)

// AlertService records parental-monitoring alerts and optionally sends
// an email to the parent on file for the child.
type AlertService struct {
	alerts AlertStore
	email  *EmailService
}

// NewAlertService creates a new alert service. email may be nil or
// disabled; alerts are still persisted for the dashboard.
func NewAlertService(alerts AlertStore, email *EmailService) *AlertService {
	return &AlertService{
		alerts: alerts,
		email:  email,
	}
}

// RecordGamesUnlocked saves an alert describing newly unlocked games
// and notifies the parent by email when possible
func (s *AlertService) RecordGamesUnlocked(ctx context.Context, user *models.User, games []models.Game) error {
	titles := make([]string, len(games))
	for i, game := range games {
		titles[i] = game.Title
	}

	alert := &models.Alert{
		UserID:  user.ID,
		Type:    models.AlertGamesUnlocked,
		Message: fmt.Sprintf("%s can now play %d new games: %s", user.Name, len(titles), strings.Join(titles, ", ")),
	}
	if err := s.alerts.CreateAlert(alert); err != nil {
		return fmt.Errorf("failed to save alert: %w", err)
	}

	if s.email != nil && s.email.IsEnabled() && user.ParentEmail != "" {
		if err := s.email.SendUnlockNotification(ctx, user.ParentEmail, user.Name, titles); err != nil {
			// Email is best effort; the persisted alert is the record
			log.Printf("Warning: failed to email %s: %v", user.ParentEmail, err)
		}
	}
	return nil
}
