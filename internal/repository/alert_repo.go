package repository

import (
	"fmt"

	"github.com/google/uuid"

	"playprotect/internal/database"
	"playprotect/internal/models"
)

// AlertRepository handles database operations for parental alerts
type AlertRepository struct {
	db database.DBTX
}

// NewAlertRepository creates a new alert repository
func NewAlertRepository(db database.DBTX) *AlertRepository {
	return &AlertRepository{db: db}
}

// CreateAlert inserts an alert, assigning an id if absent
func (r *AlertRepository) CreateAlert(alert *models.Alert) error {
	if alert.ID == "" {
		alert.ID = uuid.NewString()
	}

	query := `
		INSERT INTO alerts (id, user_id, type, message, is_read)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := r.db.Exec(query, alert.ID, alert.UserID, alert.Type, alert.Message, alert.Read); err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// GetAlertsByUser retrieves alerts for a user, newest first
func (r *AlertRepository) GetAlertsByUser(userID string) ([]models.Alert, error) {
	query := `
		SELECT id, user_id, type, message, is_read, created_at
		FROM alerts
		WHERE user_id = ?
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query alerts: %w", err)
	}
	defer rows.Close()

	var alerts []models.Alert
	for rows.Next() {
		var alert models.Alert
		if err := rows.Scan(
			&alert.ID,
			&alert.UserID,
			&alert.Type,
			&alert.Message,
			&alert.Read,
			&alert.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		alerts = append(alerts, alert)
	}
	return alerts, rows.Err()
}

// GetAllAlerts retrieves every alert, oldest first
func (r *AlertRepository) GetAllAlerts() ([]models.Alert, error) {
	query := `
		SELECT id, user_id, type, message, is_read, created_at
		FROM alerts
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query alerts: %w", err)
	}
	defer rows.Close()

	var alerts []models.Alert
	for rows.Next() {
		var alert models.Alert
		if err := rows.Scan(
			&alert.ID,
			&alert.UserID,
			&alert.Type,
			&alert.Message,
			&alert.Read,
			&alert.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		alerts = append(alerts, alert)
	}
	return alerts, rows.Err()
}

// CountUnread returns the number of unread alerts for a user
func (r *AlertRepository) CountUnread(userID string) (int, error) {
	var count int
	query := "SELECT COUNT(*) FROM alerts WHERE user_id = ? AND is_read = " + r.db.GetDialect().BoolValue(false)
	if err := r.db.QueryRow(query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count alerts: %w", err)
	}
	return count, nil
}

// MarkRead marks a single alert as read
func (r *AlertRepository) MarkRead(alertID string) error {
	query := "UPDATE alerts SET is_read = " + r.db.GetDialect().BoolValue(true) + " WHERE id = ?"
	if _, err := r.db.Exec(query, alertID); err != nil {
		return fmt.Errorf("failed to mark alert read: %w", err)
	}
	return nil
}
