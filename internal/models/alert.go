package models

import "time"

// Alert types surfaced on the parent dashboard
const (
	AlertGamesUnlocked = "games_unlocked"
	AlertGamesRevoked  = "games_revoked"
)

// Alert is a parental-monitoring notification about a child account
type Alert struct {
	ID        string
	UserID    string
	Type      string
	Message   string
	Read      bool
	CreatedAt time.Time
}
