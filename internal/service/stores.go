package service

import "playprotect/internal/models"

// Store interfaces consumed by the unlock services. The repository
// package provides the production implementations; tests substitute
// in-memory fakes.

// GameCatalog is the read-only catalog view
type GameCatalog interface {
	GetActiveEasyGames(ageGroup string) ([]models.Game, error)
	GameIDSet() (map[string]struct{}, error)
}

// UserDirectory is the read-only account view
type UserDirectory interface {
	GetChildUsers() ([]models.User, error)
}

// UnlockStore is the read-write unlock record store
type UnlockStore interface {
	GetByUserID(userID string) (*models.UnlockRecord, error)
	Upsert(record *models.UnlockRecord) error
}

// AlertStore persists parental alerts
type AlertStore interface {
	CreateAlert(alert *models.Alert) error
}
