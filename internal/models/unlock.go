package models

import "time"

// Default progression values for a freshly created unlock record
const (
	DefaultLevel          = 1
	DefaultXPForNextLevel = 100
)

// UnlockRecord summarizes which games a child can play, plus their
// progression state. There is at most one record per user.
type UnlockRecord struct {
	UserID   string
	AgeGroup string

	// UnlockedGameIDs holds game ids sorted ascending so repeated
	// reconciliation runs produce byte-identical records.
	UnlockedGameIDs []string

	// LockedGameIDs is persisted but always empty: no code path
	// revokes access explicitly. Kept for schema compatibility with
	// the dashboard.
	LockedGameIDs []string

	CurrentLevel         int
	CurrentXP            int
	TotalXPEarned        int
	XPNeededForNextLevel int
	TotalPoints          int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUnlockRecord builds a record with default progression state
func NewUnlockRecord(userID, ageGroup string, unlockedGameIDs []string) *UnlockRecord {
	return &UnlockRecord{
		UserID:               userID,
		AgeGroup:             ageGroup,
		UnlockedGameIDs:      unlockedGameIDs,
		LockedGameIDs:        []string{},
		CurrentLevel:         DefaultLevel,
		XPNeededForNextLevel: DefaultXPForNextLevel,
	}
}
