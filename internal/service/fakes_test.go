package service

import (
	"playprotect/internal/models"
)

// In-memory stores used by the unlock service tests. The unlock fake
// mimics the SQL upsert contract: progression columns are written only
// on first insert and preserved on conflict.

type fakeCatalog struct {
	games []models.Game
}

func (f *fakeCatalog) GetActiveEasyGames(ageGroup string) ([]models.Game, error) {
	var out []models.Game
	for _, game := range f.games {
		if game.DefaultUnlockedFor(ageGroup) {
			out = append(out, game)
		}
	}
	return out, nil
}

func (f *fakeCatalog) GameIDSet() (map[string]struct{}, error) {
	ids := make(map[string]struct{}, len(f.games))
	for _, game := range f.games {
		ids[game.ID] = struct{}{}
	}
	return ids, nil
}

func (f *fakeCatalog) setActive(id string, active bool) {
	for i := range f.games {
		if f.games[i].ID == id {
			f.games[i].IsActive = active
		}
	}
}

type fakeUsers struct {
	users []models.User
}

func (f *fakeUsers) GetChildUsers() ([]models.User, error) {
	var out []models.User
	for _, user := range f.users {
		if user.Role == models.RoleChild {
			out = append(out, user)
		}
	}
	return out, nil
}

type fakeUnlocks struct {
	records map[string]*models.UnlockRecord
	upserts int
}

func newFakeUnlocks() *fakeUnlocks {
	return &fakeUnlocks{records: make(map[string]*models.UnlockRecord)}
}

func (f *fakeUnlocks) GetByUserID(userID string) (*models.UnlockRecord, error) {
	record, ok := f.records[userID]
	if !ok {
		return nil, nil
	}
	clone := *record
	clone.UnlockedGameIDs = append([]string{}, record.UnlockedGameIDs...)
	clone.LockedGameIDs = append([]string{}, record.LockedGameIDs...)
	return &clone, nil
}

func (f *fakeUnlocks) Upsert(record *models.UnlockRecord) error {
	f.upserts++

	clone := *record
	clone.UnlockedGameIDs = append([]string{}, record.UnlockedGameIDs...)
	clone.LockedGameIDs = append([]string{}, record.LockedGameIDs...)

	if existing, ok := f.records[record.UserID]; ok {
		clone.CurrentLevel = existing.CurrentLevel
		clone.CurrentXP = existing.CurrentXP
		clone.TotalXPEarned = existing.TotalXPEarned
		clone.XPNeededForNextLevel = existing.XPNeededForNextLevel
		clone.TotalPoints = existing.TotalPoints
	}

	f.records[record.UserID] = &clone
	return nil
}

type fakeAlerts struct {
	alerts []models.Alert
}

func (f *fakeAlerts) CreateAlert(alert *models.Alert) error {
	f.alerts = append(f.alerts, *alert)
	return nil
}
