package service

import (
	"context"
	"fmt"
	"log"
	"sort"

	"playprotect/internal/models"
)

// UnlockService reconciles per-user unlock records against the game
// catalog: for every child account, the unlocked set must equal the
// active easy-difficulty games for that child's age group.
type UnlockService struct {
	games   GameCatalog
	users   UserDirectory
	unlocks UnlockStore
	alerts  *AlertService
}

// NewUnlockService creates a new unlock service. alerts may be nil, in
// which case unlock changes are not recorded on the parent dashboard.
func NewUnlockService(games GameCatalog, users UserDirectory, unlocks UnlockStore, alerts *AlertService) *UnlockService {
	return &UnlockService{
		games:   games,
		users:   users,
		unlocks: unlocks,
		alerts:  alerts,
	}
}

// ReconcileSummary aggregates the outcome of a reconciliation run
type ReconcileSummary struct {
	Users     int
	Created   int
	Updated   int
	Unchanged int
}

// ReconcileAll recomputes and persists the unlock record of every child
// account. Records are created with default progression state when
// absent; existing progression fields are never touched. Running twice
// over unchanged data leaves every record byte-identical and records no
// alerts. Only store failures abort the run; a user with an unknown age
// group simply gets an empty unlocked set.
func (s *UnlockService) ReconcileAll(ctx context.Context) (*ReconcileSummary, error) {
	users, err := s.users.GetChildUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch child users: %w", err)
	}

	log.Printf("Found %d child users to reconcile", len(users))

	// Expected sets only depend on the age group, so compute each one once
	expectedByAge := make(map[string][]models.Game)

	summary := &ReconcileSummary{Users: len(users)}
	for i := range users {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		user := &users[i]
		expected, ok := expectedByAge[user.AgeGroup]
		if !ok {
			expected, err = s.games.GetActiveEasyGames(user.AgeGroup)
			if err != nil {
				return nil, fmt.Errorf("failed to fetch games for age group %q: %w", user.AgeGroup, err)
			}
			expectedByAge[user.AgeGroup] = expected
		}

		if err := s.reconcileUser(ctx, user, expected, summary); err != nil {
			return nil, err
		}
	}

	log.Printf("Reconciliation complete: %d users (%d created, %d updated, %d unchanged)",
		summary.Users, summary.Created, summary.Updated, summary.Unchanged)
	return summary, nil
}

func (s *UnlockService) reconcileUser(ctx context.Context, user *models.User, expected []models.Game, summary *ReconcileSummary) error {
	expectedIDs := sortedGameIDs(expected)

	existing, err := s.unlocks.GetByUserID(user.ID)
	if err != nil {
		return fmt.Errorf("failed to read unlock record for %s: %w", user.ID, err)
	}

	if existing != nil &&
		existing.AgeGroup == user.AgeGroup &&
		len(existing.LockedGameIDs) == 0 &&
		sameIDSet(existing.UnlockedGameIDs, expectedIDs) {
		summary.Unchanged++
		return nil
	}

	record := models.NewUnlockRecord(user.ID, user.AgeGroup, expectedIDs)
	var newlyUnlocked []string
	if existing == nil {
		newlyUnlocked = expectedIDs
	} else {
		// The upsert statement leaves progression columns alone on
		// conflict; mirror that here so the in-memory record matches
		// what is stored.
		record.CurrentLevel = existing.CurrentLevel
		record.CurrentXP = existing.CurrentXP
		record.TotalXPEarned = existing.TotalXPEarned
		record.XPNeededForNextLevel = existing.XPNeededForNextLevel
		record.TotalPoints = existing.TotalPoints
		newlyUnlocked = idsNotIn(expectedIDs, existing.UnlockedGameIDs)
	}

	if err := s.unlocks.Upsert(record); err != nil {
		return fmt.Errorf("failed to upsert unlock record for %s: %w", user.ID, err)
	}

	if existing == nil {
		summary.Created++
		log.Printf("Created unlock record for %s (%s): %d games unlocked", user.Name, user.AgeGroup, len(expectedIDs))
	} else {
		summary.Updated++
		log.Printf("Updated unlock record for %s (%s): %d games unlocked", user.Name, user.AgeGroup, len(expectedIDs))
	}

	if s.alerts != nil && len(newlyUnlocked) > 0 {
		// Alert failures are reported but never abort the batch
		if err := s.alerts.RecordGamesUnlocked(ctx, user, gamesByID(expected, newlyUnlocked)); err != nil {
			log.Printf("Warning: failed to record unlock alert for %s: %v", user.Name, err)
		}
	}
	return nil
}

// sortedGameIDs extracts ids sorted ascending, for deterministic records
func sortedGameIDs(games []models.Game) []string {
	ids := make([]string, len(games))
	for i, game := range games {
		ids[i] = game.ID
	}
	sort.Strings(ids)
	return ids
}

// sameIDSet compares two id collections as sets
func sameIDSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, id := range a {
		set[id] = struct{}{}
	}
	if len(set) != len(b) {
		return false
	}
	for _, id := range b {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}

// idsNotIn returns the members of ids that are absent from exclude
func idsNotIn(ids, exclude []string) []string {
	set := make(map[string]struct{}, len(exclude))
	for _, id := range exclude {
		set[id] = struct{}{}
	}
	var out []string
	for _, id := range ids {
		if _, ok := set[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// gamesByID filters games down to the given ids, preserving order
func gamesByID(games []models.Game, ids []string) []models.Game {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	var out []models.Game
	for _, game := range games {
		if _, ok := set[game.ID]; ok {
			out = append(out, game)
		}
	}
	return out
}
