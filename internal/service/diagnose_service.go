package service

import (
	"fmt"
	"log"

	"playprotect/internal/models"
)

// Diagnosis classification statuses
type DiagnosisStatus string

const (
	StatusOK            DiagnosisStatus = "OK"
	StatusMissingRecord DiagnosisStatus = "MISSING_RECORD"
	StatusStaleIDs      DiagnosisStatus = "STALE_IDS"
	StatusMismatch      DiagnosisStatus = "MISMATCH"
)

// Diagnosis is the classification of one child's unlock record
type Diagnosis struct {
	UserID   string
	UserName string
	AgeGroup string
	Status   DiagnosisStatus

	Expected []string
	Actual   []string
	// Stale holds unlocked ids that resolve to no catalog entry at all
	Stale []string
	// Missing and Extra describe a MISMATCH relative to Expected
	Missing []string
	Extra   []string
}

// DiagnosisReport aggregates per-user results with counts per status
type DiagnosisReport struct {
	Results []Diagnosis
	Counts  map[DiagnosisStatus]int
}

// DiagnoseService compares stored unlock records against the sets the
// reconciler would produce, using the same matching rule. It never
// writes, so it is safe to run at any time.
type DiagnoseService struct {
	games   GameCatalog
	users   UserDirectory
	unlocks UnlockStore
}

// NewDiagnoseService creates a new diagnose service
func NewDiagnoseService(games GameCatalog, users UserDirectory, unlocks UnlockStore) *DiagnoseService {
	return &DiagnoseService{
		games:   games,
		users:   users,
		unlocks: unlocks,
	}
}

// Diagnose classifies every child account's unlock record
func (s *DiagnoseService) Diagnose() (*DiagnosisReport, error) {
	users, err := s.users.GetChildUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch child users: %w", err)
	}

	catalogIDs, err := s.games.GameIDSet()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog ids: %w", err)
	}

	log.Printf("Diagnosing unlock records for %d child users", len(users))

	report := &DiagnosisReport{
		Counts: make(map[DiagnosisStatus]int),
	}
	expectedByAge := make(map[string][]string)

	for i := range users {
		user := &users[i]
		expected, ok := expectedByAge[user.AgeGroup]
		if !ok {
			games, err := s.games.GetActiveEasyGames(user.AgeGroup)
			if err != nil {
				return nil, fmt.Errorf("failed to fetch games for age group %q: %w", user.AgeGroup, err)
			}
			expected = sortedGameIDs(games)
			expectedByAge[user.AgeGroup] = expected
		}

		result, err := s.diagnoseUser(user, expected, catalogIDs)
		if err != nil {
			return nil, err
		}

		report.Results = append(report.Results, *result)
		report.Counts[result.Status]++
	}

	log.Printf("Diagnosis complete: %d OK, %d missing record, %d stale ids, %d mismatched",
		report.Counts[StatusOK], report.Counts[StatusMissingRecord],
		report.Counts[StatusStaleIDs], report.Counts[StatusMismatch])
	return report, nil
}

func (s *DiagnoseService) diagnoseUser(user *models.User, expected []string, catalogIDs map[string]struct{}) (*Diagnosis, error) {
	result := &Diagnosis{
		UserID:   user.ID,
		UserName: user.Name,
		AgeGroup: user.AgeGroup,
		Expected: expected,
	}

	record, err := s.unlocks.GetByUserID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read unlock record for %s: %w", user.ID, err)
	}
	if record == nil {
		result.Status = StatusMissingRecord
		return result, nil
	}

	result.Actual = record.UnlockedGameIDs

	// Ids pointing at deleted catalog entries take precedence: the
	// record cannot be meaningfully compared until they are cleaned up.
	for _, id := range record.UnlockedGameIDs {
		if _, ok := catalogIDs[id]; !ok {
			result.Stale = append(result.Stale, id)
		}
	}
	if len(result.Stale) > 0 {
		result.Status = StatusStaleIDs
		return result, nil
	}

	if sameIDSet(record.UnlockedGameIDs, expected) {
		result.Status = StatusOK
		return result, nil
	}

	result.Status = StatusMismatch
	result.Missing = idsNotIn(expected, record.UnlockedGameIDs)
	result.Extra = idsNotIn(record.UnlockedGameIDs, expected)
	return result, nil
}
