package service

import (
	"context"
	"reflect"
	"testing"

	"playprotect/internal/models"
)

func TestDiagnoseAgreesWithFreshReconcile(t *testing.T) {
	catalog := testCatalog()
	users := &fakeUsers{users: []models.User{
		{ID: "u1", Name: "Mia", Role: models.RoleChild, AgeGroup: models.AgeGroup3to5},
		{ID: "u2", Name: "Leo", Role: models.RoleChild, AgeGroup: models.AgeGroup6to8},
		{ID: "u3", Name: "Ada", Role: models.RoleChild, AgeGroup: "unknown"},
	}}
	unlocks := newFakeUnlocks()

	if _, err := NewUnlockService(catalog, users, unlocks, nil).ReconcileAll(context.Background()); err != nil {
		t.Fatalf("ReconcileAll() error = %v", err)
	}

	report, err := NewDiagnoseService(catalog, users, unlocks).Diagnose()
	if err != nil {
		t.Fatalf("Diagnose() error = %v", err)
	}

	if report.Counts[StatusOK] != 3 {
		t.Errorf("counts = %v, want 3 OK after fresh reconcile", report.Counts)
	}
	for _, result := range report.Results {
		if result.Status != StatusOK {
			t.Errorf("user %s classified %s, want OK", result.UserID, result.Status)
		}
	}
}

func TestDiagnoseMissingRecord(t *testing.T) {
	catalog := testCatalog()
	users := &fakeUsers{users: []models.User{
		{ID: "u2", Name: "Leo", Role: models.RoleChild, AgeGroup: models.AgeGroup9to12},
	}}
	unlocks := newFakeUnlocks()

	report, err := NewDiagnoseService(catalog, users, unlocks).Diagnose()
	if err != nil {
		t.Fatalf("Diagnose() error = %v", err)
	}
	if report.Counts[StatusMissingRecord] != 1 {
		t.Errorf("counts = %v, want 1 MISSING_RECORD", report.Counts)
	}

	// Reconciling afterwards must produce a record the diagnoser accepts
	if _, err := NewUnlockService(catalog, users, unlocks, nil).ReconcileAll(context.Background()); err != nil {
		t.Fatalf("ReconcileAll() error = %v", err)
	}

	report, err = NewDiagnoseService(catalog, users, unlocks).Diagnose()
	if err != nil {
		t.Fatalf("second Diagnose() error = %v", err)
	}
	if report.Counts[StatusOK] != 1 {
		t.Errorf("counts = %v, want 1 OK after reconcile", report.Counts)
	}
}

func TestDiagnoseStaleIDs(t *testing.T) {
	catalog := testCatalog()
	users := &fakeUsers{users: []models.User{
		{ID: "u1", Name: "Mia", Role: models.RoleChild, AgeGroup: models.AgeGroup3to5},
	}}
	unlocks := newFakeUnlocks()
	unlocks.records["u1"] = &models.UnlockRecord{
		UserID:          "u1",
		AgeGroup:        models.AgeGroup3to5,
		UnlockedGameIDs: []string{"g1", "g-deleted"},
		LockedGameIDs:   []string{},
	}

	report, err := NewDiagnoseService(catalog, users, unlocks).Diagnose()
	if err != nil {
		t.Fatalf("Diagnose() error = %v", err)
	}

	if report.Counts[StatusStaleIDs] != 1 {
		t.Fatalf("counts = %v, want 1 STALE_IDS", report.Counts)
	}
	result := report.Results[0]
	if !reflect.DeepEqual(result.Stale, []string{"g-deleted"}) {
		t.Errorf("Stale = %v, want [g-deleted]", result.Stale)
	}
}

func TestDiagnoseMismatch(t *testing.T) {
	catalog := testCatalog()
	users := &fakeUsers{users: []models.User{
		{ID: "u1", Name: "Mia", Role: models.RoleChild, AgeGroup: models.AgeGroup3to5},
	}}
	unlocks := newFakeUnlocks()
	// g3 resolves in the catalog but is medium difficulty, g1 is absent
	unlocks.records["u1"] = &models.UnlockRecord{
		UserID:          "u1",
		AgeGroup:        models.AgeGroup3to5,
		UnlockedGameIDs: []string{"g3"},
		LockedGameIDs:   []string{},
	}

	report, err := NewDiagnoseService(catalog, users, unlocks).Diagnose()
	if err != nil {
		t.Fatalf("Diagnose() error = %v", err)
	}

	if report.Counts[StatusMismatch] != 1 {
		t.Fatalf("counts = %v, want 1 MISMATCH", report.Counts)
	}
	result := report.Results[0]
	if !reflect.DeepEqual(result.Missing, []string{"g1"}) {
		t.Errorf("Missing = %v, want [g1]", result.Missing)
	}
	if !reflect.DeepEqual(result.Extra, []string{"g3"}) {
		t.Errorf("Extra = %v, want [g3]", result.Extra)
	}
}

func TestDiagnoseNeverWrites(t *testing.T) {
	catalog := testCatalog()
	users := &fakeUsers{users: []models.User{
		{ID: "u1", Name: "Mia", Role: models.RoleChild, AgeGroup: models.AgeGroup3to5},
	}}
	unlocks := newFakeUnlocks()

	if _, err := NewDiagnoseService(catalog, users, unlocks).Diagnose(); err != nil {
		t.Fatalf("Diagnose() error = %v", err)
	}
	if unlocks.upserts != 0 {
		t.Errorf("Diagnose() performed %d writes, want 0", unlocks.upserts)
	}
}
