package repository

import (
	"database/sql"
	"fmt"

	"playprotect/internal/database"
	"playprotect/internal/models"
)

// UnlockRepository handles database operations for unlock records
type UnlockRepository struct {
	db database.DBTX
}

// NewUnlockRepository creates a new unlock record repository
func NewUnlockRepository(db database.DBTX) *UnlockRepository {
	return &UnlockRepository{db: db}
}

// GetByUserID retrieves the unlock record for a user, or nil if none exists
func (r *UnlockRepository) GetByUserID(userID string) (*models.UnlockRecord, error) {
	query := `
		SELECT user_id, age_group, unlocked_game_ids, locked_game_ids,
		       current_level, current_xp, total_xp_earned, xp_needed_for_next_level, total_points,
		       created_at, updated_at
		FROM unlock_records
		WHERE user_id = ?
	`
	record, err := scanUnlockRecord(r.db.QueryRow(query, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get unlock record: %w", err)
	}
	return record, nil
}

// GetAll retrieves every unlock record
func (r *UnlockRepository) GetAll() ([]models.UnlockRecord, error) {
	query := `
		SELECT user_id, age_group, unlocked_game_ids, locked_game_ids,
		       current_level, current_xp, total_xp_earned, xp_needed_for_next_level, total_points,
		       created_at, updated_at
		FROM unlock_records
		ORDER BY user_id ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query unlock records: %w", err)
	}
	defer rows.Close()

	var records []models.UnlockRecord
	for rows.Next() {
		record, err := scanUnlockRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan unlock record: %w", err)
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

// Upsert inserts or replaces the unlock-related fields of a user's
// record in a single statement. Progression columns keep their stored
// values when the record already exists; the record's progression
// fields are only used for the initial insert.
func (r *UnlockRepository) Upsert(record *models.UnlockRecord) error {
	unlocked, err := encodeIDs(record.UnlockedGameIDs)
	if err != nil {
		return err
	}
	locked, err := encodeIDs(record.LockedGameIDs)
	if err != nil {
		return err
	}

	query := r.db.GetDialect().UpsertUnlockRecord()
	_, err = r.db.Exec(query,
		record.UserID,
		record.AgeGroup,
		unlocked,
		locked,
		record.CurrentLevel,
		record.CurrentXP,
		record.TotalXPEarned,
		record.XPNeededForNextLevel,
		record.TotalPoints,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert unlock record: %w", err)
	}
	return nil
}

// Insert creates a new unlock record with all fields taken from the
// given record, progression included. Fails if a record for the user
// already exists.
func (r *UnlockRepository) Insert(record *models.UnlockRecord) error {
	unlocked, err := encodeIDs(record.UnlockedGameIDs)
	if err != nil {
		return err
	}
	locked, err := encodeIDs(record.LockedGameIDs)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO unlock_records (user_id, age_group, unlocked_game_ids, locked_game_ids,
		                            current_level, current_xp, total_xp_earned, xp_needed_for_next_level, total_points)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.Exec(query,
		record.UserID,
		record.AgeGroup,
		unlocked,
		locked,
		record.CurrentLevel,
		record.CurrentXP,
		record.TotalXPEarned,
		record.XPNeededForNextLevel,
		record.TotalPoints,
	)
	if err != nil {
		return fmt.Errorf("failed to insert unlock record: %w", err)
	}
	return nil
}

func scanUnlockRecord(row rowScanner) (*models.UnlockRecord, error) {
	record := &models.UnlockRecord{}
	var unlocked, locked string
	err := row.Scan(
		&record.UserID,
		&record.AgeGroup,
		&unlocked,
		&locked,
		&record.CurrentLevel,
		&record.CurrentXP,
		&record.TotalXPEarned,
		&record.XPNeededForNextLevel,
		&record.TotalPoints,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if record.UnlockedGameIDs, err = decodeIDs(unlocked); err != nil {
		return nil, err
	}
	if record.LockedGameIDs, err = decodeIDs(locked); err != nil {
		return nil, err
	}
	return record, nil
}
