package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"playprotect/internal/database"
	"playprotect/internal/models"
	"playprotect/internal/validation"
)

// GameRepository handles database operations for the game catalog
type GameRepository struct {
	db database.DBTX
}

// NewGameRepository creates a new game repository
func NewGameRepository(db database.DBTX) *GameRepository {
	return &GameRepository{db: db}
}

// CreateGame inserts a game into the catalog, assigning an id if absent
func (r *GameRepository) CreateGame(game *models.Game) error {
	if err := validation.ValidateGame(game); err != nil {
		return fmt.Errorf("invalid game: %w", err)
	}
	if game.ID == "" {
		game.ID = uuid.NewString()
	}

	ageGroups, err := encodeIDs(game.AgeGroups)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO games (id, title, title_alt, difficulty, age_groups, is_active)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	if _, err := r.db.Exec(query, game.ID, game.Title, game.TitleAlt, game.Difficulty, ageGroups, game.IsActive); err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	return nil
}

// GetGameByID retrieves a game by id
func (r *GameRepository) GetGameByID(id string) (*models.Game, error) {
	query := `
		SELECT id, title, title_alt, difficulty, age_groups, is_active, created_at, updated_at
		FROM games
		WHERE id = ?
	`
	game, err := scanGame(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return game, nil
}

// GetAllGames retrieves the full catalog
func (r *GameRepository) GetAllGames() ([]models.Game, error) {
	query := `
		SELECT id, title, title_alt, difficulty, age_groups, is_active, created_at, updated_at
		FROM games
		ORDER BY id ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	return collectGames(rows)
}

// GetActiveEasyGames returns all active easy-difficulty games available
// to the given age group. Age-group membership lives in a JSON column,
// so the final filter runs through the shared matching rule in Go.
func (r *GameRepository) GetActiveEasyGames(ageGroup string) ([]models.Game, error) {
	query := `
		SELECT id, title, title_alt, difficulty, age_groups, is_active, created_at, updated_at
		FROM games
		WHERE difficulty = ? AND is_active = ` + r.db.GetDialect().BoolValue(true) + `
		ORDER BY id ASC
	`
	rows, err := r.db.Query(query, models.DifficultyEasy)
	if err != nil {
		return nil, fmt.Errorf("failed to query easy games: %w", err)
	}
	defer rows.Close()

	games, err := collectGames(rows)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Game, 0, len(games))
	for _, game := range games {
		if game.DefaultUnlockedFor(ageGroup) {
			matched = append(matched, game)
		}
	}
	return matched, nil
}

// GameIDSet returns the set of all catalog ids, active or not
func (r *GameRepository) GameIDSet() (map[string]struct{}, error) {
	rows, err := r.db.Query("SELECT id FROM games")
	if err != nil {
		return nil, fmt.Errorf("failed to query game ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan game id: %w", err)
		}
		ids[id] = struct{}{}
	}
	return ids, rows.Err()
}

// SetGameActive flips the catalog activation flag
func (r *GameRepository) SetGameActive(id string, active bool) error {
	query := "UPDATE games SET is_active = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	if _, err := r.db.Exec(query, active, id); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGame(row rowScanner) (*models.Game, error) {
	game := &models.Game{}
	var ageGroups string
	err := row.Scan(
		&game.ID,
		&game.Title,
		&game.TitleAlt,
		&game.Difficulty,
		&ageGroups,
		&game.IsActive,
		&game.CreatedAt,
		&game.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	game.AgeGroups, err = decodeIDs(ageGroups)
	if err != nil {
		return nil, err
	}
	return game, nil
}

func collectGames(rows *sql.Rows) ([]models.Game, error) {
	var games []models.Game
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		games = append(games, *game)
	}
	return games, rows.Err()
}
