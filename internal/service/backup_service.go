package service

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"playprotect/internal/models"
	"playprotect/internal/repository"
)

// BackupData represents the complete store backup structure
type BackupData struct {
	Version       string               `json:"version"`
	ExportedAt    time.Time            `json:"exported_at"`
	Games         []GameBackup         `json:"games"`
	Users         []UserBackup         `json:"users"`
	UnlockRecords []UnlockRecordBackup `json:"unlock_records"`
	Alerts        []AlertBackup        `json:"alerts"`
}

// GameBackup represents a catalog entry for backup
type GameBackup struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	TitleAlt   string   `json:"title_alt"`
	Difficulty string   `json:"difficulty"`
	AgeGroups  []string `json:"age_groups"`
	IsActive   bool     `json:"is_active"`
}

// UserBackup represents a user record for backup
type UserBackup struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	AgeGroup    string `json:"age_group"`
	PinHash     string `json:"pin_hash"`
	ParentEmail string `json:"parent_email"`
}

// UnlockRecordBackup represents an unlock record for backup
type UnlockRecordBackup struct {
	UserID               string   `json:"user_id"`
	AgeGroup             string   `json:"age_group"`
	UnlockedGameIDs      []string `json:"unlocked_game_ids"`
	LockedGameIDs        []string `json:"locked_game_ids"`
	CurrentLevel         int      `json:"current_level"`
	CurrentXP            int      `json:"current_xp"`
	TotalXPEarned        int      `json:"total_xp_earned"`
	XPNeededForNextLevel int      `json:"xp_needed_for_next_level"`
	TotalPoints          int      `json:"total_points"`
}

// AlertBackup represents an alert record for backup
type AlertBackup struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Read    bool   `json:"read"`
}

// BackupService exports and imports the full store as JSON
type BackupService struct {
	games   *repository.GameRepository
	users   *repository.UserRepository
	unlocks *repository.UnlockRepository
	alerts  *repository.AlertRepository
}

// NewBackupService creates a new backup service
func NewBackupService(games *repository.GameRepository, users *repository.UserRepository, unlocks *repository.UnlockRepository, alerts *repository.AlertRepository) *BackupService {
	return &BackupService{
		games:   games,
		users:   users,
		unlocks: unlocks,
		alerts:  alerts,
	}
}

// Export writes all collections to a JSON file
func (s *BackupService) Export(outputPath string) error {
	backup := BackupData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC(),
	}

	games, err := s.games.GetAllGames()
	if err != nil {
		return fmt.Errorf("failed to export games: %w", err)
	}
	for _, game := range games {
		backup.Games = append(backup.Games, GameBackup{
			ID:         game.ID,
			Title:      game.Title,
			TitleAlt:   game.TitleAlt,
			Difficulty: game.Difficulty,
			AgeGroups:  game.AgeGroups,
			IsActive:   game.IsActive,
		})
	}

	users, err := s.users.GetAllUsers()
	if err != nil {
		return fmt.Errorf("failed to export users: %w", err)
	}
	for _, user := range users {
		backup.Users = append(backup.Users, UserBackup{
			ID:          user.ID,
			Name:        user.Name,
			Role:        user.Role,
			AgeGroup:    user.AgeGroup,
			PinHash:     user.PinHash,
			ParentEmail: user.ParentEmail,
		})
	}

	records, err := s.unlocks.GetAll()
	if err != nil {
		return fmt.Errorf("failed to export unlock records: %w", err)
	}
	for _, record := range records {
		backup.UnlockRecords = append(backup.UnlockRecords, UnlockRecordBackup{
			UserID:               record.UserID,
			AgeGroup:             record.AgeGroup,
			UnlockedGameIDs:      record.UnlockedGameIDs,
			LockedGameIDs:        record.LockedGameIDs,
			CurrentLevel:         record.CurrentLevel,
			CurrentXP:            record.CurrentXP,
			TotalXPEarned:        record.TotalXPEarned,
			XPNeededForNextLevel: record.XPNeededForNextLevel,
			TotalPoints:          record.TotalPoints,
		})
	}

	alerts, err := s.alerts.GetAllAlerts()
	if err != nil {
		return fmt.Errorf("failed to export alerts: %w", err)
	}
	for _, alert := range alerts {
		backup.Alerts = append(backup.Alerts, AlertBackup{
			ID:      alert.ID,
			UserID:  alert.UserID,
			Type:    alert.Type,
			Message: alert.Message,
			Read:    alert.Read,
		})
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}

	log.Printf("Exported %d games, %d users, %d unlock records, %d alerts",
		len(backup.Games), len(backup.Users), len(backup.UnlockRecords), len(backup.Alerts))
	return nil
}

// Import merges a JSON backup into the store. Rows that collide with
// existing ids are skipped with a warning rather than aborting the run.
func (s *BackupService) Import(inputPath string) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open backup file: %w", err)
	}
	defer file.Close()

	var backup BackupData
	if err := json.NewDecoder(file).Decode(&backup); err != nil {
		return fmt.Errorf("failed to parse backup file: %w", err)
	}

	var imported, skipped int

	for _, g := range backup.Games {
		game := &models.Game{
			ID:         g.ID,
			Title:      g.Title,
			TitleAlt:   g.TitleAlt,
			Difficulty: g.Difficulty,
			AgeGroups:  g.AgeGroups,
			IsActive:   g.IsActive,
		}
		if err := s.games.CreateGame(game); err != nil {
			log.Printf("Warning: skipping game %s: %v", g.ID, err)
			skipped++
			continue
		}
		imported++
	}

	for _, u := range backup.Users {
		user := &models.User{
			ID:          u.ID,
			Name:        u.Name,
			Role:        u.Role,
			AgeGroup:    u.AgeGroup,
			PinHash:     u.PinHash,
			ParentEmail: u.ParentEmail,
		}
		if err := s.users.CreateUser(user); err != nil {
			log.Printf("Warning: skipping user %s: %v", u.ID, err)
			skipped++
			continue
		}
		imported++
	}

	for _, r := range backup.UnlockRecords {
		record := &models.UnlockRecord{
			UserID:               r.UserID,
			AgeGroup:             r.AgeGroup,
			UnlockedGameIDs:      r.UnlockedGameIDs,
			LockedGameIDs:        r.LockedGameIDs,
			CurrentLevel:         r.CurrentLevel,
			CurrentXP:            r.CurrentXP,
			TotalXPEarned:        r.TotalXPEarned,
			XPNeededForNextLevel: r.XPNeededForNextLevel,
			TotalPoints:          r.TotalPoints,
		}
		if err := s.unlocks.Insert(record); err != nil {
			log.Printf("Warning: skipping unlock record for %s: %v", r.UserID, err)
			skipped++
			continue
		}
		imported++
	}

	for _, a := range backup.Alerts {
		alert := &models.Alert{
			ID:      a.ID,
			UserID:  a.UserID,
			Type:    a.Type,
			Message: a.Message,
			Read:    a.Read,
		}
		if err := s.alerts.CreateAlert(alert); err != nil {
			log.Printf("Warning: skipping alert %s: %v", a.ID, err)
			skipped++
			continue
		}
		imported++
	}

	log.Printf("Import complete: %d rows imported, %d skipped", imported, skipped)
	return nil
}
