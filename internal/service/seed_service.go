package service

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"playprotect/internal/credentials"
	"playprotect/internal/models"
	"playprotect/internal/repository"
)

// SeedFile is the JSON layout consumed by the seed command
type SeedFile struct {
	Games []SeedGame `json:"games"`
	Users []SeedUser `json:"users"`
}

// SeedGame describes a catalog entry to insert
type SeedGame struct {
	Title      string   `json:"title"`
	TitleAlt   string   `json:"title_alt"`
	Difficulty string   `json:"difficulty"`
	AgeGroups  []string `json:"age_groups"`
	IsActive   *bool    `json:"is_active"`
}

// SeedUser describes an account to insert. Child accounts without a
// name get a generated one; every child gets a generated PIN.
type SeedUser struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	AgeGroup    string `json:"age_group"`
	ParentEmail string `json:"parent_email"`
}

// SeedService loads a catalog file into the store
type SeedService struct {
	games *repository.GameRepository
	users *repository.UserRepository
}

// NewSeedService creates a new seed service
func NewSeedService(games *repository.GameRepository, users *repository.UserRepository) *SeedService {
	return &SeedService{
		games: games,
		users: users,
	}
}

// Seed inserts the games and users described by the file. Invalid
// entries are skipped with a warning; only store failures abort.
func (s *SeedService) Seed(inputPath string) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer file.Close()

	var seed SeedFile
	if err := json.NewDecoder(file).Decode(&seed); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	var gamesCreated int
	for _, g := range seed.Games {
		active := true
		if g.IsActive != nil {
			active = *g.IsActive
		}
		game := &models.Game{
			Title:      g.Title,
			TitleAlt:   g.TitleAlt,
			Difficulty: g.Difficulty,
			AgeGroups:  g.AgeGroups,
			IsActive:   active,
		}
		if err := s.games.CreateGame(game); err != nil {
			log.Printf("Warning: skipping game %q: %v", g.Title, err)
			continue
		}
		gamesCreated++
	}

	var usersCreated int
	for _, u := range seed.Users {
		user := &models.User{
			Name:        u.Name,
			Role:        u.Role,
			AgeGroup:    u.AgeGroup,
			ParentEmail: u.ParentEmail,
		}

		if user.Role == models.RoleChild {
			if user.Name == "" {
				user.Name, err = credentials.GenerateDisplayName()
				if err != nil {
					return fmt.Errorf("failed to generate display name: %w", err)
				}
			}

			pin, err := credentials.GeneratePIN()
			if err != nil {
				return fmt.Errorf("failed to generate PIN: %w", err)
			}
			user.PinHash, err = credentials.HashPIN(pin)
			if err != nil {
				return fmt.Errorf("failed to hash PIN: %w", err)
			}

			if err := s.users.CreateUser(user); err != nil {
				log.Printf("Warning: skipping user %q: %v", user.Name, err)
				continue
			}
			// The PIN is only recoverable here, so print it once
			log.Printf("Created child account %s (%s), PIN: %s", user.Name, user.AgeGroup, pin)
		} else {
			if err := s.users.CreateUser(user); err != nil {
				log.Printf("Warning: skipping user %q: %v", user.Name, err)
				continue
			}
			log.Printf("Created %s account %s", user.Role, user.Name)
		}
		usersCreated++
	}

	log.Printf("Seed complete: %d games, %d users created", gamesCreated, usersCreated)
	return nil
}
