package validation

import (
	"fmt"
	"strings"

	"playprotect/internal/models"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidDifficulty reports whether the difficulty tag is known
func ValidDifficulty(difficulty string) bool {
	switch difficulty {
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
		return true
	}
	return false
}

// ValidAgeGroup reports whether the age group tag is known
func ValidAgeGroup(ageGroup string) bool {
	for _, tag := range models.AgeGroups {
		if tag == ageGroup {
			return true
		}
	}
	return false
}

// ValidRole reports whether the account role is known
func ValidRole(role string) bool {
	switch role {
	case models.RoleChild, models.RoleParent, models.RoleTeacher:
		return true
	}
	return false
}

// ValidateGame checks a game definition before it enters the catalog
func ValidateGame(game *models.Game) error {
	if strings.TrimSpace(game.Title) == "" {
		return ValidationError{Field: "title", Message: "title is required"}
	}
	if !ValidDifficulty(game.Difficulty) {
		return ValidationError{Field: "difficulty", Message: fmt.Sprintf("unknown difficulty %q", game.Difficulty)}
	}
	if len(game.AgeGroups) == 0 {
		return ValidationError{Field: "age_groups", Message: "at least one age group is required"}
	}
	for _, tag := range game.AgeGroups {
		if !ValidAgeGroup(tag) {
			return ValidationError{Field: "age_groups", Message: fmt.Sprintf("unknown age group %q", tag)}
		}
	}
	return nil
}

// ValidateUser checks a user account before it enters the store.
// A child account with an unknown age group is accepted: reconciliation
// treats it as matching no games rather than as an error.
func ValidateUser(user *models.User) error {
	if strings.TrimSpace(user.Name) == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if !ValidRole(user.Role) {
		return ValidationError{Field: "role", Message: fmt.Sprintf("unknown role %q", user.Role)}
	}
	return nil
}
