package validation

import (
	"testing"

	"playprotect/internal/models"
)

func TestValidDifficulty(t *testing.T) {
	tests := []struct {
		difficulty string
		expected   bool
	}{
		{"easy", true},
		{"medium", true},
		{"hard", true},
		{"", false},
		{"Easy", false},
		{"extreme", false},
	}

	for _, tt := range tests {
		t.Run(tt.difficulty, func(t *testing.T) {
			if got := ValidDifficulty(tt.difficulty); got != tt.expected {
				t.Errorf("ValidDifficulty(%q) = %v, want %v", tt.difficulty, got, tt.expected)
			}
		})
	}
}

func TestValidAgeGroup(t *testing.T) {
	tests := []struct {
		ageGroup string
		expected bool
	}{
		{"3-5", true},
		{"6-8", true},
		{"9-12", true},
		{"", false},
		{"13-17", false},
	}

	for _, tt := range tests {
		t.Run(tt.ageGroup, func(t *testing.T) {
			if got := ValidAgeGroup(tt.ageGroup); got != tt.expected {
				t.Errorf("ValidAgeGroup(%q) = %v, want %v", tt.ageGroup, got, tt.expected)
			}
		})
	}
}

func TestValidateGame(t *testing.T) {
	tests := []struct {
		name    string
		game    models.Game
		wantErr bool
	}{
		{
			name: "valid game",
			game: models.Game{
				Title:      "Color Match",
				Difficulty: models.DifficultyEasy,
				AgeGroups:  []string{models.AgeGroup3to5},
			},
		},
		{
			name: "missing title",
			game: models.Game{
				Difficulty: models.DifficultyEasy,
				AgeGroups:  []string{models.AgeGroup3to5},
			},
			wantErr: true,
		},
		{
			name: "unknown difficulty",
			game: models.Game{
				Title:      "Color Match",
				Difficulty: "impossible",
				AgeGroups:  []string{models.AgeGroup3to5},
			},
			wantErr: true,
		},
		{
			name: "no age groups",
			game: models.Game{
				Title:      "Color Match",
				Difficulty: models.DifficultyEasy,
			},
			wantErr: true,
		},
		{
			name: "unknown age group",
			game: models.Game{
				Title:      "Color Match",
				Difficulty: models.DifficultyEasy,
				AgeGroups:  []string{"18+"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGame(&tt.game)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGame() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name    string
		user    models.User
		wantErr bool
	}{
		{
			name: "valid child",
			user: models.User{Name: "Mia", Role: models.RoleChild, AgeGroup: models.AgeGroup3to5},
		},
		{
			name: "child with unknown age group is accepted",
			user: models.User{Name: "Mia", Role: models.RoleChild, AgeGroup: "unknown"},
		},
		{
			name:    "missing name",
			user:    models.User{Role: models.RoleChild},
			wantErr: true,
		},
		{
			name:    "unknown role",
			user:    models.User{Name: "Mia", Role: "admin"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUser(&tt.user)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUser() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
