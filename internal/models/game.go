package models

import "time"

// Game difficulty levels
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Age group tags used by both games and users
const (
	AgeGroup3to5  = "3-5"
	AgeGroup6to8  = "6-8"
	AgeGroup9to12 = "9-12"
)

// AgeGroups lists all known age group tags
var AgeGroups = []string{AgeGroup3to5, AgeGroup6to8, AgeGroup9to12}

// Game represents an entry in the game catalog
type Game struct {
	ID         string
	Title      string
	TitleAlt   string
	Difficulty string
	AgeGroups  []string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DefaultUnlockedFor reports whether the game is unlocked by default for
// the given age group. This is the single matching rule shared by the
// reconciler and the diagnoser; it must not be duplicated elsewhere.
func (g *Game) DefaultUnlockedFor(ageGroup string) bool {
	if !g.IsActive || g.Difficulty != DifficultyEasy {
		return false
	}
	for _, tag := range g.AgeGroups {
		if tag == ageGroup {
			return true
		}
	}
	return false
}
