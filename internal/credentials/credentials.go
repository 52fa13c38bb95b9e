package credentials

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// Word lists for generating kid-friendly display names
var adjectives = []string{
	"happy", "sunny", "brave", "bright", "cool", "swift", "clever", "jolly",
	"mighty", "super", "star", "wild", "funny", "lucky", "magic", "bouncy",
	"cheerful", "daring", "eager", "flying", "gentle", "lively", "merry", "noble",
	"perky", "quick", "royal", "snappy", "turbo", "zippy", "bold", "cosmic",
}

var nouns = []string{
	"dragon", "tiger", "eagle", "dolphin", "panda", "lion", "wolf", "bear",
	"fox", "hawk", "phoenix", "unicorn", "rocket", "ninja", "wizard", "knight",
	"pirate", "robot", "astronaut", "hero", "champion", "explorer", "ranger",
	"comet", "thunder", "lightning", "tornado", "flame", "storm", "racer",
}

// GenerateDisplayName generates a random name in the format "adjective-noun"
func GenerateDisplayName() (string, error) {
	adjective, err := randomElement(adjectives)
	if err != nil {
		return "", err
	}

	noun, err := randomElement(nouns)
	if err != nil {
		return "", err
	}

	return adjective + "-" + noun, nil
}

// GeneratePIN generates a random 4-digit PIN for a child account
func GeneratePIN() (string, error) {
	digits := "0123456789"
	pin := make([]byte, 4)

	for i := 0; i < 4; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", err
		}
		pin[i] = digits[num.Int64()]
	}

	return string(pin), nil
}

// HashPIN returns the bcrypt hash of a PIN for storage
func HashPIN(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPIN compares a PIN against its stored hash
func CheckPIN(pin, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil
}

// randomElement picks a random element from a string slice
func randomElement(slice []string) (string, error) {
	num, err := rand.Int(rand.Reader, big.NewInt(int64(len(slice))))
	if err != nil {
		return "", err
	}
	return slice[num.Int64()], nil
}
