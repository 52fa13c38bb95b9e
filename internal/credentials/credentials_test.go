package credentials

import (
	"strings"
	"testing"
)

func TestGenerateDisplayName(t *testing.T) {
	for i := 0; i < 20; i++ {
		name, err := GenerateDisplayName()
		if err != nil {
			t.Fatalf("GenerateDisplayName() error = %v", err)
		}

		parts := strings.Split(name, "-")
		if len(parts) != 2 {
			t.Fatalf("expected adjective-noun format, got %q", name)
		}
		if parts[0] == "" || parts[1] == "" {
			t.Errorf("empty name component in %q", name)
		}
	}
}

func TestGeneratePIN(t *testing.T) {
	for i := 0; i < 50; i++ {
		pin, err := GeneratePIN()
		if err != nil {
			t.Fatalf("GeneratePIN() error = %v", err)
		}
		if len(pin) != 4 {
			t.Errorf("PIN length = %d, want 4", len(pin))
		}
		for _, c := range pin {
			if c < '0' || c > '9' {
				t.Errorf("PIN %q contains non-digit %q", pin, c)
			}
		}
	}
}

func TestHashAndCheckPIN(t *testing.T) {
	hash, err := HashPIN("1234")
	if err != nil {
		t.Fatalf("HashPIN() error = %v", err)
	}

	if !CheckPIN("1234", hash) {
		t.Error("CheckPIN() should accept the original PIN")
	}
	if CheckPIN("4321", hash) {
		t.Error("CheckPIN() should reject a wrong PIN")
	}
}
