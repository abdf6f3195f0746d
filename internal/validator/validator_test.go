package validator

import (
	"strings"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	valid := []string{"slh_invest", "abcde", "A1234_67890"}
	for _, name := range valid {
		if err := ValidateUsername(name); err != nil {
			t.Errorf("ValidateUsername(%q) = %v, want nil", name, err)
		}
	}
	invalid := []string{"", "abc", "has space", "with-dash", strings.Repeat("x", 33)}
	for _, name := range invalid {
		if err := ValidateUsername(name); err == nil {
			t.Errorf("ValidateUsername(%q) = nil, want error", name)
		}
	}
}

func TestValidateNote(t *testing.T) {
	if err := ValidateNote("monthly allocation"); err != nil {
		t.Errorf("short note rejected: %v", err)
	}
	if err := ValidateNote(strings.Repeat("x", 201)); err == nil {
		t.Error("overlong note accepted")
	}
}
