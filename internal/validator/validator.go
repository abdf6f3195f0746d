package validator

import (
	"errors"
	"regexp"
)

var (
	ErrInvalidUsername = errors.New("invalid telegram username")
	ErrNoteTooLong     = errors.New("note too long")
)

// Telegram usernames are 5-32 word characters. The leading @ is
// stripped by callers before validation.
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{5,32}$`)

const maxNoteLength = 200

func ValidateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return ErrInvalidUsername
	}
	return nil
}

func ValidateNote(note string) error {
	if len(note) > maxNoteLength {
		return ErrNoteTooLong
	}
	return nil
}
