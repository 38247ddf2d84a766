package manifest

import "regexp"

// maxGameIDLen is the longest identifier the catalog accepts.
const maxGameIDLen = 60

var gameIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateGameID checks a game identifier. Checks run in a fixed order:
// presence, then charset, then length, each with its own reason.
func ValidateGameID(id string) error {
	if id == "" {
		return &ValidationError{Field: FieldGameID, Reason: "gameId not defined"}
	}
	if !gameIDPattern.MatchString(id) {
		return &ValidationError{Field: FieldGameID, Reason: "invalid characters in gameId (allowed: A-Z, a-z, 0-9, _, -)"}
	}
	if len(id) > maxGameIDLen {
		return &ValidationError{Field: FieldGameID, Reason: "gameId must be less than 60 characters"}
	}
	return nil
}
