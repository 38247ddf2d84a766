package manifest

import (
	"encoding/json"
	"errors"

	"github.com/Masterminds/semver/v3"
)

// requiredFields maps each required manifest field to its checker. The
// table is iterated in order and validation stops at the first failure.
var requiredFields = []struct {
	name  string
	check func(v interface{}) error
}{
	{FieldGameID, checkGameID},
	{FieldAPIVersion, checkSemver},
	{FieldGameType, checkString},
	{FieldCategory, checkString},
	{FieldMinPlayers, checkNumber},
}

// validateRequired runs every required-field checker against the (already
// defaulted) manifest and returns the first failure as a ValidationError
// carrying the field name and underlying reason.
func validateRequired(m Manifest) error {
	for _, f := range requiredFields {
		if err := f.check(m[f.name]); err != nil {
			var ve *ValidationError
			if errors.As(err, &ve) {
				return ve
			}
			return &ValidationError{Field: f.name, Reason: err.Error()}
		}
	}
	return nil
}

func checkGameID(v interface{}) error {
	id, _ := v.(string)
	return ValidateGameID(id)
}

func checkSemver(v interface{}) error {
	s, ok := v.(string)
	if !ok || s == "" {
		return errors.New("not a valid semantic version")
	}
	if _, err := semver.NewVersion(s); err != nil {
		return errors.New("not a valid semantic version")
	}
	return nil
}

func checkString(v interface{}) error {
	if _, ok := v.(string); !ok {
		return errors.New("not a string")
	}
	return nil
}

// checkNumber accepts every numeric shape the manifest can arrive with:
// float64 from JSON, int/int64/float64 from YAML-sourced defaults, and
// json.Number when a caller decodes with UseNumber.
func checkNumber(v interface{}) error {
	switch n := v.(type) {
	case float64, float32, int, int32, int64:
		return nil
	case json.Number:
		if _, err := n.Float64(); err != nil {
			return errors.New("not a number")
		}
		return nil
	default:
		return errors.New("not a number")
	}
}
