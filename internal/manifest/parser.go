package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// gamesPublicPath is the public URL root games are served under. Art and
// screenshot fields are rewritten relative to it.
const gamesPublicPath = "/games"

// ParseFile reads a package descriptor and parses its embedded manifest.
// Read failures are fatal (ordinary errors), matching Parse's error model.
func ParseFile(manifestPath string, s *Settings) (*Resolved, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", manifestPath, err)
	}
	return Parse(data, manifestPath, s)
}

// Parse validates and normalizes the manifest embedded in a package
// descriptor. On success it returns a fresh Resolved value; the raw bytes
// and any caller-held structures are never mutated.
//
// Recoverable problems (missing section, invalid field, unknown gameType,
// unsatisfiable apiVersion) come back as a *RejectionError so discovery of
// other games can continue. Unparseable JSON and an executable path escaping
// the game's own directory are fatal and come back as ordinary errors.
func Parse(data []byte, manifestPath string, s *Settings) (*Resolved, error) {
	section, err := extractSection(data)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, &RejectionError{Reason: fmt.Sprintf("package descriptor has no %q section", SectionKey)}
	}

	// Defaults run before validation, so a default can satisfy a
	// required-field check.
	m := section.clone()
	applyCascade(m, s)

	if err := validateRequired(m); err != nil {
		return nil, &RejectionError{Reason: err.Error()}
	}

	gameType := m.str(FieldGameType)
	if !s.KnownGameType(gameType) {
		return nil, &RejectionError{Reason: fmt.Sprintf("unrecognized gameType %q", gameType)}
	}

	requested := m.str(FieldAPIVersion)
	bundle, needNew, err := ResolveVersion(requested, s.APIVersionSettings)
	if err != nil {
		return nil, &RejectionError{Reason: err.Error()}
	}
	if bundle == nil {
		return nil, &RejectionError{
			Reason:     fmt.Sprintf("no installed runtime satisfies apiVersion %s", requested),
			NeedNewHFT: needNew,
		}
	}

	// Unreachable given the gameType checks above, but an empty gameType
	// would break per-game paths downstream.
	if gameType == "" {
		return nil, &RejectionError{Reason: "gameType is empty"}
	}

	gameID := m.str(FieldGameID)
	rewritePublicURL(m, FieldGameArtURL, gameID)
	rewritePublicURL(m, FieldScreenshotURL, gameID)

	basePath, err := filepath.Abs(filepath.Dir(manifestPath))
	if err != nil {
		return nil, fmt.Errorf("resolving base path of %s: %w", manifestPath, err)
	}

	// Security boundary: the executable must stay inside the game's own
	// directory. A violation is fatal, not a soft rejection.
	if exe := m.str(FieldGameExecutable); exe != "" {
		abs := filepath.Join(basePath, exe)
		if abs != basePath && !strings.HasPrefix(abs, basePath+string(filepath.Separator)) {
			return nil, fmt.Errorf("gameExecutable %q escapes game directory %s", exe, basePath)
		}
		m[FieldGameExecutable] = abs
	}

	return &Resolved{
		Fields:          m,
		VersionSettings: bundle,
		NeedNewHFT:      needNew,
		BasePath:        basePath,
	}, nil
}

// extractSection parses the outer package descriptor and returns the
// embedded manifest section, or nil if the section is missing or not an
// object. Outer JSON errors are fatal.
func extractSection(data []byte) (Manifest, error) {
	var pkg map[string]interface{}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("parsing package descriptor: %w", err)
	}
	section, ok := pkg[SectionKey].(map[string]interface{})
	if !ok {
		return nil, nil
	}
	return Manifest(section), nil
}

// rewritePublicURL roots a URL-valued field under the game's public path,
// e.g. "art.png" becomes "/games/<gameId>/art.png".
func rewritePublicURL(m Manifest, field, gameID string) {
	v := m.str(field)
	if v == "" {
		return
	}
	m[field] = path.Join(gamesPublicPath, gameID, v)
}
