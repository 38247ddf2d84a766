package manifest

// Well-known manifest field names.
const (
	FieldGameID         = "gameId"
	FieldAPIVersion     = "apiVersion"
	FieldGameType       = "gameType"
	FieldCategory       = "category"
	FieldMinPlayers     = "minPlayers"
	FieldGameExecutable = "gameExecutable"
	FieldGameArtURL     = "gameArtUrl"
	FieldScreenshotURL  = "screenshotUrl"
)

// SectionKey is the package.json key holding the embedded manifest.
const SectionKey = "hft"

// FileName is the conventional descriptor file name inside a game directory.
const FileName = "package.json"

// Manifest holds the embedded descriptor fields. Beyond the well-known
// fields above, games may carry arbitrary string/number fields (icon paths,
// URLs) that are passed through untouched.
type Manifest map[string]interface{}

// clone returns a shallow copy so parsing never mutates caller input.
func (m Manifest) clone() Manifest {
	out := make(Manifest, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// str returns the named field as a string, or "" if absent or non-string.
func (m Manifest) str(field string) string {
	s, _ := m[field].(string)
	return s
}

// VersionSettings is the opaque settings bundle attached to an installed
// runtime-API version.
type VersionSettings map[string]interface{}

// Settings is the externally supplied configuration consumed during parsing.
// It is loaded once and never mutated, so it is safe to share between
// concurrent callers.
type Settings struct {
	// Defaults are applied to every manifest (non-overriding).
	Defaults map[string]interface{}

	// GameTypeDefaults maps gameType to per-type defaults. Its key set is
	// also the authoritative list of recognized game types.
	GameTypeDefaults map[string]map[string]interface{}

	// APIVersionSettings maps an exact semantic-version string to the
	// settings bundle for that installed runtime version.
	APIVersionSettings map[string]VersionSettings
}

// KnownGameType reports whether gameType has a per-type defaults entry.
func (s *Settings) KnownGameType(gameType string) bool {
	_, ok := s.GameTypeDefaults[gameType]
	return ok
}

// Resolved is a manifest after defaulting, validation, and version-settings
// attachment. It is a fresh value; the input Manifest is left untouched.
type Resolved struct {
	// Fields is the defaulted and rewritten manifest content.
	Fields Manifest

	// VersionSettings is the bundle for the best-matching installed API
	// version. Always non-nil on a successful parse.
	VersionSettings VersionSettings

	// NeedNewHFT is true when no installed runtime version satisfies the
	// requested apiVersion range. A parse that sets this never succeeds,
	// so it is false on every returned Resolved; the flag also travels on
	// the rejection itself.
	NeedNewHFT bool

	// BasePath is the absolute directory containing the manifest file.
	BasePath string
}

// GameID returns the validated game identifier.
func (r *Resolved) GameID() string { return r.Fields.str(FieldGameID) }

// GameType returns the validated game type.
func (r *Resolved) GameType() string { return r.Fields.str(FieldGameType) }

// APIVersion returns the requested runtime-API version.
func (r *Resolved) APIVersion() string { return r.Fields.str(FieldAPIVersion) }

// Category returns the free-form classification.
func (r *Resolved) Category() string { return r.Fields.str(FieldCategory) }

// GameExecutable returns the absolute executable path, or "" if the
// manifest declares none.
func (r *Resolved) GameExecutable() string { return r.Fields.str(FieldGameExecutable) }
