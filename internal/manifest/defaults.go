package manifest

// applyDefaults copies each default into the manifest only if the manifest
// does not already define that key. Shallow and non-overriding: an explicit
// value always wins over a default.
func applyDefaults(m Manifest, defaults map[string]interface{}) {
	for k, v := range defaults {
		if _, ok := m[k]; !ok {
			m[k] = v
		}
	}
}

// applyCascade applies the two default sources in order: global defaults
// first, then the per-gameType defaults keyed by the manifest's (possibly
// just-defaulted) gameType. Global defaults may therefore supply gameType
// itself and still pick up that type's defaults in the second step. An
// unknown gameType makes the second step a no-op.
func applyCascade(m Manifest, s *Settings) {
	applyDefaults(m, s.Defaults)
	if gt := m.str(FieldGameType); gt != "" {
		applyDefaults(m, s.GameTypeDefaults[gt])
	}
}
