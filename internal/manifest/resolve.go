package manifest

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// ResolveVersion selects the settings bundle for the highest installed API
// version compatible with the requested one, using caret-range semantics
// (^requested: same leading nonzero component, >= requested). The available
// map's keys are exact semantic-version strings; malformed keys are skipped.
//
// When no installed version satisfies the range the returned bundle is nil
// and needNewHFT is true. Callers must treat a nil bundle as a terminal
// validation failure for the manifest.
func ResolveVersion(requested string, available map[string]VersionSettings) (bundle VersionSettings, needNewHFT bool, err error) {
	rng, err := semver.NewConstraint("^" + requested)
	if err != nil {
		return nil, false, fmt.Errorf("building compatible range for apiVersion %q: %w", requested, err)
	}

	var best *semver.Version
	var bestKey string
	for key := range available {
		v, err := semver.NewVersion(key)
		if err != nil {
			continue
		}
		if !rng.Check(v) {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
			bestKey = key
		}
	}

	if best == nil {
		return nil, true, nil
	}
	return available[bestKey], false, nil
}
