package assets

import (
	"fmt"
	"os"
)

// Lister abstracts directory listing so checks can run against a real game
// directory or a fake in tests.
type Lister interface {
	List(dir string) ([]string, error)
}

type osLister struct{}

func (osLister) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

// OSLister returns a Lister backed by os.ReadDir.
func OSLister() Lister {
	return osLister{}
}

// Accepted file names per asset kind.
var (
	iconNames       = []string{"icon.png", "icon.jpg", "icon.jpeg", "icon.svg", "icon.gif"}
	screenshotNames = []string{"screenshot.png", "screenshot.jpg", "screenshot.jpeg", "screenshot.gif"}
	controllerNames = []string{"controller.html"}
)

// controllerGameTypes are the game types expected to ship a controller page.
var controllerGameTypes = map[string]bool{
	"html": true,
}

// Report describes which assets a game directory carries.
type Report struct {
	Icon           bool
	Screenshot     bool
	ControllerPage bool

	// Missing lists recommended assets the directory lacks, one entry per
	// asset kind, naming the conventional file.
	Missing []string
}

// Check inspects a validated game's directory for its expected assets.
// gameType decides whether a controller page is expected.
func Check(l Lister, gameDir, gameType string) (*Report, error) {
	names, err := l.List(gameDir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", gameDir, err)
	}

	present := make(map[string]bool, len(names))
	for _, n := range names {
		present[n] = true
	}

	r := &Report{
		Icon:           hasAny(present, iconNames),
		Screenshot:     hasAny(present, screenshotNames),
		ControllerPage: hasAny(present, controllerNames),
	}

	if !r.Icon {
		r.Missing = append(r.Missing, iconNames[0])
	}
	if !r.Screenshot {
		r.Missing = append(r.Missing, screenshotNames[0])
	}
	if controllerGameTypes[gameType] && !r.ControllerPage {
		r.Missing = append(r.Missing, controllerNames[0])
	}
	return r, nil
}

func hasAny(present map[string]bool, candidates []string) bool {
	for _, c := range candidates {
		if present[c] {
			return true
		}
	}
	return false
}
