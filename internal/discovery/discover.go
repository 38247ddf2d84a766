package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/hft-labs/hft/internal/manifest"
)

// Game is a successfully validated game found under the games root.
type Game struct {
	Dir      string
	Manifest *manifest.Resolved
}

// Rejection records a game that was skipped and why.
type Rejection struct {
	Dir        string
	Reason     string
	NeedNewHFT bool
}

// Result is the outcome of a discovery walk.
type Result struct {
	Games    []Game
	Rejected []Rejection
}

// Discover scans the immediate children of gamesRoot. Every child directory
// containing a package.json is treated as a game candidate and parsed;
// rejected manifests are logged at warn level and collected, while fatal
// faults propagate and abort the walk. Games come back sorted by gameId.
func Discover(gamesRoot string, s *manifest.Settings, logger *log.Logger) (*Result, error) {
	if logger == nil {
		logger = log.Default()
	}

	entries, err := os.ReadDir(gamesRoot)
	if err != nil {
		return nil, fmt.Errorf("reading games root %s: %w", gamesRoot, err)
	}

	res := &Result{}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(gamesRoot, e.Name())
		pkgPath := filepath.Join(dir, manifest.FileName)
		if _, err := os.Stat(pkgPath); err != nil {
			if os.IsNotExist(err) {
				// Not a game directory.
				continue
			}
			return nil, fmt.Errorf("checking %s: %w", pkgPath, err)
		}

		r, err := manifest.ParseFile(pkgPath, s)
		if err != nil {
			if re := manifest.AsRejection(err); re != nil {
				logger.Warn("skipping game",
					"dir", dir,
					"reason", re.Reason,
					"needNewHFT", re.NeedNewHFT)
				res.Rejected = append(res.Rejected, Rejection{
					Dir:        dir,
					Reason:     re.Reason,
					NeedNewHFT: re.NeedNewHFT,
				})
				continue
			}
			return nil, err
		}
		res.Games = append(res.Games, Game{Dir: dir, Manifest: r})
	}

	sort.Slice(res.Games, func(i, j int) bool {
		return res.Games[i].Manifest.GameID() < res.Games[j].Manifest.GameID()
	})
	return res, nil
}
