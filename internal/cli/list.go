package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hft-labs/hft/internal/discovery"
	"github.com/hft-labs/hft/internal/hftdata"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list [games-root]",
	Short: "List games discovered under the games root",
	Long:  `Discover and validate every game package under the games root (default ~/.hft/games).`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents a discovered game for display.
type listEntry struct {
	GameID     string `json:"gameId"`
	GameType   string `json:"gameType"`
	Category   string `json:"category"`
	APIVersion string `json:"apiVersion"`
	Dir        string `json:"dir"`
}

func runList(cmd *cobra.Command, args []string) error {
	root := ""
	if len(args) == 1 {
		root = args[0]
	} else {
		var err error
		root, err = hftdata.GamesRoot()
		if err != nil {
			return fmt.Errorf("resolving games root: %w", err)
		}
	}

	s, err := loadSettings()
	if err != nil {
		return err
	}

	res, err := discovery.Discover(root, s, logger)
	if err != nil {
		return fmt.Errorf("discovering games: %w", err)
	}

	if len(res.Games) == 0 && len(res.Rejected) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No games found.")
		return nil
	}

	entries := make([]listEntry, 0, len(res.Games))
	for _, g := range res.Games {
		entries = append(entries, listEntry{
			GameID:     g.Manifest.GameID(),
			GameType:   g.Manifest.GameType(),
			Category:   g.Manifest.Category(),
			APIVersion: g.Manifest.APIVersion(),
			Dir:        g.Dir,
		})
	}

	if listJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "GAMEID\tTYPE\tCATEGORY\tAPI")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.GameID, e.GameType, e.Category, e.APIVersion)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if n := len(res.Rejected); n > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "\nSkipped %d game(s):\n", n)
		for _, r := range res.Rejected {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", r.Dir, r.Reason)
		}
	}
	return nil
}
