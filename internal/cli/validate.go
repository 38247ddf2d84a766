package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hft-labs/hft/internal/assets"
	"github.com/hft-labs/hft/internal/hftdata"
	"github.com/hft-labs/hft/internal/manifest"
	"github.com/hft-labs/hft/internal/settings"
)

var (
	validateAssets bool
	validateJSON   bool
)

var validateCmd = &cobra.Command{
	Use:   "validate <game-dir|package.json>",
	Short: "Validate a game package manifest",
	Long: `Validate the manifest embedded in a game's package.json, apply runtime
defaults, and resolve the installed API version it will run against.
Given a directory, the conventional package.json inside it is used.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateAssets, "assets", false, "Also check for icon/screenshot/controller assets")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Output the resolved manifest as JSON")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	target := args[0]
	if info, statErr := os.Stat(target); statErr == nil && info.IsDir() {
		target = filepath.Join(target, manifest.FileName)
	}

	r, err := manifest.ParseFile(target, s)
	if err != nil {
		if re := manifest.AsRejection(err); re != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "REJECTED: %s\n", re.Reason)
			if re.NeedNewHFT {
				fmt.Fprintln(cmd.OutOrStdout(), "The game requires a newer HFT runtime than any installed version.")
			}
			return fmt.Errorf("manifest rejected: %s", re.Reason)
		}
		return err
	}

	if validateJSON {
		out, err := json.MarshalIndent(map[string]interface{}{
			"fields":          r.Fields,
			"versionSettings": r.VersionSettings,
			"basePath":        r.BasePath,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling resolved manifest: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "OK: %s (%s, apiVersion %s)\n", r.GameID(), r.GameType(), r.APIVersion())
		fmt.Fprintf(cmd.OutOrStdout(), "  basePath: %s\n", r.BasePath)
		if exe := r.GameExecutable(); exe != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "  gameExecutable: %s\n", exe)
		}
	}

	if validateAssets {
		report, err := assets.Check(assets.OSLister(), r.BasePath, r.GameType())
		if err != nil {
			return err
		}
		if len(report.Missing) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "  assets: all present")
		}
		for _, m := range report.Missing {
			fmt.Fprintf(cmd.OutOrStdout(), "  assets: missing %s\n", m)
		}
	}
	return nil
}

// loadSettings resolves the settings file location and loads it.
func loadSettings() (*manifest.Settings, error) {
	path, err := hftdata.SettingsPath()
	if err != nil {
		return nil, err
	}
	return settings.Load(path)
}
