package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hft-labs/hft/internal/branding"
	"github.com/hft-labs/hft/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// logger carries leveled diagnostics for discovery and validation; user
// output goes through the command writers instead.
var logger = log.New(os.Stderr)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` validates game package manifests, resolves which installed
runtime-API version each game runs against, and lists the games discovered
under the games root.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		return err
	}
	return nil
}
