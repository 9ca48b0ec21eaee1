package cli

import (
	"github.com/spf13/cobra"

	"github.com/defikit-labs/defikit/internal/branding"
	"github.com/defikit-labs/defikit/internal/platform/logger"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose bool
	log     *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a smart-contract integration project: it reads the
declared contract imports from ` + branding.ConfigFile() + `, generates per-protocol
interface stubs, and aggregates ABI and address registries.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		log, err = logger.New(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// projectDir resolves the optional positional directory argument, defaulting
// to the current directory.
func projectDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
