package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/defikit-labs/defikit/internal/branding"
	"github.com/defikit-labs/defikit/internal/scaffold"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a starter " + branding.ConfigFile(),
	Long: `Write a starter ` + branding.ConfigFile() + ` (plus README and .gitignore) into the
project directory. The config file is overwritten unconditionally; edit it to
declare the contract imports to assemble.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := projectDir(args)
		result, err := scaffold.WriteStarter(afero.NewOsFs(), dir, scaffold.NewData(dir))
		if err != nil {
			return err
		}

		for _, f := range result.Files {
			fmt.Fprintf(cmd.OutOrStdout(), "  wrote %s\n", f)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Project initialized. Edit %s, then run '%s assemble'.\n",
			branding.ConfigFile(), branding.CLIName())
		return nil
	},
}
