package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/defikit-labs/defikit/internal/config"
	"github.com/defikit-labs/defikit/internal/engine"
	"github.com/defikit-labs/defikit/internal/protocol/writers"
)

var assembleConcurrency int

func init() {
	assembleCmd.Flags().IntVar(&assembleConcurrency, "concurrency", engine.DefaultConcurrency,
		"Maximum in-flight generator calls (0 = unbounded)")
	rootCmd.AddCommand(assembleCmd)
}

var assembleCmd = &cobra.Command{
	Use:   "assemble [dir]",
	Short: "Generate contract scaffolding from the project config",
	Long: `Read the project config, dispatch every contract import to its protocol
writer, and write the generated interface stubs plus the ABI and address
registries under contracts/. Prints the npm dependency packs the generated
project needs.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := projectDir(args)
		fsys := afero.NewOsFs()

		cfg, err := config.Load(fsys, dir)
		if err != nil {
			return err
		}

		registry, err := writers.NewRegistry(fsys, log)
		if err != nil {
			return err
		}

		orch := engine.New(fsys, registry, log, engine.WithConcurrency(assembleConcurrency))
		packs, err := orch.Run(cmd.Context(), dir, cfg.ContractImports, cfg.SolVersion, cfg.DefaultNet)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Assembled %d contract import(s).\n", len(cfg.ContractImports))
		fmt.Fprintf(out, "  %s\n", engine.ABIRegistryFile)
		fmt.Fprintf(out, "  %s\n", engine.AddressRegistryFile)

		if len(packs) > 0 {
			fmt.Fprintln(out, "\nDependency packs to install:")
			for _, pack := range packs {
				fmt.Fprintf(out, "  npm install %s\n", pack)
			}
		}
		return nil
	},
}
