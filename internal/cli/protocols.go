package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/defikit-labs/defikit/internal/protocol/writers"
)

func init() {
	rootCmd.AddCommand(protocolsCmd)
}

var protocolsCmd = &cobra.Command{
	Use:   "protocols",
	Short: "List supported protocols",
	RunE: func(cmd *cobra.Command, args []string) error {
		infos, err := writers.Catalog()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PROTOCOL\tDEPENDENCY PACK\tCONTRACTS")
		for _, info := range infos {
			pack := info.DependencyPack
			if pack == "" {
				pack = "-"
			}
			contracts := strings.Join(info.Contracts, ", ")
			if contracts == "" {
				contracts = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", info.ID, pack, contracts)
		}
		return w.Flush()
	},
}
