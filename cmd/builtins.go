package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/anomius/nushell/commands"
	"github.com/spf13/cobra"
)

// builtinsCmd lists the builtin commands.
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the builtin commands of the shell.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, sig := range commands.Builtins().Signatures() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", sig.Name, sig.Category, sig.Description)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
