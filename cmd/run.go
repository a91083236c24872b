package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// runCmd evaluates one pipeline given on the command line.
var runCmd = &cobra.Command{
	Use:   "run -- PIPELINE...",
	Short: "Evaluate a pipeline and print its result.",
	Example: `  nushell run -- seq char a e
  nushell run -- 'seq char a c | to json'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		s, err := openSession("run", false, operationalLogger(cmd.ErrOrStderr()))
		if err != nil {
			return err
		}
		defer s.Close()
		s.engine.Name = "[command line]"

		if !s.eval(cmd.OutOrStdout(), cmd.ErrOrStderr(), strings.Join(args, " ")) {
			return errPipelineFailed
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
