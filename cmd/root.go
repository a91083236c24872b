package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

var cfgPath string

// errPipelineFailed is returned after a pipeline error has been shown to the
// user, so it's not printed again.
var errPipelineFailed = errors.New("pipeline failed")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nushell",
	Short: "A shell for pipelines of structured data",
	Long: `A shell whose commands pass lists, records and tables to each other
instead of plain text.`,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if errors.Is(err, errPipelineFailed) {
		os.Exit(1)
	}
	cobra.CheckErr(err)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
