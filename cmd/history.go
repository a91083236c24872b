package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/anomius/nushell/core/history"
	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd prints the stored command lines, or a single one by number.
var historyCmd = &cobra.Command{
	Use:   "history [SEQ]",
	Short: "Show the playground's command history.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		path := cfg.HistoryPath()
		if path == "" {
			return errors.New("history is disabled in the configuration")
		}

		store, err := history.Open(path)
		if err != nil {
			return err
		}
		defer store.Close()

		if len(args) == 1 {
			seq, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid history number %q", args[0])
			}
			text, err := store.Get(seq)
			if err != nil {
				return fmt.Errorf("history entry %d: %w", seq, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		}

		entries, err := store.List(historyLimit)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%5d  %s\n", e.Seq, e.Text)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "show only the newest N entries")
	rootCmd.AddCommand(historyCmd)
}
