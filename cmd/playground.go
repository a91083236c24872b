package cmd

import (
	"io"
	"log"

	"github.com/abiosoft/readline"
	"github.com/spf13/cobra"
)

// playgroundCmd runs an interactive shell.
var playgroundCmd = &cobra.Command{
	Use:   "playground",
	Short: "Run the shell interactively.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		playgroundLogger := operationalLogger(cmd.ErrOrStderr())
		s, err := openSession("playground", true, playgroundLogger)
		if err != nil {
			return err
		}
		defer s.Close()

		rl, err := readline.NewEx(&readline.Config{
			Prompt: s.cfg.Prompt,
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		})
		if err != nil {
			return err
		}
		// Registered last so the terminal is restored first, including
		// before exec replaces the process.
		s.engine.AtExit(func() { rl.Close() })

		if s.history != nil {
			entries, err := s.history.List(s.cfg.HistoryLimit)
			if err != nil {
				playgroundLogger.Printf("loading history: %v\n", err)
			}
			for _, e := range entries {
				rl.SaveHistory(e.Text)
			}
		}

		runInteractive(s, rl, playgroundLogger)
		return nil
	},
}

func runInteractive(s *session, rl *readline.Instance, opLog *log.Logger) {
	for {
		line, err := rl.Readline()

		switch {
		case err == io.EOF:
			return // Input closed, quit.

		case err == readline.ErrInterrupt:
			// Interrupt clears line.
			continue

		case err != nil:
			opLog.Printf("Error readline: %v", err)
			continue

		case len(line) == 0:
			continue // empty line

		default:
			if s.history != nil {
				if _, err := s.history.Add(line); err != nil {
					opLog.Printf("saving history: %v\n", err)
				}
			}
			s.eval(rl.Stdout(), rl.Stderr(), line)
		}
	}
}

func init() {
	rootCmd.AddCommand(playgroundCmd)
}
