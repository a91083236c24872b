package cmd

import (
	"fmt"

	"github.com/anomius/nushell/core/config"
	"github.com/anomius/nushell/core/logger"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

func loadConfig() (*config.Configuration, error) {
	return config.LoadOrDefault(cfgPath)
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Explore the invocation event log.",
}

var reportCommand = &cobra.Command{
	Use:   "report",
	Short: "Show a report of events.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		config, err := loadConfig()
		if err != nil {
			return err
		}

		fd, err := config.ReadEventLog()
		if err != nil {
			return err
		}
		defer fd.Close()

		report := logger.NewReport()
		if err := logger.ReadJSONLinesLog(fd, report.Update); err != nil {
			return err
		}

		out, err := yaml.Marshal(report)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(reportCommand)
}
