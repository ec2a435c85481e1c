package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	timeout time.Duration

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:              "rex",
	Short:            "rex - build, inspect and test regular expressions from composable patterns",
	TraverseChildren: true, // Prioritize subcommands
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func Execute() error {
	defer func() {
		_ = logger.Sync()
	}()
	return rootCmd.Execute()
}

func init() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		panic(err)
	}

	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Timeout for suite runs")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(checkCmd)
}
