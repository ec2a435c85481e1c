package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rexlang/rex/formatter"
	"github.com/rexlang/rex/suite"
)

var checkCmd = &cobra.Command{
	Use:   "check <suite.yaml>",
	Short: "Run YAML test-case suites",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		cfg, err := suite.Load(args[0])
		if err != nil {
			logger.Error("Failed to load suite file", zap.String("path", args[0]), zap.Error(err))
			os.Exit(1)
		}

		results, err := suite.Run(ctx, logger, cfg)
		if err != nil {
			logger.Error("Error running suites", zap.Error(err))
			os.Exit(1)
		}

		for _, r := range results {
			fmt.Print(formatter.RenderReport(r.Suite, r.Regex, r.Report))
			fmt.Println()
		}

		if suite.Failed(results) {
			os.Exit(1)
		}
	},
}
