package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rexlang/rex/formatter"
	"github.com/rexlang/rex/suite"
)

var explainViz bool

var explainCmd = &cobra.Command{
	Use:   "explain [pattern]",
	Short: "Explain a built-in pattern and show its regex",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		node, err := suite.Lookup(args[0])
		if err != nil {
			logger.Error("Unknown pattern", zap.String("pattern", args[0]), zap.Error(err))
			os.Exit(1)
		}

		if explainViz {
			fmt.Println(node.Visualize())
			return
		}
		fmt.Print(formatter.RenderPatternInfo(args[0], node))
	},
}

func init() {
	explainCmd.Flags().BoolVar(&explainViz, "viz", false, "Print only the ASCII tree diagram")
}
