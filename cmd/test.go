package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rexlang/rex/formatter"
	"github.com/rexlang/rex/suite"
)

var (
	testFull    bool
	testExtract bool
	testJSON    bool
)

var testCmd = &cobra.Command{
	Use:   "test <pattern> <input>...",
	Short: "Test inputs against a built-in pattern",
	Args:  cobra.MinimumNArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		node, err := suite.Lookup(args[0])
		if err != nil {
			logger.Error("Unknown pattern", zap.String("pattern", args[0]), zap.Error(err))
			os.Exit(1)
		}
		inputs := args[1:]

		if testExtract {
			extractions := make([]map[string]string, 0, len(inputs))
			for _, input := range inputs {
				extractions = append(extractions, node.Extract(input))
			}
			if testJSON {
				d, err := json.MarshalIndent(extractions, "", "  ")
				if err != nil {
					logger.Error("Error marshaling extractions", zap.Error(err))
					os.Exit(1)
				}
				fmt.Println(string(d))
				return
			}
			for i, input := range inputs {
				if extractions[i] == nil {
					fmt.Printf("%q: no match\n", input)
					continue
				}
				fmt.Printf("%q: %v\n", input, extractions[i])
			}
			return
		}

		fmt.Print(formatter.RenderInputs(node, inputs, testFull))
	},
}

func init() {
	testCmd.Flags().BoolVar(&testFull, "full", false, "Require the entire input to match")
	testCmd.Flags().BoolVar(&testExtract, "extract", false, "Show capture groups of the first match")
	testCmd.Flags().BoolVar(&testJSON, "json", false, "Output extractions in JSON format")
}
