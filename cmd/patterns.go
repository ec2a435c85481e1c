package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rexlang/rex/suite"
)

var patternsRegex bool

var patternsNameStyle = color.New(color.FgCyan, color.Bold)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the built-in patterns",
	Run: func(_ *cobra.Command, _ []string) {
		for _, name := range suite.Names() {
			fmt.Printf("%s %s\n", patternsNameStyle.Sprintf("%-18s", name), suite.Doc(name))
			if patternsRegex {
				node, err := suite.Lookup(name)
				if err != nil {
					continue
				}
				fmt.Printf("%-18s %s\n", "", node.Regex())
			}
		}
	},
}

func init() {
	patternsCmd.Flags().BoolVar(&patternsRegex, "regex", false, "Also print each pattern's regex text")
}
