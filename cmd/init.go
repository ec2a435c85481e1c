package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rexlang/rex/suite"
)

var initPath string

// initCmd: rex init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter suite file",
	Run: func(_ *cobra.Command, _ []string) {
		path := initPath
		if path == "" {
			path = suite.DefaultPath
		}
		if err := suite.WriteDefault(path); err != nil {
			logger.Error("Error writing suite file", zap.Error(err))
			return
		}
		fmt.Printf("Suite file created: %s\n", path)
	},
}

func init() {
	initCmd.Flags().StringVarP(&initPath, "output", "o", "", "Path of the suite file to create")
}
