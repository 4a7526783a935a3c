package cmd

import (
	"github.com/spf13/cobra"
)

const AppName = "gifdump"

// Execute builds and runs the gifdump root command.
func Execute() error {
	rootCmd := &cobra.Command{
		Use:   AppName,
		Short: AppName + " - inspect GIF images from the command line",
	}

	rootCmd.AddCommand(DefineInfoCommand())
	rootCmd.AddCommand(DefineFramesCommand())
	rootCmd.AddCommand(DefineExtractCommand())

	return rootCmd.Execute()
}
