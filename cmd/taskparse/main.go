package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "taskparse",
		Short:   "Turn free text into structured tasks with the local engine",
		Version: Version,
	}

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(categorizeCmd())
	rootCmd.AddCommand(gcalAuthCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
