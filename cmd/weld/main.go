package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.2.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "weld",
		Short: "Weld - declarative widget compiler",
		Long: `Weld compiles declarative widget trees (.weld.yml) into imperative Go
code that builds and wires a live widget graph against the host toolkit
and the relay component runtime.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	}

	rootCmd.AddCommand(newGenCommand())
	rootCmd.AddCommand(newCreateCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
