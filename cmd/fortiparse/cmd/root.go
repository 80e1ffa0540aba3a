package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "fortiparse",
	Short: "FortiGate configuration parser",
	Long: `fortiparse parses FortiGate CLI-style configuration files into a
structured, order-preserving JSON tree.

Commands:
  parse       Convert a configuration file to JSON
  get         Look up one path in the parsed configuration
  policies    List firewall policies in evaluation order
  interfaces  List system interfaces
  shell       Explore a configuration interactively`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		})))
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
