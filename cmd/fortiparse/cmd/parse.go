package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/psaab/fortiparse/pkg/config"
)

var (
	parseOutput  string
	parseIndent  int
	parseCompact bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Convert a configuration file to JSON",
	Long: `Parses a FortiGate configuration file and writes the resulting tree
as JSON to stdout or, with --output, to a file.

Examples:
  fortiparse parse fw.conf
  fortiparse parse fw.conf -o fw.json
  fortiparse parse fw.conf --indent 4
  fortiparse parse fw.conf --compact`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "output JSON file (default: stdout)")
	parseCmd.Flags().IntVarP(&parseIndent, "indent", "i", 2, "JSON indentation width")
	parseCmd.Flags().BoolVar(&parseCompact, "compact", false, "emit compact JSON on one line")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	data, err := marshalConfigFile(args[0])
	if err != nil {
		printError(err)
		return err
	}

	if parseOutput != "" {
		if err := os.WriteFile(parseOutput, data, 0644); err != nil {
			printError(err)
			return err
		}
		fmt.Printf("Configuration saved to %s\n", parseOutput)
		return nil
	}

	os.Stdout.Write(data)
	return nil
}

// marshalConfigFile parses a configuration file and serializes it with the
// active indentation flags.
func marshalConfigFile(path string) ([]byte, error) {
	cfg, err := config.ParseFile(path)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("serialize: %w", err)
	}

	if parseCompact {
		return append(pretty.Ugly(data), '\n'), nil
	}
	return pretty.PrettyOptions(data, &pretty.Options{
		Indent: strings.Repeat(" ", parseIndent),
	}), nil
}
