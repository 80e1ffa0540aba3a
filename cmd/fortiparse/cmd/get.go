package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/psaab/fortiparse/pkg/config"
)

var getRaw bool

var getCmd = &cobra.Command{
	Use:   "get <file> <path>",
	Short: "Look up one path in the parsed configuration",
	Long: `Parses a configuration file and prints the value at a dotted path
of the serialized JSON tree. Edit entries live under "edit".

Examples:
  fortiparse get fw.conf system.global
  fortiparse get fw.conf system.global.hostname
  fortiparse get fw.conf firewall.policy.edit.1.action
  fortiparse get fw.conf 'system.interface.edit.port1.allowaccess'`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func init() {
	getCmd.Flags().BoolVar(&getRaw, "raw", false, "print raw JSON instead of unquoted scalars")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	file, path := args[0], args[1]

	cfg, err := config.ParseFile(file)
	if err != nil {
		printError(err)
		return err
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		printError(err)
		return err
	}

	result := gjson.GetBytes(data, path)
	if !result.Exists() {
		err := fmt.Errorf("path %q not found", path)
		printError(err)
		return err
	}

	if !getRaw && result.Type == gjson.String {
		fmt.Println(result.String())
		return nil
	}
	os.Stdout.Write(pretty.PrettyOptions([]byte(result.Raw), &pretty.Options{Indent: "  "}))
	return nil
}
