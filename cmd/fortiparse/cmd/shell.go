package cmd

import (
	"github.com/spf13/cobra"

	"github.com/psaab/fortiparse/pkg/cli"
	"github.com/psaab/fortiparse/pkg/configstore"
)

var shellCmd = &cobra.Command{
	Use:   "shell [file]",
	Short: "Explore a configuration interactively",
	Long: `Starts an interactive shell with tab completion over the parsed
configuration. A file given as argument is loaded on startup; further files
can be loaded with the 'load' command.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := configstore.New()
		if len(args) == 1 {
			if err := store.Load(args[0]); err != nil {
				printError(err)
				return err
			}
		}
		return cli.New(store).Run()
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
