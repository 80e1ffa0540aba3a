package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/psaab/fortiparse/pkg/config"
)

var policiesCmd = &cobra.Command{
	Use:   "policies <file>",
	Short: "List firewall policies in evaluation order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.ParseFile(args[0])
		if err != nil {
			printError(err)
			return err
		}

		policies := config.ExtractPolicies(cfg)
		if len(policies) == 0 {
			fmt.Println("no firewall policies found")
			return nil
		}
		for _, p := range policies {
			fmt.Printf("Policy %s:\n", p.ID)
			fmt.Printf("  - From: %s -> To: %s\n",
				defaulted(p.Entry.SettingString("srcintf"), "Any"),
				defaulted(p.Entry.SettingString("dstintf"), "Any"))
			fmt.Printf("  - Source: %s\n", defaulted(p.Entry.SettingString("srcaddr"), "Any"))
			fmt.Printf("  - Destination: %s\n", defaulted(p.Entry.SettingString("dstaddr"), "Any"))
			fmt.Printf("  - Action: %s\n", defaulted(p.Entry.SettingString("action"), "Unknown"))
			fmt.Printf("  - Service: %s\n", defaulted(p.Entry.SettingString("service"), "Any"))
		}
		return nil
	},
}

var interfacesCmd = &cobra.Command{
	Use:   "interfaces <file>",
	Short: "List system interfaces",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.ParseFile(args[0])
		if err != nil {
			printError(err)
			return err
		}

		ifaces := config.ExtractInterfaces(cfg)
		if len(ifaces) == 0 {
			fmt.Println("no interfaces found")
			return nil
		}
		for _, intf := range ifaces {
			fmt.Printf("Interface %s:\n", intf.Name)
			if v := intf.Entry.SettingString("ip"); v != "" {
				fmt.Printf("  - IP: %s\n", v)
			}
			if v := intf.Entry.SettingString("vdom"); v != "" {
				fmt.Printf("  - VDOM: %s\n", v)
			}
			if v := intf.Entry.SettingString("allowaccess"); v != "" {
				fmt.Printf("  - Access: %s\n", v)
			}
			if v := intf.Entry.SettingString("type"); v != "" {
				fmt.Printf("  - Type: %s\n", v)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(policiesCmd)
	rootCmd.AddCommand(interfacesCmd)
}

func defaulted(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
