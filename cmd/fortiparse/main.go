// fortiparse converts FortiGate configuration files into structured JSON
// and provides query and exploration tooling on top of the parsed tree.
package main

import (
	"os"

	"github.com/psaab/fortiparse/cmd/fortiparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
