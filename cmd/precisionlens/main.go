// SPDX-License-Identifier: MIT

// Command precisionlens generates and interrogates power-method convergence
// traces. See internal/cli for the commands.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/precisionlens/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
