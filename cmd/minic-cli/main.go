// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"minic/cmd/minic-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
