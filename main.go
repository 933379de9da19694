// SPDX-License-Identifier: MPL-2.0

// Command ertkw browses and exports the ERT configuration keyword catalog.
package main

import cmd "github.com/kgreg1/ert/cmd/ertkw"

func main() {
	cmd.Execute()
}
