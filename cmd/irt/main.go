// SPDX-License-Identifier: MIT

package main

import "github.com/katalvlaran/irt/internal/cli"

func main() {
	cli.Execute()
}
