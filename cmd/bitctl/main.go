// Command bitctl inspects and verifies Xilinx .bit containers.
package main

import "github.com/danmuck/bitctl/cmd/bitctl/cmd"

func main() {
	cmd.Execute()
}
