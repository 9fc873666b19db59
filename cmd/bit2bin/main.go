// Command bit2bin converts a Xilinx .bit container on stdin to a raw
// .bin bitstream on stdout. Metadata lines and errors go to stderr,
// so the payload can be piped or redirected directly:
//
//	bit2bin < design.bit > design.bin
//
// It takes no flags and reads no configuration.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/danmuck/bitctl/internal/bitfile"
	"github.com/danmuck/bitctl/internal/logging"
)

func main() {
	logging.ConfigureRuntime()
	in := bufio.NewReader(os.Stdin)
	if _, err := bitfile.Convert(in, os.Stdout, os.Stderr, bitfile.DefaultLimits()); err != nil {
		fmt.Fprintf(os.Stderr, "bit2bin: %v\n", err)
		os.Exit(1)
	}
}
