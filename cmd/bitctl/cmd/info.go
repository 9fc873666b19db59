package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/danmuck/bitctl/internal/bitfile"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Print container metadata and payload details",
	Long: `info parses a .bit container far enough to describe it: the
metadata fields, the declared payload length, and the sync word with
its detected word order. The bitstream body is not read.

With no file argument the container is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, done, err := openInput(args)
		if err != nil {
			return err
		}
		defer done()

		info, err := bitfile.ReadInfo(in, cfg.BitfileLimits())
		if err != nil {
			return err
		}
		printInfo(cmd.OutOrStdout(), info)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

// openInput opens the optional file argument, falling back to stdin.
func openInput(args []string) (io.Reader, func() error, error) {
	if len(args) == 0 {
		return bufio.NewReader(os.Stdin), func() error { return nil }, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}
	return bufio.NewReader(f), f.Close, nil
}

func printInfo(w io.Writer, info bitfile.Info) {
	for _, field := range info.Meta {
		fmt.Fprintf(w, "%-12s %s\n", metaLabel(field.Tag), metaText(field.Value))
	}
	fmt.Fprintf(w, "%-12s %d bytes (%d after header)\n", "payload", info.PayloadLen, info.DataLen)
	fmt.Fprintf(w, "%-12s %x (%s)\n", "sync word", info.SyncWord[:], wordOrder(info.Swapped))
}

func metaLabel(tag byte) string {
	if cfg.Info.Labels {
		if spec, ok := bitfile.LookupTag(tag); ok {
			return spec.Label
		}
	}
	return fmt.Sprintf("0x%02x", tag)
}

func metaText(value []byte) string {
	if cfg.Info.TrimTrailingNUL {
		value = bytes.TrimSuffix(value, []byte{0x00})
	}
	return string(value)
}

func wordOrder(swapped bool) string {
	if swapped {
		return "byte-swapped"
	}
	return "canonical"
}
