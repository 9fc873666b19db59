package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/danmuck/bitctl/internal/bitfile"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [file]",
	Short: "Fully parse a container, discarding the payload",
	Long: `verify runs the complete conversion with the payload discarded.
It exercises every check bit2bin would apply: magic headers, field
tags, length bounds, alignment, and the sync word.

With no file argument the container is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, done, err := openInput(args)
		if err != nil {
			return err
		}
		defer done()

		res, err := bitfile.Convert(in, io.Discard, cmd.ErrOrStderr(), cfg.BitfileLimits())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d payload bytes (%s word order), %d meta fields\n",
			res.PayloadBytes, wordOrder(res.Swapped), len(res.Meta))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
