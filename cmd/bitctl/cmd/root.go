package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/danmuck/bitctl/internal/config"
	"github.com/danmuck/bitctl/internal/logging"
)

var (
	cfgPath string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "bitctl",
	Short: "Inspect and verify Xilinx .bit containers",
	Long: `bitctl works with the Xilinx .bit container format: it prints
container metadata and payload details, verifies that a container
converts cleanly, and manages the optional bitctl config file.

For the actual conversion use bit2bin, which streams stdin to stdout.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.ConfigureRuntime()
		if cfgPath == "" {
			cfg = config.Default()
			return nil
		}
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to a bitctl config file (TOML)")
}
