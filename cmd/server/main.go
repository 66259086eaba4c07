package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var envFile string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "zoo",
		Short:         "Zoo feeding and inventory ledger server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file loaded before reading the environment")

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newScanCmd(),
		newSetPasswordCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
