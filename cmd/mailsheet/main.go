package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/example/mailsheet/internal/cli"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err == nil {
		slog.Debug("loaded .env file")
	}

	rootCmd := &cobra.Command{
		Use:   "mailsheet",
		Short: "mailsheet - campaign spreadsheet validator",
		Long: `mailsheet validates campaign spreadsheets: rows with a filled key
column are checked for blank required cells, per-column types, and
recipient address rules. The exit code is the pipeline status
(0 normal, 1 warning, 2 data error, 9 system error).`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cli.ValidateCmd())
	rootCmd.AddCommand(cli.ColumnsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
