package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/mailsheet/internal/config"
	"github.com/example/mailsheet/internal/logging"
	"github.com/example/mailsheet/internal/sheet"
	"github.com/example/mailsheet/internal/validate"
)

// ColumnsCmd returns the columns command, a read-only diagnostic that
// prints the detected header row and how each column is treated by the
// pipeline.
func ColumnsCmd() *cobra.Command {
	var (
		sheetName string
		keyColumn string
	)

	cmd := &cobra.Command{
		Use:   "columns <file.xlsx>",
		Short: "Show the sheet's columns and how each is validated",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

			if keyColumn == "" {
				keyColumn = cfg.Validate.KeyColumn
			}

			s, info, err := sheet.Load(args[0], sheetName)
			if err != nil {
				return err
			}
			if info.Fallback {
				fmt.Printf("requested sheet %q not found, showing %q\n", info.Requested, info.Resolved)
			}

			rules := validate.DefaultColumnRules(keyColumn)
			recipients := make(map[string]bool)
			for _, c := range validate.DefaultRecipientColumns() {
				recipients[c] = true
			}

			fmt.Printf("sheet %q: %d columns, %d data rows\n", info.Resolved, len(s.Columns), len(s.Rows))
			for _, col := range s.Columns {
				switch {
				case col == keyColumn:
					fmt.Printf("  %-12s key column\n", col)
				case recipients[col]:
					fmt.Printf("  %-12s recipient addresses\n", col)
				default:
					if rule, ok := rules[col]; ok {
						fmt.Printf("  %-12s %s\n", col, rule.Expected())
					} else {
						fmt.Printf("  %-12s unchecked\n", col)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sheetName, "sheet", "", "sheet name to inspect (default: first sheet)")
	cmd.Flags().StringVar(&keyColumn, "key-column", "", "designator column selecting and grouping rows")

	return cmd
}
