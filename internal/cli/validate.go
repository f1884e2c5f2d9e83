// Package cli provides the command-line surface. Commands are thin: they
// resolve configuration, call the sheet and validate packages, render the
// result, and translate the pipeline status into the process exit code.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/mailsheet/internal/config"
	"github.com/example/mailsheet/internal/logging"
	"github.com/example/mailsheet/internal/sheet"
	"github.com/example/mailsheet/internal/validate"
)

// ValidateCmd returns the validate command.
//
// Exit code is the final status value: 0 NORMAL, 1 WARNING, 2 USER_ERROR,
// 9 SYSTEM_ERROR.
func ValidateCmd() *cobra.Command {
	var (
		sheetName string
		keyColumn string
		maxRecip  int
		save      bool
		outSheet  string
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "validate <file.xlsx>",
		Short: "Validate a campaign sheet",
		Long: `Validate runs the full pipeline over one workbook sheet: rows are
kept when the key column is filled, then checked for blank required
cells, per-column types, and recipient address rules (per-cell count and
format, plus at least one valid TO address per key group).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

			if keyColumn == "" {
				keyColumn = cfg.Validate.KeyColumn
			}
			if maxRecip <= 0 {
				maxRecip = cfg.Validate.MaxRecipients
			}
			if outSheet == "" {
				outSheet = cfg.Validate.OutputSheet
			}

			status := runValidate(validateOptions{
				path:      args[0],
				sheetName: sheetName,
				keyColumn: keyColumn,
				maxRecip:  maxRecip,
				save:      save,
				outSheet:  outSheet,
				jsonOut:   jsonOut,
			})
			if status != validate.StatusNormal {
				os.Exit(int(status))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sheetName, "sheet", "", "sheet name to validate (default: first sheet)")
	cmd.Flags().StringVar(&keyColumn, "key-column", "", "designator column selecting and grouping rows")
	cmd.Flags().IntVar(&maxRecip, "max-recipients", 0, "largest allowed address count per recipient cell")
	cmd.Flags().BoolVar(&save, "save", false, "persist the filtered row set to the output sheet")
	cmd.Flags().StringVar(&outSheet, "out-sheet", "", "sheet name the filtered rows are saved to")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the result as JSON on stdout")

	return cmd
}

type validateOptions struct {
	path      string
	sheetName string
	keyColumn string
	maxRecip  int
	save      bool
	outSheet  string
	jsonOut   bool
}

// jsonReport is the machine-readable shape of one run.
type jsonReport struct {
	RunID      string               `json:"runId,omitempty"`
	Status     int                  `json:"status"`
	StatusName string               `json:"statusName"`
	State      validate.State       `json:"state,omitempty"`
	Sheet      string               `json:"sheet,omitempty"`
	Fallback   bool                 `json:"sheetFallback,omitempty"`
	Violations []validate.Violation `json:"violations,omitempty"`
	Error      string               `json:"error,omitempty"`
}

func runValidate(opts validateOptions) validate.Status {
	s, info, err := sheet.Load(opts.path, opts.sheetName)
	if err != nil {
		status := validate.StatusSystemError
		if errors.Is(err, sheet.ErrNoSheets) || errors.Is(err, sheet.ErrOpenFailed) {
			status = validate.StatusUserError
		}
		report(opts.jsonOut, jsonReport{
			Status:     int(status),
			StatusName: status.String(),
			Error:      err.Error(),
		})
		return status
	}

	pipeline := validate.New(opts.keyColumn, opts.maxRecip)
	res := pipeline.Run(s)

	status := res.Status
	if status == validate.StatusNormal && info.Fallback {
		// Degraded but continuable: the requested sheet was absent.
		status = validate.StatusWarning
	}

	logging.WithRun(res.RunID).Info("validation finished",
		"sheet", info.Resolved,
		"status", status.String(),
		"violations", len(res.Violations),
	)

	if opts.save && res.Filtered != nil {
		if err := sheet.Save(opts.path, opts.outSheet, res.Filtered); err != nil {
			status = validate.StatusSystemError
			report(opts.jsonOut, jsonReport{
				RunID:      res.RunID,
				Status:     int(status),
				StatusName: status.String(),
				State:      res.State,
				Sheet:      info.Resolved,
				Fallback:   info.Fallback,
				Violations: res.Violations,
				Error:      err.Error(),
			})
			return status
		}
	}

	report(opts.jsonOut, jsonReport{
		RunID:      res.RunID,
		Status:     int(status),
		StatusName: status.String(),
		State:      res.State,
		Sheet:      info.Resolved,
		Fallback:   info.Fallback,
		Violations: res.Violations,
		Error:      res.Err,
	})
	return status
}

// report renders the run outcome, as JSON or as a colored human summary.
func report(jsonOut bool, r jsonReport) {
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(r)
		return
	}

	statusLine := statusColor(validate.Status(r.Status)).Sprintf("%s", r.StatusName)
	if r.Sheet != "" {
		fmt.Printf("%s  sheet %q\n", statusLine, r.Sheet)
	} else {
		fmt.Println(statusLine)
	}

	if r.Fallback {
		color.Yellow("requested sheet not found, validated the first sheet instead")
	}
	if r.Error != "" {
		color.Red("%s", r.Error)
	}
	for _, v := range r.Violations {
		fmt.Println("  " + validate.FormatUserMessage(v))
	}
	if len(r.Violations) > 0 {
		fmt.Printf("%d violation(s)\n", len(r.Violations))
	}
}

func statusColor(s validate.Status) *color.Color {
	switch s {
	case validate.StatusNormal:
		return color.New(color.FgGreen)
	case validate.StatusWarning:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}
