package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"elms/internal/leave"
	"elms/internal/model"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all leave applications",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json, xlsx")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (required for xlsx; csv/json default to stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	svc := openService()
	apps := svc.Applications()

	switch exportFormat {
	case "json":
		data, err := json.MarshalIndent(apps, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "error encoding JSON:", err)
			os.Exit(2)
		}
		if err := writeOut(data); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	case "xlsx":
		if exportOut == "" {
			fmt.Fprintln(os.Stderr, "--out is required for xlsx export")
			os.Exit(1)
		}
		if err := writeXLSX(svc, apps, exportOut); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		fmt.Printf("Exported %d applications to %s\n", len(apps), exportOut)
	default: // csv
		if err := writeOut([]byte(renderCSV(svc, apps))); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	return nil
}

// writeOut writes data to --out, or to stdout when no file was given.
func writeOut(data []byte) error {
	if exportOut == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(exportOut, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", exportOut, err)
	}
	fmt.Printf("Exported to %s\n", exportOut)
	return nil
}

func renderCSV(svc *leave.Service, apps []model.LeaveApplication) string {
	out := "leave_id,emp_id,name,start_date,end_date,days,status,reason\n"
	for _, la := range apps {
		name := "Unknown"
		if emp, err := svc.Employee(la.EmpID); err == nil {
			name = emp.Name
		}
		out += fmt.Sprintf("%d,%d,%s,%s,%s,%d,%s,%s\n",
			la.LeaveID,
			la.EmpID,
			csvEscape(name),
			la.StartDate,
			la.EndDate,
			la.DaysRequested,
			la.Status,
			csvEscape(la.Reason),
		)
	}
	return out
}

func writeXLSX(svc *leave.Service, apps []model.LeaveApplication, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Applications"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	headers := []string{"Leave ID", "Emp ID", "Name", "Start", "End", "Days", "Status", "Reason"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for r, la := range apps {
		name := "Unknown"
		if emp, err := svc.Employee(la.EmpID); err == nil {
			name = emp.Name
		}
		values := []any{la.LeaveID, la.EmpID, name, la.StartDate, la.EndDate, la.DaysRequested, la.Status, la.Reason}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	needsQuote := false
	for _, c := range s {
		if c == ',' || c == '"' || c == '\n' || c == '\r' {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return s
	}
	// Escape internal double quotes by doubling them.
	escaped := ""
	for _, c := range s {
		if c == '"' {
			escaped += "\""
		}
		escaped += string(c)
	}
	return `"` + escaped + `"`
}
