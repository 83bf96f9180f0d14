package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"elms/internal/model"
)

var reportFormat string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show leave usage aggregated per employee",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "md", "Output format: md, csv, json")
}

func runReport(cmd *cobra.Command, args []string) error {
	svc := openService()

	// Aggregate approved and pending days per employee.
	approved := map[int]int{}
	pending := map[int]int{}
	for _, la := range svc.Applications() {
		switch la.Status {
		case model.StatusApproved:
			approved[la.EmpID] += la.DaysRequested
		case model.StatusPending:
			pending[la.EmpID] += la.DaysRequested
		}
	}

	employees := svc.Employees()

	switch reportFormat {
	case "csv":
		fmt.Println("emp_id,name,approved_days,pending_days,balance")
		for _, emp := range employees {
			fmt.Printf("%d,%s,%d,%d,%d\n",
				emp.ID, csvEscape(emp.Name), approved[emp.ID], pending[emp.ID], emp.LeaveBalance)
		}
	case "json":
		fmt.Println("[")
		for i, emp := range employees {
			comma := ","
			if i == len(employees)-1 {
				comma = ""
			}
			fmt.Printf("  {\"emp_id\": %d, \"name\": %q, \"approved_days\": %d, \"pending_days\": %d, \"balance\": %d}%s\n",
				emp.ID, emp.Name, approved[emp.ID], pending[emp.ID], emp.LeaveBalance, comma)
		}
		fmt.Println("]")
	default: // md
		fmt.Printf("%-6s %-24s %8s %8s %8s\n", "ID", "Name", "Approved", "Pending", "Balance")
		fmt.Println("--------------------------------------------------------")
		for _, emp := range employees {
			fmt.Printf("%-6d %-24s %8d %8d %8d\n",
				emp.ID, emp.Name, approved[emp.ID], pending[emp.ID], emp.LeaveBalance)
		}
	}

	return nil
}
