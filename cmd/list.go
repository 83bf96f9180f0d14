package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"elms/internal/leave"
	"elms/internal/model"
)

var (
	listEmployee int
	listStatus   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List leave applications",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVar(&listEmployee, "employee", 0, "Only show applications for this employee id")
	listCmd.Flags().StringVar(&listStatus, "status", "", "Only show applications with this status (Pending, Approved, Rejected)")
}

func runList(cmd *cobra.Command, args []string) error {
	svc := openService()

	var apps []model.LeaveApplication
	if listEmployee != 0 {
		if _, err := svc.Employee(listEmployee); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		apps = svc.ApplicationsForEmployee(listEmployee)
	} else {
		apps = svc.Applications()
	}

	if listStatus != "" {
		var filtered []model.LeaveApplication
		for _, la := range apps {
			if la.Status == listStatus {
				filtered = append(filtered, la)
			}
		}
		apps = filtered
	}

	printApplications(svc, apps)
	return nil
}

// printApplications renders an application table with resolved employee names.
func printApplications(svc *leave.Service, apps []model.LeaveApplication) {
	if len(apps) == 0 {
		fmt.Println("No leave applications found.")
		return
	}

	fmt.Printf("%-6s %-6s %-20s %-12s %-12s %5s  %-9s %s\n",
		"ID", "Emp", "Name", "Start", "End", "Days", "Status", "Reason")
	for _, la := range apps {
		name := "Unknown"
		if emp, err := svc.Employee(la.EmpID); err == nil {
			name = emp.Name
		}
		fmt.Printf("%-6d %-6d %-20s %-12s %-12s %5d  %-9s %s\n",
			la.LeaveID, la.EmpID, name, la.StartDate, la.EndDate,
			la.DaysRequested, la.Status, la.Reason)
	}
}
