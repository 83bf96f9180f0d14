package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"elms/internal/model"
)

var (
	addID      int
	addName    string
	addBalance int
)

var employeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "Show the employee roster",
	Args:  cobra.NoArgs,
	RunE:  runEmployees,
}

var employeesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an employee to the roster",
	Args:  cobra.NoArgs,
	RunE:  runEmployeesAdd,
}

func init() {
	employeesAddCmd.Flags().IntVar(&addID, "id", 0, "Employee id")
	employeesAddCmd.Flags().StringVar(&addName, "name", "", "Display name")
	employeesAddCmd.Flags().IntVar(&addBalance, "balance", 0, "Initial leave balance in days")
	_ = employeesAddCmd.MarkFlagRequired("id")
	_ = employeesAddCmd.MarkFlagRequired("name")
	employeesCmd.AddCommand(employeesAddCmd)
}

func runEmployees(cmd *cobra.Command, args []string) error {
	svc := openService()

	fmt.Printf("%-6s %-24s %s\n", "ID", "Name", "Balance")
	for _, emp := range svc.Employees() {
		fmt.Printf("%-6d %-24s %d\n", emp.ID, emp.Name, emp.LeaveBalance)
	}
	return nil
}

func runEmployeesAdd(cmd *cobra.Command, args []string) error {
	svc := openService()

	emp := model.Employee{ID: addID, Name: addName, LeaveBalance: addBalance}
	if err := svc.AddEmployee(emp); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Added employee %d - %s (Balance: %d)\n", emp.ID, emp.Name, emp.LeaveBalance)
	return nil
}
