package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance <emp-id>",
	Short: "Show an employee's balance and leave history",
	Args:  cobra.ExactArgs(1),
	RunE:  runBalance,
}

func runBalance(cmd *cobra.Command, args []string) error {
	empID, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid employee id %q\n", args[0])
		os.Exit(1)
	}

	svc := openService()
	emp, err := svc.Employee(empID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%d - %s (Balance: %d)\n", emp.ID, emp.Name, emp.LeaveBalance)
	fmt.Println()
	printApplications(svc, svc.ApplicationsForEmployee(empID))
	return nil
}
