package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	applyFrom   string
	applyTo     string
	applyReason string
)

var applyCmd = &cobra.Command{
	Use:   "apply <emp-id>",
	Short: "Apply for leave",
	Args:  cobra.ExactArgs(1),
	RunE:  runApply,
}

func init() {
	applyCmd.Flags().StringVar(&applyFrom, "from", "", "First day of leave (YYYY-MM-DD)")
	applyCmd.Flags().StringVar(&applyTo, "to", "", "Last day of leave (YYYY-MM-DD)")
	applyCmd.Flags().StringVar(&applyReason, "reason", "", "Reason for the leave")
	_ = applyCmd.MarkFlagRequired("from")
	_ = applyCmd.MarkFlagRequired("to")
}

func runApply(cmd *cobra.Command, args []string) error {
	empID, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid employee id %q\n", args[0])
		os.Exit(1)
	}

	svc := openService()
	la, err := svc.Apply(empID, applyFrom, applyTo, applyReason)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Applied successfully. Leave ID: %d (%d days, %s)\n",
		la.LeaveID, la.DaysRequested, la.Status)
	return nil
}
