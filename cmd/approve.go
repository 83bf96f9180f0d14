package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var approveCmd = &cobra.Command{
	Use:   "approve <leave-id>",
	Short: "Approve a pending leave application",
	Args:  cobra.ExactArgs(1),
	RunE:  runApprove,
}

func runApprove(cmd *cobra.Command, args []string) error {
	leaveID, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid leave id %q\n", args[0])
		os.Exit(1)
	}

	svc := openService()
	if err := svc.Approve(leaveID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Approved leave %d.\n", leaveID)
	return nil
}
