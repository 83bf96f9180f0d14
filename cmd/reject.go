package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var rejectCmd = &cobra.Command{
	Use:   "reject <leave-id>",
	Short: "Reject a pending leave application",
	Args:  cobra.ExactArgs(1),
	RunE:  runReject,
}

func runReject(cmd *cobra.Command, args []string) error {
	leaveID, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid leave id %q\n", args[0])
		os.Exit(1)
	}

	svc := openService()
	if err := svc.Reject(leaveID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rejected leave %d.\n", leaveID)
	return nil
}
