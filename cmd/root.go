package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"elms/internal/leave"
	"elms/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "elms",
	Short: "Employee Leave Management System – a minimal CLI leave tracker",
	Long: `elms is a single-binary, file-based employee leave tracker.
Employees, balances and leave applications are stored as human-readable
JSON files in ~/.elms/.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(approveCmd)
	rootCmd.AddCommand(rejectCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(employeesCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(outlookCmd)
}

// openService restores the store from ~/.elms and wraps it in the leave
// service. Storage problems degrade to an empty state inside Open, so the
// only hard failure here is an undeterminable home directory.
func openService() *leave.Service {
	base, err := storage.BaseDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return leave.NewService(leave.Open(base))
}
