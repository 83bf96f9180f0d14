package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"elms/internal/config"
	"elms/internal/dates"
	"elms/internal/msgraph"
)

var (
	outlookPushFrom   string
	outlookPushTo     string
	outlookPushDryRun bool
	outlookPushPrefix string
)

var outlookCmd = &cobra.Command{
	Use:   "outlook",
	Short: "Outlook calendar integration",
}

var outlookPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push approved leave to the Outlook calendar as all-day events",
	Args:  cobra.NoArgs,
	RunE:  runOutlookPush,
}

func init() {
	outlookPushCmd.Flags().StringVar(&outlookPushFrom, "from", "", "Start date (YYYY-MM-DD); defaults to today")
	outlookPushCmd.Flags().StringVar(&outlookPushTo, "to", "", "End date (YYYY-MM-DD); defaults to one year from now")
	outlookPushCmd.Flags().BoolVar(&outlookPushDryRun, "dry-run", false, "Print planned events without creating them")
	outlookPushCmd.Flags().StringVar(&outlookPushPrefix, "subject-prefix", "", "Subject prefix for created events (overrides config)")
	outlookCmd.AddCommand(outlookPushCmd)
}

func runOutlookPush(cmd *cobra.Command, args []string) error {
	now := time.Now()

	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	if outlookPushFrom != "" {
		d, err := dates.Parse(outlookPushFrom)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --from value %q: %v\n", outlookPushFrom, err)
			os.Exit(1)
		}
		from = d
	}
	if outlookPushTo != "" {
		d, err := dates.Parse(outlookPushTo)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --to value %q: %v\n", outlookPushTo, err)
			os.Exit(1)
		}
		to = d
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	prefix := cfg.Outlook.SubjectPrefix
	if outlookPushPrefix != "" {
		prefix = outlookPushPrefix
	}

	svc := openService()
	names := map[int]string{}
	for _, emp := range svc.Employees() {
		names[emp.ID] = emp.Name
	}

	dryTag := ""
	if outlookPushDryRun {
		dryTag = " [dry-run]"
	}
	fmt.Printf("Pushing approved leave (%s → %s)%s...\n",
		from.Format(dates.ISO), to.Format(dates.ISO), dryTag)
	fmt.Println()

	ctx := context.Background()

	tok, oauthCfg, err := msgraph.GetHTTPClient(ctx, cfg.Outlook.TenantID, cfg.Outlook.ClientID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Authentication failed: %v\n", err)
		os.Exit(1)
	}
	client := msgraph.NewClient(ctx, tok, oauthCfg)

	// Events already on the calendar; all-day ends are exclusive, so fetch
	// one day past the range.
	existing, err := client.GetCalendarView(ctx, from, to.AddDate(0, 0, 1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch calendar events: %v\n", err)
		os.Exit(1)
	}

	opts := msgraph.PushOptions{
		From:          from,
		To:            to,
		SubjectPrefix: prefix,
		Timezone:      cfg.Outlook.Timezone,
	}
	planned, result := msgraph.PlanPush(svc.Applications(), names, existing, opts)

	created := 0
	for _, event := range planned {
		if outlookPushDryRun {
			fmt.Printf("  ✓ Would create: %s (%s → %s)\n",
				event.Subject, event.Start.DateTime[:10], event.End.DateTime[:10])
			continue
		}
		if err := client.CreateEvent(ctx, event); err != nil {
			fmt.Printf("  ! Error creating %q: %v\n", event.Subject, err)
			result.Errors++
			continue
		}
		fmt.Printf("  ✓ Created:  %s\n", event.Subject)
		created++
	}

	fmt.Println()
	fmt.Println("Summary:")
	if outlookPushDryRun {
		fmt.Printf("  %d planned\n", result.Planned)
	} else {
		fmt.Printf("  %d created\n", created)
	}
	fmt.Printf("  %d skipped\n", result.Skipped)
	if result.Errors > 0 {
		fmt.Printf("  %d errors\n", result.Errors)
		os.Exit(2)
	}
	return nil
}
