package msgraph

import (
	"fmt"
	"strings"
	"time"

	"elms/internal/dates"
	"elms/internal/model"
)

// PushResult holds counters for a push operation.
type PushResult struct {
	Planned int
	Skipped int
	Errors  int
}

// PushOptions configures a push run.
type PushOptions struct {
	From          time.Time
	To            time.Time
	SubjectPrefix string
	Timezone      string // IANA name for event dates; "" means UTC
}

// leaveCategory tags pushed events so they are recognisable in Outlook.
const leaveCategory = "elms"

// SubjectMarker returns the marker embedded in pushed event subjects, used
// to match calendar events back to leave applications.
func SubjectMarker(leaveID int) string {
	return fmt.Sprintf("(#%d)", leaveID)
}

// alreadyPushed reports whether an event for the given leave id exists.
func alreadyPushed(existing []CalendarEvent, leaveID int) bool {
	marker := SubjectMarker(leaveID)
	for _, ev := range existing {
		if !ev.IsCancelled && strings.Contains(ev.Subject, marker) {
			return true
		}
	}
	return false
}

// MapApplicationToEvent converts an approved leave application into an
// all-day Graph event. Per Graph convention the end date of an all-day
// event is exclusive, so a leave ending on the 5th produces an event ending
// on the 6th at midnight.
func MapApplicationToEvent(la model.LeaveApplication, empName, subjectPrefix, timezone string) (CalendarEvent, error) {
	start, err := dates.Parse(la.StartDate)
	if err != nil {
		return CalendarEvent{}, fmt.Errorf("parsing start date: %w", err)
	}
	end, err := dates.Parse(la.EndDate)
	if err != nil {
		return CalendarEvent{}, fmt.Errorf("parsing end date: %w", err)
	}

	tz := timezone
	if tz == "" {
		tz = "UTC"
	}

	subject := fmt.Sprintf("%s – %s %s", subjectPrefix, empName, SubjectMarker(la.LeaveID))
	event := CalendarEvent{
		Subject:  subject,
		IsAllDay: true,
		ShowAs:   "oof",
		Start: DateTimeTimeZone{
			DateTime: start.Format("2006-01-02T15:04:05"),
			TimeZone: tz,
		},
		End: DateTimeTimeZone{
			DateTime: end.AddDate(0, 0, 1).Format("2006-01-02T15:04:05"),
			TimeZone: tz,
		},
		Categories: []string{leaveCategory},
	}
	if la.Reason != "" {
		event.Body = &ItemBody{ContentType: "text", Content: la.Reason}
	}
	return event, nil
}

// overlapsRange reports whether the application's leave period intersects
// [from, to]. A zero from/to means unbounded on that side.
func overlapsRange(la model.LeaveApplication, from, to time.Time) (bool, error) {
	start, err := dates.Parse(la.StartDate)
	if err != nil {
		return false, err
	}
	end, err := dates.Parse(la.EndDate)
	if err != nil {
		return false, err
	}
	if !from.IsZero() && end.Before(from) {
		return false, nil
	}
	if !to.IsZero() && start.After(to) {
		return false, nil
	}
	return true, nil
}

// PlanPush selects the approved applications in range that have no matching
// calendar event yet and maps them to event payloads. It is pure planning —
// no network I/O — so the caller decides whether to create the events.
// names maps employee ids to display names; unknown ids get a placeholder.
func PlanPush(applications []model.LeaveApplication, names map[int]string, existing []CalendarEvent, opts PushOptions) ([]CalendarEvent, PushResult) {
	var (
		planned []CalendarEvent
		result  PushResult
	)

	for _, la := range applications {
		if la.Status != model.StatusApproved {
			continue
		}

		inRange, err := overlapsRange(la, opts.From, opts.To)
		if err != nil {
			fmt.Printf("  ! Error reading leave %d: %v\n", la.LeaveID, err)
			result.Errors++
			continue
		}
		if !inRange {
			continue
		}

		if alreadyPushed(existing, la.LeaveID) {
			fmt.Printf("  – Skipped:  leave %d (already on calendar)\n", la.LeaveID)
			result.Skipped++
			continue
		}

		name, ok := names[la.EmpID]
		if !ok {
			name = fmt.Sprintf("Employee %d", la.EmpID)
		}
		event, err := MapApplicationToEvent(la, name, opts.SubjectPrefix, opts.Timezone)
		if err != nil {
			fmt.Printf("  ! Error mapping leave %d: %v\n", la.LeaveID, err)
			result.Errors++
			continue
		}

		planned = append(planned, event)
		result.Planned++
	}

	return planned, result
}
