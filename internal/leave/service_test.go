package leave_test

import (
	"errors"
	"testing"

	"elms/internal/leave"
	"elms/internal/model"
)

func newService(t *testing.T) (*leave.Service, string) {
	t.Helper()
	base := t.TempDir()
	return leave.NewService(leave.Open(base)), base
}

func TestOpenSeedsDemoEmployees(t *testing.T) {
	svc, _ := newService(t)

	employees := svc.Employees()
	if len(employees) != 3 {
		t.Fatalf("seeded roster = %d employees, want 3", len(employees))
	}
	emp, err := svc.Employee(101)
	if err != nil {
		t.Fatalf("Employee(101): %v", err)
	}
	if emp.Name != "Rahul Sharma" || emp.LeaveBalance != 20 {
		t.Errorf("employee 101 = %+v, want Rahul Sharma / 20", emp)
	}
}

func TestApply(t *testing.T) {
	svc, _ := newService(t)

	la, err := svc.Apply(101, "2024-02-01", "2024-02-05", "family visit")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if la.LeaveID != 1 {
		t.Errorf("LeaveID = %d, want 1", la.LeaveID)
	}
	if la.Status != model.StatusPending {
		t.Errorf("Status = %q, want %q", la.Status, model.StatusPending)
	}
	if la.DaysRequested != 5 {
		t.Errorf("DaysRequested = %d, want 5", la.DaysRequested)
	}

	// Applying must not touch the balance.
	emp, _ := svc.Employee(101)
	if emp.LeaveBalance != 20 {
		t.Errorf("balance after apply = %d, want 20", emp.LeaveBalance)
	}
}

func TestApplySingleDay(t *testing.T) {
	svc, _ := newService(t)

	la, err := svc.Apply(101, "2024-01-10", "2024-01-10", "errand")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if la.DaysRequested != 1 {
		t.Errorf("DaysRequested = %d, want 1", la.DaysRequested)
	}
}

func TestApplyUnknownEmployee(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Apply(999, "2024-02-01", "2024-02-05", "x")
	if !errors.Is(err, leave.ErrNotFound) {
		t.Errorf("Apply unknown employee: err = %v, want ErrNotFound", err)
	}
	if len(svc.Applications()) != 0 {
		t.Error("failed apply must not create a record")
	}
}

func TestApplyInvalidRange(t *testing.T) {
	svc, _ := newService(t)

	tests := []struct{ start, end string }{
		{"2024-01-12", "2024-01-10"}, // end before start
		{"not-a-date", "2024-01-10"},
		{"2024-01-10", "2024-04-31"}, // impossible date
	}
	for _, tt := range tests {
		_, err := svc.Apply(101, tt.start, tt.end, "x")
		if !errors.Is(err, leave.ErrInvalidRange) {
			t.Errorf("Apply(%q, %q): err = %v, want ErrInvalidRange", tt.start, tt.end, err)
		}
	}
	if len(svc.Applications()) != 0 {
		t.Error("failed applies must not create records")
	}
}

func TestApplyInsufficientBalance(t *testing.T) {
	svc, _ := newService(t)
	if err := svc.AddEmployee(model.Employee{ID: 200, Name: "Test", LeaveBalance: 2}); err != nil {
		t.Fatal(err)
	}

	_, err := svc.Apply(200, "2024-02-01", "2024-02-03", "too long")
	if !errors.Is(err, leave.ErrInsufficientBalance) {
		t.Errorf("err = %v, want ErrInsufficientBalance", err)
	}
	if len(svc.ApplicationsForEmployee(200)) != 0 {
		t.Error("failed apply must not create a record")
	}
}

func TestApproveDeductsOnce(t *testing.T) {
	svc, _ := newService(t)

	la, err := svc.Apply(101, "2024-02-01", "2024-02-05", "family visit")
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Approve(la.LeaveID); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	emp, _ := svc.Employee(101)
	if emp.LeaveBalance != 15 {
		t.Errorf("balance after approve = %d, want 15", emp.LeaveBalance)
	}

	got := svc.ApplicationsForEmployee(101)[0]
	if got.Status != model.StatusApproved {
		t.Errorf("status = %q, want %q", got.Status, model.StatusApproved)
	}

	// Second approve must fail and must not deduct again.
	err = svc.Approve(la.LeaveID)
	if !errors.Is(err, leave.ErrAlreadyProcessed) {
		t.Errorf("second Approve: err = %v, want ErrAlreadyProcessed", err)
	}
	emp, _ = svc.Employee(101)
	if emp.LeaveBalance != 15 {
		t.Errorf("balance after double approve = %d, want 15", emp.LeaveBalance)
	}

	// Rejecting a processed application fails the same way.
	if err := svc.Reject(la.LeaveID); !errors.Is(err, leave.ErrAlreadyProcessed) {
		t.Errorf("Reject after approve: err = %v, want ErrAlreadyProcessed", err)
	}
}

func TestRejectKeepsBalance(t *testing.T) {
	svc, _ := newService(t)

	la, err := svc.Apply(101, "2024-02-01", "2024-02-05", "family visit")
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Reject(la.LeaveID); err != nil {
		t.Fatalf("Reject: %v", err)
	}

	emp, _ := svc.Employee(101)
	if emp.LeaveBalance != 20 {
		t.Errorf("balance after reject = %d, want 20", emp.LeaveBalance)
	}
	got := svc.ApplicationsForEmployee(101)[0]
	if got.Status != model.StatusRejected {
		t.Errorf("status = %q, want %q", got.Status, model.StatusRejected)
	}
}

func TestApproveUnknown(t *testing.T) {
	svc, _ := newService(t)

	if err := svc.Approve(42); !errors.Is(err, leave.ErrNotFound) {
		t.Errorf("Approve(42): err = %v, want ErrNotFound", err)
	}
	if err := svc.Reject(42); !errors.Is(err, leave.ErrNotFound) {
		t.Errorf("Reject(42): err = %v, want ErrNotFound", err)
	}
}

func TestApproveRechecksBalance(t *testing.T) {
	// Two pending applications can over-commit the balance; the second
	// approval must fail even though both applies succeeded.
	svc, _ := newService(t)
	if err := svc.AddEmployee(model.Employee{ID: 300, Name: "Test", LeaveBalance: 6}); err != nil {
		t.Fatal(err)
	}

	first, err := svc.Apply(300, "2024-03-04", "2024-03-08", "five days")
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Apply(300, "2024-03-18", "2024-03-22", "five more")
	if err != nil {
		t.Fatalf("second pending apply should succeed (no pending reservation): %v", err)
	}

	if err := svc.Approve(first.LeaveID); err != nil {
		t.Fatalf("first Approve: %v", err)
	}
	err = svc.Approve(second.LeaveID)
	if !errors.Is(err, leave.ErrInsufficientBalance) {
		t.Errorf("second Approve: err = %v, want ErrInsufficientBalance", err)
	}

	emp, _ := svc.Employee(300)
	if emp.LeaveBalance != 1 {
		t.Errorf("balance = %d, want 1", emp.LeaveBalance)
	}
	// The failed approval leaves the application pending; it can still be
	// rejected.
	if err := svc.Reject(second.LeaveID); err != nil {
		t.Errorf("Reject after failed approve: %v", err)
	}
}

func TestIDsIncreaseAcrossReload(t *testing.T) {
	svc, base := newService(t)

	first, err := svc.Apply(101, "2024-02-01", "2024-02-02", "a")
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Apply(102, "2024-02-05", "2024-02-06", "b")
	if err != nil {
		t.Fatal(err)
	}
	if second.LeaveID <= first.LeaveID {
		t.Fatalf("ids not increasing: %d then %d", first.LeaveID, second.LeaveID)
	}

	// Reopen from disk and apply a third.
	reloaded := leave.NewService(leave.Open(base))
	third, err := reloaded.Apply(103, "2024-02-10", "2024-02-11", "c")
	if err != nil {
		t.Fatal(err)
	}
	if third.LeaveID <= second.LeaveID {
		t.Errorf("id after reload = %d, want > %d", third.LeaveID, second.LeaveID)
	}
}

func TestStatePersistsAcrossReload(t *testing.T) {
	svc, base := newService(t)

	la, err := svc.Apply(101, "2024-02-01", "2024-02-05", "family visit")
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Approve(la.LeaveID); err != nil {
		t.Fatal(err)
	}

	reloaded := leave.NewService(leave.Open(base))
	emp, err := reloaded.Employee(101)
	if err != nil {
		t.Fatal(err)
	}
	if emp.LeaveBalance != 15 {
		t.Errorf("reloaded balance = %d, want 15", emp.LeaveBalance)
	}
	apps := reloaded.ApplicationsForEmployee(101)
	if len(apps) != 1 || apps[0].Status != model.StatusApproved {
		t.Errorf("reloaded applications = %+v, want one approved", apps)
	}
}

func TestAddEmployeeDuplicate(t *testing.T) {
	svc, _ := newService(t)

	err := svc.AddEmployee(model.Employee{ID: 101, Name: "Duplicate", LeaveBalance: 5})
	if err == nil {
		t.Error("AddEmployee with existing id should fail")
	}
	emp, _ := svc.Employee(101)
	if emp.Name != "Rahul Sharma" {
		t.Errorf("existing employee overwritten: %+v", emp)
	}
}

func TestApplicationsOrdering(t *testing.T) {
	svc, _ := newService(t)

	for i := 0; i < 4; i++ {
		if _, err := svc.Apply(101, "2024-05-06", "2024-05-06", "x"); err != nil {
			t.Fatal(err)
		}
	}
	apps := svc.Applications()
	if len(apps) != 4 {
		t.Fatalf("Applications = %d records, want 4", len(apps))
	}
	for i := 1; i < len(apps); i++ {
		if apps[i].LeaveID <= apps[i-1].LeaveID {
			t.Errorf("applications out of order: %d before %d", apps[i-1].LeaveID, apps[i].LeaveID)
		}
	}
}
