package model

// Leave application statuses. An application starts Pending and moves to
// Approved or Rejected exactly once; there is no way back.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// Employee is a member of the roster with a leave balance in whole days.
type Employee struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	LeaveBalance int    `json:"leave_balance"`
}

// LeaveApplication is a single leave request. Dates are calendar dates in
// ISO form (yyyy-MM-dd); DaysRequested is the inclusive day count between
// StartDate and EndDate.
type LeaveApplication struct {
	LeaveID       int    `json:"leave_id"`
	EmpID         int    `json:"emp_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Reason        string `json:"reason"`
	Status        string `json:"status"`
	DaysRequested int    `json:"days_requested"`
}

// EmployeeFile is the top-level structure stored in employees.json.
type EmployeeFile struct {
	Employees []Employee `json:"employees"`
}

// ApplicationFile is the top-level structure stored in applications.json.
type ApplicationFile struct {
	Applications []LeaveApplication `json:"applications"`
}
