package leave

import (
	"fmt"
	"sort"
	"sync"

	"elms/internal/dates"
	"elms/internal/model"
)

// Service implements the leave business rules over a Store. Every operation
// takes the mutex for its full validate-mutate-persist sequence, so no two
// mutations interleave and no reader observes a half-written state across
// the two persisted collections. Callers may invoke it from any goroutine.
type Service struct {
	mu    sync.Mutex
	store *Store
}

// NewService wraps an opened Store.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Apply validates and records a new leave application with status Pending.
// It fails with ErrNotFound for an unknown employee, ErrInvalidRange for
// malformed dates or an end before the start, and ErrInsufficientBalance
// when the employee's current balance cannot cover the requested days.
// Nothing is persisted on failure.
func (s *Service) Apply(empID int, start, end, reason string) (model.LeaveApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	emp, ok := s.store.employees[empID]
	if !ok {
		return model.LeaveApplication{}, fmt.Errorf("employee %d: %w", empID, ErrNotFound)
	}
	days, err := dates.Days(start, end)
	if err != nil {
		return model.LeaveApplication{}, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	if emp.LeaveBalance < days {
		return model.LeaveApplication{}, fmt.Errorf("%w: %d days requested, %d available", ErrInsufficientBalance, days, emp.LeaveBalance)
	}

	la := model.LeaveApplication{
		LeaveID:       s.store.nextLeaveID,
		EmpID:         empID,
		StartDate:     start,
		EndDate:       end,
		Reason:        reason,
		Status:        model.StatusPending,
		DaysRequested: days,
	}
	s.store.nextLeaveID++
	s.store.applications[la.LeaveID] = la
	s.store.Save()
	return la, nil
}

// Approve moves a pending application to Approved and deducts its days from
// the employee's balance. The balance is re-checked here: it may have
// shrunk since apply time if other approvals happened in between.
func (s *Service) Approve(leaveID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	la, ok := s.store.applications[leaveID]
	if !ok {
		return fmt.Errorf("leave %d: %w", leaveID, ErrNotFound)
	}
	if la.Status != model.StatusPending {
		return fmt.Errorf("leave %d is %s: %w", leaveID, la.Status, ErrAlreadyProcessed)
	}
	emp := s.store.employees[la.EmpID]
	if emp.LeaveBalance < la.DaysRequested {
		return fmt.Errorf("%w at approval time: %d days requested, %d available", ErrInsufficientBalance, la.DaysRequested, emp.LeaveBalance)
	}

	emp.LeaveBalance -= la.DaysRequested
	la.Status = model.StatusApproved
	s.store.employees[emp.ID] = emp
	s.store.applications[leaveID] = la
	s.store.Save()
	return nil
}

// Reject moves a pending application to Rejected. The balance is untouched.
func (s *Service) Reject(leaveID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	la, ok := s.store.applications[leaveID]
	if !ok {
		return fmt.Errorf("leave %d: %w", leaveID, ErrNotFound)
	}
	if la.Status != model.StatusPending {
		return fmt.Errorf("leave %d is %s: %w", leaveID, la.Status, ErrAlreadyProcessed)
	}

	la.Status = model.StatusRejected
	s.store.applications[leaveID] = la
	s.store.Save()
	return nil
}

// AddEmployee adds a new employee to the roster and persists it.
func (s *Service) AddEmployee(emp model.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.employees[emp.ID]; ok {
		return fmt.Errorf("employee %d already exists", emp.ID)
	}
	if emp.LeaveBalance < 0 {
		return fmt.Errorf("leave balance must not be negative")
	}
	s.store.employees[emp.ID] = emp
	s.store.Save()
	return nil
}

// Applications returns all leave applications, ordered by leave id.
func (s *Service) Applications() []model.LeaveApplication {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.store.applicationSlice()
	sort.Slice(out, func(i, j int) bool { return out[i].LeaveID < out[j].LeaveID })
	return out
}

// ApplicationsForEmployee returns the given employee's applications,
// ordered by leave id.
func (s *Service) ApplicationsForEmployee(empID int) []model.LeaveApplication {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.LeaveApplication
	for _, la := range s.store.applications {
		if la.EmpID == empID {
			out = append(out, la)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LeaveID < out[j].LeaveID })
	return out
}

// Employee looks up a single employee by id.
func (s *Service) Employee(empID int) (model.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	emp, ok := s.store.employees[empID]
	if !ok {
		return model.Employee{}, fmt.Errorf("employee %d: %w", empID, ErrNotFound)
	}
	return emp, nil
}

// Employees returns the full roster, ordered by employee id.
func (s *Service) Employees() []model.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.store.employeeSlice()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
