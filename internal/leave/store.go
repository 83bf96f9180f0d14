package leave

import (
	"fmt"
	"os"

	"elms/internal/model"
	"elms/internal/storage"
)

// Store holds the employee roster and leave applications in memory and
// persists both collections as full snapshots after every mutation.
// Access is serialized by the owning Service; Store itself is not
// safe for concurrent use.
type Store struct {
	base         string
	employees    map[int]model.Employee
	applications map[int]model.LeaveApplication
	nextLeaveID  int
}

// Open restores state from the data directory. Both collections load
// best-effort (missing or corrupt files mean "no prior state"). The next
// leave id is recomputed as max(existing ids)+1 so ids keep increasing
// across restarts. An empty roster is seeded with demo employees and
// persisted immediately, matching first-run behaviour.
func Open(base string) *Store {
	st := &Store{
		base:         base,
		employees:    storage.LoadEmployees(base),
		applications: storage.LoadApplications(base),
		nextLeaveID:  1,
	}
	for id := range st.applications {
		if id >= st.nextLeaveID {
			st.nextLeaveID = id + 1
		}
	}

	if len(st.employees) == 0 {
		st.employees[101] = model.Employee{ID: 101, Name: "Rahul Sharma", LeaveBalance: 20}
		st.employees[102] = model.Employee{ID: 102, Name: "Priya Singh", LeaveBalance: 18}
		st.employees[103] = model.Employee{ID: 103, Name: "Amit Verma", LeaveBalance: 15}
		st.Save()
	}
	return st
}

// Save writes both collections in full. Persistence is best-effort: on
// failure the in-memory state stays authoritative and a warning goes to
// stderr; the system keeps operating.
func (st *Store) Save() {
	if err := storage.SaveEmployees(st.base, st.employeeSlice()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not persist employees: %v\n", err)
	}
	if err := storage.SaveApplications(st.base, st.applicationSlice()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not persist applications: %v\n", err)
	}
}

func (st *Store) employeeSlice() []model.Employee {
	out := make([]model.Employee, 0, len(st.employees))
	for _, e := range st.employees {
		out = append(out, e)
	}
	return out
}

func (st *Store) applicationSlice() []model.LeaveApplication {
	out := make([]model.LeaveApplication, 0, len(st.applications))
	for _, a := range st.applications {
		out = append(out, a)
	}
	return out
}
