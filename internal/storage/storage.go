package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"elms/internal/model"
)

const (
	employeesFile    = "employees.json"
	applicationsFile = "applications.json"
)

// BaseDir returns the root data directory (~/.elms).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".elms"), nil
}

// LoadEmployees reads the employee collection. Loading is best-effort by
// policy: a missing or unreadable file yields an empty roster, and corrupt
// JSON is backed up to <file>.corrupt with a warning so the system starts
// from "no prior state" instead of failing.
func LoadEmployees(base string) map[int]model.Employee {
	employees := map[int]model.Employee{}
	var ef model.EmployeeFile
	if !loadCollection(filepath.Join(base, employeesFile), &ef) {
		return employees
	}
	for _, e := range ef.Employees {
		employees[e.ID] = e
	}
	return employees
}

// LoadApplications reads the leave application collection under the same
// best-effort policy as LoadEmployees.
func LoadApplications(base string) map[int]model.LeaveApplication {
	applications := map[int]model.LeaveApplication{}
	var af model.ApplicationFile
	if !loadCollection(filepath.Join(base, applicationsFile), &af) {
		return applications
	}
	for _, a := range af.Applications {
		applications[a.LeaveID] = a
	}
	return applications
}

// loadCollection unmarshals path into v and reports whether it succeeded.
// Every failure path degrades to "no prior state".
func loadCollection(path string, v any) bool {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot read %s, starting empty: %v\n", path, err)
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		// Back up the corrupt file so the next save does not destroy it.
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		fmt.Fprintf(os.Stderr, "Warning: corrupt JSON in %s (backed up to %s), starting empty: %v\n", path, backupPath, err)
		return false
	}
	return true
}

// SaveEmployees atomically writes the full employee collection.
func SaveEmployees(base string, employees []model.Employee) error {
	return saveCollection(filepath.Join(base, employeesFile), model.EmployeeFile{Employees: employees})
}

// SaveApplications atomically writes the full application collection.
func SaveApplications(base string, applications []model.LeaveApplication) error {
	return saveCollection(filepath.Join(base, applicationsFile), model.ApplicationFile{Applications: applications})
}

func saveCollection(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}
