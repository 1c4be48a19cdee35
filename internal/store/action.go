package store

import "github.com/workhub/hrms-lite/internal/domain"

// State is the store's snapshot: the cached collections plus operation
// bookkeeping. Collections keep server response order.
type State struct {
	Employees  []domain.Employee
	Attendance []domain.AttendanceRecord
	Loading    bool
	Err        string
}

// action is the closed set of state transitions. The interface is sealed so
// reduce can match exhaustively.
type action interface{ isAction() }

type setLoading struct{ v bool }
type setError struct{ msg string }
type setEmployees struct{ list []domain.Employee }
type setAttendance struct{ list []domain.AttendanceRecord }
type addEmployee struct{ e domain.Employee }
type deleteEmployee struct{ code string }
type upsertAttendance struct{ rec domain.AttendanceRecord }

func (setLoading) isAction()       {}
func (setError) isAction()         {}
func (setEmployees) isAction()     {}
func (setAttendance) isAction()    {}
func (addEmployee) isAction()      {}
func (deleteEmployee) isAction()   {}
func (upsertAttendance) isAction() {}

// reduce applies one action to a state and returns the next state. It never
// mutates s's slices; every change builds a fresh slice.
func reduce(s State, a action) State {
	switch a := a.(type) {
	case setLoading:
		s.Loading = a.v
	case setError:
		s.Err = a.msg
	case setEmployees:
		s.Employees = append([]domain.Employee(nil), a.list...)
	case setAttendance:
		s.Attendance = append([]domain.AttendanceRecord(nil), a.list...)
	case addEmployee:
		s.Employees = append(append([]domain.Employee(nil), s.Employees...), a.e)
	case deleteEmployee:
		employees := make([]domain.Employee, 0, len(s.Employees))
		for _, e := range s.Employees {
			if e.Code != a.code {
				employees = append(employees, e)
			}
		}
		// Cascade: drop every record referencing the deleted code.
		attendance := make([]domain.AttendanceRecord, 0, len(s.Attendance))
		for _, r := range s.Attendance {
			if r.EmployeeCode != a.code {
				attendance = append(attendance, r)
			}
		}
		s.Employees = employees
		s.Attendance = attendance
	case upsertAttendance:
		attendance := append([]domain.AttendanceRecord(nil), s.Attendance...)
		replaced := false
		for i, r := range attendance {
			// One record per (employee, date): replace in place, keep position.
			if r.EmployeeCode == a.rec.EmployeeCode && r.Date == a.rec.Date {
				attendance[i] = a.rec
				replaced = true
				break
			}
		}
		if !replaced {
			attendance = append(attendance, a.rec)
		}
		s.Attendance = attendance
	}
	return s
}
