package gatewaysim

import (
	"sort"
	"sync"
	"time"
)

// employeeRow mirrors the gateway's durable employee record: internal numeric
// id plus the human-assigned code.
type employeeRow struct {
	ID         int64
	Code       string
	FullName   string
	Email      string
	Department string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type attendanceRow struct {
	ID         int64
	EmployeeID int64
	Date       string
	Status     string
	CreatedAt  time.Time
}

// state is the simulator's in-memory store. One mutex guards everything;
// the traffic this serves is dev and test runs, not production load.
type state struct {
	mu         sync.Mutex
	nextEmpID  int64
	nextAttID  int64
	employees  []*employeeRow
	attendance []*attendanceRow
}

func newState() *state {
	return &state{nextEmpID: 1, nextAttID: 1}
}

func (s *state) findEmployee(id int64) *employeeRow {
	for _, e := range s.employees {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func (s *state) findEmployeeByCode(code string) *employeeRow {
	for _, e := range s.employees {
		if e.Code == code {
			return e
		}
	}
	return nil
}

func (s *state) findEmployeeByEmail(email string) *employeeRow {
	for _, e := range s.employees {
		if e.Email == email {
			return e
		}
	}
	return nil
}

func (s *state) findAttendance(id int64) *attendanceRow {
	for _, a := range s.attendance {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (s *state) findAttendanceByKey(empID int64, date string) *attendanceRow {
	for _, a := range s.attendance {
		if a.EmployeeID == empID && a.Date == date {
			return a
		}
	}
	return nil
}

// sortedEmployees returns the directory newest-first, matching the origin
// server's ordering.
func (s *state) sortedEmployees() []*employeeRow {
	out := append([]*employeeRow(nil), s.employees...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// sortedAttendance orders by date descending, then creation time descending.
func (s *state) sortedAttendance(rows []*attendanceRow) []*attendanceRow {
	out := append([]*attendanceRow(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *state) deleteEmployeeRow(id int64) {
	employees := s.employees[:0]
	for _, e := range s.employees {
		if e.ID != id {
			employees = append(employees, e)
		}
	}
	s.employees = employees

	// FK cascade: attendance rows die with their employee.
	attendance := s.attendance[:0]
	for _, a := range s.attendance {
		if a.EmployeeID != id {
			attendance = append(attendance, a)
		}
	}
	s.attendance = attendance
}

func (s *state) deleteAttendanceRow(id int64) {
	attendance := s.attendance[:0]
	for _, a := range s.attendance {
		if a.ID != id {
			attendance = append(attendance, a)
		}
	}
	s.attendance = attendance
}
