// Package store holds the client-side cache of the employee directory and
// attendance log and sequences every operation against the gateway. State
// changes only through reduce, and only after the network round-trip settled.
package store

import (
	"context"
	"sync"

	"github.com/workhub/hrms-lite/internal/domain"
	"github.com/workhub/hrms-lite/internal/logger"
)

// Store is the single authority for in-memory HRMS state. Construct one per
// session with New and share it; there is no package-level instance.
type Store struct {
	gw domain.Gateway

	// opMu serializes top-level operations so two overlapping mutations
	// cannot interleave their fetch/transition halves.
	opMu sync.Mutex

	mu    sync.RWMutex
	state State
}

func New(gw domain.Gateway) *Store {
	return &Store{gw: gw}
}

// Snapshot returns a copy of the current state. The caller may keep it as
// long as it likes; later transitions never touch returned slices.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.state
	st.Employees = append([]domain.Employee(nil), s.state.Employees...)
	st.Attendance = append([]domain.AttendanceRecord(nil), s.state.Attendance...)
	return st
}

func (s *Store) dispatch(actions ...action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range actions {
		s.state = reduce(s.state, a)
	}
}

// begin marks the operation outstanding and clears any stale error.
func (s *Store) begin() {
	s.dispatch(setLoading{true}, setError{""})
}

// finish records the outcome and clears the loading flag.
func (s *Store) finish(err error) error {
	if err != nil {
		s.dispatch(setError{err.Error()}, setLoading{false})
		return err
	}
	s.dispatch(setLoading{false})
	return nil
}

// Refresh reloads both collections from the gateway. The two list calls run
// concurrently. A failed fetch leaves that collection as it was while the
// other's replace still applies; when both fail the employees error wins.
func (s *Store) Refresh(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	ctx = logger.WithOperation(ctx, "refresh")
	s.begin()

	var (
		wg         sync.WaitGroup
		employees  []domain.Employee
		attendance []domain.AttendanceRecord
		empErr     error
		attErr     error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		employees, empErr = s.gw.ListEmployees(ctx)
	}()
	go func() {
		defer wg.Done()
		attendance, attErr = s.gw.ListAttendance(ctx)
	}()
	wg.Wait()

	if empErr == nil {
		s.dispatch(setEmployees{employees})
	} else {
		logger.ErrorLog(ctx, "refresh employees", empErr)
	}
	if attErr == nil {
		s.dispatch(setAttendance{attendance})
	} else {
		logger.ErrorLog(ctx, "refresh attendance", attErr)
	}

	if empErr != nil {
		return s.finish(empErr)
	}
	return s.finish(attErr)
}

// AddEmployee creates the employee at the gateway and appends the echoed
// record on success. On failure the directory is untouched.
func (s *Store) AddEmployee(ctx context.Context, e domain.Employee) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	ctx = logger.WithOperation(ctx, "add_employee")
	s.begin()

	created, err := s.gw.CreateEmployee(ctx, e)
	if err != nil {
		return s.finish(err)
	}
	s.dispatch(addEmployee{*created})
	logger.InfoLog(ctx, "employee %s created", created.Code)
	return s.finish(nil)
}

// DeleteEmployee removes the employee at the gateway, then cascades locally:
// the employee and every attendance record carrying its code are dropped.
// Deleting an unknown code fails without mutating state.
func (s *Store) DeleteEmployee(ctx context.Context, code string) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	ctx = logger.WithOperation(ctx, "delete_employee")
	s.begin()

	if err := s.gw.DeleteEmployee(ctx, code); err != nil {
		return s.finish(err)
	}
	s.dispatch(deleteEmployee{code})
	logger.InfoLog(ctx, "employee %s deleted", code)
	return s.finish(nil)
}

// MarkAttendance upserts one employee/day record at the gateway, then mirrors
// it into the cache keyed by (employee, date) so marking the same day twice
// replaces rather than duplicates.
func (s *Store) MarkAttendance(ctx context.Context, code, date string, status domain.AttendanceStatus) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	ctx = logger.WithOperation(ctx, "mark_attendance")
	s.begin()

	rec, err := s.gw.MarkAttendance(ctx, code, date, status)
	if err != nil {
		return s.finish(err)
	}
	s.dispatch(upsertAttendance{*rec})
	logger.InfoLog(ctx, "attendance for %s on %s marked %s", code, date, status)
	return s.finish(nil)
}
