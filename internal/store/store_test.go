package store

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workhub/hrms-lite/internal/domain"
	"github.com/workhub/hrms-lite/internal/gateway"
)

// fakeGateway scripts gateway behavior for store tests. Mark upserts against
// its own attendance slice the way the real adapter's lookup-then-write does.
type fakeGateway struct {
	employees  []domain.Employee
	attendance []domain.AttendanceRecord

	listEmployeesErr  error
	listAttendanceErr error
	createErr         error

	nextID      int
	createCalls int
	updateCalls int
}

var _ domain.Gateway = (*fakeGateway)(nil)

func (f *fakeGateway) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	if f.listEmployeesErr != nil {
		return nil, f.listEmployeesErr
	}
	return append([]domain.Employee(nil), f.employees...), nil
}

func (f *fakeGateway) CreateEmployee(ctx context.Context, e domain.Employee) (*domain.Employee, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.employees = append(f.employees, e)
	return &e, nil
}

func (f *fakeGateway) DeleteEmployee(ctx context.Context, code string) error {
	for i, e := range f.employees {
		if e.Code == code {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			return nil
		}
	}
	return gateway.ErrEmployeeNotFound
}

func (f *fakeGateway) ListAttendance(ctx context.Context) ([]domain.AttendanceRecord, error) {
	if f.listAttendanceErr != nil {
		return nil, f.listAttendanceErr
	}
	return append([]domain.AttendanceRecord(nil), f.attendance...), nil
}

func (f *fakeGateway) ListAttendanceFiltered(ctx context.Context, _ domain.AttendanceFilter) ([]domain.AttendanceRecord, error) {
	return f.ListAttendance(ctx)
}

func (f *fakeGateway) MarkAttendance(ctx context.Context, code, date string, status domain.AttendanceStatus) (*domain.AttendanceRecord, error) {
	found := false
	for _, e := range f.employees {
		if e.Code == code {
			found = true
		}
	}
	if !found {
		return nil, gateway.ErrEmployeeNotFound
	}
	for i, r := range f.attendance {
		if r.EmployeeCode == code && r.Date == date {
			f.updateCalls++
			f.attendance[i].Status = status
			rec := f.attendance[i]
			return &rec, nil
		}
	}
	f.createCalls++
	f.nextID++
	rec := domain.AttendanceRecord{
		ID:           strconv.Itoa(f.nextID),
		EmployeeCode: code,
		Date:         date,
		Status:       status,
	}
	f.attendance = append(f.attendance, rec)
	return &rec, nil
}

func (f *fakeGateway) EmployeeAttendance(ctx context.Context, code string, _ domain.DateRange) (*domain.EmployeeAttendance, error) {
	return nil, gateway.ErrEmployeeNotFound
}

func (f *fakeGateway) AttendanceSummary(ctx context.Context) ([]domain.AttendanceSummaryRow, error) {
	return nil, nil
}

var jane = domain.Employee{
	Code:       "EMP001",
	FullName:   "Jane Doe",
	Email:      "jane@co.com",
	Department: "Engineering",
}

func TestAddEmployee(t *testing.T) {
	t.Run("created employee lands in the cache", func(t *testing.T) {
		gw := &fakeGateway{}
		s := New(gw)

		require.NoError(t, s.AddEmployee(context.Background(), jane))

		snap := s.Snapshot()
		assert.Equal(t, []domain.Employee{jane}, snap.Employees)
		assert.Empty(t, snap.Err)
		assert.False(t, snap.Loading)
	})

	t.Run("duplicate id leaves the cache untouched", func(t *testing.T) {
		gw := &fakeGateway{employees: []domain.Employee{jane}}
		s := New(gw)
		require.NoError(t, s.Refresh(context.Background()))

		gw.createErr = errors.New("An employee with ID 'EMP001' already exists.")
		err := s.AddEmployee(context.Background(), jane)
		require.Error(t, err)

		snap := s.Snapshot()
		assert.Equal(t, []domain.Employee{jane}, snap.Employees)
		assert.Equal(t, "An employee with ID 'EMP001' already exists.", snap.Err)
	})
}

func TestMarkAttendanceUpsert(t *testing.T) {
	gw := &fakeGateway{employees: []domain.Employee{jane}}
	s := New(gw)
	require.NoError(t, s.Refresh(context.Background()))

	require.NoError(t, s.MarkAttendance(context.Background(), "EMP001", "2024-01-02", domain.StatusPresent))

	snap := s.Snapshot()
	require.Len(t, snap.Attendance, 1)
	assert.Equal(t, domain.StatusPresent, snap.Attendance[0].Status)
	assert.Equal(t, 1, gw.createCalls)
	assert.Equal(t, 0, gw.updateCalls)

	// Same employee, same day: the record is replaced, never duplicated.
	require.NoError(t, s.MarkAttendance(context.Background(), "EMP001", "2024-01-02", domain.StatusAbsent))

	snap = s.Snapshot()
	require.Len(t, snap.Attendance, 1)
	assert.Equal(t, domain.StatusAbsent, snap.Attendance[0].Status)
	assert.Equal(t, 1, gw.createCalls)
	assert.Equal(t, 1, gw.updateCalls)

	// A different day appends.
	require.NoError(t, s.MarkAttendance(context.Background(), "EMP001", "2024-01-03", domain.StatusPresent))
	assert.Len(t, s.Snapshot().Attendance, 2)
}

func TestDeleteEmployeeCascades(t *testing.T) {
	bob := domain.Employee{Code: "EMP002", FullName: "Bob Lee", Email: "bob@co.com", Department: "Sales"}
	gw := &fakeGateway{
		employees: []domain.Employee{jane, bob},
		attendance: []domain.AttendanceRecord{
			{ID: "1", EmployeeCode: "EMP001", Date: "2024-01-02", Status: domain.StatusPresent},
			{ID: "2", EmployeeCode: "EMP002", Date: "2024-01-02", Status: domain.StatusAbsent},
			{ID: "3", EmployeeCode: "EMP001", Date: "2024-01-03", Status: domain.StatusAbsent},
		},
	}
	s := New(gw)
	require.NoError(t, s.Refresh(context.Background()))

	require.NoError(t, s.DeleteEmployee(context.Background(), "EMP001"))

	snap := s.Snapshot()
	assert.Equal(t, []domain.Employee{bob}, snap.Employees)
	require.Len(t, snap.Attendance, 1)
	assert.Equal(t, "EMP002", snap.Attendance[0].EmployeeCode)

	t.Run("second delete fails without mutating state", func(t *testing.T) {
		err := s.DeleteEmployee(context.Background(), "EMP001")
		require.ErrorIs(t, err, gateway.ErrEmployeeNotFound)

		snap := s.Snapshot()
		assert.Equal(t, []domain.Employee{bob}, snap.Employees)
		assert.Len(t, snap.Attendance, 1)
		assert.Equal(t, gateway.ErrEmployeeNotFound.Error(), snap.Err)
	})
}

func TestRefresh(t *testing.T) {
	t.Run("both fetches succeed", func(t *testing.T) {
		gw := &fakeGateway{
			employees: []domain.Employee{jane},
			attendance: []domain.AttendanceRecord{
				{ID: "1", EmployeeCode: "EMP001", Date: "2024-01-02", Status: domain.StatusPresent},
			},
		}
		s := New(gw)
		require.NoError(t, s.Refresh(context.Background()))

		snap := s.Snapshot()
		assert.Len(t, snap.Employees, 1)
		assert.Len(t, snap.Attendance, 1)
		assert.Empty(t, snap.Err)
	})

	t.Run("failed employees fetch still applies attendance", func(t *testing.T) {
		gw := &fakeGateway{
			listEmployeesErr: errors.New("employees down"),
			attendance: []domain.AttendanceRecord{
				{ID: "1", EmployeeCode: "EMP001", Date: "2024-01-02", Status: domain.StatusPresent},
			},
		}
		s := New(gw)

		err := s.Refresh(context.Background())
		require.EqualError(t, err, "employees down")

		snap := s.Snapshot()
		assert.Empty(t, snap.Employees)
		assert.Len(t, snap.Attendance, 1)
		assert.Equal(t, "employees down", snap.Err)
		assert.False(t, snap.Loading)
	})

	t.Run("employees error wins when both fail", func(t *testing.T) {
		gw := &fakeGateway{
			listEmployeesErr:  errors.New("employees down"),
			listAttendanceErr: errors.New("attendance down"),
		}
		s := New(gw)

		err := s.Refresh(context.Background())
		require.EqualError(t, err, "employees down")
		assert.Equal(t, "employees down", s.Snapshot().Err)
	})

	t.Run("clears a stale error", func(t *testing.T) {
		gw := &fakeGateway{listEmployeesErr: errors.New("employees down")}
		s := New(gw)
		require.Error(t, s.Refresh(context.Background()))

		gw.listEmployeesErr = nil
		require.NoError(t, s.Refresh(context.Background()))
		assert.Empty(t, s.Snapshot().Err)
	})
}

func TestSnapshotIsolation(t *testing.T) {
	gw := &fakeGateway{employees: []domain.Employee{jane}}
	s := New(gw)
	require.NoError(t, s.Refresh(context.Background()))

	snap := s.Snapshot()
	snap.Employees[0].Code = "MUTATED"

	assert.Equal(t, "EMP001", s.Snapshot().Employees[0].Code)
}
