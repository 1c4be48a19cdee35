package domain

import "context"

// DateRange bounds a per-employee attendance listing. Empty strings leave the
// corresponding side open.
type DateRange struct {
	Start string
	End   string
}

// Gateway is the transport-level interface to the HRMS server of record.
type Gateway interface {
	ListEmployees(ctx context.Context) ([]Employee, error)
	CreateEmployee(ctx context.Context, e Employee) (*Employee, error)
	DeleteEmployee(ctx context.Context, code string) error

	ListAttendance(ctx context.Context) ([]AttendanceRecord, error)
	ListAttendanceFiltered(ctx context.Context, f AttendanceFilter) ([]AttendanceRecord, error)
	MarkAttendance(ctx context.Context, code, date string, status AttendanceStatus) (*AttendanceRecord, error)
	EmployeeAttendance(ctx context.Context, code string, r DateRange) (*EmployeeAttendance, error)
	AttendanceSummary(ctx context.Context) ([]AttendanceSummaryRow, error)
}
