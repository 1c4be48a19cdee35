package domain

// AttendanceStatus is the closed set of attendance states the gateway accepts.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
)

// Valid reports whether s is one of the accepted statuses.
func (s AttendanceStatus) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// Departments is the fixed catalog employees are assigned to.
var Departments = []string{
	"Engineering",
	"Design",
	"Marketing",
	"Sales",
	"Human Resources",
	"Finance",
	"Operations",
}

// ValidDepartment reports whether name is in the catalog.
func ValidDepartment(name string) bool {
	for _, d := range Departments {
		if d == name {
			return true
		}
	}
	return false
}

// Employee is the client-side view of an employee. Code is the human-assigned
// employee id ("EMP001"); the gateway's internal numeric key never leaves the
// transport layer.
type Employee struct {
	Code       string `json:"id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// AttendanceRecord is one employee/day attendance entry. ID is the gateway's
// opaque record id; EmployeeCode joins back to Employee.Code.
type AttendanceRecord struct {
	ID           string           `json:"id"`
	EmployeeCode string           `json:"employee_id"`
	Date         string           `json:"date"`
	Status       AttendanceStatus `json:"status"`
}

// AttendanceFilter narrows an attendance listing. Zero values mean "no filter".
type AttendanceFilter struct {
	Date         string
	EmployeeCode string
	Status       AttendanceStatus
}

// AttendanceSummaryRow aggregates one employee's attendance counts.
type AttendanceSummaryRow struct {
	EmployeeCode string `json:"employee_code"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
	TotalPresent int    `json:"total_present"`
	TotalAbsent  int    `json:"total_absent"`
	TotalRecords int    `json:"total_records"`
}

// EmployeeAttendance is the per-employee listing with its summary block.
type EmployeeAttendance struct {
	Employee Employee
	Records  []AttendanceRecord
	Summary  AttendanceSummaryRow
}
