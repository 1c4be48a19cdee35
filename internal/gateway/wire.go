package gateway

import (
	"encoding/json"
	"strconv"

	"github.com/workhub/hrms-lite/internal/domain"
)

// envelope is the gateway's response wrapper. Data stays raw until the caller
// knows the payload shape; the per-employee attendance endpoint adds the
// employee and summary blocks next to data.
type envelope struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message,omitempty"`
	Count    int             `json:"count,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
	Employee json.RawMessage `json:"employee,omitempty"`
	Summary  json.RawMessage `json:"summary,omitempty"`
	Error    *wireError      `json:"error,omitempty"`
}

type wireError struct {
	StatusCode int                        `json:"status_code"`
	Message    string                     `json:"message"`
	Details    map[string]json.RawMessage `json:"details"`
}

// toError converts the envelope error block into the typed taxonomy. Field
// groups that decode as string lists mark the failure as a validation error.
func (w *wireError) toError() error {
	fields := map[string][]string{}
	for k, raw := range w.Details {
		var msgs []string
		if err := json.Unmarshal(raw, &msgs); err == nil && len(msgs) > 0 {
			fields[k] = msgs
		}
	}
	if len(fields) > 0 {
		return &ValidationError{StatusCode: w.StatusCode, Message: w.Message, Fields: fields}
	}
	return &APIError{StatusCode: w.StatusCode, Message: w.Message}
}

// employeeWire is the gateway's employee row. ID is the internal numeric key;
// it never reaches the domain layer.
type employeeWire struct {
	ID         int64  `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

func (w employeeWire) toDomain() domain.Employee {
	return domain.Employee{
		Code:       w.EmployeeID,
		FullName:   w.FullName,
		Email:      w.Email,
		Department: w.Department,
	}
}

// attendanceWire is the gateway's attendance row. The embedded employee name
// and department are redundant client-side (the UI joins against the employee
// list) and are dropped in translation.
type attendanceWire struct {
	ID                 int64  `json:"id"`
	EmployeeName       string `json:"employee_name"`
	EmployeeCode       string `json:"employee_code"`
	EmployeeDepartment string `json:"employee_department"`
	Date               string `json:"date"`
	Status             string `json:"status"`
	CreatedAt          string `json:"created_at"`
}

func (w attendanceWire) toDomain() domain.AttendanceRecord {
	return domain.AttendanceRecord{
		ID:           strconv.FormatInt(w.ID, 10),
		EmployeeCode: w.EmployeeCode,
		Date:         w.Date,
		Status:       domain.AttendanceStatus(w.Status),
	}
}

type summaryWire struct {
	EmployeeID   int64  `json:"employee_id"`
	EmployeeCode string `json:"employee_code"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
	TotalPresent int    `json:"total_present"`
	TotalAbsent  int    `json:"total_absent"`
	TotalRecords int    `json:"total_records"`
}

func (w summaryWire) toDomain() domain.AttendanceSummaryRow {
	return domain.AttendanceSummaryRow{
		EmployeeCode: w.EmployeeCode,
		EmployeeName: w.EmployeeName,
		Department:   w.Department,
		TotalPresent: w.TotalPresent,
		TotalAbsent:  w.TotalAbsent,
		TotalRecords: w.TotalRecords,
	}
}

// embeddedEmployeeWire is the short employee block on the per-employee
// attendance endpoint.
type embeddedEmployeeWire struct {
	ID         int64  `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Department string `json:"department"`
}

type embeddedSummaryWire struct {
	TotalPresent int `json:"total_present"`
	TotalAbsent  int `json:"total_absent"`
	TotalRecords int `json:"total_records"`
}

// createEmployeeBody is the POST /employees/ payload.
type createEmployeeBody struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// createAttendanceBody is the POST /attendance/ payload. EmployeeID is the
// internal key resolved from the employee code.
type createAttendanceBody struct {
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

type updateAttendanceBody struct {
	Status string `json:"status"`
}
