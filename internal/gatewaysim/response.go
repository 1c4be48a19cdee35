package gatewaysim

import (
	"time"

	"github.com/labstack/echo/v4"
)

// errorBody is the envelope's error block: {status_code, message, details}.
type errorBody struct {
	StatusCode int         `json:"status_code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details"`
}

func respondList(c echo.Context, data interface{}, count int) error {
	return c.JSON(200, map[string]interface{}{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

func respondData(c echo.Context, status int, message string, data interface{}) error {
	body := map[string]interface{}{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	return c.JSON(status, body)
}

func respondError(c echo.Context, status int, message string, details interface{}) error {
	if details == nil {
		details = map[string]interface{}{}
	}
	return c.JSON(status, map[string]interface{}{
		"success": false,
		"error":   errorBody{StatusCode: status, Message: message, Details: details},
	})
}

func respondValidation(c echo.Context, details map[string][]string) error {
	return respondError(c, 400, "Validation failed", details)
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

type employeeJSON struct {
	ID         int64  `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

func employeeToJSON(e *employeeRow) employeeJSON {
	return employeeJSON{
		ID:         e.ID,
		EmployeeID: e.Code,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: e.Department,
		CreatedAt:  timestamp(e.CreatedAt),
		UpdatedAt:  timestamp(e.UpdatedAt),
	}
}

type attendanceJSON struct {
	ID                 int64  `json:"id"`
	EmployeeName       string `json:"employee_name"`
	EmployeeCode       string `json:"employee_code"`
	EmployeeDepartment string `json:"employee_department"`
	Date               string `json:"date"`
	Status             string `json:"status"`
	CreatedAt          string `json:"created_at"`
}

func attendanceToJSON(a *attendanceRow, e *employeeRow) attendanceJSON {
	return attendanceJSON{
		ID:                 a.ID,
		EmployeeName:       e.FullName,
		EmployeeCode:       e.Code,
		EmployeeDepartment: e.Department,
		Date:               a.Date,
		Status:             a.Status,
		CreatedAt:          timestamp(a.CreatedAt),
	}
}
