package gatewaysim

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

type employeeRequest struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

func (a *App) listEmployeesHandler(c echo.Context) error {
	a.state.mu.Lock()
	defer a.state.mu.Unlock()

	rows := a.state.sortedEmployees()
	out := make([]employeeJSON, 0, len(rows))
	for _, e := range rows {
		out = append(out, employeeToJSON(e))
	}
	return respondList(c, out, len(out))
}

func (a *App) createEmployeeHandler(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, 400, "Bad Request - Invalid data provided", nil)
	}

	a.state.mu.Lock()
	defer a.state.mu.Unlock()

	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Department = strings.TrimSpace(req.Department)

	details := map[string][]string{}
	if req.EmployeeID == "" {
		details["employee_id"] = append(details["employee_id"], "Employee ID is required and cannot be empty.")
	} else if a.state.findEmployeeByCode(req.EmployeeID) != nil {
		details["employee_id"] = append(details["employee_id"],
			fmt.Sprintf("An employee with ID '%s' already exists.", req.EmployeeID))
	}
	if req.FullName == "" {
		details["full_name"] = append(details["full_name"], "Full name is required and cannot be empty.")
	}
	switch {
	case req.Email == "":
		details["email"] = append(details["email"], "Email is required and cannot be empty.")
	case !validEmail(req.Email):
		details["email"] = append(details["email"], "Enter a valid email address.")
	case a.state.findEmployeeByEmail(req.Email) != nil:
		details["email"] = append(details["email"],
			fmt.Sprintf("An employee with email '%s' already exists.", req.Email))
	}
	if req.Department == "" {
		details["department"] = append(details["department"], "Department is required and cannot be empty.")
	}
	if len(details) > 0 {
		return respondValidation(c, details)
	}

	now := time.Now()
	row := &employeeRow{
		ID:         a.state.nextEmpID,
		Code:       req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	a.state.nextEmpID++
	a.state.employees = append(a.state.employees, row)

	return respondData(c, 201, "Employee created successfully", employeeToJSON(row))
}

func (a *App) getEmployeeHandler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, 404, "Not Found - The requested resource does not exist", nil)
	}

	a.state.mu.Lock()
	defer a.state.mu.Unlock()

	row := a.state.findEmployee(id)
	if row == nil {
		return respondError(c, 404, fmt.Sprintf("Employee with ID %d not found", id), nil)
	}
	return respondData(c, 200, "", employeeToJSON(row))
}

func (a *App) deleteEmployeeHandler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, 404, "Not Found - The requested resource does not exist", nil)
	}

	a.state.mu.Lock()
	defer a.state.mu.Unlock()

	row := a.state.findEmployee(id)
	if row == nil {
		return respondError(c, 404, fmt.Sprintf("Employee with ID %d not found", id), nil)
	}
	a.state.deleteEmployeeRow(id)
	return respondData(c, 200, fmt.Sprintf("Employee %s deleted successfully", row.Code), nil)
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s && strings.Contains(s, ".")
}
