package gatewaysim

import (
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

type attendanceCreateRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

type attendanceUpdateRequest struct {
	Status string `json:"status"`
}

func validStatus(s string) bool {
	return s == "present" || s == "absent"
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func (a *App) listAttendanceHandler(c echo.Context) error {
	a.state.mu.Lock()
	defer a.state.mu.Unlock()

	rows := a.state.attendance
	if date := c.QueryParam("date"); date != "" {
		rows = filterRows(rows, func(r *attendanceRow) bool { return r.Date == date })
	}
	if empID := c.QueryParam("employee_id"); empID != "" {
		id, err := strconv.ParseInt(empID, 10, 64)
		if err != nil {
			return respondError(c, 400, "Bad Request - Invalid data provided", nil)
		}
		rows = filterRows(rows, func(r *attendanceRow) bool { return r.EmployeeID == id })
	}
	if status := c.QueryParam("status"); status != "" {
		rows = filterRows(rows, func(r *attendanceRow) bool { return r.Status == status })
	}

	out := make([]attendanceJSON, 0, len(rows))
	for _, r := range a.state.sortedAttendance(rows) {
		if e := a.state.findEmployee(r.EmployeeID); e != nil {
			out = append(out, attendanceToJSON(r, e))
		}
	}
	return respondList(c, out, len(out))
}

func (a *App) createAttendanceHandler(c echo.Context) error {
	var req attendanceCreateRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, 400, "Bad Request - Invalid data provided", nil)
	}

	a.state.mu.Lock()
	defer a.state.mu.Unlock()

	details := map[string][]string{}
	emp := a.state.findEmployee(req.EmployeeID)
	if emp == nil {
		details["employee_id"] = append(details["employee_id"],
			fmt.Sprintf("Employee with ID %d does not exist.", req.EmployeeID))
	}
	switch {
	case req.Date == "":
		details["date"] = append(details["date"], "Date is required.")
	case !validDate(req.Date):
		details["date"] = append(details["date"], "Date has wrong format. Use one of these formats instead: YYYY-MM-DD.")
	}
	if !validStatus(req.Status) {
		details["status"] = append(details["status"], "Status must be either 'present' or 'absent'.")
	}
	if len(details) == 0 && a.state.findAttendanceByKey(req.EmployeeID, req.Date) != nil {
		details["non_field_errors"] = append(details["non_field_errors"],
			fmt.Sprintf("Attendance for employee '%s' on %s already exists.", emp.Code, req.Date))
	}
	if len(details) > 0 {
		return respondValidation(c, details)
	}

	row := &attendanceRow{
		ID:         a.state.nextAttID,
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Status:     req.Status,
		CreatedAt:  time.Now(),
	}
	a.state.nextAttID++
	a.state.attendance = append(a.state.attendance, row)

	return respondData(c, 201, "Attendance marked successfully", attendanceToJSON(row, emp))
}

func (a *App) getAttendanceHandler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, 404, "Not Found - The requested resource does not exist", nil)
	}

	a.state.mu.Lock()
	defer a.state.mu.Unlock()

	row := a.state.findAttendance(id)
	if row == nil {
		return respondError(c, 404, fmt.Sprintf("Attendance record with ID %d not found", id), nil)
	}
	return respondData(c, 200, "", attendanceToJSON(row, a.state.findEmployee(row.EmployeeID)))
}

func (a *App) updateAttendanceHandler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, 404, "Not Found - The requested resource does not exist", nil)
	}

	var req attendanceUpdateRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, 400, "Bad Request - Invalid data provided", nil)
	}

	a.state.mu.Lock()
	defer a.state.mu.Unlock()

	row := a.state.findAttendance(id)
	if row == nil {
		return respondError(c, 404, fmt.Sprintf("Attendance record with ID %d not found", id), nil)
	}
	if req.Status != "" {
		if !validStatus(req.Status) {
			return respondValidation(c, map[string][]string{
				"status": {"Status must be either 'present' or 'absent'."},
			})
		}
		row.Status = req.Status
	}
	return respondData(c, 200, "Attendance updated successfully", attendanceToJSON(row, a.state.findEmployee(row.EmployeeID)))
}

func (a *App) deleteAttendanceHandler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, 404, "Not Found - The requested resource does not exist", nil)
	}

	a.state.mu.Lock()
	defer a.state.mu.Unlock()

	if a.state.findAttendance(id) == nil {
		return respondError(c, 404, fmt.Sprintf("Attendance record with ID %d not found", id), nil)
	}
	a.state.deleteAttendanceRow(id)
	return respondData(c, 200, "Attendance record deleted successfully", nil)
}

func (a *App) employeeAttendanceHandler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("employee_pk"), 10, 64)
	if err != nil {
		return respondError(c, 404, "Not Found - The requested resource does not exist", nil)
	}

	a.state.mu.Lock()
	defer a.state.mu.Unlock()

	emp := a.state.findEmployee(id)
	if emp == nil {
		return respondError(c, 404, fmt.Sprintf("Employee with ID %d not found", id), nil)
	}

	rows := filterRows(a.state.attendance, func(r *attendanceRow) bool { return r.EmployeeID == id })
	if start := c.QueryParam("start_date"); start != "" {
		rows = filterRows(rows, func(r *attendanceRow) bool { return r.Date >= start })
	}
	if end := c.QueryParam("end_date"); end != "" {
		rows = filterRows(rows, func(r *attendanceRow) bool { return r.Date <= end })
	}

	present, absent := 0, 0
	out := make([]attendanceJSON, 0, len(rows))
	for _, r := range a.state.sortedAttendance(rows) {
		if r.Status == "present" {
			present++
		} else {
			absent++
		}
		out = append(out, attendanceToJSON(r, emp))
	}

	return c.JSON(200, map[string]interface{}{
		"success": true,
		"employee": map[string]interface{}{
			"id":          emp.ID,
			"employee_id": emp.Code,
			"full_name":   emp.FullName,
			"department":  emp.Department,
		},
		"summary": map[string]interface{}{
			"total_present": present,
			"total_absent":  absent,
			"total_records": len(out),
		},
		"data": out,
	})
}

type summaryJSON struct {
	EmployeeID   int64  `json:"employee_id"`
	EmployeeCode string `json:"employee_code"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
	TotalPresent int    `json:"total_present"`
	TotalAbsent  int    `json:"total_absent"`
	TotalRecords int    `json:"total_records"`
}

func (a *App) attendanceSummaryHandler(c echo.Context) error {
	a.state.mu.Lock()
	defer a.state.mu.Unlock()

	out := make([]summaryJSON, 0, len(a.state.employees))
	for _, emp := range a.state.sortedEmployees() {
		row := summaryJSON{
			EmployeeID:   emp.ID,
			EmployeeCode: emp.Code,
			EmployeeName: emp.FullName,
			Department:   emp.Department,
		}
		for _, r := range a.state.attendance {
			if r.EmployeeID != emp.ID {
				continue
			}
			row.TotalRecords++
			if r.Status == "present" {
				row.TotalPresent++
			} else {
				row.TotalAbsent++
			}
		}
		out = append(out, row)
	}
	return respondList(c, out, len(out))
}

func filterRows(rows []*attendanceRow, keep func(*attendanceRow) bool) []*attendanceRow {
	out := make([]*attendanceRow, 0, len(rows))
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
