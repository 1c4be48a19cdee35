package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/workhub/hrms-lite/internal/domain"
	"github.com/workhub/hrms-lite/internal/logger"
)

// Client talks to the HRMS gateway over REST and normalizes its response
// envelope. It implements domain.Gateway.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ domain.Gateway = (*Client)(nil)

// NewClient creates a gateway client for baseURL ("http://host:8000/api").
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// do issues one request and decodes the envelope. Transport problems and
// non-success envelopes both come back as errors: *ValidationError or
// *APIError when the gateway said something structured, a wrapped transport
// error otherwise.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (*envelope, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	logger.DebugLog(ctx, "gateway %s %s", method, path)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("gateway returned non-JSON response (status %d)", resp.StatusCode)
	}

	if !env.Success || resp.StatusCode >= 300 {
		if env.Error != nil {
			return nil, env.Error.toError()
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	return &env, nil
}

func (c *Client) listEmployeesWire(ctx context.Context) ([]employeeWire, error) {
	env, err := c.do(ctx, http.MethodGet, "/employees/", nil, nil)
	if err != nil {
		return nil, err
	}
	var rows []employeeWire
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		return nil, fmt.Errorf("decode employee list: %w", err)
	}
	return rows, nil
}

// resolveInternalID maps an employee code to the gateway's internal numeric
// key. The gateway exposes no code-keyed endpoints, so every code-addressed
// mutation pays one directory fetch first.
func (c *Client) resolveInternalID(ctx context.Context, code string) (int64, error) {
	rows, err := c.listEmployeesWire(ctx)
	if err != nil {
		return 0, err
	}
	for _, r := range rows {
		if r.EmployeeID == code {
			return r.ID, nil
		}
	}
	return 0, ErrEmployeeNotFound
}

func (c *Client) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := c.listEmployeesWire(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Employee, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

func (c *Client) CreateEmployee(ctx context.Context, e domain.Employee) (*domain.Employee, error) {
	body := createEmployeeBody{
		EmployeeID: e.Code,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: e.Department,
	}
	env, err := c.do(ctx, http.MethodPost, "/employees/", nil, body)
	if err != nil {
		return nil, err
	}
	var row employeeWire
	if err := json.Unmarshal(env.Data, &row); err != nil {
		return nil, fmt.Errorf("decode created employee: %w", err)
	}
	created := row.toDomain()
	return &created, nil
}

// DeleteEmployee resolves the internal key from the code, then deletes by
// key. The two steps are not atomic: a concurrent delete between them
// surfaces as the gateway's 404 rather than ErrEmployeeNotFound.
func (c *Client) DeleteEmployee(ctx context.Context, code string) error {
	id, err := c.resolveInternalID(ctx, code)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodDelete, "/employees/"+strconv.FormatInt(id, 10)+"/", nil, nil)
	return err
}

func (c *Client) ListAttendance(ctx context.Context) ([]domain.AttendanceRecord, error) {
	return c.listAttendance(ctx, nil)
}

func (c *Client) ListAttendanceFiltered(ctx context.Context, f domain.AttendanceFilter) ([]domain.AttendanceRecord, error) {
	query := url.Values{}
	if f.EmployeeCode != "" {
		id, err := c.resolveInternalID(ctx, f.EmployeeCode)
		if err != nil {
			return nil, err
		}
		query.Set("employee_id", strconv.FormatInt(id, 10))
	}
	if f.Date != "" {
		query.Set("date", f.Date)
	}
	if f.Status != "" {
		query.Set("status", string(f.Status))
	}
	return c.listAttendance(ctx, query)
}

func (c *Client) listAttendance(ctx context.Context, query url.Values) ([]domain.AttendanceRecord, error) {
	env, err := c.do(ctx, http.MethodGet, "/attendance/", query, nil)
	if err != nil {
		return nil, err
	}
	var rows []attendanceWire
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		return nil, fmt.Errorf("decode attendance list: %w", err)
	}
	out := make([]domain.AttendanceRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// MarkAttendance upserts one employee/day record in three steps: resolve the
// internal key, look for an existing row on that date, then PUT the row or
// POST a new one. The lookup and the write are separate requests, so two
// concurrent calls for the same employee/day can still race into a duplicate
// at the gateway.
func (c *Client) MarkAttendance(ctx context.Context, code, date string, status domain.AttendanceStatus) (*domain.AttendanceRecord, error) {
	id, err := c.resolveInternalID(ctx, code)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("employee_id", strconv.FormatInt(id, 10))
	query.Set("date", date)
	env, err := c.do(ctx, http.MethodGet, "/attendance/", query, nil)
	if err != nil {
		return nil, err
	}
	var existing []attendanceWire
	if err := json.Unmarshal(env.Data, &existing); err != nil {
		return nil, fmt.Errorf("decode attendance lookup: %w", err)
	}

	if len(existing) > 0 {
		env, err = c.do(ctx, http.MethodPut,
			"/attendance/"+strconv.FormatInt(existing[0].ID, 10)+"/",
			nil, updateAttendanceBody{Status: string(status)})
	} else {
		env, err = c.do(ctx, http.MethodPost, "/attendance/", nil,
			createAttendanceBody{EmployeeID: id, Date: date, Status: string(status)})
	}
	if err != nil {
		return nil, err
	}

	var row attendanceWire
	if err := json.Unmarshal(env.Data, &row); err != nil {
		return nil, fmt.Errorf("decode attendance record: %w", err)
	}
	rec := row.toDomain()
	return &rec, nil
}

func (c *Client) EmployeeAttendance(ctx context.Context, code string, r domain.DateRange) (*domain.EmployeeAttendance, error) {
	id, err := c.resolveInternalID(ctx, code)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	if r.Start != "" {
		query.Set("start_date", r.Start)
	}
	if r.End != "" {
		query.Set("end_date", r.End)
	}
	env, err := c.do(ctx, http.MethodGet, "/attendance/employee/"+strconv.FormatInt(id, 10)+"/", query, nil)
	if err != nil {
		return nil, err
	}

	var emp embeddedEmployeeWire
	if err := json.Unmarshal(env.Employee, &emp); err != nil {
		return nil, fmt.Errorf("decode employee block: %w", err)
	}
	var sum embeddedSummaryWire
	if err := json.Unmarshal(env.Summary, &sum); err != nil {
		return nil, fmt.Errorf("decode summary block: %w", err)
	}
	var rows []attendanceWire
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		return nil, fmt.Errorf("decode attendance list: %w", err)
	}

	out := &domain.EmployeeAttendance{
		Employee: domain.Employee{
			Code:       emp.EmployeeID,
			FullName:   emp.FullName,
			Department: emp.Department,
		},
		Summary: domain.AttendanceSummaryRow{
			EmployeeCode: emp.EmployeeID,
			EmployeeName: emp.FullName,
			Department:   emp.Department,
			TotalPresent: sum.TotalPresent,
			TotalAbsent:  sum.TotalAbsent,
			TotalRecords: sum.TotalRecords,
		},
	}
	for _, r := range rows {
		out.Records = append(out.Records, r.toDomain())
	}
	return out, nil
}

func (c *Client) AttendanceSummary(ctx context.Context) ([]domain.AttendanceSummaryRow, error) {
	env, err := c.do(ctx, http.MethodGet, "/attendance/summary/", nil, nil)
	if err != nil {
		return nil, err
	}
	var rows []summaryWire
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		return nil, fmt.Errorf("decode summary list: %w", err)
	}
	out := make([]domain.AttendanceSummaryRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}
