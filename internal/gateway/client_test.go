package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workhub/hrms-lite/internal/domain"
)

const testTimeout = 5 * time.Second

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(srv.URL, testTimeout)
}

func employeeListResponse() string {
	return `{
		"success": true,
		"count": 2,
		"data": [
			{"id": 3, "employee_id": "EMP001", "full_name": "Jane Doe", "email": "jane@co.com", "department": "Engineering", "created_at": "2024-01-01T00:00:00Z"},
			{"id": 7, "employee_id": "EMP002", "full_name": "Bob Lee", "email": "bob@co.com", "department": "Sales", "created_at": "2024-01-02T00:00:00Z"}
		]
	}`
}

func TestListEmployees(t *testing.T) {
	t.Run("maps wire rows and drops the internal id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/employees/", r.URL.Path)
			fmt.Fprint(w, employeeListResponse())
		}))
		defer srv.Close()

		got, err := newTestClient(srv).ListEmployees(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []domain.Employee{
			{Code: "EMP001", FullName: "Jane Doe", Email: "jane@co.com", Department: "Engineering"},
			{Code: "EMP002", FullName: "Bob Lee", Email: "bob@co.com", Department: "Sales"},
		}, got)
	})

	t.Run("transport failure surfaces as an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		_, err := newTestClient(srv).ListEmployees(context.Background())
		require.Error(t, err)
	})

	t.Run("non-JSON body surfaces as an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			fmt.Fprint(w, "<html>upstream timeout</html>")
		}))
		defer srv.Close()

		_, err := newTestClient(srv).ListEmployees(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "non-JSON")
	})

	t.Run("success:false envelope is a failure regardless of status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"success": false, "error": {"status_code": 500, "message": "Internal Server Error", "details": {}}}`)
		}))
		defer srv.Close()

		_, err := newTestClient(srv).ListEmployees(context.Background())
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Internal Server Error", apiErr.Message)
	})
}

func TestCreateEmployee(t *testing.T) {
	t.Run("returns the echoed employee", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "EMP001", body["employee_id"])
			assert.Equal(t, "Jane Doe", body["full_name"])

			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"success": true, "message": "Employee created successfully",
				"data": {"id": 1, "employee_id": "EMP001", "full_name": "Jane Doe", "email": "jane@co.com", "department": "Engineering", "created_at": "2024-01-01"}}`)
		}))
		defer srv.Close()

		got, err := newTestClient(srv).CreateEmployee(context.Background(), domain.Employee{
			Code: "EMP001", FullName: "Jane Doe", Email: "jane@co.com", Department: "Engineering",
		})
		require.NoError(t, err)
		assert.Equal(t, &domain.Employee{
			Code: "EMP001", FullName: "Jane Doe", Email: "jane@co.com", Department: "Engineering",
		}, got)
	})

	t.Run("validation failure picks the first field message deterministically", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"success": false, "error": {"status_code": 400, "message": "Validation failed",
				"details": {
					"employee_id": ["An employee with ID 'EMP001' already exists."],
					"email": ["Enter a valid email address."]
				}}}`)
		}))
		defer srv.Close()

		_, err := newTestClient(srv).CreateEmployee(context.Background(), domain.Employee{Code: "EMP001"})
		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		// Field keys sort "email" before "employee_id".
		assert.Equal(t, "Enter a valid email address.", err.Error())
	})
}

func TestDeleteEmployee(t *testing.T) {
	t.Run("resolves the internal key then deletes by key", func(t *testing.T) {
		var deletedPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				fmt.Fprint(w, employeeListResponse())
			case http.MethodDelete:
				deletedPath = r.URL.Path
				fmt.Fprint(w, `{"success": true, "message": "Employee EMP002 deleted successfully"}`)
			}
		}))
		defer srv.Close()

		require.NoError(t, newTestClient(srv).DeleteEmployee(context.Background(), "EMP002"))
		assert.Equal(t, "/employees/7/", deletedPath)
	})

	t.Run("unknown code fails before any delete call", func(t *testing.T) {
		deleteCalls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodDelete {
				deleteCalls++
			}
			fmt.Fprint(w, employeeListResponse())
		}))
		defer srv.Close()

		err := newTestClient(srv).DeleteEmployee(context.Background(), "EMP999")
		require.ErrorIs(t, err, ErrEmployeeNotFound)
		assert.Zero(t, deleteCalls)
	})
}

func TestMarkAttendance(t *testing.T) {
	attendanceRow := func(id int, status string) string {
		return fmt.Sprintf(`{"id": %d, "employee_name": "Jane Doe", "employee_code": "EMP001",
			"employee_department": "Engineering", "date": "2024-01-02", "status": %q, "created_at": "2024-01-02T09:00:00Z"}`,
			id, status)
	}

	t.Run("creates when no record exists for the day", func(t *testing.T) {
		var methods []string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			methods = append(methods, r.Method+" "+r.URL.Path)
			switch {
			case r.URL.Path == "/employees/":
				fmt.Fprint(w, employeeListResponse())
			case r.Method == http.MethodGet:
				assert.Equal(t, "3", r.URL.Query().Get("employee_id"))
				assert.Equal(t, "2024-01-02", r.URL.Query().Get("date"))
				fmt.Fprint(w, `{"success": true, "count": 0, "data": []}`)
			case r.Method == http.MethodPost:
				var body map[string]interface{}
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, float64(3), body["employee_id"])
				w.WriteHeader(http.StatusCreated)
				fmt.Fprintf(w, `{"success": true, "data": %s}`, attendanceRow(11, "present"))
			}
		}))
		defer srv.Close()

		rec, err := newTestClient(srv).MarkAttendance(context.Background(), "EMP001", "2024-01-02", domain.StatusPresent)
		require.NoError(t, err)
		assert.Equal(t, &domain.AttendanceRecord{
			ID: "11", EmployeeCode: "EMP001", Date: "2024-01-02", Status: domain.StatusPresent,
		}, rec)
		assert.Equal(t, []string{
			"GET /employees/",
			"GET /attendance/",
			"POST /attendance/",
		}, methods)
	})

	t.Run("updates in place when the day already has a record", func(t *testing.T) {
		var putPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.URL.Path == "/employees/":
				fmt.Fprint(w, employeeListResponse())
			case r.Method == http.MethodGet:
				fmt.Fprintf(w, `{"success": true, "count": 1, "data": [%s]}`, attendanceRow(11, "present"))
			case r.Method == http.MethodPut:
				putPath = r.URL.Path
				var body map[string]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "absent", body["status"])
				fmt.Fprintf(w, `{"success": true, "data": %s}`, attendanceRow(11, "absent"))
			}
		}))
		defer srv.Close()

		rec, err := newTestClient(srv).MarkAttendance(context.Background(), "EMP001", "2024-01-02", domain.StatusAbsent)
		require.NoError(t, err)
		assert.Equal(t, "/attendance/11/", putPath)
		assert.Equal(t, "11", rec.ID)
		assert.Equal(t, domain.StatusAbsent, rec.Status)
	})

	t.Run("unknown employee fails with not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"success": true, "count": 0, "data": []}`)
		}))
		defer srv.Close()

		_, err := newTestClient(srv).MarkAttendance(context.Background(), "EMP999", "2024-01-02", domain.StatusPresent)
		require.ErrorIs(t, err, ErrEmployeeNotFound)
	})
}

func TestListAttendanceFiltered(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/employees/" {
			fmt.Fprint(w, employeeListResponse())
			return
		}
		assert.Equal(t, "7", r.URL.Query().Get("employee_id"))
		assert.Equal(t, "2024-01-02", r.URL.Query().Get("date"))
		assert.Equal(t, "absent", r.URL.Query().Get("status"))
		fmt.Fprint(w, `{"success": true, "count": 1, "data": [
			{"id": 4, "employee_name": "Bob Lee", "employee_code": "EMP002", "employee_department": "Sales",
			 "date": "2024-01-02", "status": "absent", "created_at": "2024-01-02T09:00:00Z"}
		]}`)
	}))
	defer srv.Close()

	got, err := newTestClient(srv).ListAttendanceFiltered(context.Background(), domain.AttendanceFilter{
		EmployeeCode: "EMP002",
		Date:         "2024-01-02",
		Status:       domain.StatusAbsent,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.AttendanceRecord{
		ID: "4", EmployeeCode: "EMP002", Date: "2024-01-02", Status: domain.StatusAbsent,
	}, got[0])
}
