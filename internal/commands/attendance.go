package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/workhub/hrms-lite/internal/domain"
)

func newAttendanceCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attendance",
		Short: "View and mark daily attendance",
	}
	cmd.AddCommand(newAttendanceListCmd(rt))
	cmd.AddCommand(newAttendanceMarkCmd(rt))
	cmd.AddCommand(newAttendanceEmployeeCmd(rt))
	return cmd
}

func printAttendance(records []domain.AttendanceRecord) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "EMPLOYEE\tDATE\tSTATUS")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.EmployeeCode, r.Date, r.Status)
	}
	return w.Flush()
}

func newAttendanceListCmd(rt *runtime) *cobra.Command {
	var (
		date     string
		employee string
		status   string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List attendance records, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Unfiltered listing goes through the store so the cache warms;
			// filtered queries hit the gateway directly.
			if date == "" && employee == "" && status == "" {
				if err := rt.Store.Refresh(cmd.Context()); err != nil {
					return err
				}
				return printAttendance(rt.Store.Snapshot().Attendance)
			}

			records, err := rt.GW.ListAttendanceFiltered(cmd.Context(), domain.AttendanceFilter{
				Date:         date,
				EmployeeCode: employee,
				Status:       domain.AttendanceStatus(status),
			})
			if err != nil {
				return err
			}
			return printAttendance(records)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "filter by date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&employee, "employee", "", "filter by employee id")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (present|absent)")
	return cmd
}

func newAttendanceMarkCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "mark <employee-id> <date> <present|absent>",
		Short: "Mark attendance for an employee on a date",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := domain.AttendanceStatus(args[2])
			if !status.Valid() {
				return fmt.Errorf("status must be %q or %q", domain.StatusPresent, domain.StatusAbsent)
			}
			if err := rt.Store.MarkAttendance(cmd.Context(), args[0], args[1], status); err != nil {
				return err
			}
			fmt.Printf("attendance for %s on %s marked %s\n", args[0], args[1], status)
			return nil
		},
	}
}

func newAttendanceEmployeeCmd(rt *runtime) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "employee <employee-id>",
		Short: "Show one employee's attendance with totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ea, err := rt.GW.EmployeeAttendance(cmd.Context(), args[0], domain.DateRange{Start: from, End: to})
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s): present %d, absent %d, total %d\n",
				ea.Employee.FullName, ea.Employee.Code,
				ea.Summary.TotalPresent, ea.Summary.TotalAbsent, ea.Summary.TotalRecords)
			return printAttendance(ea.Records)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD)")
	return cmd
}
