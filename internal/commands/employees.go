package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/workhub/hrms-lite/internal/domain"
)

func newEmployeesCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employees",
		Short: "Manage the employee directory",
	}
	cmd.AddCommand(newEmployeesListCmd(rt))
	cmd.AddCommand(newEmployeesAddCmd(rt))
	cmd.AddCommand(newEmployeesDeleteCmd(rt))
	return cmd
}

func newEmployeesListCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.Store.Refresh(cmd.Context()); err != nil {
				return err
			}
			snap := rt.Store.Snapshot()

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tDEPARTMENT")
			for _, e := range snap.Employees {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Code, e.FullName, e.Email, e.Department)
			}
			return w.Flush()
		},
	}
}

func newEmployeesAddCmd(rt *runtime) *cobra.Command {
	var (
		code       string
		name       string
		email      string
		department string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The department picker in a UI would constrain this; the CLI
			// checks the catalog up front instead of round-tripping.
			if !domain.ValidDepartment(department) {
				return fmt.Errorf("unknown department %q (one of: %s)",
					department, strings.Join(domain.Departments, ", "))
			}

			err := rt.Store.AddEmployee(cmd.Context(), domain.Employee{
				Code:       code,
				FullName:   name,
				Email:      email,
				Department: department,
			})
			if err != nil {
				return err
			}
			fmt.Printf("employee %s added\n", code)
			return nil
		},
	}
	cmd.Flags().StringVar(&code, "id", "", "employee id (e.g. EMP001)")
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&department, "department", "", "department")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("department")
	return cmd
}

func newEmployeesDeleteCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <employee-id>",
		Short: "Delete an employee and their attendance records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.Store.DeleteEmployee(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("employee %s deleted\n", args[0])
			return nil
		},
	}
}
