package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newSummaryCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show attendance totals for every employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := rt.GW.AttendanceSummary(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "EMPLOYEE\tNAME\tDEPARTMENT\tPRESENT\tABSENT\tTOTAL")
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
					r.EmployeeCode, r.EmployeeName, r.Department,
					r.TotalPresent, r.TotalAbsent, r.TotalRecords)
			}
			return w.Flush()
		},
	}
}
