package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workhub/hrms-lite/internal/report"
)

func newExportCmd(rt *runtime) *cobra.Command {
	var (
		out        string
		layoutFile string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export directory, attendance, and summary to an Excel workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			layout := report.DefaultLayout()
			if layoutFile != "" {
				var err error
				if layout, err = report.LoadLayout(layoutFile); err != nil {
					return err
				}
			}

			if err := rt.Store.Refresh(cmd.Context()); err != nil {
				return err
			}
			summary, err := rt.GW.AttendanceSummary(cmd.Context())
			if err != nil {
				return err
			}

			snap := rt.Store.Snapshot()
			exporter := report.NewExporter(layout)
			if err := exporter.Export(cmd.Context(), out, snap.Employees, snap.Attendance, summary); err != nil {
				return err
			}
			fmt.Printf("report written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "hrms_report.xlsx", "output file path")
	cmd.Flags().StringVar(&layoutFile, "layout", "", "optional YAML layout file")
	return cmd
}
