// Package commands is the command-line presentation layer. Commands only
// read store snapshots and invoke store or gateway operations; they never
// touch state directly.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/workhub/hrms-lite/internal/config"
	"github.com/workhub/hrms-lite/internal/domain"
	"github.com/workhub/hrms-lite/internal/gateway"
	"github.com/workhub/hrms-lite/internal/logger"
	"github.com/workhub/hrms-lite/internal/store"
)

// runtime carries the per-invocation store and gateway into subcommands.
type runtime struct {
	Store *store.Store
	GW    domain.Gateway
}

func New() *cobra.Command {
	rt := &runtime{}

	rootCmd := &cobra.Command{
		Use:           "hrms",
		Short:         "HRMS Lite client: employee directory and daily attendance",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnvConfig(); err != nil {
				return err
			}
			logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH)

			gw := gateway.NewClient(
				config.DefaultEnvConfig.API_BASE_URL,
				config.DefaultEnvConfig.HTTP_TIMEOUT,
			)
			rt.GW = gw
			rt.Store = store.New(gw)
			return nil
		},
	}

	rootCmd.AddCommand(newEmployeesCmd(rt))
	rootCmd.AddCommand(newAttendanceCmd(rt))
	rootCmd.AddCommand(newSummaryCmd(rt))
	rootCmd.AddCommand(newExportCmd(rt))
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}
