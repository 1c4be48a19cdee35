package commands

import (
	"github.com/spf13/cobra"

	"github.com/workhub/hrms-lite/internal/config"
	"github.com/workhub/hrms-lite/internal/gatewaysim"
	"github.com/workhub/hrms-lite/internal/logger"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the in-memory gateway simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			port := config.DefaultEnvConfig.APP_PORT
			logger.InfoLog(cmd.Context(), "gateway simulator listening on :%s", port)
			return gatewaysim.NewApp().Run(port)
		},
	}
}
