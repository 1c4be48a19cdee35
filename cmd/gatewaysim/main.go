package main

import (
	"context"

	"github.com/workhub/hrms-lite/internal/config"
	"github.com/workhub/hrms-lite/internal/gatewaysim"
	"github.com/workhub/hrms-lite/internal/logger"
)

// Standalone gateway simulator, for running the client against a local
// server without the CLI wrapper.
func main() {
	ctx := context.Background()

	if err := config.LoadEnvConfig(); err != nil {
		panic(err)
	}
	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH)

	port := config.DefaultEnvConfig.APP_PORT
	logger.InfoLog(ctx, "gateway simulator listening on :%s", port)
	if err := gatewaysim.NewApp().Run(port); err != nil {
		logger.ErrorLog(ctx, "simulator stopped", err)
		panic(err)
	}
}
