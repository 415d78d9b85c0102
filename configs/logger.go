package configs

import "go.uber.org/zap"

// NewLogger builds the process-wide zap logger and installs it as the
// global so packages can use zap.L().
func NewLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to build logger: " + err.Error())
	}
	zap.ReplaceGlobals(logger)
	return logger
}
