package config

import (
	"github.com/MonkyMars/gecho"
)

var logger *gecho.Logger

// InitializeLogger builds the process-wide logger, honoring LOG_LEVEL. Caller
// info is enabled so startup and database errors point at their origin.
func InitializeLogger() *gecho.Logger {
	logger = gecho.NewLogger(gecho.NewConfig(
		gecho.WithShowCaller(true),
		gecho.WithLogLevel(gecho.ParseLogLevel(GetLogLevel())),
	))
	return logger
}

// GetLogger returns the process-wide logger, initializing it on first use so
// early database setup can log before main wires everything up.
func GetLogger() *gecho.Logger {
	if logger == nil {
		return InitializeLogger()
	}
	return logger
}
