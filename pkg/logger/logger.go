// Package logger provides a zap-based application logger.
package logger

import "go.uber.org/zap"

// Log is the global zap logger used across the project.
var Log = zap.NewNop()

// Init configures the global logger. Anything other than "dev" gets
// the production JSON encoder.
func Init(env string) {
	var err error
	if env == "dev" {
		Log, err = zap.NewDevelopment()
	} else {
		Log, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
}

// Sync flushes buffered log entries. Call it on shutdown.
func Sync() {
	_ = Log.Sync()
}
