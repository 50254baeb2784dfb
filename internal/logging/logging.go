// Package logging provides a single shared github.com/op/go-logging
// logger for the rest of the module, configured once at process start.
package logging

import (
	"os"

	"github.com/op/go-logging"
)

var log = newLogger()

func newLogger() *logging.Logger {
	l := logging.MustGetLogger("bitengine")

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{shortfunc} > %{message}`,
	)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")

	logging.SetBackend(leveled)
	return l
}

// GetLog returns the shared perft-suite logger.
func GetLog() *logging.Logger {
	return log
}
