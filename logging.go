package main

import (
	"fmt"

	"github.com/mborders/logmatic"
)

var log_level logmatic.LogLevel = logmatic.INFO

// Map the config logging.level string onto a logmatic level.
func set_log_level(level string) {
	switch level {
	case "TRACE":
		log_level = logmatic.TRACE
	case "DEBUG":
		log_level = logmatic.DEBUG
	case "INFO":
		log_level = logmatic.INFO
	case "WARN":
		log_level = logmatic.WARN
	case "ERROR":
		log_level = logmatic.ERROR
	}
}

// Logs to the terminal. Level options are: 0 fatal error, 1 error,
// 2 warning, 3 debug, 4 info, 5 trace.
func LogCLI(message interface{}, level int) {
	l := logmatic.NewLogger()
	l.SetLevel(log_level)
	l.ExitOnFatal = true
	message = fmt.Sprint(message)
	switch level {
	case 5:
		l.Trace("%v", message)
	case 4:
		l.Info("%v", message)
	case 3:
		l.Debug("%v", message)
	case 2:
		l.Warn("%v", message)
	case 1:
		l.Error("%v", message)
	case 0:
		l.Fatal("%v", message)
	}
}
