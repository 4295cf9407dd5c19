package main

import (
	"testing"

	"github.com/mborders/logmatic"
	"github.com/stretchr/testify/assert"
)

func Test_set_log_level(t *testing.T) {
	defer set_log_level("INFO")

	cases := map[string]logmatic.LogLevel{
		"TRACE": logmatic.TRACE,
		"DEBUG": logmatic.DEBUG,
		"INFO":  logmatic.INFO,
		"WARN":  logmatic.WARN,
		"ERROR": logmatic.ERROR,
	}
	for name, want := range cases {
		set_log_level(name)
		assert.Equal(t, want, log_level, name)
	}

	// unknown names keep the current level
	set_log_level("ERROR")
	set_log_level("VERBOSE")
	assert.Equal(t, logmatic.LogLevel(logmatic.ERROR), log_level)
}

func Test_LogCLI_levels(t *testing.T) {
	defer set_log_level("INFO")
	set_log_level("ERROR")

	// non-fatal levels must not exit; the logger is constructed with the
	// package level on every call
	LogCLI("warn line", 2)
	LogCLI("info line", 4)
	LogCLI("error line", 1)
}
