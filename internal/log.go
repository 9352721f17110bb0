package internal

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	warnPrefix  = color.New(color.FgYellow).Sprint("Warn")
	fatalPrefix = color.New(color.FgRed).Sprint("Fatal")
)

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "%s %s: %v\n", fatalPrefix, msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s %s: %v\n", warnPrefix, msg, err)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", warnPrefix, msg)
}

// LogInfo logs a progress message to stderr, keeping stdout clean for data.
func LogInfo(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
}
