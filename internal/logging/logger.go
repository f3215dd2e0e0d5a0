// Package logging provides colored, leveled log output for the steward tools.
//
// Diagnostic output goes to stderr so that stdout stays reserved for the
// dry-run request description. Debug output is suppressed unless verbose
// mode is enabled via SetVerbose(true).
package logging

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// verbose controls whether Debug() produces output.
var verbose bool

// Color printers for each log level.
var (
	infoPrefix   = color.New(color.FgBlue).SprintFunc()
	warnPrefix   = color.New(color.FgYellow).SprintFunc()
	errorPrefix  = color.New(color.FgRed).SprintFunc()
	debugPrefix  = color.New(color.FgCyan).SprintFunc()
	dryRunPrefix = color.New(color.FgGreen).SprintFunc()
)

// SetVerbose enables or disables Debug output.
func SetVerbose(v bool) {
	verbose = v
}

// Verbose reports whether Debug output is enabled.
func Verbose() bool {
	return verbose
}

// Info prints an informational message to stderr in blue.
func Info(format string, args ...any) {
	fmt.Fprintln(os.Stderr, infoPrefix("[INFO]")+" "+fmt.Sprintf(format, args...))
}

// Warn prints a warning message to stderr in yellow.
func Warn(format string, args ...any) {
	fmt.Fprintln(os.Stderr, warnPrefix("[WARN]")+" "+fmt.Sprintf(format, args...))
}

// Error prints an error message to stderr in red.
func Error(format string, args ...any) {
	fmt.Fprintln(os.Stderr, errorPrefix("[ERROR]")+" "+fmt.Sprintf(format, args...))
}

// Debug prints a diagnostic message to stderr in cyan, only when verbose
// mode is enabled. Each resolution step of a run reports through here.
func Debug(format string, args ...any) {
	if !verbose {
		return
	}
	fmt.Fprintln(os.Stderr, debugPrefix("[DEBUG]")+" "+fmt.Sprintf(format, args...))
}

// DryRun prints the would-be request description to stdout in green.
func DryRun(description string) {
	fmt.Println(dryRunPrefix("[DRY-RUN]") + " would submit:")
	fmt.Println(description)
}
