// Package exitcode defines named exit codes for the steward tools.
//
// Each code maps a specific termination condition to a numeric value
// recognized by shell scripts and cron wrappers.
package exitcode

// Exit code constants shared by gblock, glock and sandbox.
const (
	Success    = 0 // Action submitted and accepted
	Usage      = 1 // Missing/invalid flags, or no target supplied
	Config     = 2 // Config file unreadable, malformed, or missing a required key
	Auth       = 3 // No working login method
	Submission = 4 // Remote action rejected or failed
	DryRun     = 5 // Dry run completed; nothing was sent
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Usage:
		return "Usage"
	case Config:
		return "Config"
	case Auth:
		return "Auth"
	case Submission:
		return "Submission"
	case DryRun:
		return "DryRun"
	default:
		return "unknown"
	}
}
