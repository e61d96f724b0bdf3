// Package exitcode defines exit code constants for the moon CLI.
package exitcode

const (
	Success      = 0
	GeneralError = 1
	UsageError   = 2
	InvalidInput = 3
)
