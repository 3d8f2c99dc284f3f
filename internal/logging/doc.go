// Package logging provides the process-wide zap logger. Logging is silent
// unless a level is configured, and output goes to a file so it never
// interleaves with the terminal UI.
package logging
