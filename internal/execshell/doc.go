// Package execshell provides structured helpers for invoking external tools.
//
// It wraps os/exec with logging via ShellExecutor, exposes OSCommandRunner for
// default process execution, and defines abstractions used throughout vwaudit
// to run the Vowpal Wabbit CLI in a testable manner.
package execshell
