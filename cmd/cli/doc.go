// Package cli wires the vwaudit root command, configuration loading, and structured logging.
package cli
