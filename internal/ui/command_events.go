package ui

import (
	"go.uber.org/zap"

	"github.com/temirov/vwaudit/internal/execshell"
)

// LoggerProvider supplies the zap logger used for command event reporting.
type LoggerProvider func() *zap.Logger

// ConsoleCommandEventLogger renders command lifecycle events using a zap logger configured for human-readable output.
type ConsoleCommandEventLogger struct {
	loggerProvider LoggerProvider
	formatter      execshell.CommandMessageFormatter
}

// NewConsoleCommandEventLogger constructs a console event logger backed by the provided zap logger.
func NewConsoleCommandEventLogger(logger *zap.Logger) *ConsoleCommandEventLogger {
	return NewProvidedConsoleCommandEventLogger(func() *zap.Logger { return logger })
}

// NewProvidedConsoleCommandEventLogger constructs a console event logger that resolves its logger on every event.
func NewProvidedConsoleCommandEventLogger(loggerProvider LoggerProvider) *ConsoleCommandEventLogger {
	return &ConsoleCommandEventLogger{loggerProvider: loggerProvider, formatter: execshell.CommandMessageFormatter{}}
}

func (eventLogger *ConsoleCommandEventLogger) resolveLogger() *zap.Logger {
	if eventLogger.loggerProvider == nil {
		return zap.NewNop()
	}
	logger := eventLogger.loggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// CommandStarted implements execshell.CommandEventObserver by logging command start notifications.
func (eventLogger *ConsoleCommandEventLogger) CommandStarted(command execshell.ShellCommand) {
	if eventLogger == nil {
		return
	}
	eventLogger.resolveLogger().Info(eventLogger.formatter.BuildStartedMessage(command))
}

// CommandCompleted implements execshell.CommandEventObserver by logging command completion notifications.
func (eventLogger *ConsoleCommandEventLogger) CommandCompleted(command execshell.ShellCommand, result execshell.ExecutionResult) {
	if eventLogger == nil {
		return
	}
	if result.ExitCode == 0 {
		eventLogger.resolveLogger().Info(eventLogger.formatter.BuildSuccessMessage(command))
		return
	}
	eventLogger.resolveLogger().Warn(eventLogger.formatter.BuildFailureMessage(command, result))
}

// CommandExecutionFailed implements execshell.CommandEventObserver by logging unexpected execution failures.
func (eventLogger *ConsoleCommandEventLogger) CommandExecutionFailed(command execshell.ShellCommand, failure error) {
	if eventLogger == nil {
		return
	}
	eventLogger.resolveLogger().Error(eventLogger.formatter.BuildExecutionFailureMessage(command, failure))
}
