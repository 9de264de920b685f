package ui_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/vwaudit/internal/execshell"
	"github.com/temirov/vwaudit/internal/ui"
)

const (
	testStartedCaseNameConstant          = "command_started"
	testCompletedCaseNameConstant        = "command_completed"
	testFailedExitCodeCaseNameConstant   = "command_failed_exit_code"
	testExecutionFailureCaseNameConstant = "command_execution_failure"
)

func TestProvidedConsoleCommandEventLoggerFollowsLoggerReplacement(testInstance *testing.T) {
	observerCore, observedLogs := observer.New(zap.DebugLevel)

	activeLogger := zap.NewNop()
	eventLogger := ui.NewProvidedConsoleCommandEventLogger(func() *zap.Logger {
		return activeLogger
	})

	command := execshell.ShellCommand{Name: execshell.CommandVowpalWabbit}
	eventLogger.CommandStarted(command)
	require.Empty(testInstance, observedLogs.All())

	activeLogger = zap.New(observerCore)
	eventLogger.CommandStarted(command)
	require.Len(testInstance, observedLogs.All(), 1)
}

func TestConsoleCommandEventLoggerMessages(testInstance *testing.T) {
	auditCommand := execshell.ShellCommand{
		Name: execshell.CommandVowpalWabbit,
		Details: execshell.CommandDetails{
			Arguments: []string{"-t", "-i", "model.vw", "--dsjson", "events.dsjson", "--audit"},
		},
	}

	testCases := []struct {
		name            string
		notify          func(eventLogger *ui.ConsoleCommandEventLogger)
		expectedLevel   zapcore.Level
		expectedMessage string
	}{
		{
			name: testStartedCaseNameConstant,
			notify: func(eventLogger *ui.ConsoleCommandEventLogger) {
				eventLogger.CommandStarted(auditCommand)
			},
			expectedLevel:   zapcore.InfoLevel,
			expectedMessage: "Auditing model model.vw against events.dsjson",
		},
		{
			name: testCompletedCaseNameConstant,
			notify: func(eventLogger *ui.ConsoleCommandEventLogger) {
				eventLogger.CommandCompleted(auditCommand, execshell.ExecutionResult{ExitCode: 0})
			},
			expectedLevel:   zapcore.InfoLevel,
			expectedMessage: "Captured audit output for model model.vw",
		},
		{
			name: testFailedExitCodeCaseNameConstant,
			notify: func(eventLogger *ui.ConsoleCommandEventLogger) {
				eventLogger.CommandCompleted(auditCommand, execshell.ExecutionResult{ExitCode: 2})
			},
			expectedLevel:   zapcore.WarnLevel,
			expectedMessage: "Audit of model model.vw failed (exit code 2)",
		},
		{
			name: testExecutionFailureCaseNameConstant,
			notify: func(eventLogger *ui.ConsoleCommandEventLogger) {
				eventLogger.CommandExecutionFailed(auditCommand, errors.New("executable file not found"))
			},
			expectedLevel:   zapcore.ErrorLevel,
			expectedMessage: "Unable to audit model model.vw: executable file not found",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			observerCore, observedLogs := observer.New(zap.DebugLevel)
			eventLogger := ui.NewConsoleCommandEventLogger(zap.New(observerCore))

			testCase.notify(eventLogger)

			loggedEntries := observedLogs.All()
			require.Len(testInstance, loggedEntries, 1)
			require.Equal(testInstance, testCase.expectedMessage, loggedEntries[0].Message)
			require.Equal(testInstance, testCase.expectedLevel, loggedEntries[0].Level)
		})
	}
}
