package execshell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildStartedMessageForAuditIncludesModelAndInput(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandVowpalWabbit,
		Details: CommandDetails{
			Arguments: []string{"-t", "-l", "0.001", "-i", "model.vw", "--dsjson", "events.dsjson", "--audit"},
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Auditing model model.vw against events.dsjson", message)
}

func TestBuildStartedMessageForAuditWithPredictionsMentionsPredictionsFile(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandVowpalWabbit,
		Details: CommandDetails{
			Arguments: []string{"-t", "-p", "preds.txt", "-i", "model.vw", "--dsjson", "events.dsjson", "--audit"},
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Auditing model model.vw against events.dsjson, saving predictions to preds.txt", message)
}

func TestBuildFailureMessageForAuditIncludesExitCodeAndStandardError(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandVowpalWabbit,
		Details: CommandDetails{
			Arguments: []string{"-i", "model.vw", "--dsjson", "events.dsjson", "--audit"},
		},
	}
	result := ExecutionResult{ExitCode: 1, StandardError: "can't open: model.vw"}

	message := formatter.BuildFailureMessage(command, result)

	require.Equal(t, "Audit of model model.vw failed (exit code 1: can't open: model.vw)", message)
}

func TestBuildStartedMessageForCustomExecutableKeepsAuditPhrasing(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandName("/opt/vw/bin/vw-9.6"),
		Details: CommandDetails{
			Arguments: []string{"-t", "-i", "model.vw", "--dsjson", "events.dsjson", "--audit"},
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Auditing model model.vw against events.dsjson", message)
}

func TestBuildStartedMessageWithoutAuditFlagUsesGenericLabel(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandVowpalWabbit,
		Details: CommandDetails{
			Arguments:        []string{"--version"},
			WorkingDirectory: "/workspace",
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Running vw --version (in /workspace)", message)
}
