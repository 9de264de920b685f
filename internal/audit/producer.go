package audit

import (
	"context"
	"errors"
	"strings"

	"github.com/temirov/vwaudit/internal/execshell"
)

const (
	modelFlagConstant       = "-i"
	inputFormatFlagConstant = "--dsjson"
	auditFlagConstant       = "--audit"
	predictionFlagConstant  = "-p"

	emptyBaseCommandMessageConstant      = "base command must contain an executable"
	executorNotConfiguredMessageConstant = "command executor is not configured"
)

// ErrEmptyBaseCommand indicates the configured base command resolved to no tokens.
var ErrEmptyBaseCommand = errors.New(emptyBaseCommandMessageConstant)

// ErrExecutorNotConfigured indicates the producer was constructed without an executor.
var ErrExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)

// CommandProducer builds and runs the Vowpal Wabbit audit invocation.
type CommandProducer struct {
	executor CommandExecutor
}

// NewCommandProducer constructs a CommandProducer backed by the provided executor.
func NewCommandProducer(executor CommandExecutor) (*CommandProducer, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &CommandProducer{executor: executor}, nil
}

// ProduceAuditOutput executes the audit command and returns its standard output.
func (producer *CommandProducer) ProduceAuditOutput(executionContext context.Context, options CommandOptions) (string, error) {
	command, buildError := buildAuditCommand(options)
	if buildError != nil {
		return "", buildError
	}
	executionResult, executionError := producer.executor.Execute(executionContext, command)
	if executionError != nil {
		return "", executionError
	}
	return executionResult.StandardOutput, nil
}

func buildAuditCommand(options CommandOptions) (execshell.ShellCommand, error) {
	baseTokens := strings.Fields(options.BaseCommand)
	if len(baseTokens) == 0 {
		return execshell.ShellCommand{}, ErrEmptyBaseCommand
	}
	commandArguments := append([]string{}, baseTokens[1:]...)
	if len(strings.TrimSpace(options.PredictionFile)) > 0 {
		commandArguments = append(commandArguments, predictionFlagConstant, options.PredictionFile)
	}
	commandArguments = append(commandArguments,
		modelFlagConstant, options.ModelFile,
		inputFormatFlagConstant, options.InputFile,
		auditFlagConstant,
	)
	return execshell.ShellCommand{
		Name:    execshell.CommandName(baseTokens[0]),
		Details: execshell.CommandDetails{Arguments: commandArguments},
	}, nil
}
