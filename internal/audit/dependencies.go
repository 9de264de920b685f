package audit

import (
	"context"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/temirov/vwaudit/internal/execshell"
)

// CommandExecutor exposes the subset of shell execution used by the audit command.
type CommandExecutor interface {
	Execute(executionContext context.Context, command execshell.ShellCommand) (execshell.ExecutionResult, error)
}

// OutputProducer captures audit diagnostics from the external Vowpal Wabbit process.
type OutputProducer interface {
	ProduceAuditOutput(executionContext context.Context, options CommandOptions) (string, error)
}

// ArtifactCreator opens writable destinations for serialized audit tables.
type ArtifactCreator interface {
	Create(path string) (io.WriteCloser, error)
}

// OSArtifactCreator creates audit table files on the local filesystem.
type OSArtifactCreator struct{}

// Create opens the named file for writing, truncating any existing content.
func (OSArtifactCreator) Create(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// ResolveCommandExecutor returns the provided executor or constructs a shell-backed default.
func ResolveCommandExecutor(existing CommandExecutor, logger *zap.Logger, observers ...execshell.CommandEventObserver) (CommandExecutor, error) {
	if existing != nil {
		return existing, nil
	}

	commandRunner := execshell.NewOSCommandRunner()
	shellExecutor, creationError := execshell.NewShellExecutor(logger, commandRunner, observers...)
	if creationError != nil {
		return nil, creationError
	}
	return shellExecutor, nil
}

// ResolveOutputProducer returns the provided producer or constructs one from the executor.
func ResolveOutputProducer(existing OutputProducer, executor CommandExecutor) (OutputProducer, error) {
	if existing != nil {
		return existing, nil
	}
	return NewCommandProducer(executor)
}

// ResolveArtifactCreator returns the provided creator or an OS-backed default.
func ResolveArtifactCreator(existing ArtifactCreator) ArtifactCreator {
	if existing != nil {
		return existing
	}
	return OSArtifactCreator{}
}
