package audit

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/vwaudit/internal/execshell"
)

const (
	commandUseConstant                    = "audit"
	commandShortDescriptionConstant       = "Produce a deduplicated coefficient table from a Vowpal Wabbit audit run"
	commandLongDescriptionConstant        = "audit replays logged decision events through a trained Vowpal Wabbit model in audit mode and writes the deduplicated per-feature coefficient table as a TSV artifact."
	commandExecutionErrorTemplateConstant = "vw audit failed: %w"

	flagModelNameConstant              = "model"
	flagModelDescriptionConstant       = "Path to the trained Vowpal Wabbit model file"
	flagInputNameConstant              = "input"
	flagInputDescriptionConstant       = "Path to the dsjson decision event log replayed through the model"
	flagOutputNameConstant             = "output"
	flagOutputDescriptionConstant      = "Path of the TSV coefficient table to write"
	flagPredictionNameConstant         = "pred_file"
	flagPredictionDescriptionConstant  = "Optional path where per-event predictions are saved"
	flagVerboseNameConstant            = "verbose"
	flagVerboseDescriptionConstant     = "Emit per-line parsing diagnostics on standard error"
	flagBaseCommandNameConstant        = "base_command"
	flagBaseCommandDescriptionConstant = "Executable and leading arguments used for the audit invocation"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the Cobra command for the Vowpal Wabbit audit workflow.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	Executor              CommandExecutor
	Producer              OutputProducer
	ArtifactCreator       ArtifactCreator
	ConfigurationProvider func() CommandConfiguration
	CommandEventsObserver execshell.CommandEventObserver
}

// Build constructs the audit command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}

	configuration := builder.resolveConfiguration()

	command.Flags().String(flagModelNameConstant, "", flagModelDescriptionConstant)
	command.Flags().String(flagInputNameConstant, "", flagInputDescriptionConstant)
	command.Flags().String(flagOutputNameConstant, "", flagOutputDescriptionConstant)
	command.Flags().String(flagPredictionNameConstant, "", flagPredictionDescriptionConstant)
	command.Flags().Bool(flagVerboseNameConstant, configuration.Verbose, flagVerboseDescriptionConstant)
	command.Flags().String(flagBaseCommandNameConstant, configuration.BaseCommand, flagBaseCommandDescriptionConstant)

	for _, requiredFlagName := range []string{flagModelNameConstant, flagInputNameConstant, flagOutputNameConstant} {
		if markError := command.MarkFlagRequired(requiredFlagName); markError != nil {
			return nil, markError
		}
	}

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	options, optionsError := builder.parseOptions(command)
	if optionsError != nil {
		return optionsError
	}

	logger := builder.resolveLogger()
	executor, executorError := ResolveCommandExecutor(builder.Executor, logger, builder.resolveObservers()...)
	if executorError != nil {
		return executorError
	}

	producer, producerError := ResolveOutputProducer(builder.Producer, executor)
	if producerError != nil {
		return producerError
	}

	artifactCreator := ResolveArtifactCreator(builder.ArtifactCreator)

	service := NewService(producer, artifactCreator, logger, command.OutOrStdout(), command.ErrOrStderr())
	if runError := service.Run(command.Context(), options); runError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, runError)
	}

	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command) (CommandOptions, error) {
	configuration := builder.resolveConfiguration()

	modelFile, _ := command.Flags().GetString(flagModelNameConstant)
	inputFile, _ := command.Flags().GetString(flagInputNameConstant)
	outputFile, _ := command.Flags().GetString(flagOutputNameConstant)
	predictionFile, _ := command.Flags().GetString(flagPredictionNameConstant)

	verboseValue := configuration.Verbose
	if command.Flags().Changed(flagVerboseNameConstant) {
		verboseValue, _ = command.Flags().GetBool(flagVerboseNameConstant)
	}

	baseCommandValue := configuration.BaseCommand
	if command.Flags().Changed(flagBaseCommandNameConstant) {
		baseCommandValue, _ = command.Flags().GetString(flagBaseCommandNameConstant)
	}
	baseCommandValue = strings.TrimSpace(baseCommandValue)
	if len(baseCommandValue) == 0 {
		return CommandOptions{}, ErrEmptyBaseCommand
	}

	options := CommandOptions{
		ModelFile:      strings.TrimSpace(modelFile),
		InputFile:      strings.TrimSpace(inputFile),
		OutputFile:     strings.TrimSpace(outputFile),
		PredictionFile: strings.TrimSpace(predictionFile),
		Verbose:        verboseValue,
		BaseCommand:    baseCommandValue,
	}

	return options, nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().sanitize()
}

func (builder *CommandBuilder) resolveObservers() []execshell.CommandEventObserver {
	if builder.CommandEventsObserver == nil {
		return nil
	}
	return []execshell.CommandEventObserver{builder.CommandEventsObserver}
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
