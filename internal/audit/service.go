package audit

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

const (
	successMessageTemplateConstant = "Please see %s for the VW audit table in TSV format\n"
	emptyTableWarningConstant      = "audit output contained no coefficient rows"
	tableWrittenMessageConstant    = "audit table written"

	lineCountFieldConstant        = "lines"
	coefficientLinesFieldConstant = "coefficient_lines"
	fragmentCountFieldConstant    = "fragments"
	skippedCountFieldConstant     = "skipped_fragments"
	duplicateCountFieldConstant   = "duplicates"
	rowCountFieldConstant         = "rows"
	outputPathFieldConstant       = "output"
)

// Service coordinates audit execution, parsing, deduplication, and artifact output.
type Service struct {
	producer        OutputProducer
	artifactCreator ArtifactCreator
	logger          *zap.Logger
	outputWriter    io.Writer
	errorWriter     io.Writer
}

// NewService constructs a Service using the provided dependencies.
func NewService(producer OutputProducer, artifactCreator ArtifactCreator, logger *zap.Logger, outputWriter io.Writer, errorWriter io.Writer) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		producer:        producer,
		artifactCreator: artifactCreator,
		logger:          logger,
		outputWriter:    outputWriter,
		errorWriter:     errorWriter,
	}
}

// Run executes the audit command and writes the deduplicated coefficient table.
func (service *Service) Run(executionContext context.Context, options CommandOptions) error {
	auditOutput, productionError := service.producer.ProduceAuditOutput(executionContext, options)
	if productionError != nil {
		return productionError
	}

	parser := NewParser()
	if options.Verbose {
		parser = NewDiagnosticParser(service.errorWriter)
	}

	table, statistics := parser.Parse(auditOutput)

	service.logger.Info(tableWrittenMessageConstant,
		zap.Int(lineCountFieldConstant, statistics.LineCount),
		zap.Int(coefficientLinesFieldConstant, statistics.CoefficientLineCount),
		zap.Int(fragmentCountFieldConstant, statistics.FragmentCount),
		zap.Int(skippedCountFieldConstant, statistics.SkippedFragmentCount),
		zap.Int(duplicateCountFieldConstant, statistics.DuplicateCount),
		zap.Int(rowCountFieldConstant, table.Len()),
		zap.String(outputPathFieldConstant, options.OutputFile),
	)

	if table.Len() == 0 {
		service.logger.Warn(emptyTableWarningConstant, zap.String(outputPathFieldConstant, options.OutputFile))
	}

	artifact, creationError := service.artifactCreator.Create(options.OutputFile)
	if creationError != nil {
		return creationError
	}

	if writeError := WriteTable(artifact, table); writeError != nil {
		artifact.Close()
		return writeError
	}
	if closeError := artifact.Close(); closeError != nil {
		return closeError
	}

	fmt.Fprintf(service.outputWriter, successMessageTemplateConstant, options.OutputFile)
	return nil
}
