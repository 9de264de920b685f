package audit

import (
	"fmt"
	"io"
	"strings"
)

const (
	coefficientGroupSeparatorConstant    = "\t"
	coefficientFieldSeparatorConstant    = ":"
	coefficientFieldCountConstant        = 4
	minimumCoefficientGroupsConstant     = 2
	parserDebugLineTemplateConstant      = "DEBUG: line %d: %s\n"
	parserDebugGroupsTemplateConstant    = "DEBUG: line %d carries %d coefficient groups\n"
	parserDebugSkippedTemplateConstant   = "DEBUG: line %d: skipping malformed fragment %q\n"
	parserDebugDuplicateTemplateConstant = "DEBUG: line %d: discarding duplicate key for %q\n"
)

// Parser converts captured Vowpal Wabbit audit output into an AuditTable.
type Parser struct {
	diagnosticsWriter io.Writer
}

// NewParser constructs a silent parser.
func NewParser() *Parser {
	return &Parser{}
}

// NewDiagnosticParser constructs a parser that reports per-line and per-fragment diagnostics to the provided writer.
func NewDiagnosticParser(diagnosticsWriter io.Writer) *Parser {
	return &Parser{diagnosticsWriter: diagnosticsWriter}
}

// Parse extracts coefficient records from the raw audit output.
//
// Lines that do not split into at least two tab-separated groups carry no
// coefficient data and are skipped. Each group must colon-split into the four
// ordered fields namespace^feature, hash, feature value, and weight; shorter
// groups are counted and skipped. Duplicate composite keys keep the first-seen
// record, so table row order equals first-occurrence order in the input.
func (parser *Parser) Parse(auditOutput string) (*AuditTable, ParseStatistics) {
	table := NewAuditTable()
	statistics := ParseStatistics{}

	for _, rawLine := range strings.Split(auditOutput, "\n") {
		statistics.LineCount++
		line := strings.TrimSpace(rawLine)
		parser.reportDiagnostic(parserDebugLineTemplateConstant, statistics.LineCount, line)

		coefficientGroups := strings.Split(line, coefficientGroupSeparatorConstant)
		if len(coefficientGroups) < minimumCoefficientGroupsConstant && !isCoefficientFragment(coefficientGroups[0]) {
			// Progress and summary lines never carry tab-separated groups.
			continue
		}
		statistics.CoefficientLineCount++
		parser.reportDiagnostic(parserDebugGroupsTemplateConstant, statistics.LineCount, len(coefficientGroups))

		for _, coefficientGroup := range coefficientGroups {
			statistics.FragmentCount++

			coefficientFields := strings.Split(coefficientGroup, coefficientFieldSeparatorConstant)
			if len(coefficientFields) < coefficientFieldCountConstant {
				statistics.SkippedFragmentCount++
				parser.reportDiagnostic(parserDebugSkippedTemplateConstant, statistics.LineCount, coefficientGroup)
				continue
			}

			record := CoefficientRecord{
				NamespaceFeature: coefficientFields[0],
				HashValue:        coefficientFields[1],
				FeatureValue:     coefficientFields[2],
				WeightValue:      coefficientFields[3],
			}

			if !table.Append(record) {
				statistics.DuplicateCount++
				parser.reportDiagnostic(parserDebugDuplicateTemplateConstant, statistics.LineCount, coefficientGroup)
			}
		}
	}

	return table, statistics
}

func isCoefficientFragment(candidate string) bool {
	return len(strings.SplitN(candidate, coefficientFieldSeparatorConstant, coefficientFieldCountConstant)) == coefficientFieldCountConstant
}

func (parser *Parser) reportDiagnostic(messageTemplate string, templateArguments ...any) {
	if parser.diagnosticsWriter == nil {
		return
	}
	fmt.Fprintf(parser.diagnosticsWriter, messageTemplate, templateArguments...)
}
