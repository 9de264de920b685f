package audit

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

const (
	tsvFieldDelimiterConstant = '\t'

	tsvHeaderNamespaceFeature = "Namespace^Feature"
	tsvHeaderHashValue        = "HashValue"
	tsvHeaderFeatureValue     = "FeatureValue"
	tsvHeaderWeightValue      = "WeightValue"

	tsvHeaderMismatchMessageConstant = "unexpected audit table header"
	tsvRowWidthErrorTemplateConstant = "audit table row %d has %d fields, expected %d"
	tsvReadErrorTemplateConstant     = "failed to read audit table: %w"
	tsvWriteErrorTemplateConstant    = "failed to write audit table: %w"
	tsvExpectedColumnCountConstant   = 4
)

var errHeaderMismatch = errors.New(tsvHeaderMismatchMessageConstant)

func auditTableHeader() []string {
	return []string{
		tsvHeaderNamespaceFeature,
		tsvHeaderHashValue,
		tsvHeaderFeatureValue,
		tsvHeaderWeightValue,
	}
}

// WriteTable serializes the audit table as tab-separated values with a header row.
//
// The first three columns of every data row form the composite key.
func WriteTable(destination io.Writer, table *AuditTable) error {
	tsvWriter := csv.NewWriter(destination)
	tsvWriter.Comma = tsvFieldDelimiterConstant

	if writeError := tsvWriter.Write(auditTableHeader()); writeError != nil {
		return fmt.Errorf(tsvWriteErrorTemplateConstant, writeError)
	}

	for _, record := range table.Rows() {
		row := []string{
			record.NamespaceFeature,
			record.HashValue,
			record.FeatureValue,
			record.WeightValue,
		}
		if writeError := tsvWriter.Write(row); writeError != nil {
			return fmt.Errorf(tsvWriteErrorTemplateConstant, writeError)
		}
	}

	tsvWriter.Flush()
	if flushError := tsvWriter.Error(); flushError != nil {
		return fmt.Errorf(tsvWriteErrorTemplateConstant, flushError)
	}
	return nil
}

// ReadTable reconstructs an audit table from a previously serialized artifact.
func ReadTable(source io.Reader) (*AuditTable, error) {
	tsvReader := csv.NewReader(source)
	tsvReader.Comma = tsvFieldDelimiterConstant

	headerRow, headerError := tsvReader.Read()
	if headerError != nil {
		if errors.Is(headerError, io.EOF) {
			return nil, errHeaderMismatch
		}
		return nil, fmt.Errorf(tsvReadErrorTemplateConstant, headerError)
	}
	if !headerMatches(headerRow) {
		return nil, errHeaderMismatch
	}

	table := NewAuditTable()
	rowNumber := 0
	for {
		row, rowError := tsvReader.Read()
		if errors.Is(rowError, io.EOF) {
			break
		}
		if rowError != nil {
			return nil, fmt.Errorf(tsvReadErrorTemplateConstant, rowError)
		}
		rowNumber++
		if len(row) != tsvExpectedColumnCountConstant {
			return nil, fmt.Errorf(tsvRowWidthErrorTemplateConstant, rowNumber, len(row), tsvExpectedColumnCountConstant)
		}
		table.Append(CoefficientRecord{
			NamespaceFeature: row[0],
			HashValue:        row[1],
			FeatureValue:     row[2],
			WeightValue:      row[3],
		})
	}

	return table, nil
}

func headerMatches(headerRow []string) bool {
	expectedHeader := auditTableHeader()
	if len(headerRow) != len(expectedHeader) {
		return false
	}
	for columnIndex := range expectedHeader {
		if headerRow[columnIndex] != expectedHeader[columnIndex] {
			return false
		}
	}
	return true
}
