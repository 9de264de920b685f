package audit

// CoefficientRecord models a single parsed audit coefficient entry.
type CoefficientRecord struct {
	NamespaceFeature string
	HashValue        string
	FeatureValue     string
	WeightValue      string
}

// Key returns the composite identity used for deduplication.
func (record CoefficientRecord) Key() CoefficientKey {
	return CoefficientKey{
		NamespaceFeature: record.NamespaceFeature,
		HashValue:        record.HashValue,
		FeatureValue:     record.FeatureValue,
	}
}

// CoefficientKey identifies a coefficient record independent of its weight.
type CoefficientKey struct {
	NamespaceFeature string
	HashValue        string
	FeatureValue     string
}

// AuditTable holds coefficient records in first-seen order with unique keys.
type AuditTable struct {
	records  []CoefficientRecord
	keyIndex map[CoefficientKey]int
}

// NewAuditTable constructs an empty audit table.
func NewAuditTable() *AuditTable {
	return &AuditTable{keyIndex: map[CoefficientKey]int{}}
}

// Append stores the record unless its key was seen before; it reports whether the record was kept.
func (table *AuditTable) Append(record CoefficientRecord) bool {
	recordKey := record.Key()
	if _, keyExists := table.keyIndex[recordKey]; keyExists {
		return false
	}
	table.keyIndex[recordKey] = len(table.records)
	table.records = append(table.records, record)
	return true
}

// Rows returns the retained records in first-seen order.
func (table *AuditTable) Rows() []CoefficientRecord {
	duplicatedRecords := make([]CoefficientRecord, len(table.records))
	copy(duplicatedRecords, table.records)
	return duplicatedRecords
}

// Len reports the number of retained records.
func (table *AuditTable) Len() int {
	return len(table.records)
}

// WeightFor looks up the retained weight for the provided key.
func (table *AuditTable) WeightFor(recordKey CoefficientKey) (string, bool) {
	recordIndex, keyExists := table.keyIndex[recordKey]
	if !keyExists {
		return "", false
	}
	return table.records[recordIndex].WeightValue, true
}

// ParseStatistics summarizes a single parse pass over captured audit output.
type ParseStatistics struct {
	LineCount            int
	CoefficientLineCount int
	FragmentCount        int
	SkippedFragmentCount int
	DuplicateCount       int
}

// CommandOptions captures the configurable parameters for the audit command.
type CommandOptions struct {
	ModelFile      string
	InputFile      string
	OutputFile     string
	PredictionFile string
	Verbose        bool
	BaseCommand    string
}
