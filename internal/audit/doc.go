// Package audit implements the Vowpal Wabbit audit capture, parsing, and
// serialization workflows used by the vwaudit CLI.
//
// It exposes CommandBuilder for wiring the audit Cobra command, Service for
// driving the workflow programmatically, Parser for converting raw audit
// output into deduplicated coefficient tables, and supporting abstractions for
// the external Vowpal Wabbit collaborator.
package audit
