package mocks

import (
	"fmt"
	"io"

	"github.com/ersonp/planner-catalog/internal/domain/entities"
)

// TableWriter is a mock implementation of ports.TableWriter. It writes one
// line per call naming the export and the record count.
type TableWriter struct {
	Err error
	// FailExport limits Err to writes of this export name when set.
	FailExport string

	// Call tracking
	Tables map[string]entities.Table
}

// Write records table under exportName.
func (m *TableWriter) Write(w io.Writer, table entities.Table, exportName string) error {
	if m.Err != nil && (m.FailExport == "" || m.FailExport == exportName) {
		return m.Err
	}
	if m.Tables == nil {
		m.Tables = make(map[string]entities.Table)
	}
	m.Tables[exportName] = table
	_, err := fmt.Fprintf(w, "export const %s = %d;\n", exportName, len(table))
	return err
}
