// Package jsmodule writes building tables as ES modules for the planner front-end.
package jsmodule

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"sort"

	"github.com/ersonp/planner-catalog/internal/domain/entities"
	"github.com/ersonp/planner-catalog/internal/domain/taxonomy"
)

// validExportName matches a plain JavaScript identifier.
var validExportName = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Writer implements ports.TableWriter.
type Writer struct {
	tx *taxonomy.Taxonomy
}

// NewWriter creates a writer that orders records by the taxonomy's era order.
func NewWriter(tx *taxonomy.Taxonomy) *Writer {
	return &Writer{tx: tx}
}

// Write emits `export const <exportName> = {...};` with one record per line,
// sorted by era label rank, then name, then ID.
func (m *Writer) Write(w io.Writer, table entities.Table, exportName string) error {
	if !validExportName.MatchString(exportName) {
		return fmt.Errorf("invalid export name %q", exportName)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "// Auto-generated by catalog build. Do not edit by hand.")
	fmt.Fprintf(bw, "// Total buildings: %d\n", len(table))
	fmt.Fprintf(bw, "export const %s = {\n", exportName)

	for _, b := range m.Sorted(table) {
		line, err := formatBuilding(b)
		if err != nil {
			return fmt.Errorf("formatting %s: %w", b.ID, err)
		}
		fmt.Fprintf(bw, "    %s\n", line)
	}

	fmt.Fprintln(bw, "};")
	return bw.Flush()
}

// Sorted returns the table's buildings in output order. Building IDs are
// taken from the table keys.
func (m *Writer) Sorted(table entities.Table) []entities.Building {
	list := make([]entities.Building, 0, len(table))
	for id, b := range table {
		b.ID = id
		list = append(list, b)
	}
	sort.Slice(list, func(i, j int) bool {
		ri, rj := m.tx.LabelRank(list[i].EraLabel), m.tx.LabelRank(list[j].EraLabel)
		if ri != rj {
			return ri < rj
		}
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
	return list
}

// field is one key of a rendered record.
type field struct {
	key   string
	value any
}

func formatBuilding(b entities.Building) (string, error) {
	var buf bytes.Buffer
	fields := []field{
		{"name", b.Name},
		{"width", b.Width},
		{"height", b.Height},
		{"type", b.Category},
		{"age", b.EraLabel},
		{"color", b.Color},
		{"needsRoad", b.NeedsRoad},
	}
	if len(b.Prod) > 0 {
		fields = append(fields, field{"prod", b.Prod})
	}
	if len(b.Boosts) > 0 {
		fields = append(fields, field{"boosts", b.Boosts})
	}

	id, err := encode(b.ID)
	if err != nil {
		return "", err
	}
	buf.WriteString(id)
	buf.WriteString(": {")
	for i, f := range fields {
		v, err := encode(f.value)
		if err != nil {
			return "", err
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, " %s: %s", f.key, v)
	}
	buf.WriteString(" },")
	return buf.String(), nil
}

// encode renders v as compact JSON without HTML escaping.
func encode(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
