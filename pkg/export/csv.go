package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// utf8BOM lets spreadsheet tools detect the encoding of accented names.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVRenderer renders tables as CSV.
type CSVRenderer struct {
	// WithBOM prefixes the output with a UTF-8 byte order mark.
	WithBOM bool
}

// NewCSVRenderer builds a CSV renderer.
func NewCSVRenderer() *CSVRenderer {
	return &CSVRenderer{WithBOM: true}
}

// Render produces CSV bytes: the header row followed by every table row.
func (r *CSVRenderer) Render(t Table) ([]byte, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	if r.WithBOM {
		buf.Write(utf8BOM)
	}
	writer := csv.NewWriter(buf)
	if err := writer.Write(t.Headers); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	if err := writer.WriteAll(t.Rows); err != nil {
		return nil, fmt.Errorf("write csv rows: %w", err)
	}
	return buf.Bytes(), nil
}
