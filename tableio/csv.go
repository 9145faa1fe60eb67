// Package tableio reads and writes frame tables as CSV and YAML documents.
package tableio

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/pkg/errors"

	"juicer/frame"
	"juicer/vec"
)

var (
	// ErrNoHeader is returned when a CSV document has no header row.
	ErrNoHeader = errors.New("missing header row")
	// ErrFormat is returned for an unknown document format.
	ErrFormat = errors.New("unknown table format")
)

// naCell is the CSV spelling of a nil cell.
const naCell = "NA"

type csvConfig struct {
	comma       rune
	labelColumn string
}

// CSVOption configures ReadCSV and WriteCSV.
type CSVOption func(*csvConfig)

// WithComma sets the field delimiter. The default is ','.
func WithComma(r rune) CSVOption {
	return func(cfg *csvConfig) {
		cfg.comma = r
	}
}

// WithLabelColumn makes ReadCSV take row labels from the named column
// instead of numbering rows from 0.
func WithLabelColumn(name string) CSVOption {
	return func(cfg *csvConfig) {
		cfg.labelColumn = name
	}
}

func newCSVConfig(opts []CSVOption) *csvConfig {
	cfg := &csvConfig{comma: ','}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// ReadCSV reads a table from a CSV document whose first row holds the
// column names.
//
// Cells are parsed as int, then float64, then bool ("true" or "false");
// anything else is kept as a string and NA becomes nil.
func ReadCSV(r io.Reader, opts ...CSVOption) (*frame.Table, error) {
	cfg := newCSVConfig(opts)
	cr := csv.NewReader(r)
	cr.Comma = cfg.comma
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "read csv")
	}
	if len(records) == 0 {
		return nil, errors.Wrap(ErrNoHeader, "read csv")
	}

	header, body := records[0], records[1:]
	labelAt := -1
	if cfg.labelColumn != "" {
		labelAt = slices.Index(header, cfg.labelColumn)
		if labelAt < 0 {
			return nil, errors.Wrapf(frame.ErrColumnMismatch, "read csv: no label column %q", cfg.labelColumn)
		}
	}

	var names []string
	var cols []vec.Vector
	var labels vec.Vector
	for j, name := range header {
		c := make(vec.Vector, len(body))
		for i, rec := range body {
			c[i] = ParseCell(rec[j])
		}
		if j == labelAt {
			labels = c
			continue
		}
		names = append(names, name)
		cols = append(cols, c)
	}

	fopts := []frame.Option{frame.WithColumnNames(names...)}
	if labels != nil {
		fopts = append(fopts, frame.WithRowLabels(labels))
	} else if len(cols) == 0 {
		fopts = append(fopts, frame.WithRowLabels(vec.SeqLen(len(body))))
	}
	t, err := frame.New(cols, fopts...)
	if err != nil {
		return nil, errors.WithMessage(err, "read csv")
	}
	return t, nil
}

// WriteCSV writes t as a CSV document. The first column holds the row
// labels under the header frame.RowLabelsKey, so that reading the document
// back with WithLabelColumn(frame.RowLabelsKey) restores them.
func WriteCSV(w io.Writer, t *frame.Table, opts ...CSVOption) error {
	cfg := newCSVConfig(opts)
	cw := csv.NewWriter(w)
	cw.Comma = cfg.comma

	names := t.ColumnNames()
	if err := cw.Write(append([]string{frame.RowLabelsKey}, names...)); err != nil {
		return errors.Wrap(err, "write csv")
	}
	labels := t.RowLabels()
	rec := make([]string, len(names)+1)
	for i := range t.NRow() {
		rec[0] = FormatCell(labels[i])
		for j, v := range t.Row(i) {
			rec[j+1] = FormatCell(v)
		}
		if err := cw.Write(rec); err != nil {
			return errors.Wrap(err, "write csv")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "write csv")
}

// ParseCell converts a CSV cell to the most specific scalar it spells.
func ParseCell(s string) any {
	if s == naCell {
		return nil
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}

// FormatCell is the inverse of ParseCell for scalars.
func FormatCell(v any) string {
	switch v := v.(type) {
	case nil:
		return naCell
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	}
	return fmt.Sprint(v)
}
