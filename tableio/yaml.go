package tableio

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"juicer/frame"
	"juicer/vec"
)

// document is the YAML form of a table.
type document struct {
	RowLabels []any    `yaml:"row_labels"`
	Columns   []column `yaml:"columns"`
}

type column struct {
	Name   string `yaml:"name"`
	Values []any  `yaml:"values"`
}

// MarshalYAML encodes t as a YAML document.
func MarshalYAML(t *frame.Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalYAML decodes a table from a YAML document produced by
// MarshalYAML. The decoded columns must satisfy the same constraints as
// frame.New.
func UnmarshalYAML(b []byte) (*frame.Table, error) {
	return ReadYAML(bytes.NewReader(b))
}

// WriteYAML writes t to w as a YAML document.
func WriteYAML(w io.Writer, t *frame.Table) error {
	doc := document{
		RowLabels: plain(t.RowLabels()),
		Columns:   []column{},
	}
	for _, name := range t.ColumnNames() {
		c, _ := t.Column(name)
		doc.Columns = append(doc.Columns, column{Name: name, Values: plain(c)})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return errors.Wrap(err, "write yaml")
	}
	return errors.Wrap(enc.Close(), "write yaml")
}

// ReadYAML reads a table from a YAML document.
func ReadYAML(r io.Reader) (*frame.Table, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "read yaml")
	}
	names := make([]string, len(doc.Columns))
	cols := make([]vec.Vector, len(doc.Columns))
	for i, c := range doc.Columns {
		names[i] = c.Name
		cols[i] = nested(c.Values)
	}
	opts := []frame.Option{frame.WithColumnNames(names...)}
	if doc.RowLabels != nil {
		opts = append(opts, frame.WithRowLabels(nested(doc.RowLabels)))
	}
	t, err := frame.New(cols, opts...)
	if err != nil {
		return nil, errors.WithMessage(err, "read yaml")
	}
	return t, nil
}

// plain converts nested Vectors to []any for encoding.
func plain(v vec.Vector) []any {
	out := make([]any, len(v))
	for i, e := range v {
		if ev, ok := e.(vec.Vector); ok {
			out[i] = plain(ev)
		} else {
			out[i] = e
		}
	}
	return out
}

// nested converts decoded sequences back to Vectors.
func nested(xs []any) vec.Vector {
	out := make(vec.Vector, len(xs))
	for i, e := range xs {
		if es, ok := e.([]any); ok {
			out[i] = nested(es)
		} else {
			out[i] = e
		}
	}
	return out
}
