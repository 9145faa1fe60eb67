package tableio

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"juicer/frame"
)

// Format names a document format.
type Format string

const (
	CSV  Format = "csv"
	YAML Format = "yaml"
	// Text is the aligned grid printed by (*frame.Table).String. It can only
	// be written.
	Text Format = "text"
)

// ParseFormat returns the Format named by s, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case CSV, YAML, Text:
		return f, nil
	case "yml":
		return YAML, nil
	}
	return "", errors.Wrapf(ErrFormat, "%q", s)
}

// FormatOf guesses the format of a file from its extension.
func FormatOf(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	f, err := ParseFormat(ext)
	if err != nil || f == Text {
		return "", errors.Wrapf(ErrFormat, "file %s", path)
	}
	return f, nil
}

// Read reads a table in format f. CSV documents take their row labels from
// a frame.RowLabelsKey column when there is one.
func Read(r io.Reader, f Format) (*frame.Table, error) {
	switch f {
	case CSV:
		return readCSVLabeled(r)
	case YAML:
		return ReadYAML(r)
	}
	return nil, errors.Wrapf(ErrFormat, "cannot read %q", f)
}

// Write writes t in format f. Text output underlines the header when styled
// is set.
func Write(w io.Writer, t *frame.Table, f Format, styled bool) error {
	switch f {
	case CSV:
		return WriteCSV(w, t)
	case YAML:
		return WriteYAML(w, t)
	case Text:
		_, err := io.WriteString(w, t.Render(styled))
		return errors.Wrap(err, "write text")
	}
	return errors.Wrapf(ErrFormat, "cannot write %q", f)
}

// ReadFile reads the table stored at path, choosing the format by the file
// extension.
func ReadFile(path string) (*frame.Table, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "read table")
	}
	defer file.Close()
	t, err := Read(file, f)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return t, nil
}

func readCSVLabeled(r io.Reader) (*frame.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read csv")
	}
	t, err := ReadCSV(strings.NewReader(string(data)), WithLabelColumn(frame.RowLabelsKey))
	if errors.Is(err, frame.ErrColumnMismatch) {
		return ReadCSV(strings.NewReader(string(data)))
	}
	return t, err
}
