package tableio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"juicer/frame"
	"juicer/tableio"
	"juicer/vec"
)

func sample() *frame.Table {
	return frame.MustNew(
		[]vec.Vector{{1, 2, 3}, {"x", "y", "z"}, {0.5, true, nil}},
		frame.WithColumnNames("n", "s", "mixed"),
		frame.WithRowLabels(vec.Vector{"r1", "r2", "r3"}),
	)
}

func assertTable(t *testing.T, want, got *frame.Table) {
	t.Helper()
	if !want.Equal(got) {
		t.Errorf("table mismatch\nwant:\n%v\ngot:\n%v", want, got)
	}
}

func TestReadCSV(t *testing.T) {
	in := "id,n,s\na,1,x\nb,2.5,true\nc,NA,\n"

	got, err := tableio.ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := frame.MustNew(
		[]vec.Vector{{"a", "b", "c"}, {1, 2.5, nil}, {"x", true, ""}},
		frame.WithColumnNames("id", "n", "s"),
	)
	assertTable(t, want, got)

	got, err = tableio.ReadCSV(strings.NewReader(in), tableio.WithLabelColumn("id"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diff := cmp.Diff(vec.Vector{"a", "b", "c"}, got.RowLabels()); diff != "" {
		t.Errorf("RowLabels() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"n", "s"}, got.ColumnNames()); diff != "" {
		t.Errorf("ColumnNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []tableio.CSVOption
		want error
	}{
		{"Empty", "", nil, tableio.ErrNoHeader},
		{"NoLabelColumn", "a,b\n1,2\n", []tableio.CSVOption{tableio.WithLabelColumn("id")}, frame.ErrColumnMismatch},
		{"DuplicateName", "a,a\n1,2\n", nil, frame.ErrColumnMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tableio.ReadCSV(strings.NewReader(tt.in), tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Errorf("ReadCSV() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := tableio.ReadCSV(strings.NewReader("a,b\n1\n")); err == nil {
		t.Error("ReadCSV() accepted a short record")
	}
}

func TestCSVRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := tableio.WriteCSV(&buf, sample()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := "row_labels,n,s,mixed\nr1,1,x,0.5\nr2,2,y,true\nr3,3,z,NA\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("WriteCSV() mismatch (-want +got):\n%s", diff)
	}

	got, err := tableio.Read(&buf, tableio.CSV)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	assertTable(t, sample(), got)
}

func TestWithComma(t *testing.T) {
	got, err := tableio.ReadCSV(strings.NewReader("a;b\n1;2\n"), tableio.WithComma(';'))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	assertTable(t, frame.MustNew([]vec.Vector{{1}, {2}}, frame.WithColumnNames("a", "b")), got)
}

func TestYAMLRoundTrip(t *testing.T) {
	tbl := frame.MustNew(
		[]vec.Vector{{1, 2}, {vec.Vector{"a", 1}, "b"}},
		frame.WithColumnNames("n", "nested"),
		frame.WithRowLabels(vec.Vector{"x", "y"}),
	)
	b, err := tableio.MarshalYAML(tbl)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	got, err := tableio.UnmarshalYAML(b)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	assertTable(t, tbl, got)
}

func TestUnmarshalYAML(t *testing.T) {
	doc := `
row_labels: [a, b]
columns:
  - name: n
    values: [1, 2.5]
  - name: ok
    values: [true, false]
`
	got, err := tableio.UnmarshalYAML([]byte(doc))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := frame.MustNew(
		[]vec.Vector{{1, 2.5}, {true, false}},
		frame.WithColumnNames("n", "ok"),
		frame.WithRowLabels(vec.Vector{"a", "b"}),
	)
	assertTable(t, want, got)

	bad := `
columns:
  - name: n
    values: [1, 2]
  - name: m
    values: [1]
`
	if _, err := tableio.UnmarshalYAML([]byte(bad)); !errors.Is(err, frame.ErrColumnLengthMismatch) {
		t.Errorf("UnmarshalYAML() error = %v, want %v", err, frame.ErrColumnLengthMismatch)
	}
}

func TestFormats(t *testing.T) {
	for _, s := range []string{"csv", "YAML", "yml", "text"} {
		if _, err := tableio.ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q) error = %v", s, err)
		}
	}
	if _, err := tableio.ParseFormat("xlsx"); !errors.Is(err, tableio.ErrFormat) {
		t.Errorf("ParseFormat() error = %v, want %v", err, tableio.ErrFormat)
	}
	if _, err := tableio.FormatOf("t.txt"); !errors.Is(err, tableio.ErrFormat) {
		t.Errorf("FormatOf() error = %v, want %v", err, tableio.ErrFormat)
	}

	var buf bytes.Buffer
	if err := tableio.Write(&buf, sample(), tableio.Text, false); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diff := cmp.Diff(sample().String(), buf.String()); diff != "" {
		t.Errorf("Write(Text) mismatch (-want +got):\n%s", diff)
	}
	if _, err := tableio.Read(&buf, tableio.Text); !errors.Is(err, tableio.ErrFormat) {
		t.Errorf("Read(Text) error = %v, want %v", err, tableio.ErrFormat)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.yaml")
	b, err := tableio.MarshalYAML(sample())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := tableio.ReadFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	assertTable(t, sample(), got)

	if _, err := tableio.ReadFile(filepath.Join(dir, "missing.csv")); err == nil {
		t.Error("ReadFile() of a missing file succeeded")
	}
}
