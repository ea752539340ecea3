// Package csvfile holds the shared plumbing for the flat-file stores:
// header management and whole-file read/write.
package csvfile

import (
	"encoding/csv"
	"errors"
	"os"
)

// EnsureHeader makes sure path exists and starts with the expected
// header row. A missing file is created with the header only. A file
// whose first row is not the canonical header is rewritten: the header
// goes first and existing rows are kept as data, except that the old
// first row is dropped when its set of fields equals the header set.
func EnsureHeader(path string, header []string) error {
	rows, err := Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return WriteAll(path, header, nil)
		}
		return err
	}

	if len(rows) > 0 && equalRow(rows[0], header) {
		return nil
	}

	start := 0
	if len(rows) > 0 && sameFieldSet(rows[0], header) {
		start = 1
	}
	return WriteAll(path, header, rows[start:])
}

// Read returns every row of the file, header included. Blank lines are
// skipped and ragged rows are tolerated.
func Read(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

// WriteAll replaces the whole file with the header followed by rows.
func WriteAll(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Append adds one row to the end of the file.
func Append(path string, row []string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(row); err != nil {
		f.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func equalRow(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sameFieldSet(a, b []string) bool {
	as, bs := toSet(a), toSet(b)
	if len(as) != len(bs) {
		return false
	}
	for f := range as {
		if !bs[f] {
			return false
		}
	}
	return true
}

func toSet(fields []string) map[string]bool {
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}
