package data

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadTable reads a numeric table. Fields are separated by commas and/or
// white space. Empty lines and lines starting with '#' are skipped, as are
// header lines: leading lines whose first field is not a number.
// Columns which are not numeric in every data row (like the "tefreqs:"
// label column of MPB output) are not allowed.
func ReadTable(r io.Reader) (Table, error) {
	var t Table
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == ';'
		})
		if len(fields) == 0 {
			continue
		}
		if len(t) == 0 {
			if _, err := strconv.ParseFloat(fields[0], 64); err != nil {
				continue // header
			}
		}
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("data: line %d, field %d: %w", line, i+1, err)
			}
			row[i] = v
		}
		if len(t) > 0 && len(row) != len(t[0]) {
			return nil, fmt.Errorf("%w: line %d has %d fields, want %d",
				ErrRagged, line, len(row), len(t[0]))
		}
		t = append(t, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// ReadTableFile reads the table stored in the named file.
func ReadTableFile(name string) (Table, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}

// ReadKVectors reads a table with the four columns kx, ky, kz and |k|.
func ReadKVectors(r io.Reader) (KVectors, error) {
	t, err := ReadTable(r)
	if err != nil {
		return nil, err
	}
	return KVectorsFromTable(t)
}

// ReadKVectorsFile reads a four column k-vector file.
func ReadKVectorsFile(name string) (KVectors, error) {
	t, err := ReadTableFile(name)
	if err != nil {
		return nil, err
	}
	ks, err := KVectorsFromTable(t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return ks, nil
}
