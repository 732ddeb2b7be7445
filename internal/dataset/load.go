package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ReadCSV parses "year,value" rows into a series with the default labels.
//
// A header row is accepted if its first field is not a number. Blank lines
// and lines starting with '#' are ignored. The result is validated.
func ReadCSV(r io.Reader) (*Series, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	s := &Series{}
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}
		line++

		if len(rec) < 2 {
			return nil, fmt.Errorf("line %d: expected year,value but got %d field(s)", line, len(rec))
		}

		yearField := strings.TrimSpace(rec[0])
		year, err := strconv.Atoi(yearField)
		if err != nil {
			if line == 1 {
				// Header row
				continue
			}
			return nil, fmt.Errorf("line %d: invalid year %q", line, yearField)
		}

		valueField := strings.TrimSpace(rec[1])
		value, err := strconv.ParseFloat(valueField, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid value %q", line, valueField)
		}

		s.Points = append(s.Points, Point{Year: year, Value: value})
	}

	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadFile reads a CSV series from path.
func LoadFile(path string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	s, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return s, nil
}
