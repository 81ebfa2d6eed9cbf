package utils

import (
	"encoding/csv"
	"fmt"
	"os"
)

// StatsWriter appends benchmark rows to a CSV file, writing the header only
// when the file is new or empty.
type StatsWriter struct {
	path   string
	header []string
}

func NewStatsWriter(path string, header []string) *StatsWriter {
	return &StatsWriter{path: path, header: header}
}

// Append writes rows in one open/close cycle.
func (s *StatsWriter) Append(rows ...[]string) (err error) {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open stats file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close stats file: %w", cerr)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat stats file: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 && len(s.header) > 0 {
		if err := w.Write(s.header); err != nil {
			return err
		}
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write stats rows: %w", err)
	}
	return nil
}
