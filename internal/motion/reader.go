package motion

import (
	"bufio"
	"os"
	"strings"

	"github.com/tkarvine/motiontidy/internal/errors"
)

// ReadFile reads an upstream motion TSV and returns its normalized records in
// original row order. The first line must be a tab-separated header naming
// the required columns; every following non-empty line is normalized with
// the configured re-split delimiter set.
//
// An unrecoverable row fails the whole file rather than being dropped:
// silently losing a timepoint would misalign the regressors against the
// timeseries frames.
func ReadFile(path, delims string) ([]MotionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf("input motion file does not exist: %s", path).
				Component("motion").
				Category(errors.CategoryMissingInput).
				FileContext(path).
				Build()
		}
		return nil, errors.New(err).
			Category(errors.CategoryFileIO).
			Context("operation", "open-motion-file").
			FileContext(path).
			Build()
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.New(err).
				Category(errors.CategoryFileIO).
				FileContext(path).
				Build()
		}
		return nil, errors.Newf("motion file is empty: %s", path).
			Component("motion").
			Category(errors.CategoryFileParsing).
			FileContext(path).
			Build()
	}

	layout, err := ParseLayout(scanner.Text())
	if err != nil {
		return nil, errors.New(err).
			FileContext(path).
			Build()
	}

	var records []MotionRecord
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		record, err := NormalizeRow(strings.Split(line, "\t"), layout, delims)
		if err != nil {
			return nil, errors.New(err).
				Context("line", lineNo).
				FileContext(path).
				Build()
		}
		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.New(err).
			Category(errors.CategoryFileIO).
			FileContext(path).
			Build()
	}

	return records, nil
}
