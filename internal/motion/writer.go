package motion

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/tkarvine/motiontidy/internal/errors"
)

// WriteFile writes normalized records to a new TSV at path with the canonical
// tab-separated header. The destination must not exist: runs with existing
// outputs were already excluded by the resolver, so a pre-existing file here
// means a violated invariant and the write fails instead of overwriting.
func WriteFile(path string, records []MotionRecord) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return errors.Newf("output file already exists: %s", path).
				Component("motion").
				Category(errors.CategoryOutputExists).
				FileContext(path).
				Build()
		}
		return errors.New(err).
			Category(errors.CategoryFileIO).
			Context("operation", "create-output-file").
			FileContext(path).
			Build()
	}

	w := bufio.NewWriter(f)

	write := func() error {
		if _, err := w.WriteString(strings.Join(Columns, "\t") + "\n"); err != nil {
			return err
		}

		fields := make([]string, NumFields)
		for _, record := range records {
			values := record.Values()
			for i, v := range values {
				// shortest representation that round-trips exactly
				fields[i] = strconv.FormatFloat(v, 'g', -1, 64)
			}
			if _, err := w.WriteString(strings.Join(fields, "\t") + "\n"); err != nil {
				return err
			}
		}
		return w.Flush()
	}

	if err := write(); err != nil {
		f.Close()
		// leave no partial output behind, the resolver keys on existence
		os.Remove(path)
		return errors.New(err).
			Category(errors.CategoryFileIO).
			Context("operation", "write-output-file").
			FileContext(path).
			Build()
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return errors.New(err).
			Category(errors.CategoryFileIO).
			Context("operation", "close-output-file").
			FileContext(path).
			Build()
	}

	return nil
}
