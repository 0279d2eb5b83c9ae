// Package report aggregates per-run outcomes and writes the final run report.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tkarvine/motiontidy/internal/errors"
)

// Status is the outcome of one run.
type Status string

const (
	StatusWritten Status = "written" // both output files created
	StatusSkipped Status = "skipped" // outputs already existed
	StatusFailed  Status = "failed"  // processing raised an error
)

// RunResult records the outcome of processing one run. Session-level
// failures (e.g. a missing timeseries) carry Run 0.
type RunResult struct {
	Subject string
	Session string
	Task    string
	Run     int
	Status  Status
	Rows    int    // data rows written across both output files
	Err     string // error message for failed entries
}

// Summary holds aggregate counts over a batch of results.
type Summary struct {
	Written int
	Skipped int
	Failed  int
}

// Summarize counts results by status.
func Summarize(results []RunResult) Summary {
	var s Summary
	for _, r := range results {
		switch r.Status {
		case StatusWritten:
			s.Written++
		case StatusSkipped:
			s.Skipped++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}

// runLabel formats the run column; session-level entries have no run number.
func runLabel(r RunResult) string {
	if r.Run == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", r.Run)
}

// WriteResultsTable writes results as a table-formatted text output.
// The output can be directed to either stdout or a file specified by the filename.
// If the filename is an empty string, it writes to stdout.
func WriteResultsTable(results []RunResult, filename string) error {
	var w io.Writer
	if filename == "" {
		w = os.Stdout
	} else {
		if !strings.HasSuffix(filename, ".txt") {
			filename += ".txt"
		}
		file, err := os.Create(filename)
		if err != nil {
			return errors.New(err).
				Category(errors.CategoryFileIO).
				Context("operation", "create-report-file").
				FileContext(filename).
				Build()
		}
		defer file.Close()
		w = file
	}

	header := "Subject\tSession\tTask\tRun\tStatus\tRows\tError\n"
	if _, err := w.Write([]byte(header)); err != nil {
		return errors.Newf("failed to write report header: %w", err).Build()
	}

	var err error
	for _, r := range results {
		line := fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			r.Subject, r.Session, r.Task, runLabel(r), r.Status, r.Rows, r.Err)
		if _, err = w.Write([]byte(line)); err != nil {
			break
		}
	}

	if err != nil {
		return errors.Newf("failed to write report entry: %w", err).Build()
	} else if filename != "" {
		fmt.Println("Report written to", filename)
	}

	return nil
}

// WriteResultsCsv writes results to the specified destination in CSV format.
// If filename is an empty string, the function writes to stdout.
func WriteResultsCsv(results []RunResult, filename string) error {
	var w io.Writer
	if filename == "" {
		w = os.Stdout
	} else {
		if !strings.HasSuffix(filename, ".csv") {
			filename += ".csv"
		}
		file, err := os.Create(filename)
		if err != nil {
			return errors.New(err).
				Category(errors.CategoryFileIO).
				Context("operation", "create-report-file").
				FileContext(filename).
				Build()
		}
		defer file.Close()
		w = file
	}

	header := "subject,session,task,run,status,rows,error\n"
	if _, err := w.Write([]byte(header)); err != nil {
		return errors.Newf("failed to write report header: %w", err).Build()
	}

	var err error
	for _, r := range results {
		line := fmt.Sprintf("%s,%s,%s,%s,%s,%d,%s\n",
			r.Subject, r.Session, r.Task, runLabel(r), r.Status, r.Rows, csvEscape(r.Err))
		if _, err = w.Write([]byte(line)); err != nil {
			break
		}
	}

	if err != nil {
		return errors.Newf("failed to write report entry: %w", err).Build()
	} else if filename != "" {
		fmt.Println("Report written to", filename)
	}

	return nil
}

// csvEscape quotes a field containing separators or quotes.
func csvEscape(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
