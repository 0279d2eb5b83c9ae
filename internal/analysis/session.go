package analysis

import (
	"os"
	"path/filepath"

	"github.com/tkarvine/motiontidy/internal/bids"
	"github.com/tkarvine/motiontidy/internal/conf"
	"github.com/tkarvine/motiontidy/internal/errors"
	"github.com/tkarvine/motiontidy/internal/motion"
	"github.com/tkarvine/motiontidy/internal/nifti"
	"github.com/tkarvine/motiontidy/internal/report"
	"github.com/tkarvine/motiontidy/internal/runs"
)

// SessionAnalysis processes one subject/session pair and writes the run report.
func SessionAnalysis(settings *conf.Settings, subjectLabel, sessionLabel string) error {
	results, err := analyzeSession(settings, subjectLabel, sessionLabel)
	if err != nil {
		return err
	}
	return writeReport(settings, results)
}

// analyzeSession resolves the work list for one subject/session pair and
// transforms every unresolved run. Per-run errors are recorded in the
// results and do not abort the remaining runs; only session-level failures
// (absent func directory or timeseries) are returned as an error.
func analyzeSession(settings *conf.Settings, subjectLabel, sessionLabel string) ([]report.RunResult, error) {
	subject := bids.Subject(subjectLabel)
	session := bids.Session(sessionLabel)
	task := settings.BIDS.Task

	funcDir := bids.FuncDir(settings.BIDS.Dir, subject, session)
	if _, err := os.Stat(funcDir); err != nil {
		return nil, errors.Newf("func directory does not exist: %s", funcDir).
			Component("analysis").
			Category(errors.CategoryNotFound).
			FileContext(funcDir).
			Build()
	}

	resolver := &runs.Resolver{
		Frames:       runs.FrameCounterFunc(nifti.FrameCount),
		FramesPerRun: settings.Motion.FramesPerRun,
	}

	work, done, err := resolver.Resolve(settings.BIDS.Dir, subject, session, task)
	if err != nil {
		return nil, err
	}

	logger.Info("resolved session work list",
		"subject", subject,
		"session", session,
		"task", task,
		"pending", len(work),
		"skipped", len(done))

	results := make([]report.RunResult, 0, len(work)+len(done))
	for _, spec := range done {
		logger.Debug("outputs already exist, skipping run",
			"subject", spec.Subject, "session", spec.Session, "run", spec.Run)
		results = append(results, report.RunResult{
			Subject: spec.Subject,
			Session: spec.Session,
			Task:    spec.Task,
			Run:     spec.Run,
			Status:  report.StatusSkipped,
		})
	}

	for _, spec := range work {
		rows, err := processRun(settings, funcDir, spec)
		if err != nil {
			logger.Error("run processing failed",
				"subject", spec.Subject, "session", spec.Session, "run", spec.Run, "error", err)
			results = append(results, report.RunResult{
				Subject: spec.Subject,
				Session: spec.Session,
				Task:    spec.Task,
				Run:     spec.Run,
				Status:  report.StatusFailed,
				Err:     err.Error(),
			})
			continue
		}

		logger.Info("run processed",
			"subject", spec.Subject, "session", spec.Session, "run", spec.Run, "rows", rows)
		results = append(results, report.RunResult{
			Subject: spec.Subject,
			Session: spec.Session,
			Task:    spec.Task,
			Run:     spec.Run,
			Status:  report.StatusWritten,
			Rows:    rows,
		})
	}

	return results, nil
}

// processRun transforms both motion file variants of one run. Both inputs
// are checked up front so a failure names the specific missing file before
// anything is written.
func processRun(settings *conf.Settings, funcDir string, spec runs.RunSpec) (int, error) {
	inputs := make([]string, len(bids.Variants))
	for i, v := range bids.Variants {
		in := filepath.Join(funcDir, bids.InputName(spec.Subject, spec.Session, spec.Task, spec.Run, v))
		if _, err := os.Stat(in); err != nil {
			return 0, errors.Newf("input motion file does not exist: %s", in).
				Component("analysis").
				Category(errors.CategoryMissingInput).
				FileContext(in).
				Build()
		}
		inputs[i] = in
	}

	totalRows := 0
	var written []string
	for i, v := range bids.Variants {
		records, err := motion.ReadFile(inputs[i], settings.Motion.ResplitDelims)
		if err != nil {
			removeOutputs(written)
			return 0, err
		}

		out := filepath.Join(funcDir, bids.OutputName(spec.Subject, spec.Session, spec.Task, spec.Run, v))
		if err := motion.WriteFile(out, records); err != nil {
			removeOutputs(written)
			return 0, err
		}
		written = append(written, out)

		logger.Debug("wrote cleaned motion file",
			"variant", v.Description, "output", out, "rows", len(records))
		totalRows += len(records)
	}

	return totalRows, nil
}

// removeOutputs deletes outputs already written for a run that then failed.
// A half-written run would otherwise never be retried: the resolver keys on
// output existence and the writer refuses to overwrite.
func removeOutputs(paths []string) {
	for _, path := range paths {
		if err := os.Remove(path); err != nil {
			logger.Error("failed to remove partial output", "output", path, "error", err)
		}
	}
}
