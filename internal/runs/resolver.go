// Package runs infers how many rest runs a session contains and which of
// them still need cleaned motion files.
package runs

import (
	"os"
	"path/filepath"

	"github.com/tkarvine/motiontidy/internal/bids"
	"github.com/tkarvine/motiontidy/internal/errors"
)

// FrameCounter reports the number of timeseries frames in an imaging file.
// The imaging format is a black box to this package.
type FrameCounter interface {
	FrameCount(path string) (int, error)
}

// FrameCounterFunc adapts a function to the FrameCounter interface.
type FrameCounterFunc func(path string) (int, error)

// FrameCount calls f.
func (f FrameCounterFunc) FrameCount(path string) (int, error) {
	return f(path)
}

// ErrMissingTimeseries is the category sentinel for an absent companion
// timeseries file. Without it the run count cannot be determined.
var ErrMissingTimeseries = errors.New(errors.NewStd("timeseries file does not exist")).
	Component("runs").
	Category(errors.CategoryMissingTimeseries).
	Build()

// RunSpec identifies one unit of work.
type RunSpec struct {
	Subject string // subject entity, e.g. "sub-01"
	Session string // session entity, e.g. "ses-01"
	Task    string // task label, e.g. "rest"
	Run     int    // 1-indexed run number
	Frames  int    // frames expected for the run
}

// Detect returns the 1-indexed run numbers contained in a concatenated
// timeseries of the given frame count. A trailing partial run is truncated
// since partial runs are not analyzed.
func Detect(frames, framesPerRun int) []int {
	if framesPerRun <= 0 || frames < framesPerRun {
		return nil
	}

	count := frames / framesPerRun
	runs := make([]int, count)
	for i := range runs {
		runs[i] = i + 1
	}
	return runs
}

// Resolver builds the per-session work list.
type Resolver struct {
	Frames       FrameCounter // reads the timeseries frame count
	FramesPerRun int          // fixed frames constituting one run
}

// Resolve determines the runs of a subject/session pair and splits them into
// a work list and an already-done list. A run whose two output files both
// exist is excluded from the work list, which makes re-runs idempotent.
// An absent timeseries file is an error, never a guessed run count.
func (r *Resolver) Resolve(root, subject, session, task string) (work, done []RunSpec, err error) {
	funcDir := bids.FuncDir(root, subject, session)

	tsPath := filepath.Join(funcDir, bids.TimeseriesName(subject, session, task))
	if _, statErr := os.Stat(tsPath); statErr != nil {
		if os.IsNotExist(statErr) {
			return nil, nil, errors.Newf("timeseries file does not exist: %s", tsPath).
				Component("runs").
				Category(errors.CategoryMissingTimeseries).
				FileContext(tsPath).
				Build()
		}
		return nil, nil, errors.New(statErr).
			Category(errors.CategoryFileIO).
			Context("operation", "stat-timeseries").
			FileContext(tsPath).
			Build()
	}

	frames, err := r.Frames.FrameCount(tsPath)
	if err != nil {
		return nil, nil, err
	}

	for _, run := range Detect(frames, r.FramesPerRun) {
		spec := RunSpec{
			Subject: subject,
			Session: session,
			Task:    task,
			Run:     run,
			Frames:  r.FramesPerRun,
		}
		if outputsExist(funcDir, spec) {
			done = append(done, spec)
		} else {
			work = append(work, spec)
		}
	}

	return work, done, nil
}

// outputsExist reports whether both cleaned output files of a run are present.
func outputsExist(funcDir string, spec RunSpec) bool {
	for _, v := range bids.Variants {
		out := filepath.Join(funcDir, bids.OutputName(spec.Subject, spec.Session, spec.Task, spec.Run, v))
		if _, err := os.Stat(out); err != nil {
			return false
		}
	}
	return true
}
