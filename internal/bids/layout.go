// Package bids constructs BIDS entity names and dataset paths for motion files.
package bids

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Variant describes one input/output motion file pair for a run.
type Variant struct {
	InputSuffix  string // suffix of the upstream pipeline file
	OutputSuffix string // suffix of the cleaned file this tool writes
	Description  string
}

// Variants lists the two motion file pairs processed for every run.
var Variants = []Variant{
	{
		InputSuffix:  "_desc-includingFD_motion.tsv",
		OutputSuffix: "_motion.tsv",
		Description:  "including FD -> motion",
	},
	{
		InputSuffix:  "_desc-filteredincludingFD_motion.tsv",
		OutputSuffix: "_desc-filtered_motion.tsv",
		Description:  "filtered including FD -> filtered motion",
	},
}

// Subject returns the subject entity for a participant label,
// accepting labels with or without the "sub-" prefix.
func Subject(label string) string {
	if strings.HasPrefix(label, "sub-") {
		return label
	}
	return "sub-" + label
}

// Session returns the session entity for a session label,
// accepting labels with or without the "ses-" prefix.
func Session(label string) string {
	if strings.HasPrefix(label, "ses-") {
		return label
	}
	return "ses-" + label
}

// RunEntity returns the zero-padded run entity, e.g. "run-02".
func RunEntity(run int) string {
	return fmt.Sprintf("run-%02d", run)
}

// FuncDir returns the functional data directory for a subject/session pair.
func FuncDir(root, subject, session string) string {
	return filepath.Join(root, subject, session, "func")
}

// BaseName returns the filename stem shared by all files of a subject/session/task.
func BaseName(subject, session, task string) string {
	return fmt.Sprintf("%s_%s_task-%s", subject, session, task)
}

// TimeseriesName returns the filename of the concatenated rest timeseries
// whose frame count determines the number of runs.
func TimeseriesName(subject, session, task string) string {
	return fmt.Sprintf("%s_bold_desc-filtered_timeseries.dtseries.nii", BaseName(subject, session, task))
}

// InputName returns the upstream motion filename for a run and variant.
func InputName(subject, session, task string, run int, v Variant) string {
	return BaseName(subject, session, task) + "_" + RunEntity(run) + v.InputSuffix
}

// OutputName returns the cleaned motion filename for a run and variant.
func OutputName(subject, session, task string, run int, v Variant) string {
	return BaseName(subject, session, task) + "_" + RunEntity(run) + v.OutputSuffix
}
