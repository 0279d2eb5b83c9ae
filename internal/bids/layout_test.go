package bids

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubjectSession(t *testing.T) {
	assert.Equal(t, "sub-01", Subject("01"))
	assert.Equal(t, "sub-01", Subject("sub-01"))
	assert.Equal(t, "ses-baseline", Session("baseline"))
	assert.Equal(t, "ses-baseline", Session("ses-baseline"))
}

func TestRunEntity(t *testing.T) {
	assert.Equal(t, "run-01", RunEntity(1))
	assert.Equal(t, "run-02", RunEntity(2))
	assert.Equal(t, "run-12", RunEntity(12))
}

func TestFuncDir(t *testing.T) {
	want := filepath.Join("/data/bids", "sub-01", "ses-01", "func")
	assert.Equal(t, want, FuncDir("/data/bids", "sub-01", "ses-01"))
}

func TestTimeseriesName(t *testing.T) {
	assert.Equal(t,
		"sub-01_ses-01_task-rest_bold_desc-filtered_timeseries.dtseries.nii",
		TimeseriesName("sub-01", "ses-01", "rest"))
}

func TestInputOutputNames(t *testing.T) {
	assert.Equal(t,
		"sub-01_ses-01_task-rest_run-01_desc-includingFD_motion.tsv",
		InputName("sub-01", "ses-01", "rest", 1, Variants[0]))
	assert.Equal(t,
		"sub-01_ses-01_task-rest_run-01_motion.tsv",
		OutputName("sub-01", "ses-01", "rest", 1, Variants[0]))

	assert.Equal(t,
		"sub-01_ses-01_task-rest_run-02_desc-filteredincludingFD_motion.tsv",
		InputName("sub-01", "ses-01", "rest", 2, Variants[1]))
	assert.Equal(t,
		"sub-01_ses-01_task-rest_run-02_desc-filtered_motion.tsv",
		OutputName("sub-01", "ses-01", "rest", 2, Variants[1]))
}
