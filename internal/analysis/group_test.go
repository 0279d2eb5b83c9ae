package analysis

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkarvine/motiontidy/internal/bids"
	"github.com/tkarvine/motiontidy/internal/conf"
)

// addSession creates a complete single-run session for a subject.
func addSession(t *testing.T, root, subject, session string) {
	t.Helper()

	funcDir := bids.FuncDir(root, subject, session)
	require.NoError(t, os.MkdirAll(funcDir, 0o755))
	writeDtseries(t, funcDir, subject, session, 383)
	for _, v := range bids.Variants {
		writeMotionInput(t, funcDir, bids.InputName(subject, session, "rest", 1, v), 3)
	}
}

func readReportLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestParticipantAnalysisRequiresLabels(t *testing.T) {
	settings := testSettings(t.TempDir())

	assert.Error(t, ParticipantAnalysis(settings, nil, []string{"01"}))
	assert.Error(t, ParticipantAnalysis(settings, []string{"01"}, nil))
}

func TestParticipantAnalysis(t *testing.T) {
	root := t.TempDir()
	addSession(t, root, "sub-01", "ses-01")
	// sub-02 has no data: the batch records the failure and keeps going

	settings := testSettings(root)
	reportDir := t.TempDir()
	settings.Output.File.Enabled = true
	settings.Output.File.Path = reportDir
	settings.Output.File.Type = "csv"

	require.NoError(t, ParticipantAnalysis(settings, []string{"01", "02"}, []string{"01"}))

	lines := readReportLines(t, filepath.Join(reportDir, "motiontidy_report.csv"))
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "sub-01,ses-01,rest,1,written,6")
	assert.Contains(t, lines[2], "sub-02,ses-01,rest,-,failed")
}

func TestGroupAnalysis(t *testing.T) {
	root := t.TempDir()
	addSession(t, root, "sub-01", "ses-01")
	addSession(t, root, "sub-01", "ses-02")
	addSession(t, root, "sub-02", "ses-03")
	// a subject without session directories is skipped, not failed
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub-03"), 0o755))

	settings := testSettings(root)
	reportDir := t.TempDir()
	settings.Output.File.Enabled = true
	settings.Output.File.Path = reportDir
	settings.Output.File.Type = "csv"

	require.NoError(t, GroupAnalysis(settings))

	lines := readReportLines(t, filepath.Join(reportDir, "motiontidy_report.csv"))
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "sub-01,ses-01,rest,1,written")
	assert.Contains(t, lines[2], "sub-01,ses-02,rest,1,written")
	assert.Contains(t, lines[3], "sub-02,ses-03,rest,1,written")
	// each subject is paired only with its own sessions
	for _, line := range lines {
		assert.NotContains(t, line, "sub-02,ses-01")
		assert.NotContains(t, line, "sub-03")
	}
}

func TestGroupAnalysisMissingRoot(t *testing.T) {
	settings := &conf.Settings{
		BIDS:   conf.BIDSSettings{Dir: filepath.Join(t.TempDir(), "absent"), Task: "rest"},
		Motion: conf.MotionSettings{FramesPerRun: 383, ResplitDelims: " \t,"},
	}
	assert.Error(t, GroupAnalysis(settings))
}
