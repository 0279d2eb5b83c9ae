package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []RunResult {
	return []RunResult{
		{Subject: "sub-01", Session: "ses-01", Task: "rest", Run: 1, Status: StatusWritten, Rows: 766},
		{Subject: "sub-01", Session: "ses-01", Task: "rest", Run: 2, Status: StatusSkipped},
		{Subject: "sub-02", Session: "ses-01", Task: "rest", Status: StatusFailed,
			Err: `timeseries not found, expected "foo.nii"`},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleResults())
	assert.Equal(t, 1, s.Written)
	assert.Equal(t, 1, s.Skipped)
	assert.Equal(t, 1, s.Failed)

	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestWriteResultsTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report")
	require.NoError(t, WriteResultsTable(sampleResults(), path))

	data, err := os.ReadFile(path + ".txt")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Subject\tSession\tTask\tRun\tStatus\tRows\tError", lines[0])
	assert.Equal(t, "sub-01\tses-01\trest\t1\twritten\t766\t", lines[1])
	// session-level failures have no run number
	assert.True(t, strings.HasPrefix(lines[3], "sub-02\tses-01\trest\t-\tfailed\t0\t"))
}

func TestWriteResultsCsv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report")
	require.NoError(t, WriteResultsCsv(sampleResults(), path))

	data, err := os.ReadFile(path + ".csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "subject,session,task,run,status,rows,error", lines[0])
	assert.Equal(t, "sub-01,ses-01,rest,1,written,766,", lines[1])
	// error messages with commas or quotes must be escaped
	assert.Contains(t, lines[3], `"timeseries not found, expected ""foo.nii"""`)
}

func TestCsvEscape(t *testing.T) {
	assert.Equal(t, "plain", csvEscape("plain"))
	assert.Equal(t, `"a,b"`, csvEscape("a,b"))
	assert.Equal(t, `"say ""hi"""`, csvEscape(`say "hi"`))
}
