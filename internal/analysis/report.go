package analysis

import (
	"path/filepath"

	"github.com/tkarvine/motiontidy/internal/conf"
	"github.com/tkarvine/motiontidy/internal/report"
)

// reportBaseName is the stem of the report file; the writer appends the
// extension matching the configured format.
const reportBaseName = "motiontidy_report"

// writeReport logs the batch summary and emits the run report in the
// configured format, to stdout or to the configured output directory.
func writeReport(settings *conf.Settings, results []report.RunResult) error {
	summary := report.Summarize(results)
	logger.Info("batch completed",
		"written", summary.Written,
		"skipped", summary.Skipped,
		"failed", summary.Failed)

	var outputFile string
	if settings.Output.File.Enabled {
		outputFile = filepath.Join(settings.Output.File.Path, reportBaseName)
	}

	if settings.Output.File.Type == "csv" {
		return report.WriteResultsCsv(results, outputFile)
	}
	return report.WriteResultsTable(results, outputFile)
}
