package analysis

import (
	"github.com/tkarvine/motiontidy/internal/bids"
	"github.com/tkarvine/motiontidy/internal/conf"
	"github.com/tkarvine/motiontidy/internal/errors"
	"github.com/tkarvine/motiontidy/internal/report"
)

// ParticipantAnalysis processes the given participant/session label
// combinations. Labels exclude the "sub-"/"ses-" entity prefixes. A failing
// session is recorded in the report and does not abort the batch.
func ParticipantAnalysis(settings *conf.Settings, participantLabels, sessionLabels []string) error {
	if len(participantLabels) == 0 || len(sessionLabels) == 0 {
		return errors.ValidationError("participant and session labels must be specified for participant level analysis")
	}

	var results []report.RunResult
	for _, participant := range participantLabels {
		for _, session := range sessionLabels {
			results = append(results, runSession(settings, participant, session)...)
		}
	}

	return writeReport(settings, results)
}

// runSession analyzes one pair and converts a session-level failure into a
// report entry so the batch continues.
func runSession(settings *conf.Settings, subjectLabel, sessionLabel string) []report.RunResult {
	results, err := analyzeSession(settings, subjectLabel, sessionLabel)
	if err != nil {
		logger.Error("session processing failed",
			"subject", subjectLabel, "session", sessionLabel, "error", err)
		return []report.RunResult{{
			Subject: bids.Subject(subjectLabel),
			Session: bids.Session(sessionLabel),
			Task:    settings.BIDS.Task,
			Status:  report.StatusFailed,
			Err:     err.Error(),
		}}
	}
	return results
}
