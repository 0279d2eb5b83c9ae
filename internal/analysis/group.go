package analysis

import (
	"github.com/tkarvine/motiontidy/internal/bids"
	"github.com/tkarvine/motiontidy/internal/conf"
	"github.com/tkarvine/motiontidy/internal/report"
)

// GroupAnalysis discovers every subject and session under the dataset root
// and processes all of them. Each subject is paired only with its own
// sessions, so sparse datasets don't produce spurious missing-session noise.
func GroupAnalysis(settings *conf.Settings) error {
	subjects, err := bids.Subjects(settings.BIDS.Dir)
	if err != nil {
		return err
	}

	logger.Info("starting group level analysis",
		"dir", settings.BIDS.Dir, "subjects", len(subjects))

	var results []report.RunResult
	for _, subject := range subjects {
		sessions, err := bids.Sessions(settings.BIDS.Dir, subject)
		if err != nil {
			logger.Error("failed to list sessions", "subject", subject, "error", err)
			results = append(results, report.RunResult{
				Subject: subject,
				Task:    settings.BIDS.Task,
				Status:  report.StatusFailed,
				Err:     err.Error(),
			})
			continue
		}

		if len(sessions) == 0 {
			logger.Warn("no session directories found", "subject", subject)
			continue
		}

		for _, session := range sessions {
			results = append(results, runSession(settings, subject, session)...)
		}
	}

	return writeReport(settings, results)
}
