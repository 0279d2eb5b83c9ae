package bids

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tkarvine/motiontidy/internal/errors"
)

// Subjects returns the sorted subject entities ("sub-*" directories) under root.
func Subjects(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.New(err).
			Category(errors.CategoryFileIO).
			Context("operation", "list-subjects").
			FileContext(root).
			Build()
	}

	var subjects []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), "sub-") {
			subjects = append(subjects, entry.Name())
		}
	}
	sort.Strings(subjects)
	return subjects, nil
}

// Sessions returns the sorted session entities ("ses-*" directories) for a subject.
func Sessions(root, subject string) ([]string, error) {
	subjectDir := filepath.Join(root, subject)
	entries, err := os.ReadDir(subjectDir)
	if err != nil {
		return nil, errors.New(err).
			Category(errors.CategoryFileIO).
			Context("operation", "list-sessions").
			Context("subject", subject).
			FileContext(subjectDir).
			Build()
	}

	var sessions []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), "ses-") {
			sessions = append(sessions, entry.Name())
		}
	}
	sort.Strings(sessions)
	return sessions, nil
}
