package fixtures

import (
	"os"

	"github.com/sirupsen/logrus"
)

// ResolveDataDir returns the first candidate that is a non-empty directory.
// When none qualifies the first candidate is returned, and loading from it
// produces the empty catalog.
func ResolveDataDir(candidates []string, log logrus.FieldLogger) string {
	if len(candidates) == 0 {
		return "data"
	}

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err != nil {
			log.WithError(err).WithField("path", candidate).Debug("Data path not accessible")
			continue
		}
		if !info.IsDir() {
			log.WithField("path", candidate).Debug("Data path is not a directory")
			continue
		}

		entries, err := os.ReadDir(candidate)
		if err != nil || len(entries) == 0 {
			log.WithField("path", candidate).Debug("Data directory is empty or unreadable")
			continue
		}

		log.WithFields(logrus.Fields{
			"path":    candidate,
			"entries": len(entries),
		}).Info("Found data directory")
		return candidate
	}

	log.WithField("path", candidates[0]).Warn("No usable data directory found")
	return candidates[0]
}
