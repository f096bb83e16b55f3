// Package watcher polls the content file and hands every valid new version
// to a callback.
package watcher

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"hypnosis-landing/internal/content"
)

type fingerprint struct {
	modTime time.Time
	size    int64
}

func stat(path string) (fingerprint, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return fingerprint{}, false
	}
	return fingerprint{modTime: info.ModTime(), size: info.Size()}, true
}

// Watch checks path every interval until ctx is done. When the file changes
// it is reloaded and validated; a valid catalog is passed to onChange, an
// invalid one is logged and skipped so the previous catalog stays live.
func Watch(ctx context.Context, path string, interval time.Duration, onChange func(*content.Catalog)) {
	log := logrus.WithField("path", path)
	log.Info("Content watcher started")

	last, _ := stat(path)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Content watcher stopped")
			return
		case <-ticker.C:
		}

		current, ok := stat(path)
		if !ok || current == last {
			continue
		}
		last = current

		log.WithFields(logrus.Fields{
			"modTime": current.modTime,
			"size":    current.size,
		}).Info("Content file changed, reloading")

		c, err := content.Load(path)
		if err == nil {
			err = c.Validate()
		}
		if err != nil {
			log.WithError(err).Warn("Content change rejected, keeping previous catalog")
			continue
		}
		onChange(c)
	}
}
