package merge

import (
	"os"
	"path/filepath"

	"craigmix/internal/config"
	"craigmix/internal/logging"
)

// cleanupOriginals applies the delete-originals policy after a successful
// merge. Every failure here is non-fatal: the merged output already exists.
func (p *Processor) cleanupOriginals(files []string) {
	switch p.cfg.Cleanup.DeleteOriginals {
	case config.DeleteAlways:
	case config.DeletePrompt:
		if p.confirm == nil {
			p.logger.Info("delete prompt unavailable, keeping originals")
			return
		}
		if !p.confirm.Confirm("Delete original files?") {
			p.logger.Info("keeping original files")
			return
		}
	default:
		return
	}

	for _, file := range files {
		if err := os.Remove(file); err != nil {
			p.logger.Warn("failed to delete original", logging.String("file", file), logging.Error(err))
			continue
		}
		p.logger.Info("deleted original", logging.String("file", filepath.Base(file)))
	}
}
