package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/picnamer/internal/config"
	"github.com/backmassage/picnamer/internal/display"
	"github.com/backmassage/picnamer/internal/logging"
)

// Run renames the photos of cfg.PhotoFolder to names, in order, into
// cfg.OutputFolder. Nothing is created or renamed when discovery or planning
// fails. A failed rename stops the run with a *RenameError; the returned
// stats count what was done before it.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, names []string) (RunStats, error) {
	var stats RunStats

	photos, err := Discover(cfg)
	if err != nil {
		return stats, err
	}
	log.Debug(cfg.Verbose, "Found %s in %s", display.Plural(len(photos), "photo"), cfg.PhotoFolder)

	moves, err := Plan(cfg, photos, names)
	if err != nil {
		return stats, err
	}
	stats.Total = len(moves)

	if err := os.MkdirAll(cfg.OutputFolder, 0o755); err != nil {
		return stats, fmt.Errorf("create output folder: %w", err)
	}

	for i, m := range moves {
		if err := ctx.Err(); err != nil {
			log.Warn("Interrupted after %s", display.Plural(stats.Renamed, "rename"))
			return stats, err
		}
		if err := moveFile(m.Photo.Path, m.Target); err != nil {
			return stats, &RenameError{From: m.Photo.Path, To: m.Target, Done: stats.Renamed, Err: err}
		}
		stats.Renamed++
		stats.Bytes += m.Photo.Size
		log.Debug(cfg.Verbose, "[%d/%d] %s -> %s", i+1, stats.Total, m.Photo.Name, filepath.Base(m.Target))
		if base := filepath.Base(m.Target); base != m.Name+m.Photo.Ext {
			log.Warn("Duplicate name %q, saved %s as %s", m.Name, m.Photo.Name, base)
		}
	}

	log.Success("Renamed %s (%s) into %s",
		display.Plural(stats.Renamed, "photo"), display.FormatBytes(stats.Bytes), cfg.OutputFolder)
	return stats, nil
}
