// Command picnamer renames a folder of photos from a grouped names list.
//
// It parses flags, validates configuration and paths, and either runs the
// --check report or loads the names, writes the grouping sidecar and renames
// the photos.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/backmassage/picnamer/internal/check"
	"github.com/backmassage/picnamer/internal/config"
	"github.com/backmassage/picnamer/internal/display"
	"github.com/backmassage/picnamer/internal/grouping"
	"github.com/backmassage/picnamer/internal/logging"
	"github.com/backmassage/picnamer/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Bootstrap: the logger doesn't exist yet, so errors go directly to
	// stderr via fmt.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, args, version); err != nil {
		fmt.Fprintf(os.Stderr, "picnamer: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "picnamer: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "picnamer: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner(os.Stdout)

	if err := check.CheckPaths(&cfg); err != nil {
		log.Error("%v", err)
		return 1
	}

	// Renaming inside the photo folder could clobber photos not yet processed.
	photoAbs, err := absPath(cfg.PhotoFolder)
	if err != nil {
		log.Error("Cannot resolve photo folder: %s", cfg.PhotoFolder)
		return 1
	}
	outputAbs, err := absPath(cfg.OutputFolder)
	if err != nil {
		log.Error("Cannot resolve output folder: %s", cfg.OutputFolder)
		return 1
	}
	if err := cfg.ValidatePaths(photoAbs, outputAbs); err != nil {
		log.Error("%v", err)
		return 1
	}

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	log.Info("=== picnamer v%s (%s) ===", version, commit)
	log.Info("Names:  %s", cfg.NamesFile)
	log.Info("Photos: %s", cfg.PhotoFolder)
	log.Info("Out:    %s", cfg.OutputFolder)

	groups, err := grouping.Load(cfg.NamesFile)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	log.Info("Loaded %s in %s", display.Plural(groups.Len(), "name"), display.Plural(len(groups), "group"))
	log.Debug(cfg.Verbose, "Groups: %s", strings.Join(groups.Labels(), ", "))

	if err := grouping.Save(cfg.GroupsFile, groups); err != nil {
		log.Error("%v", err)
		return 1
	}
	log.Info("Grouping written to %s", cfg.GroupsFile)

	// Cancel between renames on SIGINT/SIGTERM.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, stopping after the current rename")
			cancel()
		case <-ctx.Done():
		}
	}()

	stats, err := pipeline.Run(ctx, &cfg, log, groups.Flatten())
	if err != nil {
		log.Error("%v", err)
		var re *pipeline.RenameError
		if errors.As(err, &re) || errors.Is(err, context.Canceled) {
			log.Warn("%s already renamed, %s left in %s",
				display.Plural(stats.Renamed, "photo"), display.Plural(stats.Remaining(), "photo"), cfg.PhotoFolder)
		}
		return 1
	}

	log.Success("Task successful")
	return 0
}

// absPath returns the absolute path with symlinks resolved. A path that
// does not exist yet (the output folder before the first run) is returned
// absolute but unresolved.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if errors.Is(err, os.ErrNotExist) {
		return abs, nil
	}
	return resolved, err
}
