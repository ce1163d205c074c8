// Package check provides the pre-run path validation (CheckPaths) and the
// --check report, which loads the names list and scans the photo folder
// without renaming anything.
package check

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/backmassage/picnamer/internal/config"
	"github.com/backmassage/picnamer/internal/display"
	"github.com/backmassage/picnamer/internal/grouping"
	"github.com/backmassage/picnamer/internal/naming"
	"github.com/backmassage/picnamer/internal/pipeline"
)

// Sentinel errors returned by CheckPaths.
var (
	ErrNamesFileNotFound   = errors.New("names file not found")
	ErrNamesFileNotRegular = errors.New("names file is not a regular file")
	ErrPhotoFolderNotFound = errors.New("photo folder not found")
	ErrPhotoFolderNotDir   = errors.New("photo folder is not a directory")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// stays testable with a recording logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// CheckPaths verifies that the names file and the photo folder exist and
// have the right kind. Errors wrap a sentinel and name the offending path.
func CheckPaths(cfg *config.Config) error {
	fi, err := os.Stat(cfg.NamesFile)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNamesFileNotFound, cfg.NamesFile)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNamesFileNotRegular, cfg.NamesFile)
	}

	fi, err = os.Stat(cfg.PhotoFolder)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrPhotoFolderNotFound, cfg.PhotoFolder)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrPhotoFolderNotDir, cfg.PhotoFolder)
	}
	return nil
}

// RunCheck runs the --check flow: it reports the names list, the photo
// folder contents, the output folder state and whether a run would pass
// planning. It never renames or writes anything. Returns false when a run
// with this configuration would fail before renaming.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== Check ===")
	ok := true

	groups, err := grouping.Load(cfg.NamesFile)
	if err != nil {
		log.Error("Names file: %v", err)
		ok = false
	} else {
		log.Success("Names file: %s (%s, %s)", cfg.NamesFile,
			display.Plural(len(groups), "group"), display.Plural(groups.Len(), "name"))
		for _, g := range groups {
			log.Debug(cfg.Verbose, "  %s: %s", g.Label, strings.Join(g.Names, ", "))
		}
		for _, name := range groups.Flatten() {
			if err := naming.ValidateName(name); err != nil {
				log.Error("%v", err)
				ok = false
			}
		}
	}

	photos, err := pipeline.Discover(cfg)
	if err != nil {
		log.Error("Photo folder: %v", err)
		return false
	}
	log.Success("Photo folder: %s (%s)", cfg.PhotoFolder, display.Plural(len(photos), "photo"))
	logExtensionCounts(log, photos)
	if ignored := countIgnored(cfg.PhotoFolder, len(photos)); ignored > 0 {
		log.Info("  %s ignored (not %s)", display.Plural(ignored, "file"), strings.Join(cfg.AllowedExtensions, ", "))
	}
	if len(photos) > 0 {
		log.Debug(cfg.Verbose, "  first: %s, last: %s", photos[0].Name, photos[len(photos)-1].Name)
	}

	if !checkOutput(cfg, log) {
		ok = false
	}
	if !ok {
		return false
	}

	if _, err := pipeline.Plan(cfg, photos, groups.Flatten()); err != nil {
		log.Error("%v", err)
		return false
	}
	log.Success("Counts match: %s ready to rename", display.Plural(len(photos), "photo"))
	return true
}

// checkOutput reports whether the output folder exists or will be created.
// It returns false when the path exists but is not a directory.
func checkOutput(cfg *config.Config, log Logger) bool {
	fi, err := os.Stat(cfg.OutputFolder)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Info("Output folder: %s (will be created)", cfg.OutputFolder)
	case err != nil:
		log.Warn("Output folder: %v", err)
	case !fi.IsDir():
		log.Error("Output folder: %s is not a directory", cfg.OutputFolder)
		return false
	default:
		entries, _ := os.ReadDir(cfg.OutputFolder)
		log.Info("Output folder: %s (exists, %s)", cfg.OutputFolder, display.Plural(len(entries), "item"))
	}
	return true
}

// logExtensionCounts logs how many photos were found per extension.
func logExtensionCounts(log Logger, photos []pipeline.Photo) {
	counts := make(map[string]int)
	for _, p := range photos {
		counts[p.Ext]++
	}
	exts := make([]string, 0, len(counts))
	for ext := range counts {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	for _, ext := range exts {
		log.Info("  %s: %d", ext, counts[ext])
	}
}

// countIgnored returns how many entries of dir are not matching photos.
func countIgnored(dir string, matched int) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	return len(entries) - matched
}
